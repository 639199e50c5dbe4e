package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/analytics"
	"github.com/rustyeddy/gltrades/ledger"
)

var tradeAdd struct {
	date     string
	execAt   string
	symbol   string
	side     string
	quantity int
	entry    float64
	exit     float64
	stop     float64
	strategy string
	tags     []string
	notes    string
}

var (
	tradeSearch string
	tradeFilter string
)

func init() {
	fs := cmdTradeAdd.Flags()
	fs.StringVar(&tradeAdd.date, "date", "", "trade date YYYY-MM-DD (default today)")
	fs.StringVar(&tradeAdd.execAt, "time", "", "fill time HH:MM, used by the time-of-day report")
	fs.StringVar(&tradeAdd.symbol, "symbol", "", "instrument symbol (required)")
	fs.StringVar(&tradeAdd.side, "side", "long", "long or short")
	fs.IntVar(&tradeAdd.quantity, "qty", 0, "position size (required)")
	fs.Float64Var(&tradeAdd.entry, "entry", 0, "entry price (required)")
	fs.Float64Var(&tradeAdd.exit, "exit", 0, "exit price (required)")
	fs.Float64Var(&tradeAdd.stop, "stop", 0, "stop price (0 = no stop)")
	fs.StringVar(&tradeAdd.strategy, "strategy", "", "strategy label")
	fs.StringSliceVar(&tradeAdd.tags, "tags", nil, "comma-separated tags")
	fs.StringVar(&tradeAdd.notes, "notes", "", "free-text notes")

	cmdTradeList.Flags().StringVar(&tradeSearch, "search", "", "substring match on symbol/strategy/tags")
	cmdTradeList.Flags().StringVar(&tradeFilter, "filter", "all", "all, winning, losing or breakeven")

	cmdTrade.AddCommand(cmdTradeAdd, cmdTradeList, cmdTradeRm)
	rootCmd.AddCommand(cmdTrade)
}

var cmdTrade = &cobra.Command{
	Use:   "trade",
	Short: "Add, list and delete trades",
}

var cmdTradeAdd = &cobra.Command{
	Use:   "add",
	Short: "Record a closed trade",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTrade()
		if err != nil {
			return err
		}

		s, l, cfg, err := openLedger()
		if err != nil {
			return err
		}
		defer s.Close()

		stored := l.AddTrade(t)
		if err := s.SaveTrade(stored); err != nil {
			return fmt.Errorf("save trade: %w", err)
		}

		sym := cfg.Settings.Symbol()
		fmt.Printf("%s  %s %s x%d  P/L %s  (%.2fR)\n",
			stored.ID, stored.Symbol, stored.Side, stored.Quantity,
			analytics.FormatCurrency(stored.PL, sym), stored.RMultiple)
		return nil
	},
}

// buildTrade validates the add flags. Validation lives here at the boundary:
// the analytics core takes whatever it is handed.
func buildTrade() (ledger.Trade, error) {
	var t ledger.Trade

	if tradeAdd.symbol == "" {
		return t, fmt.Errorf("--symbol is required")
	}
	switch ledger.Side(tradeAdd.side) {
	case ledger.Long, ledger.Short:
	default:
		return t, fmt.Errorf("--side must be long or short")
	}
	if tradeAdd.quantity <= 0 {
		return t, fmt.Errorf("--qty must be positive")
	}
	if tradeAdd.entry <= 0 || tradeAdd.exit <= 0 {
		return t, fmt.Errorf("--entry and --exit must be positive")
	}
	if tradeAdd.stop < 0 {
		return t, fmt.Errorf("--stop must not be negative")
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if tradeAdd.date != "" {
		var err error
		if date, err = time.Parse("2006-01-02", tradeAdd.date); err != nil {
			return t, fmt.Errorf("parse --date: %w", err)
		}
	}

	var execAt time.Time
	if tradeAdd.execAt != "" {
		hm, err := time.Parse("15:04", tradeAdd.execAt)
		if err != nil {
			return t, fmt.Errorf("parse --time: %w", err)
		}
		execAt = date.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute)
	}

	t = ledger.Trade{
		Date:       date,
		ExecutedAt: execAt,
		Symbol:     tradeAdd.symbol,
		Side:       ledger.Side(tradeAdd.side),
		Quantity:   tradeAdd.quantity,
		Entry:      tradeAdd.entry,
		Exit:       tradeAdd.exit,
		Stop:       tradeAdd.stop,
		Strategy:   tradeAdd.strategy,
		Tags:       tradeAdd.tags,
		Notes:      tradeAdd.notes,
	}
	return t, nil
}

var cmdTradeList = &cobra.Command{
	Use:   "list",
	Short: "List trades, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, err := ledger.ParseOutcome(tradeFilter)
		if err != nil {
			return err
		}

		s, l, cfg, err := openLedger()
		if err != nil {
			return err
		}
		defer s.Close()

		trades := l.FilterTrades(tradeSearch, outcome)
		sym := cfg.Settings.Symbol()

		for _, t := range trades {
			fmt.Printf("%s  %s  %-6s %-5s x%-5d %12s  %5.2fR  %s [%s]\n",
				t.ID, t.Date.Format("2006-01-02"), t.Symbol, t.Side, t.Quantity,
				analytics.FormatCurrency(t.PL, sym), t.RMultiple,
				t.Strategy, strings.Join(t.Tags, ","))
		}
		fmt.Printf("%d trades\n", len(trades))
		return nil
	},
}

var cmdTradeRm = &cobra.Command{
	Use:   "rm <trade_id>",
	Short: "Delete a trade by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, l, _, err := openLedger()
		if err != nil {
			return err
		}
		defer s.Close()

		if !l.DeleteTrade(args[0]) {
			return fmt.Errorf("trade %q not found", args[0])
		}
		if err := s.DeleteTrade(args[0]); err != nil {
			return fmt.Errorf("delete trade: %w", err)
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}
