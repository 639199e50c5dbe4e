package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/analytics"
	"github.com/rustyeddy/gltrades/store"
)

func init() {
	rootCmd.AddCommand(cmdToday, cmdDay)
}

var cmdToday = &cobra.Command{
	Use:   "today",
	Short: "List today's trades",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDay(time.Now().Format("2006-01-02"))
	},
}

var cmdDay = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades for one day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDay(args[0])
	},
}

func listDay(day string) error {
	start, end, err := dayBounds(day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	trades, err := s.ListTradesBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	sym := cfg.Settings.Symbol()
	var net float64
	for _, t := range trades {
		net += t.PL
		fmt.Printf("%s  %-6s %-5s x%-5d %12s  %s [%s]\n",
			t.ID, t.Symbol, t.Side, t.Quantity,
			analytics.FormatCurrency(t.PL, sym),
			t.Strategy, strings.Join(t.Tags, ","))
	}
	fmt.Printf("%d trades, net %s\n", len(trades), analytics.FormatCurrency(net, sym))
	return nil
}

func dayBounds(day string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour), nil
}
