package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/analytics"
)

func init() {
	rootCmd.AddCommand(cmdMetrics)
}

var cmdMetrics = &cobra.Command{
	Use:   "metrics",
	Short: "Print portfolio performance metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, l, cfg, err := openLedger()
		if err != nil {
			return err
		}
		defer s.Close()

		m := analytics.ComputeMetrics(l.Trades())
		sym := cfg.Settings.Symbol()

		fmt.Printf("Net P/L:        %s\n", analytics.FormatCurrency(m.NetPL, sym))
		fmt.Printf("Win Rate:       %s\n", analytics.FormatPercent(m.WinRate))
		fmt.Printf("Expectancy:     %s\n", analytics.FormatCurrency(m.Expectancy, sym))
		fmt.Printf("Profit Factor:  %.2f\n", m.ProfitFactor)
		fmt.Printf("Max Drawdown:   %s\n", analytics.FormatCurrency(m.MaxDrawdown, sym))
		fmt.Printf("Avg Win/Loss:   %.2f\n", m.AvgWinLoss)
		fmt.Printf("Trades:         %d (%d wins, %d losses)\n", m.TotalTrades, m.WinningTrades, m.LosingTrades)
		fmt.Printf("Avg Win:        %s\n", analytics.FormatCurrency(m.AvgWin, sym))
		fmt.Printf("Avg Loss:       %s\n", analytics.FormatCurrency(m.AvgLoss, sym))
		return nil
	},
}
