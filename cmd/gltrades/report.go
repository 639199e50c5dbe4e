package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/analytics"
	"github.com/rustyeddy/gltrades/store"
)

var reportOrgPath string

func init() {
	cmdReport.Flags().StringVar(&reportOrgPath, "org", "", "also export metrics + report to an org file")
	rootCmd.AddCommand(cmdReport)
}

var cmdReport = &cobra.Command{
	Use:   "report <kind>",
	Short: "Generate one of the seven performance reports",
	Long: `Generate a report over the trade history. Kinds:

  drawdown             drawdown curve after each trade
  risk_reward          trade count per floor(R) bucket
  tag_performance      top-10 tags by summed P/L
  performance_time     P/L per calendar month
  day_of_week          P/L per weekday (Mon-Fri; weekend trades are dropped)
  strategy_comparison  P/L and win rate per strategy
  time_of_day          P/L per session block (untimestamped trades dropped)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := analytics.ParseKind(args[0])
		if err != nil {
			return err
		}

		s, l, cfg, err := openLedger()
		if err != nil {
			return err
		}
		defer s.Close()

		trades := l.Trades()
		rep, err := analytics.GenerateReport(kind, trades)
		if err != nil {
			return err
		}
		sym := cfg.Settings.Symbol()

		for _, p := range rep.Series {
			switch kind {
			case analytics.ReportRiskReward:
				fmt.Printf("%-12s %d\n", p.Label, p.Count)
			case analytics.ReportDayOfWeek, analytics.ReportTimeOfDay:
				fmt.Printf("%-12s %12s  (avg %s, %d trades)\n",
					p.Label, analytics.FormatCurrency(p.Value, sym),
					analytics.FormatCurrency(p.Mean, sym), p.Count)
			case analytics.ReportStrategyComparison:
				fmt.Printf("%-20s %12s  (win rate %s, %d trades)\n",
					p.Label, analytics.FormatCurrency(p.Value, sym),
					analytics.FormatPercent(p.WinRate), p.Count)
			default:
				fmt.Printf("%-12s %12s\n", p.Label, analytics.FormatCurrency(p.Value, sym))
			}
		}

		if len(rep.Highlights) > 0 {
			fmt.Println()
			for _, h := range rep.Highlights {
				if h.Text != "" {
					fmt.Printf("%s: %s (%s)\n", h.Label, h.Text, analytics.FormatStat(kind, h, sym))
				} else {
					fmt.Printf("%s: %s\n", h.Label, analytics.FormatStat(kind, h, sym))
				}
			}
		}

		if reportOrgPath != "" {
			doc := &store.OrgDoc{
				Title:   fmt.Sprintf("%s REPORT: %s", cfg.Settings.PlatformName, kind),
				Created: time.Now(),
				Symbol:  sym,
				Metrics: analytics.ComputeMetrics(trades),
				Report:  &rep,
			}
			if err := doc.WriteFile(reportOrgPath); err != nil {
				return fmt.Errorf("write org file: %w", err)
			}
			fmt.Printf("\nwrote %s\n", reportOrgPath)
		}
		return nil
	},
}
