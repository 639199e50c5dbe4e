package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/ledger"
	"github.com/rustyeddy/gltrades/store"
)

var seedValue int64

func init() {
	cmdSeed.Flags().Int64Var(&seedValue, "seed", 0, "PRNG seed for sample data (0 = time-based)")
	rootCmd.AddCommand(cmdSeed)
}

var cmdSeed = &cobra.Command{
	Use:   "seed",
	Short: "Fill the journal with sample trades, playbooks and entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s, err := store.Open(cfg.Store)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		seed := seedValue
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		l := ledger.New()
		l.Seed(seed, time.Now().UTC())

		if err := s.SaveLedger(l); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
		fmt.Printf("seeded %d trades, %d playbooks, %d journal entries\n",
			len(l.Trades()), len(l.Playbooks()), len(l.JournalEntries()))
		return nil
	},
}
