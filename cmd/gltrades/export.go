package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/store"
)

var (
	exportJSON string
	exportCSV  string
	importJSON string
)

func init() {
	cmdExport.Flags().StringVar(&exportJSON, "json", "", "write a full JSON snapshot to this path")
	cmdExport.Flags().StringVar(&exportCSV, "csv", "", "write trades as CSV to this path")
	cmdImport.Flags().StringVar(&importJSON, "json", "", "read a JSON snapshot from this path")
	rootCmd.AddCommand(cmdExport, cmdImport)
}

var cmdExport = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as a JSON snapshot or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportJSON == "" && exportCSV == "" {
			return fmt.Errorf("nothing to do: pass --json and/or --csv")
		}

		s, l, cfg, err := openLedger()
		if err != nil {
			return err
		}
		defer s.Close()

		if exportJSON != "" {
			if err := store.WriteSnapshot(exportJSON, l, cfg.Settings); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", exportJSON)
		}

		if exportCSV != "" {
			f, err := os.Create(exportCSV)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := store.WriteTradesCSV(f, l.Trades()); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			fmt.Printf("wrote %s\n", exportCSV)
		}
		return nil
	},
}

var cmdImport = &cobra.Command{
	Use:   "import",
	Short: "Replace the stored ledger with a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importJSON == "" {
			return fmt.Errorf("--json is required")
		}

		snap, err := store.ReadSnapshot(importJSON)
		if err != nil {
			return err
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

		if err := s.SaveLedger(snap.Ledger()); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
		fmt.Printf("imported %d trades, %d playbooks, %d journal entries\n",
			len(snap.Trades), len(snap.Playbooks), len(snap.JournalEntries))
		return nil
	},
}
