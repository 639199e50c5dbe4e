package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/gltrades/config"
	"github.com/rustyeddy/gltrades/ledger"
	"github.com/rustyeddy/gltrades/store"
)

var (
	cfgFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "gltrades",
	Short: "Personal trading journal with performance analytics",
	Long: `gltrades keeps a journal of closed trades, strategy playbooks and
diary entries in SQLite, and derives performance metrics and reports
(drawdown, risk/reward, tags, months, weekdays, strategies, session blocks)
from the trade history.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite journal DB (overrides config)")
}

// loadConfig resolves configuration from --config, the environment, and
// command-line overrides, in that order of increasing priority.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := cfgFile
	if path == "" {
		path = os.Getenv("GLTRADES_CONFIG")
	}

	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.ApplyEnv()
	}

	if dbPath != "" {
		cfg.Store.Type = "sqlite"
		cfg.Store.DBPath = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLedger opens the configured store and loads the full ledger.
// The caller must Close the store.
func openLedger() (store.Store, *ledger.Ledger, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := store.Open(cfg.Store)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	l, err := s.LoadLedger()
	if err != nil {
		s.Close()
		return nil, nil, nil, err
	}
	return s, l, cfg, nil
}
