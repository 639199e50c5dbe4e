package store

import (
	"fmt"
	"time"

	"github.com/rustyeddy/gltrades/config"
	"github.com/rustyeddy/gltrades/ledger"
)

// Store is the persistence backend behind the CLI. SQLite keeps the whole
// journal; the csv store keeps trades only.
type Store interface {
	Close() error
	SaveTrade(t ledger.Trade) error
	DeleteTrade(tradeID string) error
	ListTradesBetween(start, end time.Time) ([]ledger.Trade, error)
	LoadLedger() (*ledger.Ledger, error)
	SaveLedger(l *ledger.Ledger) error
}

// Open returns the backend selected by the store configuration.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "sqlite":
		return NewSQLite(cfg.DBPath)
	case "csv":
		return NewCSV(cfg.TradesFile), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
