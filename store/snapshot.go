package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rustyeddy/gltrades/config"
	"github.com/rustyeddy/gltrades/ledger"
)

// Snapshot is the full-ledger JSON export: everything needed to move a
// journal between machines or back it up in one file.
type Snapshot struct {
	Trades         []ledger.Trade        `json:"trades"`
	Playbooks      []ledger.Playbook     `json:"playbooks"`
	JournalEntries []ledger.JournalEntry `json:"journalEntries"`
	Settings       config.Settings       `json:"settings"`
	ExportDate     time.Time             `json:"exportDate"`
}

// WriteSnapshot exports the ledger and settings to a JSON file.
func WriteSnapshot(path string, l *ledger.Ledger, settings config.Settings) error {
	snap := Snapshot{
		Trades:         l.Trades(),
		Playbooks:      l.Playbooks(),
		JournalEntries: l.JournalEntries(),
		Settings:       settings,
		ExportDate:     time.Now().UTC(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a JSON export.
func ReadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}

// Ledger rebuilds a ledger from the snapshot's records.
func (s Snapshot) Ledger() *ledger.Ledger {
	return ledger.Load(s.Trades, s.Playbooks, s.JournalEntries)
}
