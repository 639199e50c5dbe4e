// Package store persists the ledger. SQLite is the primary backend; CSV,
// JSON snapshots and org-mode documents are export formats. The analytics
// core never touches this package: it only ever sees the trade slices the
// ledger hands out.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/gltrades/ledger"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveTrade inserts or replaces one trade row.
func (s *SQLite) SaveTrade(t ledger.Trade) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO trades
		(id, date, executed_at, symbol, side, quantity, entry, exit, stop, pl, r_multiple, strategy, tags, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, nullTime(t.ExecutedAt), t.Symbol, string(t.Side), t.Quantity,
		t.Entry, t.Exit, t.Stop, t.PL, t.RMultiple, t.Strategy,
		strings.Join(t.Tags, ","), t.Notes,
	)
	return err
}

func (s *SQLite) DeleteTrade(tradeID string) error {
	_, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, tradeID)
	return err
}

// GetTrade returns a single trade by ID.
func (s *SQLite) GetTrade(tradeID string) (ledger.Trade, error) {
	row := s.db.QueryRow(`
		SELECT id, date, executed_at, symbol, side, quantity, entry, exit, stop, pl, r_multiple, strategy, tags, notes
		FROM trades
		WHERE id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ledger.Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return ledger.Trade{}, err
	}
	return t, nil
}

// ListTrades returns every stored trade, most recent first (date descending,
// then ID descending so same-day trades come back newest first).
func (s *SQLite) ListTrades() ([]ledger.Trade, error) {
	return s.queryTrades(`
		SELECT id, date, executed_at, symbol, side, quantity, entry, exit, stop, pl, r_multiple, strategy, tags, notes
		FROM trades
		ORDER BY date DESC, id DESC`)
}

// ListTradesBetween returns trades dated within [start, end), oldest first.
func (s *SQLite) ListTradesBetween(start, end time.Time) ([]ledger.Trade, error) {
	return s.queryTrades(`
		SELECT id, date, executed_at, symbol, side, quantity, entry, exit, stop, pl, r_multiple, strategy, tags, notes
		FROM trades
		WHERE date >= ? AND date < ?
		ORDER BY date ASC, id ASC`, start, end)
}

func (s *SQLite) queryTrades(query string, args ...any) ([]ledger.Trade, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (ledger.Trade, error) {
	var t ledger.Trade
	var side, tags string
	var executedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Date,
		&executedAt,
		&t.Symbol,
		&side,
		&t.Quantity,
		&t.Entry,
		&t.Exit,
		&t.Stop,
		&t.PL,
		&t.RMultiple,
		&t.Strategy,
		&tags,
		&t.Notes,
	)
	if err != nil {
		return ledger.Trade{}, err
	}

	t.Side = ledger.Side(side)
	if executedAt.Valid {
		t.ExecutedAt = executedAt.Time
	}
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	return t, nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func (s *SQLite) SavePlaybook(p ledger.Playbook) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO playbooks
		(id, name, description, entry, exit, risk, trades)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Entry, p.Exit, p.Risk, p.Trades,
	)
	return err
}

func (s *SQLite) DeletePlaybook(playbookID string) error {
	_, err := s.db.Exec(`DELETE FROM playbooks WHERE id = ?`, playbookID)
	return err
}

func (s *SQLite) ListPlaybooks() ([]ledger.Playbook, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, entry, exit, risk, trades
		FROM playbooks
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Playbook
	for rows.Next() {
		var p ledger.Playbook
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Entry, &p.Exit, &p.Risk, &p.Trades); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) SaveJournalEntry(e ledger.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO journal_entries
		(id, date, title, mood, entry)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.Title, e.Mood, e.Entry,
	)
	return err
}

func (s *SQLite) DeleteJournalEntry(entryID string) error {
	_, err := s.db.Exec(`DELETE FROM journal_entries WHERE id = ?`, entryID)
	return err
}

func (s *SQLite) ListJournalEntries() ([]ledger.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, title, mood, entry
		FROM journal_entries
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.JournalEntry
	for rows.Next() {
		var e ledger.JournalEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Mood, &e.Entry); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadLedger reads everything into a fresh ledger.
func (s *SQLite) LoadLedger() (*ledger.Ledger, error) {
	trades, err := s.ListTrades()
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	playbooks, err := s.ListPlaybooks()
	if err != nil {
		return nil, fmt.Errorf("load playbooks: %w", err)
	}
	entries, err := s.ListJournalEntries()
	if err != nil {
		return nil, fmt.Errorf("load journal entries: %w", err)
	}
	return ledger.Load(trades, playbooks, entries), nil
}

// SaveLedger replaces the stored state with the ledger's current contents,
// in one transaction.
func (s *SQLite) SaveLedger(l *ledger.Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"trades", "playbooks", "journal_entries"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}

	for _, t := range l.Trades() {
		if _, err := tx.Exec(`
			INSERT INTO trades
			(id, date, executed_at, symbol, side, quantity, entry, exit, stop, pl, r_multiple, strategy, tags, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Date, nullTime(t.ExecutedAt), t.Symbol, string(t.Side), t.Quantity,
			t.Entry, t.Exit, t.Stop, t.PL, t.RMultiple, t.Strategy,
			strings.Join(t.Tags, ","), t.Notes,
		); err != nil {
			return err
		}
	}
	for _, p := range l.Playbooks() {
		if _, err := tx.Exec(`
			INSERT INTO playbooks
			(id, name, description, entry, exit, risk, trades)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Description, p.Entry, p.Exit, p.Risk, p.Trades,
		); err != nil {
			return err
		}
	}
	for _, e := range l.JournalEntries() {
		if _, err := tx.Exec(`
			INSERT INTO journal_entries
			(id, date, title, mood, entry)
			VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Date, e.Title, e.Mood, e.Entry,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
