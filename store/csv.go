package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/gltrades/ledger"
)

var csvHeader = []string{
	"id", "date", "executed_at", "symbol", "side", "quantity",
	"entry", "exit", "stop", "pl", "r_multiple", "strategy", "tags", "notes",
}

// WriteTradesCSV writes the trade list as CSV with a header row.
func WriteTradesCSV(w io.Writer, trades []ledger.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		executedAt := ""
		if !t.ExecutedAt.IsZero() {
			executedAt = t.ExecutedAt.Format(time.RFC3339)
		}
		rec := []string{
			t.ID,
			t.Date.Format("2006-01-02"),
			executedAt,
			t.Symbol,
			string(t.Side),
			strconv.Itoa(t.Quantity),
			f(t.Entry),
			f(t.Exit),
			f(t.Stop),
			f(t.PL),
			f(t.RMultiple),
			t.Strategy,
			strings.Join(t.Tags, "|"),
			t.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTradesCSV parses trades written by WriteTradesCSV.
func ReadTradesCSV(r io.Reader) ([]ledger.Trade, error) {
	cr := csv.NewReader(r)

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	var out []ledger.Trade
	for _, rec := range recs[1:] { // skip header
		t, err := parseCSVTrade(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseCSVTrade(rec []string) (ledger.Trade, error) {
	var t ledger.Trade
	var err error

	t.ID = rec[0]
	if t.Date, err = time.Parse("2006-01-02", rec[1]); err != nil {
		return t, err
	}
	if rec[2] != "" {
		if t.ExecutedAt, err = time.Parse(time.RFC3339, rec[2]); err != nil {
			return t, err
		}
	}
	t.Symbol = rec[3]
	t.Side = ledger.Side(rec[4])
	if t.Quantity, err = strconv.Atoi(rec[5]); err != nil {
		return t, err
	}
	for i, dst := range []*float64{&t.Entry, &t.Exit, &t.Stop, &t.PL, &t.RMultiple} {
		if *dst, err = strconv.ParseFloat(rec[6+i], 64); err != nil {
			return t, err
		}
	}
	t.Strategy = rec[11]
	if rec[12] != "" {
		t.Tags = strings.Split(rec[12], "|")
	}
	t.Notes = rec[13]
	return t, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// CSV persists trades in a single CSV file, rewritten on every change.
// Playbooks and journal entries have no CSV form; a csv-configured journal
// keeps trades only.
type CSV struct {
	path string
}

func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

func (c *CSV) Close() error { return nil }

func (c *CSV) readTrades() ([]ledger.Trade, error) {
	file, err := os.Open(c.path)
	if err != nil {
		// first run, nothing recorded yet
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return ReadTradesCSV(file)
}

func (c *CSV) writeTrades(trades []ledger.Trade) error {
	file, err := os.Create(c.path)
	if err != nil {
		return err
	}
	if err := WriteTradesCSV(file, trades); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// SaveTrade replaces the trade with the same ID, or prepends it as the
// newest entry.
func (c *CSV) SaveTrade(t ledger.Trade) error {
	trades, err := c.readTrades()
	if err != nil {
		return err
	}
	for i := range trades {
		if trades[i].ID == t.ID {
			trades[i] = t
			return c.writeTrades(trades)
		}
	}
	return c.writeTrades(append([]ledger.Trade{t}, trades...))
}

func (c *CSV) DeleteTrade(tradeID string) error {
	trades, err := c.readTrades()
	if err != nil {
		return err
	}
	for i := range trades {
		if trades[i].ID == tradeID {
			return c.writeTrades(append(trades[:i], trades[i+1:]...))
		}
	}
	return nil
}

// ListTradesBetween returns trades dated within [start, end), oldest first.
func (c *CSV) ListTradesBetween(start, end time.Time) ([]ledger.Trade, error) {
	trades, err := c.readTrades()
	if err != nil {
		return nil, err
	}

	var out []ledger.Trade
	for _, t := range trades {
		if !t.Date.Before(start) && t.Date.Before(end) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadLedger reads the trade file into a fresh ledger. A missing file is an
// empty journal, not an error.
func (c *CSV) LoadLedger() (*ledger.Ledger, error) {
	trades, err := c.readTrades()
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	return ledger.Load(trades, nil, nil), nil
}

// SaveLedger rewrites the trade file with the ledger's current trades.
func (c *CSV) SaveLedger(l *ledger.Ledger) error {
	return c.writeTrades(l.Trades())
}
