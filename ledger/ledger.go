package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/gltrades/pkg/id"
)

// Ledger owns the trader's records for one session: trades, playbooks and
// journal entries. It is plain in-memory state with no synchronization; the
// caller hands snapshots to the analytics core and drives persistence.
//
// Trades are kept most-recent-first, the display convention. Nothing in
// analytics depends on that order.
type Ledger struct {
	trades    []Trade
	playbooks []Playbook
	entries   []JournalEntry
}

func New() *Ledger {
	return &Ledger{}
}

// Load builds a ledger from previously stored records, e.g. a SQLite load
// or a JSON snapshot import. Records are copied but taken as-is: derived
// fields are trusted to have been computed at write time.
func Load(trades []Trade, playbooks []Playbook, entries []JournalEntry) *Ledger {
	return &Ledger{
		trades:    cloneTrades(trades),
		playbooks: append([]Playbook(nil), playbooks...),
		entries:   append([]JournalEntry(nil), entries...),
	}
}

// AddTrade assigns an ID, normalizes the record, computes derived fields and
// prepends it to the ledger. The stored trade is returned.
func (l *Ledger) AddTrade(t Trade) Trade {
	t.ID = id.New()
	t.normalize()
	t.derive()
	l.trades = append([]Trade{t}, l.trades...)
	return t
}

// UpdateTrade replaces the trade with the same ID, recomputing derived
// fields. Position in the ledger is preserved.
func (l *Ledger) UpdateTrade(t Trade) (Trade, error) {
	for i := range l.trades {
		if l.trades[i].ID == t.ID {
			t.normalize()
			t.derive()
			l.trades[i] = t
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q not found", t.ID)
}

// DeleteTrade removes a trade by ID. Returns false if no trade matched.
func (l *Ledger) DeleteTrade(tradeID string) bool {
	for i := range l.trades {
		if l.trades[i].ID == tradeID {
			l.trades = append(l.trades[:i], l.trades[i+1:]...)
			return true
		}
	}
	return false
}

// Trade returns a trade by ID.
func (l *Ledger) Trade(tradeID string) (Trade, bool) {
	for _, t := range l.trades {
		if t.ID == tradeID {
			t.Tags = append([]string(nil), t.Tags...)
			return t, true
		}
	}
	return Trade{}, false
}

// Trades returns a snapshot copy of the trade list, most recent first.
// Tags are copied too; callers cannot write through into the ledger.
func (l *Ledger) Trades() []Trade {
	return cloneTrades(l.trades)
}

func cloneTrades(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	for i := range out {
		out[i].Tags = append([]string(nil), out[i].Tags...)
	}
	return out
}

// Outcome filters for FilterTrades.
type Outcome string

const (
	All       Outcome = "all"
	Winning   Outcome = "winning"
	Losing    Outcome = "losing"
	Breakeven Outcome = "breakeven"
)

// ParseOutcome validates an outcome filter string.
func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case All, Winning, Losing, Breakeven:
		return o, nil
	default:
		return "", fmt.Errorf("unknown outcome filter %q", s)
	}
}

// FilterTrades returns trades matching a case-insensitive search over
// symbol, strategy and tags, restricted to the given outcome.
func (l *Ledger) FilterTrades(search string, outcome Outcome) []Trade {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []Trade
	for _, t := range l.trades {
		if search != "" && !matches(t, search) {
			continue
		}
		switch outcome {
		case Winning:
			if t.PL <= 0 {
				continue
			}
		case Losing:
			if t.PL >= 0 {
				continue
			}
		case Breakeven:
			if t.PL != 0 {
				continue
			}
		}
		out = append(out, t)
	}
	return cloneTrades(out)
}

func matches(t Trade, search string) bool {
	if strings.Contains(strings.ToLower(t.Symbol), search) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Strategy), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// AddPlaybook assigns an ID and appends the playbook.
func (l *Ledger) AddPlaybook(p Playbook) Playbook {
	p.ID = id.New()
	l.playbooks = append(l.playbooks, p)
	return p
}

func (l *Ledger) DeletePlaybook(playbookID string) bool {
	for i := range l.playbooks {
		if l.playbooks[i].ID == playbookID {
			l.playbooks = append(l.playbooks[:i], l.playbooks[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) Playbooks() []Playbook {
	out := make([]Playbook, len(l.playbooks))
	copy(out, l.playbooks)
	return out
}

// AddJournalEntry assigns an ID and appends the entry.
func (l *Ledger) AddJournalEntry(e JournalEntry) JournalEntry {
	e.ID = id.New()
	l.entries = append(l.entries, e)
	return e
}

func (l *Ledger) DeleteJournalEntry(entryID string) bool {
	for i := range l.entries {
		if l.entries[i].ID == entryID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// JournalEntries returns entries sorted most recent first, the display
// order.
func (l *Ledger) JournalEntries() []JournalEntry {
	out := make([]JournalEntry, len(l.entries))
	copy(out, l.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
