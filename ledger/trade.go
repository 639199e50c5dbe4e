package ledger

import (
	"math"
	"strings"
	"time"
)

// Side of a position: long profits when price rises, short when it falls.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

// Trade is one closed position in the journal.
//
// PL and RMultiple are cached derived fields: they are recomputed from
// side/quantity/entry/exit/stop on every add or update and never set by
// hand. A trade with no stop has RMultiple 0 (undefined risk, not an error).
type Trade struct {
	ID   string    `json:"id" yaml:"id"`
	Date time.Time `json:"date" yaml:"date"`
	// ExecutedAt is the intraday fill time, when known. The zero value means
	// the trade carries no timestamp; such trades are dropped from the
	// time-of-day report.
	ExecutedAt time.Time `json:"executedAt,omitempty" yaml:"executed_at,omitempty"`
	Symbol     string    `json:"symbol" yaml:"symbol"`
	Side       Side      `json:"side" yaml:"side"`
	Quantity   int       `json:"quantity" yaml:"quantity"`
	Entry      float64   `json:"entry" yaml:"entry"`
	Exit       float64   `json:"exit" yaml:"exit"`
	Stop       float64   `json:"stop,omitempty" yaml:"stop,omitempty"` // 0 means none
	PL         float64   `json:"pl" yaml:"pl"`
	RMultiple  float64   `json:"rMultiple" yaml:"r_multiple"`
	Strategy   string    `json:"strategy" yaml:"strategy"`
	Tags       []string  `json:"tags" yaml:"tags"`
	Notes      string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Playbook is a named, documented trading strategy. The analytics core never
// reads these; they exist for the trader to review.
type Playbook struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Entry       string `json:"entry" yaml:"entry"`
	Exit        string `json:"exit" yaml:"exit"`
	Risk        string `json:"risk" yaml:"risk"`
	Trades      int    `json:"trades" yaml:"trades"`
}

// JournalEntry is a free-text diary entry, opaque to analytics.
type JournalEntry struct {
	ID    string    `json:"id" yaml:"id"`
	Date  time.Time `json:"date" yaml:"date"`
	Title string    `json:"title" yaml:"title"`
	Mood  string    `json:"mood" yaml:"mood"`
	Entry string    `json:"entry" yaml:"entry"`
}

// Derive computes the realized P/L and R-multiple for a closed position.
//
//	pl   = (exit-entry)*qty for longs, (entry-exit)*qty for shorts
//	risk = |entry-stop|*qty when a stop was set, else 0
//	r    = pl/risk when risk > 0, else 0
//
// Both results are rounded to 2 decimal places for storage.
func Derive(side Side, quantity int, entry, exit, stop float64) (pl, rMultiple float64) {
	qty := float64(quantity)

	if side == Short {
		pl = (entry - exit) * qty
	} else {
		pl = (exit - entry) * qty
	}

	risk := 0.0
	if stop != 0 {
		risk = math.Abs(entry-stop) * qty
	}
	if risk > 0 {
		rMultiple = pl / risk
	}

	return round2(pl), round2(rMultiple)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// normalize uppercases the symbol and deduplicates tags, keeping first
// occurrence order. Empty tags are dropped.
func (t *Trade) normalize() {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))

	seen := make(map[string]bool, len(t.Tags))
	var tags []string
	for _, tag := range t.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	t.Tags = tags
}

// derive refreshes the cached PL and RMultiple fields.
func (t *Trade) derive() {
	t.PL, t.RMultiple = Derive(t.Side, t.Quantity, t.Entry, t.Exit, t.Stop)
}
