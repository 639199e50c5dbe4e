package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTradesDeterministic(t *testing.T) {
	t.Parallel()

	until := day("2026-08-30")
	a := SampleTrades(42, 75, until)
	b := SampleTrades(42, 75, until)

	assert.Equal(t, a, b)

	c := SampleTrades(43, 75, until)
	assert.NotEqual(t, a, c)
}

func TestSampleTradesShape(t *testing.T) {
	t.Parallel()

	until := day("2026-08-30")
	trades := SampleTrades(1, 75, until)
	require.Len(t, trades, 75)

	start := until.AddDate(0, 0, -90)
	for _, tr := range trades {
		assert.NotEmpty(t, tr.Symbol)
		assert.Positive(t, tr.Quantity)
		assert.Positive(t, tr.Entry)
		assert.Positive(t, tr.Exit)
		assert.Positive(t, tr.Stop)
		assert.NotEmpty(t, tr.Strategy)
		assert.NotEmpty(t, tr.Tags)
		assert.False(t, tr.Date.Before(start))
		assert.False(t, tr.ExecutedAt.IsZero())

		h := tr.ExecutedAt.Hour()
		assert.GreaterOrEqual(t, h, 4)
		assert.Less(t, h, 16)
	}
}

func TestSeedPopulatesLedgerWithDerivedFields(t *testing.T) {
	t.Parallel()

	l := New()
	l.Seed(7, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))

	trades := l.Trades()
	require.Len(t, trades, 75)
	assert.Len(t, l.Playbooks(), 3)
	assert.Len(t, l.JournalEntries(), 3)

	for _, tr := range trades {
		require.NotEmpty(t, tr.ID)
		wantPL, wantR := Derive(tr.Side, tr.Quantity, tr.Entry, tr.Exit, tr.Stop)
		assert.InDelta(t, wantPL, tr.PL, 1e-9)
		assert.InDelta(t, wantR, tr.RMultiple, 1e-9)
	}
}
