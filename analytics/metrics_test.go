package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/gltrades/ledger"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// tr builds a trade with a pre-set P/L, which is all the metrics engine
// reads besides the date.
func tr(date string, pl float64) ledger.Trade {
	return ledger.Trade{ID: date, Date: day(date), PL: pl}
}

func TestComputeMetricsEmpty(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics(nil)
	assert.Equal(t, Metrics{}, m)

	m = ComputeMetrics([]ledger.Trade{})
	assert.Equal(t, Metrics{}, m)
}

func TestComputeMetricsOneWinnerOneLoser(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-05", 100),
		tr("2026-01-06", -100),
	})

	assert.InDelta(t, 0, m.NetPL, 1e-9)
	assert.InDelta(t, 50, m.WinRate, 1e-9)
	assert.InDelta(t, 100, m.AvgWin, 1e-9)
	assert.InDelta(t, 100, m.AvgLoss, 1e-9)
	assert.InDelta(t, 0, m.Expectancy, 1e-9)
	assert.InDelta(t, 1, m.ProfitFactor, 1e-9)
	assert.InDelta(t, 1, m.AvgWinLoss, 1e-9)
	assert.Equal(t, 2, m.TotalTrades)
	assert.Equal(t, 1, m.WinningTrades)
	assert.Equal(t, 1, m.LosingTrades)
}

func TestComputeMetricsNoLossesSentinel(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-05", 100),
		tr("2026-01-06", 50),
	})

	assert.InDelta(t, float64(NoLossProfitFactor), m.ProfitFactor, 1e-9)
	assert.InDelta(t, 0, m.AvgWinLoss, 1e-9) // no losses, no ratio
	assert.InDelta(t, 0, m.MaxDrawdown, 1e-9)
}

func TestComputeMetricsAllBreakeven(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-05", 0),
		tr("2026-01-06", 0),
	})

	assert.Equal(t, 2, m.TotalTrades)
	assert.Equal(t, 0, m.WinningTrades)
	assert.Equal(t, 0, m.LosingTrades)
	assert.InDelta(t, 0, m.ProfitFactor, 1e-9)
	assert.InDelta(t, 0, m.WinRate, 1e-9)
}

func TestComputeMetricsBreakevenCountsTowardTotalOnly(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-05", 100),
		tr("2026-01-06", 0),
		tr("2026-01-07", -40),
	})

	assert.Equal(t, 3, m.TotalTrades)
	assert.Equal(t, 1, m.WinningTrades)
	assert.Equal(t, 1, m.LosingTrades)
	assert.Less(t, m.WinningTrades+m.LosingTrades, m.TotalTrades)
	// win rate uses the full trade count
	assert.InDelta(t, 100.0/3.0, m.WinRate, 1e-9)
}

func TestMaxDrawdownWalk(t *testing.T) {
	t.Parallel()

	// running equity 100, 50, 250, -50; peaks 100, 100, 250, 250
	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-05", 100),
		tr("2026-01-06", -50),
		tr("2026-01-07", 200),
		tr("2026-01-08", -300),
	})

	assert.InDelta(t, 300, m.MaxDrawdown, 1e-9)
}

func TestMaxDrawdownSortsByDate(t *testing.T) {
	t.Parallel()

	// Same trades handed over most-recent-first: drawdown must re-sort.
	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-08", -300),
		tr("2026-01-07", 200),
		tr("2026-01-06", -50),
		tr("2026-01-05", 100),
	})

	assert.InDelta(t, 300, m.MaxDrawdown, 1e-9)
}

func TestMaxDrawdownZeroForNonDecreasingEquity(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics([]ledger.Trade{
		tr("2026-01-05", 10),
		tr("2026-01-06", 0),
		tr("2026-01-07", 30),
	})

	assert.InDelta(t, 0, m.MaxDrawdown, 1e-9)
}

func TestComputeMetricsOrderIndependent(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		tr("2026-01-05", 120),
		tr("2026-01-06", -80),
		tr("2026-01-07", 45.5),
		tr("2026-01-08", -12.25),
		tr("2026-01-09", 0),
		tr("2026-01-10", 300),
	}

	want := ComputeMetrics(trades)

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 10; i++ {
		shuffled := append([]ledger.Trade(nil), trades...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ComputeMetrics(shuffled))
	}
}

func TestComputeMetricsIdempotent(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		tr("2026-01-05", 120),
		tr("2026-01-06", -80),
	}

	first := ComputeMetrics(trades)
	second := ComputeMetrics(trades)
	assert.Equal(t, first, second)
}

func TestComputeMetricsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		tr("2026-01-08", -300),
		tr("2026-01-05", 100),
	}
	before := append([]ledger.Trade(nil), trades...)

	_ = ComputeMetrics(trades)
	require.Equal(t, before, trades)
}

func TestMaxDrawdownSameDayTiesUseInsertionOrder(t *testing.T) {
	t.Parallel()

	// IDs are ULIDs in practice (time-ordered), so equal dates fall back to
	// creation order. In ID order the walk is -200, +500, -200, giving a
	// max drawdown of 200; grouping the two losses together would read 400.
	trades := []ledger.Trade{
		{ID: "01C", Date: day("2026-01-05"), PL: -200},
		{ID: "01A", Date: day("2026-01-05"), PL: -200},
		{ID: "01B", Date: day("2026-01-05"), PL: 500},
	}

	m := ComputeMetrics(trades)
	assert.InDelta(t, 200, m.MaxDrawdown, 1e-9)

	// shuffled input, same result
	m2 := ComputeMetrics([]ledger.Trade{trades[2], trades[0], trades[1]})
	assert.InDelta(t, 200, m2.MaxDrawdown, 1e-9)
}
