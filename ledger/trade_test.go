package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		side   Side
		qty    int
		entry  float64
		exit   float64
		stop   float64
		wantPL float64
		wantR  float64
	}{
		{"long winner with stop", Long, 100, 50, 55, 49, 500.00, 5.00},
		{"long loser with stop", Long, 100, 50, 48, 49, -200.00, -2.00},
		{"short winner", Short, 200, 30, 27, 31.5, 600.00, 2.00},
		{"short loser", Short, 50, 100, 104, 102, -200.00, -2.00},
		{"no stop means zero R", Long, 100, 50, 55, 0, 500.00, 0},
		{"breakeven", Long, 10, 20, 20, 19, 0, 0},
		{"stop above entry on long still absolute risk", Long, 10, 50, 51, 52, 10.00, 0.50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pl, r := Derive(tt.side, tt.qty, tt.entry, tt.exit, tt.stop)
			assert.InDelta(t, tt.wantPL, pl, 1e-9)
			assert.InDelta(t, tt.wantR, r, 1e-9)
		})
	}
}

func TestDeriveRounding(t *testing.T) {
	t.Parallel()

	// 3 * (10.12345 - 10) = 0.37035 -> 0.37
	pl, _ := Derive(Long, 3, 10, 10.12345, 0)
	assert.InDelta(t, 0.37, pl, 1e-9)

	// risk = 0.3, pl = 0.1 -> R = 1/3 -> 0.33
	pl, r := Derive(Long, 1, 10, 10.1, 9.7)
	assert.InDelta(t, 0.1, pl, 1e-9)
	assert.InDelta(t, 0.33, r, 1e-9)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	input := []string{"earnings", "news", "earnings", "", "  news "}
	tr := Trade{
		Symbol: " aapl ",
		Tags:   input,
	}
	tr.normalize()

	assert.Equal(t, "AAPL", tr.Symbol)
	assert.Equal(t, []string{"earnings", "news"}, tr.Tags)
	// the caller's slice is left alone
	assert.Equal(t, []string{"earnings", "news", "earnings", "", "  news "}, input)
}
