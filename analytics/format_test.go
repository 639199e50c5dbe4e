package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  float64
		symbol string
		want   string
	}{
		{"positive", 1234.5, "$", "$1234.50"},
		{"negative", -20, "$", "-$20.00"},
		{"zero", 0, "$", "$0.00"},
		{"non-usd code", 99.999, "EUR", "EUR100.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatCurrency(tt.value, tt.symbol))
		})
	}
}

func TestFormatStat(t *testing.T) {
	t.Parallel()

	avg := Stat{Label: "Average R-Multiple", Value: 1.5}
	total := Stat{Label: "Total Trades", Value: 4}

	assert.Equal(t, "1.50R", FormatStat(ReportRiskReward, avg, "$"))
	assert.Equal(t, "4", FormatStat(ReportRiskReward, total, "$"))

	month := Stat{Label: "Best Month", Text: "2026-02", Value: 400}
	assert.Equal(t, "$400.00", FormatStat(ReportPerformanceTime, month, "$"))

	dd := Stat{Label: "Max Drawdown", Value: -300}
	assert.Equal(t, "-$300.00", FormatStat(ReportDrawdown, dd, "$"))
}

func TestFormatPoint(t *testing.T) {
	t.Parallel()

	bin := Point{Label: "2R", Value: 2, Count: 2}
	assert.Equal(t, "2", FormatPoint(ReportRiskReward, bin, "$"))

	tag := Point{Label: "earnings", Value: 100}
	assert.Equal(t, "$100.00", FormatPoint(ReportTagPerformance, tag, "$"))
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "52.6%", FormatPercent(52.631))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestMonthKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-03", monthKey(day("2026-03-15")))
}
