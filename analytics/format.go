package analytics

import (
	"math"
	"strconv"
	"time"
)

// Presentation helpers. The metrics and report values themselves stay
// unformatted floats; these are for CLI tables and exports.

// FormatCurrency renders a signed amount with the currency symbol between
// the sign and the digits: 1234.5 -> "$1234.50", -20 -> "-$20.00".
func FormatCurrency(v float64, symbol string) string {
	s := symbol + strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	if v < 0 {
		return "-" + s
	}
	return s
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FormatStat renders a highlight value under its report kind's unit. The
// risk/reward highlights are an R-multiple and a trade count; every other
// highlight is money.
func FormatStat(kind ReportKind, s Stat, symbol string) string {
	if kind == ReportRiskReward {
		if s.Label == statTotalTrades {
			return strconv.Itoa(int(s.Value))
		}
		return strconv.FormatFloat(s.Value, 'f', 2, 64) + "R"
	}
	return FormatCurrency(s.Value, symbol)
}

// FormatPoint renders a series value; the risk/reward series is trade
// counts per bucket.
func FormatPoint(kind ReportKind, p Point, symbol string) string {
	if kind == ReportRiskReward {
		return strconv.Itoa(p.Count)
	}
	return FormatCurrency(p.Value, symbol)
}

// monthKey is the YYYY-MM grouping key for performance-over-time.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
