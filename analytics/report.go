package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rustyeddy/gltrades/ledger"
)

// ReportKind selects one of the seven report reductions.
type ReportKind string

const (
	ReportDrawdown           ReportKind = "drawdown"
	ReportRiskReward         ReportKind = "risk_reward"
	ReportTagPerformance     ReportKind = "tag_performance"
	ReportPerformanceTime    ReportKind = "performance_time"
	ReportDayOfWeek          ReportKind = "day_of_week"
	ReportStrategyComparison ReportKind = "strategy_comparison"
	ReportTimeOfDay          ReportKind = "time_of_day"
)

// Kinds lists every report kind in menu order.
func Kinds() []ReportKind {
	return []ReportKind{
		ReportDrawdown,
		ReportRiskReward,
		ReportTagPerformance,
		ReportPerformanceTime,
		ReportDayOfWeek,
		ReportStrategyComparison,
		ReportTimeOfDay,
	}
}

// ParseKind validates a report kind string.
func ParseKind(s string) (ReportKind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report kind %q", s)
}

// Point is one labeled value in a report series. Mean is populated by the
// day-of-week and time-of-day reports, WinRate by strategy comparison.
type Point struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Mean    float64 `json:"mean,omitempty"`
	WinRate float64 `json:"winRate,omitempty"`
	Count   int     `json:"count,omitempty"`
}

// Stat is a single highlight shown next to the chart. Text carries label-like
// values (a month, a strategy name); Value carries the number.
type Stat struct {
	Label string  `json:"label"`
	Text  string  `json:"text,omitempty"`
	Value float64 `json:"value"`
}

// Report is a labeled series plus its highlight stats, ready for whatever
// renders it. Empty groups never appear in the series; highlight max/min
// selection breaks ties by first occurrence in series order.
type Report struct {
	Kind       ReportKind `json:"kind"`
	Series     []Point    `json:"series"`
	Highlights []Stat     `json:"highlights"`
}

// GenerateReport reduces the trade list under the given kind's grouping
// policy. An empty trade list produces an empty (not nil-error) report; the
// only failure is an unrecognized kind.
func GenerateReport(kind ReportKind, trades []ledger.Trade) (Report, error) {
	switch kind {
	case ReportDrawdown:
		return drawdownReport(trades), nil
	case ReportRiskReward:
		return riskRewardReport(trades), nil
	case ReportTagPerformance:
		return tagPerformanceReport(trades), nil
	case ReportPerformanceTime:
		return performanceTimeReport(trades), nil
	case ReportDayOfWeek:
		return dayOfWeekReport(trades), nil
	case ReportStrategyComparison:
		return strategyComparisonReport(trades), nil
	case ReportTimeOfDay:
		return timeOfDayReport(trades), nil
	default:
		return Report{}, fmt.Errorf("unknown report kind %q", kind)
	}
}

// drawdownReport emits the negative drawdown after each trade in date order.
// The deepest point equals -MaxDrawdown from ComputeMetrics.
func drawdownReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportDrawdown}

	var running, peak float64
	for _, t := range sortByDate(trades) {
		running += t.PL
		if running > peak {
			peak = running
		}
		r.Series = append(r.Series, Point{
			Label: t.Date.Format("2006-01-02"),
			Value: -(peak - running),
		})
	}

	var maxDD, current float64
	for _, p := range r.Series {
		if p.Value < maxDD {
			maxDD = p.Value
		}
	}
	if n := len(r.Series); n > 0 {
		current = r.Series[n-1].Value
	}

	r.Highlights = []Stat{
		{Label: "Max Drawdown", Value: maxDD},
		{Label: "Current Drawdown", Value: current},
	}
	return r
}

// Highlight labels shared with the renderers; risk/reward highlights carry
// an R-multiple and a count, not money.
const (
	statAvgRMultiple = "Average R-Multiple"
	statTotalTrades  = "Total Trades"
)

// riskRewardReport buckets trades by floor(R-multiple). Trades with an
// R-multiple of exactly 0 carry no stop and are excluded.
func riskRewardReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportRiskReward}

	bins := make(map[int]int)
	var sum float64
	var included int
	for _, t := range trades {
		if t.RMultiple == 0 {
			continue
		}
		bins[floorInt(t.RMultiple)]++
		sum += t.RMultiple
		included++
	}

	keys := make([]int, 0, len(bins))
	for k := range bins {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		r.Series = append(r.Series, Point{
			Label: strconv.Itoa(k) + "R",
			Value: float64(bins[k]),
			Count: bins[k],
		})
	}

	var avg float64
	if included > 0 {
		avg = sum / float64(included)
	}
	r.Highlights = []Stat{
		{Label: statAvgRMultiple, Value: avg},
		{Label: statTotalTrades, Value: float64(included)},
	}
	return r
}

// tagPerformanceReport fans each trade out to every tag it carries, sums
// P/L per tag and keeps the top 10 by summed P/L descending.
func tagPerformanceReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportTagPerformance}

	g := groupTrades(trades, func(t ledger.Trade) []string { return t.Tags })

	order := append([]string(nil), g.order...)
	sort.SliceStable(order, func(i, j int) bool {
		return g.by[order[i]].pl > g.by[order[j]].pl
	})
	if len(order) > 10 {
		order = order[:10]
	}

	for _, tag := range order {
		b := g.by[tag]
		r.Series = append(r.Series, Point{Label: tag, Value: b.pl, Count: b.count})
	}

	if n := len(r.Series); n > 0 {
		best, worst := r.Series[0], r.Series[n-1]
		r.Highlights = []Stat{
			{Label: "Best Tag", Text: best.Label, Value: best.Value},
			{Label: "Worst Tag", Text: worst.Label, Value: worst.Value},
		}
	}
	return r
}

// performanceTimeReport sums P/L per calendar month, months ascending.
func performanceTimeReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportPerformanceTime}

	g := groupTrades(trades, func(t ledger.Trade) []string { return []string{monthKey(t.Date)} })

	months := append([]string(nil), g.order...)
	sort.Strings(months)

	for _, m := range months {
		b := g.by[m]
		r.Series = append(r.Series, Point{Label: m, Value: b.pl, Count: b.count})
	}

	if len(r.Series) > 0 {
		best, worst := maxBy(r.Series), minBy(r.Series)
		r.Highlights = []Stat{
			{Label: "Best Month", Text: best.Label, Value: best.Value},
			{Label: "Worst Month", Text: worst.Label, Value: worst.Value},
		}
	}
	return r
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// dayOfWeekReport sums and averages P/L per weekday, Monday through Friday.
// Weekend-dated trades fall into no bucket; equity trades rarely execute on
// weekends and the fixed five-day domain keeps the chart stable.
func dayOfWeekReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportDayOfWeek}

	g := groupTrades(trades, func(t ledger.Trade) []string {
		switch d := t.Date.Weekday(); d {
		case time.Saturday, time.Sunday:
			return nil
		default:
			return []string{d.String()}
		}
	})

	for _, day := range weekdays {
		b, ok := g.by[day]
		if !ok {
			continue
		}
		r.Series = append(r.Series, Point{Label: day, Value: b.pl, Mean: b.mean(), Count: b.count})
	}

	if len(r.Series) > 0 {
		best := maxBy(r.Series)
		r.Highlights = []Stat{
			{Label: "Best Day", Text: best.Label, Value: best.Value},
		}
	}
	return r
}

// strategyComparisonReport sums P/L and win rate per strategy label, in
// first-occurrence order.
func strategyComparisonReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportStrategyComparison}

	g := groupTrades(trades, func(t ledger.Trade) []string { return []string{t.Strategy} })

	for _, s := range g.order {
		b := g.by[s]
		r.Series = append(r.Series, Point{Label: s, Value: b.pl, WinRate: b.winRate(), Count: b.count})
	}

	if len(r.Series) > 0 {
		best := maxBy(r.Series)
		r.Highlights = []Stat{
			{Label: "Best Strategy", Text: best.Label, Value: best.Value},
		}
	}
	return r
}

// Session buckets for the time-of-day report, US equity hours.
const (
	blockPreMarket = "Pre-Market" // 04:00-09:00
	blockMorning   = "Morning"    // 09:00-12:00
	blockAfternoon = "Afternoon"  // 12:00-15:00
	blockClose     = "Close"      // 15:00-16:00
)

var timeBlocks = []string{blockPreMarket, blockMorning, blockAfternoon, blockClose}

// timeOfDayReport sums and averages P/L per session block, bucketing by the
// trade's ExecutedAt hour. Trades without a timestamp, or filled outside
// 04:00-16:00, fall into no bucket; there is nothing deterministic to do
// with them.
func timeOfDayReport(trades []ledger.Trade) Report {
	r := Report{Kind: ReportTimeOfDay}

	g := groupTrades(trades, func(t ledger.Trade) []string {
		if t.ExecutedAt.IsZero() {
			return nil
		}
		switch h := t.ExecutedAt.Hour(); {
		case h >= 4 && h < 9:
			return []string{blockPreMarket}
		case h >= 9 && h < 12:
			return []string{blockMorning}
		case h >= 12 && h < 15:
			return []string{blockAfternoon}
		case h >= 15 && h < 16:
			return []string{blockClose}
		default:
			return nil
		}
	})

	for _, block := range timeBlocks {
		b, ok := g.by[block]
		if !ok {
			continue
		}
		r.Series = append(r.Series, Point{Label: block, Value: b.pl, Mean: b.mean(), Count: b.count})
	}

	if len(r.Series) > 0 {
		best := maxBy(r.Series)
		r.Highlights = []Stat{
			{Label: "Best Time Block", Text: best.Label, Value: best.Value},
		}
	}
	return r
}

// maxBy and minBy select by Value with strict comparison, so ties keep the
// earliest point in series order.
func maxBy(series []Point) Point {
	best := series[0]
	for _, p := range series[1:] {
		if p.Value > best.Value {
			best = p
		}
	}
	return best
}

func minBy(series []Point) Point {
	worst := series[0]
	for _, p := range series[1:] {
		if p.Value < worst.Value {
			worst = p
		}
	}
	return worst
}

func floorInt(x float64) int {
	n := int(x)
	if x < 0 && float64(n) != x {
		n--
	}
	return n
}
