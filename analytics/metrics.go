// Package analytics reduces a trade list into portfolio metrics and
// chartable reports. Every function here is a pure reduction over the
// snapshot it is given: no retained state, no mutation of the input, no
// I/O. The caller owns the ledger and hands in whatever slice it likes;
// chronology is always re-derived by sorting on the trade date.
package analytics

import (
	"sort"

	"github.com/rustyeddy/gltrades/ledger"
)

// NoLossProfitFactor is the saturating profit factor reported when the
// ledger has gross profit but zero gross loss. Keeps "no losses yet" out of
// the +Inf business.
const NoLossProfitFactor = 999

// Metrics is the portfolio summary derived from the full trade list.
// AvgLoss is a positive magnitude. All values are unformatted; currency and
// percent presentation is the caller's problem.
type Metrics struct {
	NetPL         float64 `json:"netPL"`
	WinRate       float64 `json:"winRate"`
	Expectancy    float64 `json:"expectancy"`
	ProfitFactor  float64 `json:"profitFactor"`
	MaxDrawdown   float64 `json:"maxDrawdown"`
	AvgWinLoss    float64 `json:"avgWinLoss"`
	TotalTrades   int     `json:"totalTrades"`
	WinningTrades int     `json:"winningTrades"`
	LosingTrades  int     `json:"losingTrades"`
	AvgWin        float64 `json:"avgWin"`
	AvgLoss       float64 `json:"avgLoss"`
}

// ComputeMetrics reduces the trade list to summary statistics. An empty
// list yields the zero-valued baseline, never an error. Breakeven trades
// count toward TotalTrades but neither the winner nor loser bucket.
func ComputeMetrics(trades []ledger.Trade) Metrics {
	if len(trades) == 0 {
		return Metrics{}
	}

	var m Metrics
	var grossProfit, grossLoss float64

	m.TotalTrades = len(trades)
	for _, t := range trades {
		m.NetPL += t.PL
		switch {
		case t.PL > 0:
			m.WinningTrades++
			grossProfit += t.PL
		case t.PL < 0:
			m.LosingTrades++
			grossLoss += -t.PL
		}
	}

	m.WinRate = float64(m.WinningTrades) / float64(m.TotalTrades) * 100

	if m.WinningTrades > 0 {
		m.AvgWin = grossProfit / float64(m.WinningTrades)
	}
	if m.LosingTrades > 0 {
		m.AvgLoss = grossLoss / float64(m.LosingTrades)
	}

	m.Expectancy = (m.WinRate/100)*m.AvgWin - (1-m.WinRate/100)*m.AvgLoss

	switch {
	case grossLoss > 0:
		m.ProfitFactor = grossProfit / grossLoss
	case grossProfit > 0:
		m.ProfitFactor = NoLossProfitFactor
	}

	if m.AvgLoss > 0 {
		m.AvgWinLoss = m.AvgWin / m.AvgLoss
	}

	m.MaxDrawdown = maxDrawdown(sortByDate(trades))

	return m
}

// sortByDate returns a date-ascending copy of the trade list. The sort is
// stable and ties fall back to ID, so a ledger full of same-day trades
// still walks in creation order no matter how the input was shuffled.
func sortByDate(trades []ledger.Trade) []ledger.Trade {
	out := make([]ledger.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// maxDrawdown walks a chronologically ordered trade list accumulating
// running P/L, tracking the peak seen so far; the largest peak-minus-running
// gap is the max drawdown. Always >= 0; 0 for a non-decreasing equity walk.
func maxDrawdown(sorted []ledger.Trade) float64 {
	var running, peak, maxDD float64
	for _, t := range sorted {
		running += t.PL
		if running > peak {
			peak = running
		}
		if dd := peak - running; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}
