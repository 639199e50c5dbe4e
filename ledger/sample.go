package ledger

import (
	"fmt"
	"math/rand"
	"time"
)

// Sample data for first runs and fixtures. The generator is seeded so tests
// and demos get the same ledger every time.

var (
	sampleSymbols    = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA", "META", "NFLX", "AMD", "SPY", "QQQ"}
	sampleStrategies = []string{"Momentum", "Mean Reversion", "Breakout", "Support/Resistance", "Trend Following", "Gap Fill"}
	sampleTags       = []string{"earnings", "breakout", "pullback", "reversal", "news", "technical", "fundamental", "scalp"}
)

// SampleTrades generates n trades spread one per day starting 90 days before
// `until`, with roughly a 60% win rate. Stops are placed 2% from entry and
// fills land inside regular or pre-market session hours so every report has
// data to chew on.
func SampleTrades(seed int64, n int, until time.Time) []Trade {
	rng := rand.New(rand.NewSource(seed))

	start := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -90)

	trades := make([]Trade, 0, n)
	for i := 0; i < n; i++ {
		date := start.AddDate(0, 0, i)

		symbol := sampleSymbols[rng.Intn(len(sampleSymbols))]
		side := Long
		if rng.Float64() > 0.5 {
			side = Short
		}
		quantity := rng.Intn(500) + 50
		entry := rng.Float64()*300 + 50

		isWin := rng.Float64() < 0.6
		change := rng.Float64()*0.05 + 0.01
		if !isWin {
			change = -(rng.Float64()*0.03 + 0.005)
		}

		exit := entry * (1 + change)
		stop := entry * 0.98
		if side == Short {
			exit = entry * (1 - change)
			stop = entry * 1.02
		}

		tags := make([]string, 0, 3)
		for j := 0; j < rng.Intn(3)+1; j++ {
			tags = append(tags, sampleTags[rng.Intn(len(sampleTags))])
		}

		notes := fmt.Sprintf("Learning trade on %s", symbol)
		if isWin {
			notes = fmt.Sprintf("Good trade on %s", symbol)
		}

		t := Trade{
			Date:       date,
			ExecutedAt: date.Add(time.Duration(4+rng.Intn(12)) * time.Hour),
			Symbol:     symbol,
			Side:       side,
			Quantity:   quantity,
			Entry:      round2(entry),
			Exit:       round2(exit),
			Stop:       round2(stop),
			Strategy:   sampleStrategies[rng.Intn(len(sampleStrategies))],
			Tags:       tags,
			Notes:      notes,
		}
		trades = append(trades, t)
	}
	return trades
}

// SamplePlaybooks returns the three starter playbooks.
func SamplePlaybooks() []Playbook {
	return []Playbook{
		{
			Name:        "Momentum Breakout",
			Description: "Trade stocks breaking out of consolidation with strong volume.",
			Entry:       "- Stock breaks above resistance\n- Volume 2x average\n- RSI above 60\n- Price above 20 EMA",
			Exit:        "- Take profit at 2R\n- Trail stop with 20 EMA\n- Exit if volume dries up",
			Risk:        "- Risk 1% per trade\n- Stop below recent swing low\n- Position size based on ATR",
		},
		{
			Name:        "Mean Reversion",
			Description: "Fade extended moves on quality stocks at key support levels.",
			Entry:       "- 2+ standard deviations from mean\n- Oversold on RSI (<30)\n- At major support level\n- Bullish divergence",
			Exit:        "- Target mean reversion\n- Exit 50% at 1R, rest at 2R\n- Stop if breaks support",
			Risk:        "- Risk 0.5-1% per trade\n- Tight stop below support\n- Scale in if confirmed",
		},
		{
			Name:        "Gap Fill Strategy",
			Description: "Trade gap fills on earnings or news events.",
			Entry:       "- Gap up/down >3%\n- Wait for initial rush\n- Enter on pullback to gap\n- Confirm with volume",
			Exit:        "- Target gap fill (previous close)\n- Scale out at 50% and 75%\n- Trailing stop on remainder",
			Risk:        "- Risk 1-1.5% per trade\n- Stop at LOD/HOD\n- Reduce size on wide gaps",
		},
	}
}

// SampleJournal returns starter journal entries dated relative to `until`.
func SampleJournal(until time.Time) []JournalEntry {
	day := func(offset int) time.Time {
		return time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	return []JournalEntry{
		{
			Date:  day(0),
			Title: "Strong Trading Week",
			Mood:  "excellent",
			Entry: "Stuck to my plan and avoided overtrading. The momentum breakout strategy continues to work well in this market. Need to work on taking profits too early.",
		},
		{
			Date:  day(-7),
			Title: "Lesson in Patience",
			Mood:  "frustrated",
			Entry: "Forced a trade that was not part of my playbook. Lost money and broke my rules. The market will always be there; wait for A+ setups only.",
		},
		{
			Date:  day(-14),
			Title: "Risk Management Focus",
			Mood:  "good",
			Entry: "Realized I was risking too much on lower probability setups. New rule: only risk 1% on B setups, 1.5% on A setups. Should smooth out the equity curve.",
		},
	}
}

// Seed fills an empty ledger with sample trades, playbooks and journal
// entries.
func (l *Ledger) Seed(seed int64, now time.Time) {
	for _, t := range SampleTrades(seed, 75, now) {
		l.AddTrade(t)
	}
	for _, p := range SamplePlaybooks() {
		l.AddPlaybook(p)
	}
	for _, e := range SampleJournal(now) {
		l.AddJournalEntry(e)
	}
}
