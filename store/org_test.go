package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/gltrades/analytics"
)

func TestOrgDocRenderMetrics(t *testing.T) {
	t.Parallel()

	doc := &OrgDoc{
		Title:   "GLTRADES SUMMARY",
		Created: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Symbol:  "$",
		Metrics: analytics.Metrics{
			NetPL:         1250.50,
			WinRate:       60,
			Expectancy:    16.67,
			ProfitFactor:  2.5,
			MaxDrawdown:   300,
			AvgWinLoss:    1.8,
			TotalTrades:   10,
			WinningTrades: 6,
			LosingTrades:  4,
			AvgWin:        100,
			AvgLoss:       55.5,
		},
	}

	out, err := doc.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "* GLTRADES SUMMARY")
	assert.Contains(t, out, ":PROPERTIES:")
	assert.Contains(t, out, ":NET_PL:      $1250.50")
	assert.Contains(t, out, ":WIN_RATE:    60.0%")
	assert.Contains(t, out, ":PROFIT_FAC:  2.50")
	assert.Contains(t, out, ":MAX_DD:      $300.00")
	assert.Contains(t, out, ":TRADES:      10")
	assert.Contains(t, out, ":CREATED:     [2026-03-02 Mon 09:30]")
	assert.Contains(t, out, ":END:")
	assert.Contains(t, out, "| Wins    | 6 |")
	assert.NotContains(t, out, "** Report:")
}

func TestOrgDocRenderWithReport(t *testing.T) {
	t.Parallel()

	rep := analytics.Report{
		Kind: analytics.ReportTagPerformance,
		Series: []analytics.Point{
			{Label: "earnings", Value: 100},
			{Label: "news", Value: 60},
		},
		Highlights: []analytics.Stat{
			{Label: "Best Tag", Text: "earnings", Value: 100},
		},
	}

	doc := &OrgDoc{Symbol: "$", Report: &rep}

	out, err := doc.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "* PERFORMANCE SUMMARY")
	assert.Contains(t, out, "** Report: tag_performance")
	assert.Contains(t, out, "| earnings | $100.00 |")
	assert.Contains(t, out, "| news | $60.00 |")
	assert.Contains(t, out, "- Best Tag: earnings $100.00")
}

func TestOrgDocRenderRiskRewardUnits(t *testing.T) {
	t.Parallel()

	rep := analytics.Report{
		Kind: analytics.ReportRiskReward,
		Series: []analytics.Point{
			{Label: "1R", Value: 2, Count: 2},
		},
		Highlights: []analytics.Stat{
			{Label: "Average R-Multiple", Value: 1.5},
			{Label: "Total Trades", Value: 4},
		},
	}

	doc := &OrgDoc{Symbol: "$", Report: &rep}

	out, err := doc.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "| 1R | 2 |")
	assert.Contains(t, out, "- Average R-Multiple: 1.50R")
	assert.Contains(t, out, "- Total Trades: 4")
	assert.NotContains(t, out, "$4.00")
	assert.NotContains(t, out, "$2.00")
}

func TestOrgDocWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.org")
	doc := &OrgDoc{Symbol: "$"}
	require.NoError(t, doc.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "* PERFORMANCE SUMMARY")
}
