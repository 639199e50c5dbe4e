package store

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/rustyeddy/gltrades/analytics"
)

// OrgDoc renders a performance summary (and optionally one report) as an
// org-mode document, the review format the journal is read in.
type OrgDoc struct {
	Title   string
	Created time.Time
	Symbol  string // currency prefix, e.g. "$"
	Metrics analytics.Metrics
	Report  *analytics.Report
}

func (v *OrgDoc) funcs() template.FuncMap {
	return template.FuncMap{
		"cur": func(x float64) string { return analytics.FormatCurrency(x, v.Symbol) },
		"pct": analytics.FormatPercent,
		"val": func(p analytics.Point) string { return analytics.FormatPoint(v.Report.Kind, p, v.Symbol) },
		"stat": func(s analytics.Stat) string {
			return analytics.FormatStat(v.Report.Kind, s, v.Symbol)
		},
		"orTime": func(t time.Time) time.Time {
			if t.IsZero() {
				return time.Now()
			}
			return t
		},
	}
}

// Render executes the org template.
func (v *OrgDoc) Render() (string, error) {
	t, err := template.New("org").Funcs(v.funcs()).Parse(orgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile renders the document and writes it to path.
func (v *OrgDoc) WriteFile(path string) error {
	out, err := v.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

const orgTemplate = `* {{if .Title}}{{.Title}}{{else}}PERFORMANCE SUMMARY{{end}}
:PROPERTIES:
:NET_PL:      {{cur .Metrics.NetPL}}
:WIN_RATE:    {{pct .Metrics.WinRate}}
:EXPECTANCY:  {{cur .Metrics.Expectancy}}
:PROFIT_FAC:  {{printf "%.2f" .Metrics.ProfitFactor}}
:MAX_DD:      {{cur .Metrics.MaxDrawdown}}
:AVG_WINLOSS: {{printf "%.2f" .Metrics.AvgWinLoss}}
:TRADES:      {{.Metrics.TotalTrades}}
:WINS:        {{.Metrics.WinningTrades}}
:LOSSES:      {{.Metrics.LosingTrades}}
:AVG_WIN:     {{cur .Metrics.AvgWin}}
:AVG_LOSS:    {{cur .Metrics.AvgLoss}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Metrics.WinningTrades}} |
| Losses  | {{.Metrics.LosingTrades}} |
| Total   | {{.Metrics.TotalTrades}} |

{{- if .Report }}

** Report: {{.Report.Kind}}
| Label | Value |
|-------+-------|
{{- range .Report.Series }}
| {{.Label}} | {{val .}} |
{{- end }}

{{- if .Report.Highlights }}

*** Highlights
{{- range .Report.Highlights }}
- {{.Label}}: {{if .Text}}{{.Text}} {{end}}{{stat .}}
{{- end }}
{{- end }}
{{- end }}
`
