package report

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/how0531/TradeTrack-1-sub000/metrics"
)

// OrgReport is the data behind MetricsOrgTemplate.
type OrgReport struct {
	Title     string
	Created   time.Time
	From      string
	To        string
	Filter    string
	Metrics   metrics.Metrics
	Streaks   metrics.Streaks
	EquityPNG string
	Notes     []string
}

type orgStrategy struct {
	Name string
	metrics.StrategyStat
}

var orgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
	"pf": func(v float64) string {
		return ratio(v, metrics.ProfitFactorCap)
	},
	"strategies": func(stats map[string]metrics.StrategyStat) []orgStrategy {
		out := make([]orgStrategy, 0, len(stats))
		for _, name := range StrategyNames(stats) {
			out = append(out, orgStrategy{Name: name, StrategyStat: stats[name]})
		}
		return out
	},
}

var metricsOrg = template.Must(template.New("metrics").Funcs(orgFuncs).Parse(MetricsOrgTemplate))

// FormatMetricsOrg renders r as an Org-mode entry.
func FormatMetricsOrg(r OrgReport) (string, error) {
	if r.Title == "" {
		r.Title = "Trading Journal"
	}
	var buf bytes.Buffer
	if err := metricsOrg.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render org report: %w", err)
	}
	return buf.String(), nil
}

// WriteMetricsOrg renders r into path.
func WriteMetricsOrg(path string, r OrgReport) error {
	s, err := FormatMetricsOrg(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

const MetricsOrgTemplate = `* REVIEW: {{.Title}} ({{.Metrics.Frequency}})
:PROPERTIES:
:FROM:        {{orDash .From}}
:TO:          {{orDash .To}}
:FILTER:      {{orDash .Filter}}
:START_EQ:    {{printf "%.2f" .Metrics.SafeCapital}}
:CURRENT_EQ:  {{printf "%.2f" .Metrics.CurrentEq}}
:NET_PL:      {{printf "%.2f" .Metrics.NetPnL}}
:RETURN_PCT:  {{printf "%.2f" .Metrics.EqChangePct}}
:MAX_DD_PCT:  {{printf "%.2f" .Metrics.MaxDD}}
:TRADES:      {{.Metrics.TotalTrades}}
:WIN_RATE:    {{printf "%.2f" .Metrics.WinRate}}
:PROFIT_FAC:  {{pf .Metrics.ProfitFactor}}
:SHARPE:      {{printf "%.2f" .Metrics.Sharpe}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Equity:           *{{printf "%.2f" .Metrics.CurrentEq}}* ({{printf "%+.2f" .Metrics.EqChangePct}}%)
- Drawdown:         *{{printf "%.2f" .Metrics.CurrentDD}}%* (max {{printf "%.2f" .Metrics.MaxDD}}%){{if .Metrics.IsPeak}} at peak{{end}}
- Win Rate:         *{{printf "%.2f" .Metrics.WinRate}}%*
- Profit Factor:    *{{pf .Metrics.ProfitFactor}}*
- Risk/Reward:      *{{printf "%.2f" .Metrics.RiskReward}}*
- Avg Win / Loss:   *{{printf "%.2f" .Metrics.AvgWin}}* / *{{printf "%.2f" .Metrics.AvgLoss}}*

** Equity Curve
{{- if .EquityPNG }}
[[file:{{.EquityPNG}}]]
{{- else }}
# (optional) insert an exported equity curve image here
{{- end }}

** Trade Distribution
| Outcome   | Count |
|-----------+-------|
| Wins      | {{.Metrics.Wins}} |
| Losses    | {{.Metrics.Losses}} |
| Breakeven | {{.Metrics.Breakeven}} |
| Total     | {{.Metrics.TotalTrades}} |

** Streaks
- Current: {{if .Streaks.CurrentWin}}{{.Streaks.CurrentWin}} win(s){{else if .Streaks.CurrentLoss}}{{.Streaks.CurrentLoss}} loss(es){{else}}none{{end}}
- Best win streak: {{.Streaks.BestWin}}
- Best loss streak: {{.Streaks.BestLoss}}

{{- with strategies .Metrics.StrategyStats }}

** Strategies
| Strategy | Trades | Win % | Net P/L | R:R | Max DD % |
|----------+--------+-------+---------+-----+----------|
{{- range . }}
| {{.Name}} | {{.Trades}} | {{printf "%.2f" .WinRate}} | {{printf "%.2f" .NetPnL}} | {{printf "%.2f" .RiskReward}} | {{printf "%.2f" .MaxDD}} |
{{- end }}
{{- end }}

{{- if .Notes }}

** Observations
{{- range .Notes }}
- {{.}}
{{- end }}
{{- end }}
`
