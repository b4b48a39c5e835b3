// Package report renders computed metrics for people: plain text tables,
// Org-mode summaries and PNG equity charts.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/metrics"
	"github.com/how0531/TradeTrack-1-sub000/period"
)

const rule = "--------------------------------------------------"

// PrintMetrics writes the headline summary of m.
func PrintMetrics(w io.Writer, m metrics.Metrics) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Summary")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Frequency:     %s\n", m.Frequency)
	if n := len(m.Curve); n > 0 {
		fmt.Fprintf(w, "Periods:       %s .. %s (%d)\n", m.Curve[0].Date, m.Curve[n-1].Date, n)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Equity")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Start Capital: %.2f\n", m.SafeCapital)
	fmt.Fprintf(w, "Current:       %.2f\n", m.CurrentEq)
	fmt.Fprintf(w, "Change:        %+.2f (%+.2f%%)\n", m.EqChange, m.EqChangePct)
	fmt.Fprintf(w, "Drawdown:      %.2f%%\n", m.CurrentDD)
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", m.MaxDD)
	if m.IsPeak {
		fmt.Fprintln(w, "At Peak:       yes")
	} else {
		fmt.Fprintln(w, "At Peak:       no")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Trades:        %d\n", m.TotalTrades)
	fmt.Fprintf(w, "Wins:          %d\n", m.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", m.Losses)
	fmt.Fprintf(w, "Breakeven:     %d\n", m.Breakeven)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", m.WinRate)
	fmt.Fprintf(w, "Net P/L:       %.2f\n", m.NetPnL)
	fmt.Fprintf(w, "Gross Profit:  %.2f\n", m.GrossProfit)
	fmt.Fprintf(w, "Gross Loss:    %.2f\n", m.GrossLoss)
	fmt.Fprintf(w, "Avg Win:       %.2f\n", m.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", m.AvgLoss)
	fmt.Fprintf(w, "Profit Factor: %s\n", ratio(m.ProfitFactor, metrics.ProfitFactorCap))
	fmt.Fprintf(w, "Risk/Reward:   %.2f\n", m.RiskReward)
	fmt.Fprintf(w, "Sharpe:        %.2f\n", m.Sharpe)

	fmt.Fprintln(w)
}

// PrintStreaks writes the streak counters.
func PrintStreaks(w io.Writer, s metrics.Streaks) {
	fmt.Fprintln(w, "Streaks")
	fmt.Fprintln(w, rule)
	switch {
	case s.CurrentWin > 0:
		fmt.Fprintf(w, "Current:       %d win(s)\n", s.CurrentWin)
	case s.CurrentLoss > 0:
		fmt.Fprintf(w, "Current:       %d loss(es)\n", s.CurrentLoss)
	default:
		fmt.Fprintln(w, "Current:       none")
	}
	fmt.Fprintf(w, "Best Win:      %d\n", s.BestWin)
	fmt.Fprintf(w, "Best Loss:     %d\n", s.BestLoss)
	fmt.Fprintln(w)
}

// PrintStrategies writes one row per strategy, best net P/L first.
func PrintStrategies(w io.Writer, stats map[string]metrics.StrategyStat) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "STRATEGY\tTRADES\tWIN%%\tNET P/L\tAVG WIN\tAVG LOSS\tR:R\tMAX DD%%\tDD%%\tHIGH\n")
	fmt.Fprintf(tw, "────────\t──────\t────\t───────\t───────\t────────\t───\t───────\t───\t────\n")
	for _, name := range StrategyNames(stats) {
		s := stats[name]
		high := ""
		if s.IsAtHigh {
			high = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			name, s.Trades, s.WinRate, s.NetPnL, s.AvgWin, s.AvgLoss, s.RiskReward, s.MaxDD, s.CurrentDD, high)
	}
	tw.Flush()
}

// PrintCurve writes the equity curve, labelled in m.Language.
func PrintCurve(w io.Writer, m metrics.Metrics) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "PERIOD\tP/L\tEQUITY\tPEAK\tDD%%\t\n")
	fmt.Fprintf(tw, "──────\t───\t──────\t────\t───\t\n")
	for _, p := range m.Curve {
		mark := ""
		if p.IsNewPeak && p.Label != period.StartLabel {
			mark = "▲"
		}
		label := PointLabel(p, m)
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n", label, p.PnL, p.Equity, p.Peak, p.DrawdownPct, mark)
	}
	tw.Flush()
}

// PrintTrades writes trades as a table.
func PrintTrades(w io.Writer, trades []journal.Trade) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "ID\tDATE\tP/L\tSTRATEGY\tEMOTION\tPORTFOLIO\n")
	fmt.Fprintf(tw, "──\t────\t───\t────────\t───────\t─────────\n")
	total := 0.0
	for _, t := range trades {
		total += t.PnL
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n", t.ID, t.Date, t.PnL, t.Strategy, t.Emotion, t.PortfolioID)
	}
	fmt.Fprintf(tw, "TOTAL\t%d trades\t%.2f\t\t\t\n", len(trades), total)
	tw.Flush()
}

// PrintPortfolios writes portfolios as a table.
func PrintPortfolios(w io.Writer, portfolios []journal.Portfolio) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "ID\tNAME\tCAPITAL\n")
	fmt.Fprintf(tw, "──\t────\t───────\n")
	for _, p := range portfolios {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", p.ID, p.Name, p.InitialCapital)
	}
	tw.Flush()
}

// StrategyNames orders strategies by net P/L, then name.
func StrategyNames(stats map[string]metrics.StrategyStat) []string {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := stats[names[i]], stats[names[j]]
		if a.NetPnL != b.NetPnL {
			return a.NetPnL > b.NetPnL
		}
		return names[i] < names[j]
	})
	return names
}

func ratio(v, capped float64) string {
	if v >= capped {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}
