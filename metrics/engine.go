package metrics

import (
	"strings"
	"time"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/period"
)

type bucket struct {
	pnl         float64
	trades      int
	byPortfolio map[string]float64
}

// Compute builds the Metrics bundle for trades. It never fails: malformed
// dates drop a trade from the curve only, and non-finite PnL counts as zero.
func Compute(trades []journal.Trade, portfolios []journal.Portfolio, opts Options) Metrics {
	freq := opts.Frequency
	if !freq.Valid() {
		freq = period.Daily
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	capital := SafeCapital(portfolios, opts.ActivePortfolios)
	sorted := journal.Sorted(sanitize(trades))

	m := Metrics{
		Curve:         []EquityPoint{},
		Drawdown:      []DrawdownPoint{},
		SafeCapital:   capital,
		CurrentEq:     capital,
		IsPeak:        true,
		StrategyStats: strategyStats(sorted, capital),
		Frequency:     freq,
		Language:      opts.Language,
	}
	if len(sorted) == 0 {
		return m
	}

	curve, maxDD := buildCurve(sorted, capital, freq, now)
	if n := len(curve); n > 0 {
		last := curve[n-1]
		m.CurrentEq = last.Equity
		m.CurrentDD = round2(-last.DrawdownPct)
		m.IsPeak = last.Equity >= last.Peak
	}
	m.MaxDD = round2(maxDD)
	m.EqChange = round2(m.CurrentEq - capital)
	m.EqChangePct = round2((m.CurrentEq - capital) / capital * 100)
	m.Sharpe = sharpe(curve, freq)

	aggregate(&m, sorted)

	for _, p := range curve {
		if !inWindow(p.Date, freq, opts.StartDate, opts.EndDate) {
			continue
		}
		m.Curve = append(m.Curve, p)
		m.Drawdown = append(m.Drawdown, DrawdownPoint{
			Label:       p.Label,
			Timestamp:   p.Timestamp,
			DrawdownPct: p.DrawdownPct,
		})
	}

	return m
}

// SafeCapital sums the initial capital of the active portfolios, falling
// back to FallbackCapital when the sum is not positive. A nil active list
// selects every portfolio.
func SafeCapital(portfolios []journal.Portfolio, active []string) float64 {
	var sel map[string]bool
	if active != nil {
		sel = make(map[string]bool, len(active))
		for _, id := range active {
			sel[id] = true
		}
	}

	total := 0.0
	for _, p := range portfolios {
		if sel != nil && !sel[p.ID] {
			continue
		}
		total += journal.SafePnL(p.InitialCapital)
	}
	if total <= 0 {
		return FallbackCapital
	}
	return total
}

// buildCurve walks every period from the first trade's bucket to the bucket
// containing now (or the last trade, if that is later), preceded by the
// Start anchor. It also returns the deepest drawdown percent seen.
func buildCurve(sorted []journal.Trade, capital float64, freq period.Frequency, now time.Time) ([]EquityPoint, float64) {
	buckets := map[string]*bucket{}
	first, last := "", ""
	for _, t := range sorted {
		key := period.Key(t.Date, freq)
		if key == period.Invalid {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{byPortfolio: map[string]float64{}}
			buckets[key] = b
		}
		b.pnl += t.PnL
		b.trades++
		b.byPortfolio[t.PortfolioID] += t.PnL

		if first == "" || key < first {
			first = key
		}
		if key > last {
			last = key
		}
	}
	if first == "" {
		return nil, 0
	}

	end := period.Key(period.Today(now), freq)
	if last > end {
		end = last
	}

	equity, peak, maxDD := capital, capital, 0.0
	anchor := period.Prev(first, freq)
	curve := []EquityPoint{{
		Label:     period.StartLabel,
		Date:      anchor,
		Timestamp: unixMilli(anchor),
		Equity:    capital,
		Peak:      capital,
		IsNewPeak: true,
	}}

	key := first
	for steps := 0; steps < MaxTimelineSteps && key != period.Invalid && key <= end; steps++ {
		p := EquityPoint{
			Label:     period.Label(key, freq),
			Date:      key,
			Timestamp: unixMilli(key),
		}

		active := false
		if b, ok := buckets[key]; ok {
			active = true
			p.PnL = b.pnl
			p.Portfolios = make(map[string]float64, len(b.byPortfolio))
			for id, v := range b.byPortfolio {
				p.Portfolios[id] = v
			}
		}

		equity += p.PnL
		p.IsNewPeak = active && equity >= peak
		if equity > peak {
			peak = equity
		}

		ddAmt := peak - equity
		ddPct := 0.0
		if peak != 0 {
			ddPct = ddAmt / peak * 100
		}
		if ddPct > maxDD {
			maxDD = ddPct
		}

		p.Equity = equity
		p.Peak = peak
		p.CumPnL = equity - capital
		p.DrawdownAmount = ddAmt
		p.DrawdownPct = -ddPct
		curve = append(curve, p)

		key = period.Next(key, freq)
	}

	return curve, maxDD
}

// inWindow keeps a period when it overlaps [start, end].
func inWindow(key string, freq period.Frequency, start, end string) bool {
	if end != "" && journal.ValidDate(end) && key > end {
		return false
	}
	if start != "" && journal.ValidDate(start) && period.End(key, freq) < start {
		return false
	}
	return true
}

func sanitize(trades []journal.Trade) []journal.Trade {
	out := make([]journal.Trade, len(trades))
	for i, t := range trades {
		t.Date = strings.TrimSpace(t.Date)
		t.PnL = journal.SafePnL(t.PnL)
		if t.PortfolioID == "" {
			t.PortfolioID = journal.DefaultPortfolioID
		}
		out[i] = t
	}
	return out
}

func unixMilli(key string) int64 {
	t, err := period.Parse(key)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
