package journal

import "strings"

// Filter selects trades for analysis. Zero-valued fields match everything.
// From and To are inclusive civil dates.
type Filter struct {
	Portfolios []string
	Strategy   string
	Emotion    string
	From       string
	To         string
}

func (f Filter) Match(t Trade) bool {
	if len(f.Portfolios) > 0 {
		pid := t.PortfolioID
		if pid == "" {
			pid = DefaultPortfolioID
		}
		found := false
		for _, p := range f.Portfolios {
			if p == pid {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Strategy != "" && !strings.EqualFold(f.Strategy, t.Strategy) {
		return false
	}
	if f.Emotion != "" && !strings.EqualFold(f.Emotion, t.Emotion) {
		return false
	}
	if f.From != "" && t.Date < f.From {
		return false
	}
	if f.To != "" && t.Date > f.To {
		return false
	}
	return true
}

// Apply returns the trades matching f, preserving order.
func (f Filter) Apply(trades []Trade) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
