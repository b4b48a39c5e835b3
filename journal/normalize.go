package journal

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/how0531/TradeTrack-1-sub000/period"
)

// ValidDate reports whether s is a parseable YYYY-MM-DD civil date.
func ValidDate(s string) bool {
	_, err := period.Parse(s)
	return err == nil
}

// SafePnL coerces NaN and infinities to zero.
func SafePnL(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Normalize cleans a trade at the boundary: tags are trimmed, a missing
// portfolio becomes DefaultPortfolioID and non-finite PnL becomes zero.
// A malformed date is reported as an error; the trade is still returned
// normalized so callers may choose to keep it.
func Normalize(t Trade) (Trade, error) {
	t.ID = strings.TrimSpace(t.ID)
	t.Date = strings.TrimSpace(t.Date)
	t.Strategy = strings.TrimSpace(t.Strategy)
	t.Emotion = strings.TrimSpace(t.Emotion)
	t.PortfolioID = strings.TrimSpace(t.PortfolioID)
	t.Timestamp = strings.TrimSpace(t.Timestamp)
	if t.PortfolioID == "" {
		t.PortfolioID = DefaultPortfolioID
	}
	t.PnL = SafePnL(t.PnL)

	if !ValidDate(t.Date) {
		return t, fmt.Errorf("trade %q: invalid date %q", t.ID, t.Date)
	}
	return t, nil
}

// Sorted returns a copy of trades ordered by date, then timestamp, then id.
// Dates compare without surrounding whitespace, matching period.Parse.
// The input slice is left untouched.
func Sorted(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := strings.TrimSpace(out[i].Date), strings.TrimSpace(out[j].Date)
		if di != dj {
			return di < dj
		}
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}
