// Package period maps civil dates onto the calendar buckets used by the
// equity curve: daily, weekly, monthly, quarterly and yearly periods.
//
// All dates are YYYY-MM-DD civil dates. They are parsed into time.Time values
// pinned to UTC purely as a calendar carrier and are never converted from a
// wall-clock zone, so a trade logged just before midnight stays on its day.
package period

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the civil date layout shared by trades and period keys.
const Layout = "2006-01-02"

const (
	// Invalid is returned in place of a period key when a date cannot be parsed.
	Invalid = "invalid"

	// StartLabel is reserved for the synthetic anchor point that precedes
	// the first real period of an equity curve.
	StartLabel = "Start"
)

type Frequency string

const (
	Daily     Frequency = "daily"
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// Frequencies lists every supported frequency, shortest first.
var Frequencies = []Frequency{Daily, Weekly, Monthly, Quarterly, Yearly}

// ParseFrequency accepts the frequency names case-insensitively, plus the
// single letter shorthands d/w/m/q/y.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day", "d":
		return Daily, nil
	case "weekly", "week", "w":
		return Weekly, nil
	case "monthly", "month", "m":
		return Monthly, nil
	case "quarterly", "quarter", "q":
		return Quarterly, nil
	case "yearly", "year", "y":
		return Yearly, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// AnnualizationFactor is the number of periods per year used to annualize
// period-over-period returns.
func (f Frequency) AnnualizationFactor() float64 {
	switch f {
	case Weekly:
		return 52
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	}
	return 252
}

// Parse reads a civil date. Surrounding whitespace is ignored.
func Parse(date string) (time.Time, error) {
	return time.ParseInLocation(Layout, strings.TrimSpace(date), time.UTC)
}

// Format renders t's calendar day as a civil date.
func Format(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(Layout)
}

// Today returns the civil date of now as seen in now's own location.
func Today(now time.Time) string {
	return Format(now)
}

// Key returns the start date of the period containing date.
// Unparseable dates yield Invalid.
func Key(date string, f Frequency) string {
	t, err := Parse(date)
	if err != nil {
		return Invalid
	}
	return Format(Start(t, f))
}

// Start truncates t to the first day of its period.
func Start(t time.Time, f Frequency) time.Time {
	y, m, d := t.Date()
	switch f {
	case Weekly:
		// Monday based weeks: Sunday rolls back six days.
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, time.UTC)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Advance moves t by n periods using calendar arithmetic. n may be negative.
func Advance(t time.Time, f Frequency, n int) time.Time {
	switch f {
	case Weekly:
		return t.AddDate(0, 0, 7*n)
	case Monthly:
		return t.AddDate(0, n, 0)
	case Quarterly:
		return t.AddDate(0, 3*n, 0)
	case Yearly:
		return t.AddDate(n, 0, 0)
	}
	return t.AddDate(0, 0, n)
}

// Next returns the key of the period after key. key should already be a
// period start; it is re-bucketed first so a mid-period date also lands on
// the next boundary.
func Next(key string, f Frequency) string {
	return step(key, f, 1)
}

// Prev returns the key of the period before key.
func Prev(key string, f Frequency) string {
	return step(key, f, -1)
}

func step(key string, f Frequency, n int) string {
	t, err := Parse(key)
	if err != nil {
		return Invalid
	}
	return Format(Advance(Start(t, f), f, n))
}

// End returns the last civil day of the period starting at key.
func End(key string, f Frequency) string {
	t, err := Parse(key)
	if err != nil {
		return Invalid
	}
	return Format(Advance(Start(t, f), f, 1).AddDate(0, 0, -1))
}

// Label renders a period key for charts. Daily periods use MM/DD, every
// other frequency uses the key itself.
func Label(key string, f Frequency) string {
	if key == StartLabel || key == Invalid {
		return key
	}
	if f == Daily {
		t, err := Parse(key)
		if err != nil {
			return Invalid
		}
		return t.Format("01/02")
	}
	return key
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b string) (int, error) {
	ta, err := Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
