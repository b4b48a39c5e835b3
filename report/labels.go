package report

import (
	"fmt"
	"time"

	"github.com/how0531/TradeTrack-1-sub000/metrics"
	"github.com/how0531/TradeTrack-1-sub000/period"
)

// Supported label languages.
const (
	English = "en"
	Chinese = "zh"
)

// FormatLabel renders a period key for display in lang. The Start anchor
// and unparseable keys are translated or passed through unchanged.
func FormatLabel(key string, f period.Frequency, lang string) string {
	if key == period.StartLabel {
		if lang == Chinese {
			return "起點"
		}
		return key
	}
	t, err := period.Parse(key)
	if err != nil {
		return key
	}

	if lang == Chinese {
		switch f {
		case period.Weekly:
			return fmt.Sprintf("%d/%d週", int(t.Month()), t.Day())
		case period.Monthly:
			return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
		case period.Quarterly:
			return fmt.Sprintf("%d年Q%d", t.Year(), quarter(t.Month()))
		case period.Yearly:
			return fmt.Sprintf("%d年", t.Year())
		}
		return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
	}

	switch f {
	case period.Weekly:
		return "Wk " + t.Format("01/02")
	case period.Monthly:
		return t.Format("Jan 2006")
	case period.Quarterly:
		return fmt.Sprintf("%d Q%d", t.Year(), quarter(t.Month()))
	case period.Yearly:
		return t.Format("2006")
	}
	return t.Format("01/02")
}

func quarter(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// PointLabel labels a curve point of m in m.Language.
func PointLabel(p metrics.EquityPoint, m metrics.Metrics) string {
	if p.Label == period.StartLabel {
		return FormatLabel(period.StartLabel, m.Frequency, m.Language)
	}
	return FormatLabel(p.Date, m.Frequency, m.Language)
}
