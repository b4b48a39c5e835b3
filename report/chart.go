package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/vicanso/go-charts/v2"

	"github.com/how0531/TradeTrack-1-sub000/metrics"
)

// ErrNoCurve is returned when there is nothing to plot.
var ErrNoCurve = errors.New("equity curve is empty")

// RenderEquityChart draws the equity and running peak of m as a PNG.
func RenderEquityChart(m metrics.Metrics, title string) ([]byte, error) {
	if len(m.Curve) == 0 {
		return nil, ErrNoCurve
	}

	xLabels := make([]string, 0, len(m.Curve))
	equity := make([]float64, 0, len(m.Curve))
	peak := make([]float64, 0, len(m.Curve))
	for _, p := range m.Curve {
		xLabels = append(xLabels, PointLabel(p, m))
		equity = append(equity, p.Equity)
		peak = append(peak, p.Peak)
	}

	minVal, maxVal := equity[0], peak[0]
	for i := range equity {
		if equity[i] < minVal {
			minVal = equity[i]
		}
		if peak[i] > maxVal {
			maxVal = peak[i]
		}
	}
	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	if padding == 0 {
		padding = 1
	}
	yMin := minVal - padding
	yMax := maxVal + padding

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	if title == "" {
		title = "Equity Curve"
	}
	subtitle := fmt.Sprintf("Equity: %.2f | Return: %.2f%% | MaxDD: %.2f%% | Sharpe: %.2f",
		m.CurrentEq, m.EqChangePct, m.MaxDD, m.Sharpe)

	p, err := charts.LineRender(
		[][]float64{equity, peak},
		charts.TitleTextOptionFunc(title, subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"Equity", "Peak"},
			Left: charts.PositionRight,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(500),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}

// WriteEquityChart renders the chart into path.
func WriteEquityChart(path string, m metrics.Metrics, title string) error {
	buf, err := RenderEquityChart(m, title)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
