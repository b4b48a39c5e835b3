// Package metrics turns a list of journal trades into the equity curve,
// drawdown series, aggregate statistics, per-strategy breakdowns and
// win/loss streaks shown by the dashboard.
//
// Everything here is a pure function of its arguments: inputs are never
// mutated and no state is kept between calls, so results may be computed
// concurrently and memoized freely by callers.
package metrics

import (
	"time"

	"github.com/how0531/TradeTrack-1-sub000/period"
)

const (
	// FallbackCapital replaces a non-positive starting capital so percentages
	// never divide by zero.
	FallbackCapital = 100_000.0

	// ProfitFactorCap is reported when there is profit but no loss.
	ProfitFactorCap = 999.0

	// StrategyRiskRewardCap is a strategy's risk/reward when it has wins
	// but no losses.
	StrategyRiskRewardCap = 10.0

	// MaxTimelineSteps bounds the period walk regardless of the date range.
	MaxTimelineSteps = 36_500

	// DefaultStreakGapDays ends a current streak when consecutive trades in
	// it are further apart than this many calendar days.
	DefaultStreakGapDays = 5
)

// Options controls a Compute call.
type Options struct {
	// ActivePortfolios selects whose initial capital forms the baseline.
	// Nil means every portfolio passed to Compute.
	ActivePortfolios []string

	// Frequency defaults to daily when empty or unknown.
	Frequency period.Frequency

	// Language is not used by the computation; it is echoed on the result
	// for presentation code that re-labels periods.
	Language string

	// StartDate and EndDate (YYYY-MM-DD, inclusive) limit the Curve and
	// Drawdown series only. Empty or malformed bounds are open.
	StartDate string
	EndDate   string

	// Now anchors the end of the timeline. Zero means time.Now().
	Now time.Time
}

// EquityPoint is one period of the equity curve.
type EquityPoint struct {
	Label          string             `json:"label"`
	Date           string             `json:"date"`
	Timestamp      int64              `json:"timestamp"` // unix ms of the period start
	Equity         float64            `json:"equity"`
	Peak           float64            `json:"peak"`
	PnL            float64            `json:"pnl"`
	CumPnL         float64            `json:"cumPnl"`
	IsNewPeak      bool               `json:"isNewPeak"`
	DrawdownAmount float64            `json:"ddAmount"`
	DrawdownPct    float64            `json:"ddPct"` // <= 0
	Portfolios     map[string]float64 `json:"portfolios,omitempty"`
}

type DrawdownPoint struct {
	Label       string  `json:"label"`
	Timestamp   int64   `json:"timestamp"`
	DrawdownPct float64 `json:"ddPct"`
}

// StrategyStat aggregates every trade tagged with one strategy.
// Drawdown percentages are positive magnitudes.
type StrategyStat struct {
	NetPnL      float64 `json:"netPnl"`
	Trades      int     `json:"trades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"winRate"`
	MaxDD       float64 `json:"maxDD"`
	CurrentDD   float64 `json:"currentDD"`
	IsAtHigh    bool    `json:"isAtHigh"`
	RiskReward  float64 `json:"riskReward"`
	AvgWin      float64 `json:"avgWin"`
	AvgLoss     float64 `json:"avgLoss"`
	GrossProfit float64 `json:"grossProfit"`
	GrossLoss   float64 `json:"grossLoss"`
}

// Metrics is the full result of Compute. MaxDD and CurrentDD are positive
// magnitudes; the per-point DrawdownPct values are their negatives.
type Metrics struct {
	Curve    []EquityPoint   `json:"curve"`
	Drawdown []DrawdownPoint `json:"drawdown"`

	SafeCapital float64 `json:"safeCapital"`
	CurrentEq   float64 `json:"currentEq"`
	EqChange    float64 `json:"eqChange"`
	EqChangePct float64 `json:"eqChangePct"`
	CurrentDD   float64 `json:"currentDD"`
	MaxDD       float64 `json:"maxDD"`
	IsPeak      bool    `json:"isPeak"`

	TotalTrades  int     `json:"totalTrades"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Breakeven    int     `json:"breakeven"`
	NetPnL       float64 `json:"netPnl"`
	GrossProfit  float64 `json:"grossProfit"`
	GrossLoss    float64 `json:"grossLoss"`
	WinRate      float64 `json:"winRate"`
	ProfitFactor float64 `json:"profitFactor"`
	RiskReward   float64 `json:"riskReward"`
	AvgWin       float64 `json:"avgWin"`
	AvgLoss      float64 `json:"avgLoss"`
	Sharpe       float64 `json:"sharpe"`

	StrategyStats map[string]StrategyStat `json:"stratStats"`

	Frequency period.Frequency `json:"frequency"`
	Language  string           `json:"language,omitempty"`
}

// Streaks summarizes consecutive wins and losses. At most one of
// CurrentWin and CurrentLoss is non-zero.
type Streaks struct {
	CurrentWin  int `json:"currentWin"`
	CurrentLoss int `json:"currentLoss"`
	BestWin     int `json:"bestWin"`
	BestLoss    int `json:"bestLoss"`
}
