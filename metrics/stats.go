package metrics

import (
	"math"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/period"
)

// aggregate fills the trade-level statistics of m from every trade passed
// to Compute, independent of the display window.
func aggregate(m *Metrics, trades []journal.Trade) {
	var grossProfit, grossLoss, net float64
	var wins, losses, flat int

	for _, t := range trades {
		net += t.PnL
		switch {
		case t.PnL > 0:
			wins++
			grossProfit += t.PnL
		case t.PnL < 0:
			losses++
			grossLoss += -t.PnL
		default:
			flat++
		}
	}

	m.TotalTrades = len(trades)
	m.Wins = wins
	m.Losses = losses
	m.Breakeven = flat
	m.NetPnL = round2(net)
	m.GrossProfit = round2(grossProfit)
	m.GrossLoss = round2(grossLoss)
	m.WinRate = round2(winRate(wins, len(trades)))
	m.ProfitFactor = round2(ProfitFactor(grossProfit, grossLoss))
	m.AvgWin = round2(average(grossProfit, wins))
	m.AvgLoss = round2(average(grossLoss, losses))
	if wins > 0 && losses > 0 {
		m.RiskReward = round2(average(grossProfit, wins) / average(grossLoss, losses))
	}
}

// ProfitFactor is gross profit over gross loss. Without losses it is
// ProfitFactorCap when there is profit and 0 otherwise.
func ProfitFactor(grossProfit, grossLoss float64) float64 {
	if grossLoss == 0 {
		if grossProfit > 0 {
			return ProfitFactorCap
		}
		return 0
	}
	return grossProfit / grossLoss
}

// sharpe annualizes the mean over the sample standard deviation of
// period-over-period equity returns. Fewer than two returns, or a flat
// series, yields 0.
func sharpe(curve []EquityPoint, freq period.Frequency) float64 {
	var returns []float64
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Equity
		if prev <= 0 {
			continue
		}
		returns = append(returns, (curve[i].Equity-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(returns)-1))
	if stdDev == 0 {
		return 0
	}

	return round2(mean / stdDev * math.Sqrt(freq.AnnualizationFactor()))
}

func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
