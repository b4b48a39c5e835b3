package metrics

import "github.com/how0531/TradeTrack-1-sub000/journal"

// strategyStats replays each strategy's trades in date order on top of the
// starting capital. Untagged trades are left out. sorted must already be
// ordered with journal.Sorted.
func strategyStats(sorted []journal.Trade, capital float64) map[string]StrategyStat {
	groups := map[string][]journal.Trade{}
	for _, t := range sorted {
		if t.Strategy == "" {
			continue
		}
		groups[t.Strategy] = append(groups[t.Strategy], t)
	}

	out := make(map[string]StrategyStat, len(groups))
	for name, trades := range groups {
		out[name] = strategyStat(trades, capital)
	}
	return out
}

func strategyStat(trades []journal.Trade, capital float64) StrategyStat {
	var s StrategyStat
	var cum, maxDD, dd float64
	peak := capital

	for _, t := range trades {
		cum += t.PnL
		switch {
		case t.PnL > 0:
			s.Wins++
			s.GrossProfit += t.PnL
		case t.PnL < 0:
			s.Losses++
			s.GrossLoss += -t.PnL
		}

		equity := capital + cum
		if equity > peak {
			peak = equity
		}
		dd = 0
		if peak > 0 {
			dd = (peak - equity) / peak * 100
		}
		if dd > maxDD {
			maxDD = dd
		}
	}

	avgWin := average(s.GrossProfit, s.Wins)
	avgLoss := average(s.GrossLoss, s.Losses)

	s.Trades = len(trades)
	s.NetPnL = round2(cum)
	s.WinRate = round2(winRate(s.Wins, s.Trades))
	s.MaxDD = round2(maxDD)
	s.CurrentDD = round2(dd)
	s.IsAtHigh = capital+cum >= peak
	s.AvgWin = round2(avgWin)
	s.AvgLoss = round2(avgLoss)
	s.GrossProfit = round2(s.GrossProfit)
	s.GrossLoss = round2(s.GrossLoss)

	switch {
	case s.Losses > 0 && s.Wins > 0:
		s.RiskReward = round2(avgWin / avgLoss)
	case s.Losses == 0 && s.Wins > 0:
		s.RiskReward = StrategyRiskRewardCap
	}
	return s
}
