package metrics

import (
	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/period"
)

// ComputeStreaks applies ComputeStreaksWithGap with DefaultStreakGapDays.
func ComputeStreaks(trades []journal.Trade) Streaks {
	return ComputeStreaksWithGap(trades, DefaultStreakGapDays)
}

// ComputeStreaksWithGap counts consecutive wins and losses in date order.
//
// Best streaks come from a forward pass where a breakeven trade resets both
// counters. The current streak is read backwards from the most recent
// trade, whose sign fixes the streak type; the scan stops at the first
// trade of the opposite sign, at a breakeven trade, or when two adjacent
// trades in the streak are more than maxGapDays calendar days apart (or
// either date is unreadable). maxGapDays <= 0 disables the gap rule.
func ComputeStreaksWithGap(trades []journal.Trade, maxGapDays int) Streaks {
	sorted := journal.Sorted(sanitize(trades))

	var s Streaks
	win, loss := 0, 0
	for _, t := range sorted {
		switch {
		case t.PnL > 0:
			win++
			loss = 0
		case t.PnL < 0:
			loss++
			win = 0
		default:
			win, loss = 0, 0
		}
		s.BestWin = max(s.BestWin, win)
		s.BestLoss = max(s.BestLoss, loss)
	}

	n := len(sorted)
	if n == 0 || sorted[n-1].PnL == 0 {
		return s
	}

	winning := sorted[n-1].PnL > 0
	count := 1
	for i := n - 2; i >= 0; i-- {
		t := sorted[i]
		if t.PnL == 0 || (t.PnL > 0) != winning {
			break
		}
		if maxGapDays > 0 {
			gap, err := period.DaysBetween(t.Date, sorted[i+1].Date)
			if err != nil || gap > maxGapDays {
				break
			}
		}
		count++
	}

	if winning {
		s.CurrentWin = count
	} else {
		s.CurrentLoss = count
	}
	return s
}
