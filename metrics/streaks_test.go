package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/how0531/TradeTrack-1-sub000/journal"
)

func series(start string, pnls ...float64) []journal.Trade {
	d := day(start)
	out := make([]journal.Trade, len(pnls))
	for i, p := range pnls {
		out[i] = journal.Trade{
			ID:   string(rune('a' + i)),
			Date: d.AddDate(0, 0, i).Format("2006-01-02"),
			PnL:  p,
		}
	}
	return out
}

func TestComputeStreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trades []journal.Trade
		want   Streaks
	}{
		{
			name:   "empty",
			trades: nil,
			want:   Streaks{},
		},
		{
			name:   "win streak after a loss",
			trades: series("2024-03-01", 10, 10, -5, 10, 10, 10),
			want:   Streaks{CurrentWin: 3, BestWin: 3, BestLoss: 1},
		},
		{
			name:   "losing run",
			trades: series("2024-03-01", 10, -1, -2, -3, 5, -1, -1),
			want:   Streaks{CurrentLoss: 2, BestWin: 1, BestLoss: 3},
		},
		{
			name:   "breakeven last clears current",
			trades: series("2024-03-01", 10, 10, 0),
			want:   Streaks{BestWin: 2},
		},
		{
			name:   "breakeven resets best counters",
			trades: series("2024-03-01", 10, 10, 0, 10, 10, 10, 0, -1),
			want:   Streaks{CurrentLoss: 1, BestWin: 3, BestLoss: 1},
		},
		{
			name: "stale gap ends the current streak",
			trades: []journal.Trade{
				{ID: "1", Date: "2024-01-01", PnL: 10},
				{ID: "2", Date: "2024-01-10", PnL: 10},
			},
			want: Streaks{CurrentWin: 1, BestWin: 2},
		},
		{
			name: "gap at the limit keeps the streak",
			trades: []journal.Trade{
				{ID: "1", Date: "2024-01-01", PnL: -10},
				{ID: "2", Date: "2024-01-06", PnL: -10},
			},
			want: Streaks{CurrentLoss: 2, BestLoss: 2},
		},
		{
			name: "padded dates order like clean ones",
			trades: []journal.Trade{
				{ID: "1", Date: "2024-01-01", PnL: 10},
				{ID: "2", Date: " 2024-01-02", PnL: -5},
			},
			want: Streaks{CurrentLoss: 1, BestWin: 1, BestLoss: 1},
		},
		{
			name: "unsorted input",
			trades: []journal.Trade{
				{ID: "3", Date: "2024-01-03", PnL: 10},
				{ID: "1", Date: "2024-01-01", PnL: -10},
				{ID: "2", Date: "2024-01-02", PnL: 10},
			},
			want: Streaks{CurrentWin: 2, BestWin: 2, BestLoss: 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeStreaks(tt.trades)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.CurrentWin > 0 && got.CurrentLoss > 0)
			assert.LessOrEqual(t, got.CurrentWin, got.BestWin)
			assert.LessOrEqual(t, got.CurrentLoss, got.BestLoss)
		})
	}
}

func TestComputeStreaksWithGapDisabled(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		{ID: "1", Date: "2024-01-01", PnL: 10},
		{ID: "2", Date: "2024-06-01", PnL: 10},
		{ID: "3", Date: "2024-12-01", PnL: 10},
	}

	assert.Equal(t, 1, ComputeStreaks(trades).CurrentWin)
	assert.Equal(t, 3, ComputeStreaksWithGap(trades, 0).CurrentWin)
	assert.Equal(t, 3, ComputeStreaksWithGap(trades, 200).CurrentWin)
}

func TestComputeStreaksDoesNotMutate(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		{ID: "2", Date: "2024-01-02", PnL: -1},
		{ID: "1", Date: "2024-01-01", PnL: 1},
	}
	orig := append([]journal.Trade(nil), trades...)

	ComputeStreaks(trades)

	assert.Equal(t, orig, trades)
}
