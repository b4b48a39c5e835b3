package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	expected := Trade{
		ID:          "T123",
		Date:        "2024-04-10",
		PnL:         375,
		Strategy:    "trend",
		Emotion:     "confident",
		PortfolioID: "swing",
		Timestamp:   "2024-04-10T15:30:00Z",
	}
	require.NoError(t, j.RecordTrade(expected))

	actual, err := j.GetTrade("T123")
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestListTradesOrdered(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	trades := []Trade{
		{ID: "c", Date: "2024-01-03", PnL: 1},
		{ID: "b2", Date: "2024-01-02", PnL: 2, Timestamp: "2024-01-02T12:00:00Z"},
		{ID: "b1", Date: "2024-01-02", PnL: 3, Timestamp: "2024-01-02T09:00:00Z"},
		{ID: "a", Date: "2024-01-01", PnL: 4},
	}
	for _, tr := range trades {
		require.NoError(t, j.RecordTrade(tr))
	}

	got, err := j.ListTrades()
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, tr := range got {
		ids[i] = tr.ID
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, ids)
}

func TestListTradesBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	for _, tr := range []Trade{
		{ID: "1", Date: "2024-01-31", PnL: 1},
		{ID: "2", Date: "2024-02-01", PnL: 1},
		{ID: "3", Date: "2024-02-29", PnL: 1},
		{ID: "4", Date: "2024-03-01", PnL: 1},
	} {
		require.NoError(t, j.RecordTrade(tr))
	}

	got, err := j.ListTradesBetween("2024-02-01", "2024-02-29")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	empty, err := j.ListTradesBetween("2030-01-01", "2030-12-31")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
