package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','portfolios')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["portfolios"])
}

func TestSQLiteRecordTrade(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	rec := Trade{
		ID:        "T1",
		Date:      "2024-01-02",
		PnL:       -12.5,
		Strategy:  " Breakout ",
		Emotion:   "calm",
		Timestamp: "2024-01-02T10:00:00Z",
		Notes:     "chased the open",
	}

	assert.NoError(t, j.RecordTrade(rec))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		id, date, strategy, emotion, portfolio, ts, notes string
		pnl                                               float64
	)
	err = db.QueryRow(`
        SELECT id, date, pnl, strategy, emotion, portfolio_id, timestamp, notes
        FROM trades LIMIT 1`).Scan(&id, &date, &pnl, &strategy, &emotion, &portfolio, &ts, &notes)
	assert.NoError(t, err)

	assert.Equal(t, "T1", id)
	assert.Equal(t, "2024-01-02", date)
	assert.InDelta(t, -12.5, pnl, 1e-9)
	assert.Equal(t, "Breakout", strategy)
	assert.Equal(t, "calm", emotion)
	assert.Equal(t, DefaultPortfolioID, portfolio)
	assert.Equal(t, rec.Timestamp, ts)
	assert.Equal(t, rec.Notes, notes)
}

func TestSQLiteRecordTradeRejectsBadInput(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	assert.Error(t, j.RecordTrade(Trade{ID: "T1", Date: "02/01/2024", PnL: 1}))
	assert.Error(t, j.RecordTrade(Trade{Date: "2024-01-02", PnL: 1}))

	require.NoError(t, j.RecordTrade(Trade{ID: "T1", Date: "2024-01-02", PnL: 1}))
	assert.Error(t, j.RecordTrade(Trade{ID: "T1", Date: "2024-01-03", PnL: 2}), "duplicate id")
}

func TestSQLiteReplaceAndDeleteTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	require.NoError(t, j.RecordTrade(Trade{ID: "T1", Date: "2024-01-02", PnL: 100, Strategy: "A"}))

	require.NoError(t, j.ReplaceTrade(Trade{ID: "T1", Date: "2024-01-05", PnL: -40}))
	got, err := j.GetTrade("T1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", got.Date)
	assert.InDelta(t, -40.0, got.PnL, 1e-9)
	assert.Empty(t, got.Strategy, "replacement clears fields not supplied")

	err = j.ReplaceTrade(Trade{ID: "missing", Date: "2024-01-05", PnL: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, j.DeleteTrade("T1"))
	_, err = j.GetTrade("T1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, j.DeleteTrade("T1"), ErrNotFound)
}

func TestSQLitePortfolios(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	require.NoError(t, j.SavePortfolio(Portfolio{ID: "swing", Name: "Swing", InitialCapital: 5000}))
	require.NoError(t, j.SavePortfolio(Portfolio{ID: "main", Name: "Main", InitialCapital: 10000, ProfitColor: "#0f0"}))
	require.NoError(t, j.SavePortfolio(Portfolio{ID: "swing", Name: "Swing v2", InitialCapital: 7000}))

	assert.Error(t, j.SavePortfolio(Portfolio{Name: "no id"}))
	assert.Error(t, j.SavePortfolio(Portfolio{ID: "neg", InitialCapital: -1}))

	ps, err := j.ListPortfolios()
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "main", ps[0].ID)
	assert.Equal(t, "#0f0", ps[0].ProfitColor)
	assert.Equal(t, "Swing v2", ps[1].Name)
	assert.InDelta(t, 7000.0, ps[1].InitialCapital, 1e-9)
}
