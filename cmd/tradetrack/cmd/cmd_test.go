package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/how0531/TradeTrack-1-sub000/config"
)

// execute runs the root command in-process. Commands share package level
// flag variables, so tests here do not run in parallel.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env", filepath.Join(dir, "missing.env"),
		"--db", filepath.Join(dir, "journal.sqlite"),
	}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := execute(t, dir, args...)
	require.NoError(t, err, out)
	return out
}

func clearEnv(t *testing.T) {
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvFrequency, "")
	t.Setenv(config.EnvLanguage, "")
}

func TestJournalWorkflow(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out := mustExecute(t, dir, "portfolio", "add", "main", "--name", "Main", "--capital", "1000")
	assert.Contains(t, out, "Saved portfolio main")

	mustExecute(t, dir, "trade", "add", "--date", "2024-01-01", "--pnl", "100", "--strategy", "Breakout", "--emotion", "calm")
	mustExecute(t, dir, "trade", "add", "--date", "2024-01-02", "--pnl", "-50", "--strategy", "Breakout", "--emotion", "fomo")

	out = mustExecute(t, dir, "trade", "list")
	assert.Contains(t, out, "2 trades")
	assert.Contains(t, out, "50.00")

	out = mustExecute(t, dir, "portfolio", "list")
	assert.Contains(t, out, "1000.00")

	out = mustExecute(t, dir, "metrics", "--json")
	var res struct {
		CurrentEq   float64 `json:"currentEq"`
		TotalTrades int     `json:"totalTrades"`
		MaxDD       float64 `json:"maxDD"`
		Streaks     struct {
			CurrentLoss int `json:"currentLoss"`
		} `json:"streaks"`
		StrategyStats map[string]struct {
			WinRate float64 `json:"winRate"`
		} `json:"stratStats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, 1050.0, res.CurrentEq)
	assert.Equal(t, 2, res.TotalTrades)
	assert.Equal(t, 4.55, res.MaxDD)
	assert.Equal(t, 1, res.Streaks.CurrentLoss)
	assert.Equal(t, 50.0, res.StrategyStats["Breakout"].WinRate)

	out = mustExecute(t, dir, "streaks")
	assert.Contains(t, out, "Best Win:      1")

	csvPath := filepath.Join(dir, "trades.csv")
	out = mustExecute(t, dir, "export", csvPath)
	assert.Contains(t, out, "Exported 2 trades")
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,date,pnl,strategy,emotion,portfolio_id,timestamp,notes\n"))

	out = mustExecute(t, dir, "import", csvPath)
	assert.Contains(t, out, "0 added, 0 replaced, 2 skipped")

	other := t.TempDir()
	out = mustExecute(t, other, "import", csvPath)
	assert.Contains(t, out, "2 added")
}

func TestMetricsAndStreaksShareDateBounds(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() {
		metricsFilter.to = ""
		streaksFilter.to = ""
	})
	dir := t.TempDir()

	mustExecute(t, dir, "trade", "add", "--date", "2024-01-01", "--pnl", "100")
	mustExecute(t, dir, "trade", "add", "--date", "2024-01-02", "--pnl", "-50")
	mustExecute(t, dir, "trade", "add", "--date", "2024-01-03", "--pnl", "20")

	out := mustExecute(t, dir, "metrics", "--json", "--to", "2024-01-02")
	var res struct {
		TotalTrades int `json:"totalTrades"`
		Streaks     struct {
			CurrentWin  int `json:"currentWin"`
			CurrentLoss int `json:"currentLoss"`
		} `json:"streaks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, 3, res.TotalTrades)
	assert.Equal(t, 0, res.Streaks.CurrentWin)
	assert.Equal(t, 1, res.Streaks.CurrentLoss)

	out = mustExecute(t, dir, "streaks", "--to", "2024-01-02")
	assert.Contains(t, out, "Current:       1 loss(es)")
}

func TestTradeEditShowDelete(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "backup.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
  "portfolios": [{"id": "swing", "name": "Swing", "initialCapital": 500}],
  "trades": [{"id": "T1", "date": "2024-03-04", "pnl": 20, "portfolioId": "swing"}]
}`), 0644))

	out := mustExecute(t, dir, "import", jsonPath)
	assert.Contains(t, out, "1 added")
	assert.Contains(t, out, "1 portfolios")

	mustExecute(t, dir, "trade", "edit", "T1", "--pnl", "-15", "--notes", "moved stop too early")

	out = mustExecute(t, dir, "trade", "show", "T1")
	assert.Contains(t, out, ":PNL: -15.00")
	assert.Contains(t, out, ":OUTCOME: loss")
	assert.Contains(t, out, ":PORTFOLIO: swing")
	assert.Contains(t, out, "- moved stop too early")

	mustExecute(t, dir, "trade", "delete", "T1")

	_, err := execute(t, dir, "trade", "show", "T1")
	assert.Error(t, err)
	_, err = execute(t, dir, "trade", "delete", "T1")
	assert.Error(t, err)
}

func TestConfigInitAndValidate(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "tradetrack.yaml")

	out := mustExecute(t, dir, "config", "init", "--output", path)
	assert.Contains(t, out, "Created default configuration")

	out = mustExecute(t, dir, "config", "validate", "--file", path)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "Portfolio: main")
}

func TestMetricsRejectsBadFlags(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := execute(t, dir, "metrics", "--freq", "hourly")
	assert.Error(t, err)

	_, err = execute(t, dir, "metrics", "--freq", "daily", "--from", "01/02/2024")
	assert.Error(t, err)
	metricsFilter.from = ""
}

func TestVersion(t *testing.T) {
	dir := t.TempDir()
	out := mustExecute(t, dir, "version")
	assert.Contains(t, out, "tradetrack version "+version)
}
