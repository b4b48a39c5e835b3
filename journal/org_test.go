package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := Trade{
		ID:          "01HZX4M7Q6ABCDEF",
		Date:        "2024-03-15",
		PnL:         250,
		Strategy:    "Breakout",
		Emotion:     "calm",
		PortfolioID: "main",
		Timestamp:   "2024-03-15T14:20:30Z",
		Notes:       "waited for the retest",
	}

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** Trade: 2024-03-15 Breakout (01HZX4M7)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":TRADE_ID: 01HZX4M7Q6ABCDEF")
	assert.Contains(t, result, ":PNL: 250.00")
	assert.Contains(t, result, ":OUTCOME: win")
	assert.Contains(t, result, ":STRATEGY: Breakout")
	assert.Contains(t, result, ":EMOTION: calm")
	assert.Contains(t, result, ":PORTFOLIO: main")
	assert.Contains(t, result, ":TIMESTAMP: 2024-03-15T14:20:30Z")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "- waited for the retest")

	lines := strings.Split(result, "\n")
	require.Greater(t, len(lines), 10)
	assert.True(t, strings.HasPrefix(lines[0], "** Trade:"))

	thesis := strings.Index(result, "*** Thesis")
	execution := strings.Index(result, "*** Execution")
	review := strings.Index(result, "*** Review")
	assert.Greater(t, thesis, strings.Index(result, ":END:"))
	assert.Greater(t, execution, thesis)
	assert.Greater(t, review, execution)
}

func TestFormatTradeOrgUntaggedLoss(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(Trade{ID: "short", Date: "2024-01-01", PnL: -500})
	assert.Contains(t, result, "** Trade: 2024-01-01 Untagged (short)")
	assert.Contains(t, result, ":PNL: -500.00")
	assert.Contains(t, result, ":OUTCOME: loss")
	assert.NotContains(t, result, ":TIMESTAMP:")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatTradesOrg(nil))

	single := FormatTradesOrg([]Trade{{ID: "a", Date: "2024-01-01", PnL: 1}})
	assert.NotContains(t, single, "\n\n\n")

	two := FormatTradesOrg([]Trade{
		{ID: "a", Date: "2024-01-01", PnL: 1},
		{ID: "b", Date: "2024-01-02", PnL: -1},
	})
	assert.Len(t, strings.Split(two, "\n\n\n"), 2)
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "win", Outcome(0.01))
	assert.Equal(t, "loss", Outcome(-3))
	assert.Equal(t, "breakeven", Outcome(0))
}

func TestShortID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"trade-12345678-abcdef", "trade-12"},
		{"12345678", "12345678"},
		{"short", "short"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, shortID(tt.input))
	}
}
