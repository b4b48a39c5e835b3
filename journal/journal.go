// Package journal holds the trade journal records and the collaborators
// that persist, import and export them.
package journal

import "errors"

// DefaultPortfolioID is used for trades that do not name a portfolio.
const DefaultPortfolioID = "main"

// ErrNotFound is wrapped by lookups that match no record.
var ErrNotFound = errors.New("not found")

// Trade is one logged profit/loss event. Edits replace the whole record.
type Trade struct {
	ID          string  `json:"id" yaml:"id"`
	Date        string  `json:"date" yaml:"date"` // YYYY-MM-DD, civil
	PnL         float64 `json:"pnl" yaml:"pnl"`
	Strategy    string  `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Emotion     string  `json:"emotion,omitempty" yaml:"emotion,omitempty"`
	PortfolioID string  `json:"portfolioId,omitempty" yaml:"portfolio_id,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"` // same-day tie-breaker
	Notes       string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Portfolio groups trades and provides the starting equity baseline.
type Portfolio struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	InitialCapital float64 `json:"initialCapital" yaml:"initial_capital"`
	ProfitColor    string  `json:"profitColor,omitempty" yaml:"profit_color,omitempty"`
	LossColor      string  `json:"lossColor,omitempty" yaml:"loss_color,omitempty"`
}

type Journal interface {
	RecordTrade(Trade) error
	ReplaceTrade(Trade) error
	DeleteTrade(id string) error
	GetTrade(id string) (Trade, error)
	ListTrades() ([]Trade, error)
	SavePortfolio(Portfolio) error
	ListPortfolios() ([]Portfolio, error)
	Close() error
}
