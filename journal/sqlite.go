package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

var _ Journal = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// RecordTrade inserts a new trade. The trade is normalized first and a
// malformed date is rejected.
func (j *SQLite) RecordTrade(t Trade) error {
	t, err := Normalize(t)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return fmt.Errorf("trade id is required")
	}
	_, err = j.db.Exec(`
		INSERT INTO trades
		(id, date, pnl, strategy, emotion, portfolio_id, timestamp, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.PnL, t.Strategy, t.Emotion, t.PortfolioID, t.Timestamp, t.Notes,
	)
	return err
}

// ReplaceTrade overwrites an existing trade with t in full.
func (j *SQLite) ReplaceTrade(t Trade) error {
	t, err := Normalize(t)
	if err != nil {
		return err
	}
	res, err := j.db.Exec(`
		UPDATE trades
		SET date = ?, pnl = ?, strategy = ?, emotion = ?, portfolio_id = ?, timestamp = ?, notes = ?
		WHERE id = ?`,
		t.Date, t.PnL, t.Strategy, t.Emotion, t.PortfolioID, t.Timestamp, t.Notes, t.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res, "trade", t.ID)
}

func (j *SQLite) DeleteTrade(id string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res, "trade", id)
}

// SavePortfolio inserts or updates a portfolio by id.
func (j *SQLite) SavePortfolio(p Portfolio) error {
	if p.ID == "" {
		return fmt.Errorf("portfolio id is required")
	}
	if p.InitialCapital < 0 {
		return fmt.Errorf("portfolio %q: initial capital must not be negative", p.ID)
	}
	_, err := j.db.Exec(`
		INSERT INTO portfolios (id, name, initial_capital, profit_color, loss_color)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			initial_capital = excluded.initial_capital,
			profit_color = excluded.profit_color,
			loss_color = excluded.loss_color`,
		p.ID, p.Name, p.InitialCapital, p.ProfitColor, p.LossColor,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func expectOne(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return nil
}
