package journal

import (
	"database/sql"
	"errors"
	"fmt"
)

const tradeColumns = `id, date, pnl, strategy, emotion, portfolio_id, timestamp, notes`

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(id string) (Trade, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
		}
		return Trade{}, err
	}
	return rec, nil
}

// ListTrades returns every trade ordered by date, timestamp and id.
func (j *SQLite) ListTrades() ([]Trade, error) {
	return j.queryTrades(`SELECT ` + tradeColumns + ` FROM trades ORDER BY date ASC, timestamp ASC, id ASC`)
}

// ListTradesBetween returns trades dated within [from, to], both inclusive.
func (j *SQLite) ListTradesBetween(from, to string) ([]Trade, error) {
	return j.queryTrades(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, timestamp ASC, id ASC`, from, to)
}

func (j *SQLite) ListPortfolios() ([]Portfolio, error) {
	rows, err := j.db.Query(`
		SELECT id, name, initial_capital, profit_color, loss_color
		FROM portfolios
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Portfolio
	for rows.Next() {
		var p Portfolio
		if err := rows.Scan(&p.ID, &p.Name, &p.InitialCapital, &p.ProfitColor, &p.LossColor); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) queryTrades(query string, args ...any) ([]Trade, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (Trade, error) {
	var rec Trade
	err := s.Scan(
		&rec.ID,
		&rec.Date,
		&rec.PnL,
		&rec.Strategy,
		&rec.Emotion,
		&rec.PortfolioID,
		&rec.Timestamp,
		&rec.Notes,
	)
	return rec, err
}
