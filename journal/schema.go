// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	pnl REAL NOT NULL,
	strategy TEXT NOT NULL DEFAULT '',
	emotion TEXT NOT NULL DEFAULT '',
	portfolio_id TEXT NOT NULL DEFAULT 'main',
	timestamp TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);

CREATE TABLE IF NOT EXISTS portfolios (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	initial_capital REAL NOT NULL,
	profit_color TEXT NOT NULL DEFAULT '',
	loss_color TEXT NOT NULL DEFAULT ''
);
`
