package store

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date DATETIME NOT NULL,
	executed_at DATETIME,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	entry REAL NOT NULL,
	exit REAL NOT NULL,
	stop REAL NOT NULL,
	pl REAL NOT NULL,
	r_multiple REAL NOT NULL,
	strategy TEXT NOT NULL,
	tags TEXT NOT NULL,
	notes TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS playbooks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	entry TEXT NOT NULL,
	exit TEXT NOT NULL,
	risk TEXT NOT NULL,
	trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_entries (
	id TEXT PRIMARY KEY,
	date DATETIME NOT NULL,
	title TEXT NOT NULL,
	mood TEXT NOT NULL,
	entry TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
`
