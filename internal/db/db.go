package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	unit            TEXT NOT NULL DEFAULT '',
	avg_daily_usage NUMERIC NOT NULL DEFAULT 0,
	max_daily_usage NUMERIC NOT NULL DEFAULT 0,
	lead_time_days  NUMERIC NOT NULL DEFAULT 0,
	current_stock   NUMERIC NOT NULL DEFAULT 0
);
`

// Open opens the SQLite database named by DATABASE_PATH (default inventory.db)
// and creates the items table on first startup. The caller owns the handle.
func Open(ctx context.Context) (*sql.DB, error) {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "inventory.db"
	}
	return OpenPath(ctx, path)
}

// OpenPath opens the SQLite database at path and ensures the schema exists.
func OpenPath(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("unable to open database %s: %w", path, err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	// churn between handlers.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to ping database %s: %w", path, err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to create items table: %w", err)
	}

	return conn, nil
}
