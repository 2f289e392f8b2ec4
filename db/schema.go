// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured journal database. dbType selects the
// driver: "postgres" (lib/pq) or "sqlite" (modernc, CGo-free).
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the event journal.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Domain event journal (best-effort audit trail)
CREATE TABLE IF NOT EXISTS event_log (
    id TEXT PRIMARY KEY,
    election TEXT NOT NULL,
    name TEXT NOT NULL,
    payload TEXT NOT NULL,
    emitted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_log_election ON event_log(election, emitted_at);
`
