// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation for the event
journal.

The journal runs on either PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite,
no CGo), selected by DATABASE_TYPE. Both drivers accept the $N placeholder
syntax used throughout, so queries are shared.

Schema creation is idempotent:

	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	err = db.CreateSchema(dbConn)
*/
package db
