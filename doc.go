// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox runs a single-election voting workflow: an administrator registers
eligible voters, voters submit proposals, everyone casts a single-choice
vote, and the result is tallied with explicit tie detection.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=ballotbox.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3318 -d ballotbox.db -admin-salt ...

# Configuration

Required settings:

  - DATABASE_URL (-d): event journal connection string
  - ADMIN_KEY_SALT (-admin-salt): secret for the admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ELECTION_NAME (-election): hosted election name (default: general)

The admin key is deterministic (HMAC of the election name under the salt),
so the operator computes it with the same salt instead of storing it.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the workflow state machine, tally and domain events
  - eventlog: SQL-backed event journal (the election's EventSink)
  - handlers: HTTP request handlers (admin, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin key generation and validation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

Election state lives in memory inside the controller; the database only
carries the best-effort event journal. See package documentation for each
component.
*/
package main
