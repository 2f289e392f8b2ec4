// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package eventlog is the SQL-backed election.EventSink. Every domain event
// the controller emits is appended to the event_log table and exposed back
// through the audit endpoint. Emission is fire-and-forget: a journal failure
// never affects election state.
package eventlog
