// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventlog

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballotbox/election"
)

// Journal persists domain events to the event_log table. It implements
// election.EventSink: emission is best-effort, so insert failures are logged
// and dropped rather than surfaced to the controller.
type Journal struct {
	db       *sql.DB
	election string
}

func New(db *sql.DB, electionName string) *Journal {
	return &Journal{db: db, election: electionName}
}

// Emit writes one event row. Called with the controller's lock held, so it
// must not call back into the controller.
func (j *Journal) Emit(e election.Event) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		slog.Warn("failed to encode event payload", "name", e.Name, "error", err)
		return
	}

	_, err = j.db.Exec(`
		INSERT INTO event_log (id, election, name, payload, emitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), j.election, e.Name, string(payload), e.OccurredAt)

	if err != nil {
		slog.Warn("failed to journal event", "name", e.Name, "error", err)
	}
}

// Entry is a journaled event as returned by List.
type Entry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	EmittedAt time.Time       `json:"emitted_at"`
}

// List returns up to limit journaled events for this election, oldest first.
func (j *Journal) List(limit int) ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT id, name, payload, emitted_at
		FROM event_log
		WHERE election = $1
		ORDER BY emitted_at, id
		LIMIT $2
	`, j.election, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var payload string
		if err := rows.Scan(&e.ID, &e.Name, &payload, &e.EmittedAt); err != nil {
			return nil, err
		}
		e.Payload = json.RawMessage(payload)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
