// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/eventlog"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		ElectionName: "test-election",
	}
}

// TestAdminKey returns the admin key matching GetTestConfig
func TestAdminKey() string {
	cfg := GetTestConfig()
	return auth.GenerateAdminKey(cfg.ElectionName, cfg.AdminKeySalt)
}

// SinkRecorder is an in-process EventSink that captures emitted events
type SinkRecorder struct {
	mu     sync.Mutex
	events []election.Event
}

func (s *SinkRecorder) Emit(e election.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of everything emitted so far
func (s *SinkRecorder) Events() []election.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]election.Event(nil), s.events...)
}

// NewTestController creates a controller wired to the test admin key and a
// recording sink
func NewTestController(t *testing.T) (*election.Controller, *SinkRecorder) {
	t.Helper()

	cfg := GetTestConfig()
	sink := &SinkRecorder{}
	authz := auth.KeyAuthorizer{Election: cfg.ElectionName, Salt: cfg.AdminKeySalt}
	return election.NewController(authz, sink), sink
}

// SetupTestJournal opens an in-memory sqlite journal with the full schema
func SetupTestJournal(t *testing.T) (*sql.DB, *eventlog.Journal) {
	t.Helper()

	dbConn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the shared in-memory database alive
	dbConn.SetMaxOpenConns(1)
	t.Cleanup(func() { dbConn.Close() })

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return dbConn, eventlog.New(dbConn, GetTestConfig().ElectionName)
}

// RegisterTestVoters registers the given principals as the admin
func RegisterTestVoters(t *testing.T, ctrl *election.Controller, principals ...string) {
	t.Helper()

	adminKey := election.Principal(TestAdminKey())
	for _, p := range principals {
		if err := ctrl.RegisterVoter(adminKey, election.Principal(p)); err != nil {
			t.Fatalf("Failed to register test voter %s: %v", p, err)
		}
	}
}

// AdvanceTo walks the election forward to the target phase
func AdvanceTo(t *testing.T, ctrl *election.Controller, target election.Phase) {
	t.Helper()

	adminKey := election.Principal(TestAdminKey())
	for ctrl.Phase() < target {
		if err := ctrl.AdvancePhase(adminKey, ctrl.Phase()+1); err != nil {
			t.Fatalf("Failed to advance to %v: %v", target, err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
