// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/noteboard/cliparse"
	"github.com/danielhkuo/noteboard/journal"
	"github.com/danielhkuo/noteboard/ledger"
)

// TestUsers is the user set shared by handler and router tests
var TestUsers = []string{"U1", "U2", "U3"}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		Users:        append([]string(nil), TestUsers...),
		DefaultUser:  "U1",
		Policy:       string(ledger.PolicyAdditive),
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  cliparse.DefaultSQLiteURL,
	}
}

// SetupTestLedger builds a fresh ledger acting as U1
func SetupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	l, err := ledger.New(ledger.Config{Users: TestUsers, DefaultUser: "U1"})
	if err != nil {
		t.Fatalf("Failed to create test ledger: %v", err)
	}
	return l
}

// SetupTestJournal opens an in-memory journal closed at test cleanup
func SetupTestJournal(t *testing.T) *journal.Store {
	t.Helper()

	store, err := journal.Open(cliparse.DatabaseSQLite, cliparse.DefaultSQLiteURL)
	if err != nil {
		t.Fatalf("Failed to open test journal: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// AddTestNote adds a note authored by author and restores the acting user
func AddTestNote(t *testing.T, l *ledger.Ledger, author, text string) int {
	t.Helper()

	prev := l.CurrentUser()
	if err := l.SwitchUser(author); err != nil {
		t.Fatalf("Failed to switch to %s: %v", author, err)
	}
	index, err := l.AddNote(text)
	if err != nil {
		t.Fatalf("Failed to add test note: %v", err)
	}
	if err := l.SwitchUser(prev); err != nil {
		t.Fatalf("Failed to switch back to %s: %v", prev, err)
	}
	return index
}

// CastTestVote votes as voter and restores the acting user
func CastTestVote(t *testing.T, l *ledger.Ledger, voter string, index int, vote ledger.VoteState) ledger.VoteResult {
	t.Helper()

	prev := l.CurrentUser()
	if err := l.SwitchUser(voter); err != nil {
		t.Fatalf("Failed to switch to %s: %v", voter, err)
	}
	res, err := l.UpdateVote(index, vote)
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
	if err := l.SwitchUser(prev); err != nil {
		t.Fatalf("Failed to switch back to %s: %v", prev, err)
	}
	return res
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
