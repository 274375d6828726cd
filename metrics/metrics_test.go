// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()

	m.NotesAdded.Inc()
	m.Votes.WithLabelValues("cast").Inc()
	m.Votes.WithLabelValues("cast").Inc()
	m.Votes.WithLabelValues("undo").Inc()

	if got := testutil.ToFloat64(m.NotesAdded); got != 1 {
		t.Errorf("Expected 1 note, got %v", got)
	}
	if got := testutil.ToFloat64(m.Votes.WithLabelValues("cast")); got != 2 {
		t.Errorf("Expected 2 casts, got %v", got)
	}
}

func TestSeparateRegistries(t *testing.T) {
	// New must be callable more than once without duplicate registration panics
	a := New()
	b := New()
	a.NotesAdded.Inc()

	if got := testutil.ToFloat64(b.NotesAdded); got != 0 {
		t.Errorf("Expected independent counters, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "POST /notes", http.StatusCreated, 15*time.Millisecond)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"noteboard_http_requests_total",
		`status="201"`,
		"noteboard_http_request_duration_seconds_bucket",
		"noteboard_notes_added_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected metrics output to contain %q", want)
		}
	}
}
