// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/noteboard/handlers"
	"github.com/danielhkuo/noteboard/ledger"
	"github.com/danielhkuo/noteboard/metrics"
	"github.com/danielhkuo/noteboard/middleware"
)

func NewRouter(l *ledger.Ledger, j handlers.Journal, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	noteHandler := handlers.NewNoteHandler(l, j, m)
	sessionHandler := handlers.NewSessionHandler(l, j, m)
	eventsHandler := handlers.NewEventsHandler(j)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Notes
	mux.HandleFunc("POST /notes", wrap(noteHandler.AddNote))
	mux.HandleFunc("POST /notes/{index}/vote", wrap(noteHandler.Vote))
	mux.HandleFunc("GET /notes/view", wrap(noteHandler.View))

	// Acting user
	mux.HandleFunc("GET /session/user", wrap(sessionHandler.GetUser))
	mux.HandleFunc("POST /session/user", wrap(sessionHandler.SwitchUser))

	// Journal and metrics
	mux.HandleFunc("GET /events", wrap(eventsHandler.ListEvents))
	mux.Handle("GET /metrics", m.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("noteboard API v1"))
	})

	return mux
}
