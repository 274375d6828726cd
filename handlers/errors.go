// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/noteboard/ledger"
	"github.com/danielhkuo/noteboard/metrics"
	"github.com/danielhkuo/noteboard/middleware"
	"github.com/danielhkuo/noteboard/models"
)

// Journal is the event log the handlers write to after each mutation
type Journal interface {
	Record(ctx context.Context, kind, actor string, noteIndex *int, payload any) (models.Event, error)
	List(ctx context.Context, limit int) ([]models.Event, error)
}

// ledgerError maps a ledger error to a status code, message and metric reason
func ledgerError(err error) (int, string, string) {
	switch {
	case errors.Is(err, ledger.ErrInvalidIndex):
		return http.StatusNotFound, "Note not found", "invalid_index"
	case errors.Is(err, ledger.ErrSelfVote):
		return http.StatusForbidden, "Authors cannot vote on their own note", "self_vote"
	case errors.Is(err, ledger.ErrUnknownUser):
		return http.StatusBadRequest, "Unknown user", "unknown_user"
	case errors.Is(err, ledger.ErrEmptyText):
		return http.StatusBadRequest, "text cannot be empty", "empty_text"
	case errors.Is(err, ledger.ErrInvalidVote):
		return http.StatusBadRequest, "type must be upvote or downvote", "invalid_vote"
	default:
		return http.StatusInternalServerError, "Internal error", "internal"
	}
}

func writeLedgerError(w http.ResponseWriter, r *http.Request, m *metrics.Metrics, err error) {
	status, message, reason := ledgerError(err)
	m.Rejections.WithLabelValues(reason).Inc()
	if status == http.StatusInternalServerError {
		slog.Error("ledger operation failed", "error", err, "request_id", middleware.RequestID(r.Context()))
	} else {
		slog.Info("ledger operation rejected", "reason", reason, "error", err, "request_id", middleware.RequestID(r.Context()))
	}
	middleware.ErrorResponse(w, status, message)
}

// record appends to the journal. Failures are logged, never returned:
// the ledger has already changed by the time this runs.
func record(r *http.Request, j Journal, kind, actor string, noteIndex *int, payload any) {
	if j == nil {
		return
	}
	if _, err := j.Record(r.Context(), kind, actor, noteIndex, payload); err != nil {
		slog.Warn("failed to record journal event",
			"error", err,
			"kind", kind,
			"request_id", middleware.RequestID(r.Context()),
		)
	}
}
