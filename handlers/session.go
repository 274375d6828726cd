// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/noteboard/ledger"
	"github.com/danielhkuo/noteboard/metrics"
	"github.com/danielhkuo/noteboard/middleware"
	"github.com/danielhkuo/noteboard/models"
)

type SessionHandler struct {
	ledger  *ledger.Ledger
	journal Journal
	metrics *metrics.Metrics
}

func NewSessionHandler(l *ledger.Ledger, j Journal, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{ledger: l, journal: j, metrics: m}
}

// GetUser handles GET /session/user
func (h *SessionHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		CurrentUser: h.ledger.CurrentUser(),
		Users:       h.ledger.Users(),
	})
}

// SwitchUser handles POST /session/user
func (h *SessionHandler) SwitchUser(w http.ResponseWriter, r *http.Request) {
	var req models.SwitchUserRequest
	if !middleware.ParseAndValidate(w, r, &req) {
		return
	}

	previous, err := h.ledger.SwapUser(req.User)
	if err != nil {
		writeLedgerError(w, r, h.metrics, err)
		return
	}
	h.metrics.UserSwitches.Inc()
	record(r, h.journal, models.EventUserSwitched, req.User, nil, map[string]string{
		"from": previous,
		"to":   req.User,
	})

	slog.Info("user switched", "from", previous, "to", req.User)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		CurrentUser: req.User,
		Users:       h.ledger.Users(),
	})
}
