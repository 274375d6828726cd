// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/noteboard/middleware"
	"github.com/danielhkuo/noteboard/models"
)

type EventsHandler struct {
	journal Journal
}

func NewEventsHandler(j Journal) *EventsHandler {
	return &EventsHandler{journal: j}
}

// ListEvents handles GET /events?limit=N
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.journal.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list journal events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{Events: events})
}
