// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/noteboard/ledger"
	"github.com/danielhkuo/noteboard/metrics"
	"github.com/danielhkuo/noteboard/middleware"
	"github.com/danielhkuo/noteboard/models"
)

type NoteHandler struct {
	ledger  *ledger.Ledger
	journal Journal
	metrics *metrics.Metrics
}

func NewNoteHandler(l *ledger.Ledger, j Journal, m *metrics.Metrics) *NoteHandler {
	return &NoteHandler{ledger: l, journal: j, metrics: m}
}

// AddNote handles POST /notes
func (h *NoteHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req models.AddNoteRequest
	if !middleware.ParseAndValidate(w, r, &req) {
		return
	}

	view, err := h.ledger.AddNoteView(req.Text)
	if err != nil {
		writeLedgerError(w, r, h.metrics, err)
		return
	}
	index := view.Index
	h.metrics.NotesAdded.Inc()
	record(r, h.journal, models.EventNoteAdded, view.Author, &index, ledger.Note{
		Index:  index,
		Text:   view.Text,
		Author: view.Author,
	})

	slog.Info("note added", "index", index, "author", view.Author)

	middleware.JSONResponse(w, http.StatusCreated, models.AddNoteResponse{
		Index: index,
		Note:  view,
	})
}

// Vote handles POST /notes/{index}/vote
func (h *NoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Note not found")
		return
	}

	var req models.VoteRequest
	if !middleware.ParseAndValidate(w, r, &req) {
		return
	}

	vote, err := ledger.ParseVoteState(req.Type)
	if err != nil {
		writeLedgerError(w, r, h.metrics, err)
		return
	}

	result, view, err := h.ledger.UpdateVoteView(index, vote)
	if err != nil {
		writeLedgerError(w, r, h.metrics, err)
		return
	}
	h.metrics.Votes.WithLabelValues(result.Kind).Inc()
	record(r, h.journal, models.EventVoteCast, result.Voter, &index, result)

	slog.Info("vote updated",
		"index", index,
		"voter", result.Voter,
		"kind", result.Kind,
		"previous", result.Previous.String(),
		"current", result.Current.String(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Result: result,
		Note:   view,
	})
}

// View handles GET /notes/view
func (h *NoteHandler) View(w http.ResponseWriter, r *http.Request) {
	current, notes := h.ledger.Board()
	middleware.JSONResponse(w, http.StatusOK, models.BoardViewResponse{
		CurrentUser: current,
		Notes:       notes,
	})
}
