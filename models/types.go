package models

import (
	"time"

	"github.com/danielhkuo/noteboard/ledger"
)

// Journal event kinds
const (
	EventNoteAdded    = "note_added"
	EventVoteCast     = "vote_cast"
	EventUserSwitched = "user_switched"
)

// Request types

type AddNoteRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

type VoteRequest struct {
	Type string `json:"type" validate:"required,oneof=upvote downvote"`
}

type SwitchUserRequest struct {
	User string `json:"user" validate:"required"`
}

// Response types

type AddNoteResponse struct {
	Index int             `json:"index"`
	Note  ledger.NoteView `json:"note"`
}

type VoteResponse struct {
	Result ledger.VoteResult `json:"result"`
	Note   ledger.NoteView   `json:"note"`
}

type SessionResponse struct {
	CurrentUser string   `json:"current_user"`
	Users       []string `json:"users"`
}

type BoardViewResponse struct {
	CurrentUser string            `json:"current_user"`
	Notes       []ledger.NoteView `json:"notes"`
}

// Domain types

// Event is one journal entry recording a ledger mutation
type Event struct {
	ID         string    `json:"id"`
	Seq        int64     `json:"seq"`
	Kind       string    `json:"kind"`
	Actor      string    `json:"actor"`
	NoteIndex  *int      `json:"note_index,omitempty"`
	Payload    string    `json:"payload"`
	RecordedAt time.Time `json:"recorded_at"`
}

type EventsResponse struct {
	Events []Event `json:"events"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
