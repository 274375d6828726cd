// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and journal types for the API.

# Request Types

Types for parsing incoming JSON, with validator tags:

  - AddNoteRequest: text
  - VoteRequest: type (upvote or downvote)
  - SwitchUserRequest: user

# Response Types

Types for JSON responses:

  - AddNoteResponse: index, note (as seen by the author)
  - VoteResponse: result (previous/current vote, delta, tally), note
  - SessionResponse: current_user, users
  - BoardViewResponse: current_user, notes
  - EventsResponse: events

Note views come from ledger.NoteView; tally is null when hidden from the
current user.

# Journal Types

Event records one ledger mutation (note_added, vote_cast, user_switched)
with a JSON payload describing it.

# Error Response

All errors return ErrorResponse:

	{"error": "Not Found", "message": "Note not found"}
*/
package models
