// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the noteboard API.

# Handler Types

Each handler is a struct holding the ledger, the journal and metrics:

  - NoteHandler: add notes, vote, render the board
  - SessionHandler: read and switch the acting user
  - EventsHandler: list this session's journal

	noteHandler := handlers.NewNoteHandler(l, store, m)

# Notes and Votes

	POST /notes              → AddNote (text)
	POST /notes/{index}/vote → Vote (type: upvote or downvote)
	GET  /notes/view         → View

Voting the same way twice undoes the vote; voting the other way switches
it. Authors get 403 on their own notes. Tallies are null in note views until
the acting user has voted, unless they wrote the note.

# Acting User

	GET  /session/user → GetUser
	POST /session/user → SwitchUser (user)

# Journal

Every successful mutation is appended to the Journal after the ledger
changes. Journal errors are logged and do not fail the request.

	GET /events?limit=N → ListEvents
*/
package handlers
