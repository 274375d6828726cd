// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package journal records ledger mutations in a session-scoped event log.

# Opening a Store

	store, err := journal.Open("sqlite", "file::memory:?cache=shared")

The default is an in-memory SQLite database (modernc.org/sqlite), so the log
disappears with the process. DATABASE_TYPE=postgres uses lib/pq instead.
Each Store gets a fresh session ID; List only returns rows from its own
session.

# Schema

CreateSchema initializes the journal_event table:

	if err := journal.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Events

	store.Record(ctx, models.EventVoteCast, "User 2", &index, result)
	events, err := store.List(ctx, 50)

Kinds are note_added, vote_cast and user_switched. Sequence numbers are
assigned per session, starting at 1, in insertion order.
*/
package journal
