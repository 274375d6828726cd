// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the note board's vote-state machine.

# Ledger

A Ledger is built from a fixed user list and owns every note and vote:

	l, err := ledger.New(ledger.Config{
		Users:       []string{"User 1", "User 2"},
		DefaultUser: "User 1",
	})

The acting user is changed with SwitchUser. Notes are added with AddNote and
are authored by whoever is acting at the time.

# Voting

Each (user, note) cell holds None, Upvote or Downvote. UpdateVote resolves
the cell from its current state and the requested vote:

	None → Up   : Up,   +1      None → Down : Down, -1
	Up   → Up   : None, -1      Down → Down : None, +1
	Up   → Down : Down, -2      Down → Up   : Up,   +2

Authors cannot vote on their own notes (ErrSelfVote).

# Visibility

RenderState returns a NoteView per note. The author always sees the tally;
any other user sees it only after casting a vote.

# Reinitialization Policy

PolicyAdditive (the default) only ever adds None cells when a note is added.
PolicyReset clears every cell on each AddNote but keeps tallies, so the
tally can drift from the cells.
*/
package ledger
