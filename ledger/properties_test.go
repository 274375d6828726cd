// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// =============================================================================
// Generators
// =============================================================================

func usersGenerator() *rapid.Generator[[]string] {
	return rapid.Custom(func(t *rapid.T) []string {
		n := rapid.IntRange(2, 6).Draw(t, "userCount")
		users := make([]string, n)
		for i := range users {
			users[i] = fmt.Sprintf("user-%d", i)
		}
		return users
	})
}

func voteGenerator() *rapid.Generator[VoteState] {
	return rapid.SampledFrom([]VoteState{Upvote, Downvote})
}

func noteTextGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 ]{0,12}[A-Za-z0-9]`)
}

// randomLedger drives a ledger through a random sequence of operations
func randomLedger(t *rapid.T) *Ledger {
	users := usersGenerator().Draw(t, "users")
	l, err := New(Config{Users: users})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	steps := rapid.IntRange(0, 40).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		switch rapid.IntRange(0, 2).Draw(t, "op") {
		case 0:
			if _, err := l.AddNote(noteTextGenerator().Draw(t, "text")); err != nil {
				t.Fatalf("AddNote: %v", err)
			}
		case 1:
			if err := l.SwitchUser(rapid.SampledFrom(users).Draw(t, "user")); err != nil {
				t.Fatalf("SwitchUser: %v", err)
			}
		case 2:
			if len(l.notes) == 0 {
				continue
			}
			idx := rapid.IntRange(0, len(l.notes)-1).Draw(t, "index")
			_, _ = l.UpdateVote(idx, voteGenerator().Draw(t, "vote"))
		}
	}
	return l
}

// pickVotableNote adds a note by someone else and switches to a voter
func pickVotableNote(t *rapid.T, l *Ledger) (int, string) {
	users := l.Users()
	author := rapid.SampledFrom(users).Draw(t, "author")
	if err := l.SwitchUser(author); err != nil {
		t.Fatalf("SwitchUser: %v", err)
	}
	idx, err := l.AddNote("target")
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	var voters []string
	for _, u := range users {
		if u != author {
			voters = append(voters, u)
		}
	}
	voter := rapid.SampledFrom(voters).Draw(t, "voter")
	if err := l.SwitchUser(voter); err != nil {
		t.Fatalf("SwitchUser: %v", err)
	}
	return idx, voter
}

// =============================================================================
// Properties
// =============================================================================

func TestPropertyToggleIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := randomLedger(t)
		idx, voter := pickVotableNote(t, l)
		vote := voteGenerator().Draw(t, "vote")

		before, _ := l.Note(idx)
		prior, _ := l.VoteOf(voter, idx)
		if prior != None {
			t.Fatalf("fresh note has vote %s", prior)
		}

		if _, err := l.UpdateVote(idx, vote); err != nil {
			t.Fatalf("first vote: %v", err)
		}
		if _, err := l.UpdateVote(idx, vote); err != nil {
			t.Fatalf("second vote: %v", err)
		}

		after, _ := l.Note(idx)
		if after.TotalVotes != before.TotalVotes {
			t.Fatalf("tally %d, want %d", after.TotalVotes, before.TotalVotes)
		}
		if v, _ := l.VoteOf(voter, idx); v != None {
			t.Fatalf("vote %s after double toggle, want none", v)
		}
	})
}

func TestPropertySwitchReverses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := randomLedger(t)
		idx, voter := pickVotableNote(t, l)

		res, err := l.UpdateVote(idx, Upvote)
		if err != nil {
			t.Fatalf("upvote: %v", err)
		}
		start := res.TotalVotes

		res, err = l.UpdateVote(idx, Downvote)
		if err != nil {
			t.Fatalf("downvote: %v", err)
		}
		if res.TotalVotes != start-2 || res.Current != Downvote {
			t.Fatalf("switch to down: tally %d state %s", res.TotalVotes, res.Current)
		}

		res, err = l.UpdateVote(idx, Upvote)
		if err != nil {
			t.Fatalf("upvote again: %v", err)
		}
		if res.TotalVotes != start || res.Current != Upvote {
			t.Fatalf("switch to up: tally %d state %s", res.TotalVotes, res.Current)
		}
		if v, _ := l.VoteOf(voter, idx); v != Upvote {
			t.Fatalf("cell %s, want upvote", v)
		}
	})
}

func TestPropertyTallyMatchesCellsAndBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := randomLedger(t)
		bound := len(l.users) - 1

		for _, note := range l.Notes() {
			sum := 0
			for _, u := range l.users {
				v := l.votes[u][note.Index]
				if u == note.Author && v != None {
					t.Fatalf("author %s holds %s on own note %d", u, v, note.Index)
				}
				sum += v.contribution()
			}
			if sum != note.TotalVotes {
				t.Fatalf("note %d tally %d, cells sum to %d", note.Index, note.TotalVotes, sum)
			}
			if note.TotalVotes < -bound || note.TotalVotes > bound {
				t.Fatalf("note %d tally %d outside ±%d", note.Index, note.TotalVotes, bound)
			}
		}
	})
}

func TestPropertyVisibilityGate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := randomLedger(t)
		current := l.CurrentUser()

		for _, view := range l.RenderState() {
			isAuthor := view.Author == current
			want := isAuthor || view.MyVote != None
			if view.ShowTally != want {
				t.Fatalf("note %d showTally %v, want %v", view.Index, view.ShowTally, want)
			}
			if view.CanVote == isAuthor {
				t.Fatalf("note %d canVote %v for author=%v", view.Index, view.CanVote, isAuthor)
			}
			if (view.Tally != nil) != view.ShowTally {
				t.Fatalf("note %d tally presence disagrees with showTally", view.Index)
			}
		}
	})
}

func TestPropertyIndexStability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := randomLedger(t)
		before := l.Notes()

		if err := l.SwitchUser(rapid.SampledFrom(l.Users()).Draw(t, "user")); err != nil {
			t.Fatalf("SwitchUser: %v", err)
		}
		idx, err := l.AddNote(noteTextGenerator().Draw(t, "text"))
		if err != nil {
			t.Fatalf("AddNote: %v", err)
		}
		if idx != len(before) {
			t.Fatalf("new index %d, want %d", idx, len(before))
		}

		after := l.Notes()
		for i, n := range before {
			if after[i] != n {
				t.Fatalf("note %d changed from %+v to %+v", i, n, after[i])
			}
		}
	})
}
