// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"strings"
	"sync"
)

// Policy controls how the vote matrix is extended when a note is added
type Policy string

const (
	// PolicyAdditive adds None cells for the new note and keeps every existing cell
	PolicyAdditive Policy = "additive"
	// PolicyReset resets every cell to None on each AddNote, leaving tallies alone
	PolicyReset Policy = "reset"
)

// ParsePolicy maps a config string to a Policy; "" selects PolicyAdditive
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyAdditive:
		return PolicyAdditive, nil
	case PolicyReset:
		return PolicyReset, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Config is the fixed setup of a ledger: its users, the first acting user
// and the reinitialization policy.
type Config struct {
	Users       []string
	DefaultUser string
	Policy      Policy
}

// Note is a stored note with its raw tally
type Note struct {
	Index      int    `json:"index"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	TotalVotes int    `json:"total_votes"`
}

// NoteView is a note as seen by the current user.
// Tally is nil when the current user may not see it.
type NoteView struct {
	Index     int       `json:"index"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CanVote   bool      `json:"can_vote"`
	MyVote    VoteState `json:"my_vote"`
	ShowTally bool      `json:"show_tally"`
	Tally     *int      `json:"tally"`
}

// Ledger owns the notes, the fixed user set, the per-user vote matrix and the
// acting user. All methods are safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	policy  Policy
	users   []string
	members map[string]bool
	notes   []Note
	votes   map[string]map[int]VoteState
	current string
}

// New builds a ledger from cfg, validating the user set and default user
func New(cfg Config) (*Ledger, error) {
	if len(cfg.Users) == 0 {
		return nil, ErrNoUsers
	}

	policy, err := ParsePolicy(string(cfg.Policy))
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		policy:  policy,
		users:   make([]string, 0, len(cfg.Users)),
		members: make(map[string]bool, len(cfg.Users)),
		votes:   make(map[string]map[int]VoteState, len(cfg.Users)),
	}
	for _, u := range cfg.Users {
		if u == "" || l.members[u] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUser, u)
		}
		l.users = append(l.users, u)
		l.members[u] = true
		l.votes[u] = make(map[int]VoteState)
	}

	l.current = l.users[0]
	if cfg.DefaultUser != "" {
		if !l.members[cfg.DefaultUser] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownUser, cfg.DefaultUser)
		}
		l.current = cfg.DefaultUser
	}

	return l, nil
}

// AddNote appends a note authored by the current user and returns its index
func (l *Ledger) AddNote(text string) (int, error) {
	view, err := l.AddNoteView(text)
	return view.Index, err
}

// AddNoteView is AddNote returning the new note as seen by its author,
// built under the same lock as the insert.
func (l *Ledger) AddNoteView(text string) (NoteView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoteView{}, ErrEmptyText
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	index := len(l.notes)
	l.notes = append(l.notes, Note{
		Index:  index,
		Text:   text,
		Author: l.current,
	})
	l.initializeVotes()

	return l.view(index), nil
}

// initializeVotes brings every user's row up to the current note count.
// Caller must hold l.mu.
func (l *Ledger) initializeVotes() {
	for _, u := range l.users {
		if l.policy == PolicyReset {
			l.votes[u] = make(map[int]VoteState, len(l.notes))
		}
		row := l.votes[u]
		for i := range l.notes {
			if _, ok := row[i]; !ok {
				row[i] = None
			}
		}
	}
}

// UpdateVote toggles the current user's vote on a note.
// Repeating the held vote undoes it; the opposite vote switches it.
func (l *Ledger) UpdateVote(index int, vote VoteState) (VoteResult, error) {
	result, _, err := l.UpdateVoteView(index, vote)
	return result, err
}

// UpdateVoteView is UpdateVote that also returns the note as seen by the
// voter, read under the same lock as the vote.
func (l *Ledger) UpdateVoteView(index int, vote VoteState) (VoteResult, NoteView, error) {
	if vote != Upvote && vote != Downvote {
		return VoteResult{}, NoteView{}, fmt.Errorf("%w: %s", ErrInvalidVote, vote)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.notes) {
		return VoteResult{}, NoteView{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	note := &l.notes[index]
	if note.Author == l.current {
		return VoteResult{}, NoteView{}, fmt.Errorf("%w: %q on note %d", ErrSelfVote, l.current, index)
	}

	row := l.votes[l.current]
	previous := row[index]
	next, delta, kind := resolve(previous, vote)

	row[index] = next
	note.TotalVotes += delta

	result := VoteResult{
		Index:      index,
		Voter:      l.current,
		Previous:   previous,
		Current:    next,
		Delta:      delta,
		TotalVotes: note.TotalVotes,
		Kind:       kind,
	}
	return result, l.view(index), nil
}

// SwitchUser changes the acting user
func (l *Ledger) SwitchUser(user string) error {
	_, err := l.SwapUser(user)
	return err
}

// SwapUser changes the acting user and returns the one it replaced
func (l *Ledger) SwapUser(user string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.members[user] {
		return "", fmt.Errorf("%w: %q", ErrUnknownUser, user)
	}
	previous := l.current
	l.current = user
	return previous, nil
}

// RenderState projects every note for the current user, in index order
func (l *Ledger) RenderState() []NoteView {
	_, views := l.Board()
	return views
}

// Board returns the current user together with RenderState, read atomically
func (l *Ledger) Board() (string, []NoteView) {
	l.mu.Lock()
	defer l.mu.Unlock()

	views := make([]NoteView, 0, len(l.notes))
	for i := range l.notes {
		views = append(views, l.view(i))
	}
	return l.current, views
}

// View projects a single note for the current user
func (l *Ledger) View(index int) (NoteView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.notes) {
		return NoteView{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return l.view(index), nil
}

// view applies the visibility gate: authors always see the tally, other
// users only after casting a vote. Caller must hold l.mu.
func (l *Ledger) view(index int) NoteView {
	note := l.notes[index]
	canVote := note.Author != l.current
	myVote := l.votes[l.current][index]
	showTally := !canVote || myVote != None

	v := NoteView{
		Index:     note.Index,
		Text:      note.Text,
		Author:    note.Author,
		CanVote:   canVote,
		MyVote:    myVote,
		ShowTally: showTally,
	}
	if showTally {
		tally := note.TotalVotes
		v.Tally = &tally
	}
	return v
}

// CurrentUser returns the acting user
func (l *Ledger) CurrentUser() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Users returns the fixed user set in configured order
func (l *Ledger) Users() []string {
	// users never changes after New
	out := make([]string, len(l.users))
	copy(out, l.users)
	return out
}

// Policy returns the policy applied on AddNote
func (l *Ledger) Policy() Policy {
	return l.policy
}

// Notes returns a copy of every note, including hidden tallies
func (l *Ledger) Notes() []Note {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Note, len(l.notes))
	copy(out, l.notes)
	return out
}

// Note returns the note at index with its tally, regardless of visibility
func (l *Ledger) Note(index int) (Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.notes) {
		return Note{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return l.notes[index], nil
}

// VoteOf returns the vote user holds on the note at index
func (l *Ledger) VoteOf(user string, index int) (VoteState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.members[user] {
		return None, fmt.Errorf("%w: %q", ErrUnknownUser, user)
	}
	if index < 0 || index >= len(l.notes) {
		return None, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return l.votes[user][index], nil
}
