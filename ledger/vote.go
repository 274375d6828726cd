// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"encoding/json"
	"fmt"
)

// VoteState is the directed vote one user holds on one note
type VoteState int

const (
	None VoteState = iota
	Upvote
	Downvote
)

func (v VoteState) String() string {
	switch v {
	case None:
		return "none"
	case Upvote:
		return "upvote"
	case Downvote:
		return "downvote"
	default:
		return fmt.Sprintf("VoteState(%d)", int(v))
	}
}

// contribution is what a vote in this state adds to a note's tally
func (v VoteState) contribution() int {
	switch v {
	case Upvote:
		return 1
	case Downvote:
		return -1
	default:
		return 0
	}
}

// ParseVoteState accepts the wire names "upvote", "downvote" and "none" (or "")
func ParseVoteState(s string) (VoteState, error) {
	switch s {
	case "", "none":
		return None, nil
	case "upvote":
		return Upvote, nil
	case "downvote":
		return Downvote, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrInvalidVote, s)
	}
}

func (v VoteState) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *VoteState) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseVoteState(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Transition kinds reported in VoteResult
const (
	KindCast   = "cast"
	KindUndo   = "undo"
	KindSwitch = "switch"
)

// VoteResult describes one resolved UpdateVote call
type VoteResult struct {
	Index      int       `json:"index"`
	Voter      string    `json:"voter"`
	Previous   VoteState `json:"previous"`
	Current    VoteState `json:"current"`
	Delta      int       `json:"delta"`
	TotalVotes int       `json:"total_votes"`
	Kind       string    `json:"kind"`
}

// resolve applies the toggle table to a (current, requested) pair.
// Requesting the state already held undoes it; anything else replaces it.
func resolve(current, requested VoteState) (next VoteState, delta int, kind string) {
	if current == requested {
		return None, -requested.contribution(), KindUndo
	}
	kind = KindCast
	if current != None {
		kind = KindSwitch
	}
	return requested, requested.contribution() - current.contribution(), kind
}
