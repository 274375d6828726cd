// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

var (
	ErrInvalidIndex  = errors.New("invalid note index")
	ErrUnknownUser   = errors.New("unknown user")
	ErrEmptyText     = errors.New("note text is empty")
	ErrSelfVote      = errors.New("authors cannot vote on their own note")
	ErrInvalidVote   = errors.New("invalid vote type")
	ErrNoUsers       = errors.New("at least one user is required")
	ErrDuplicateUser = errors.New("duplicate or empty user")
	ErrInvalidPolicy = errors.New("invalid reinitialization policy")
)
