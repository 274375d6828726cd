// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the noteboard API server.

Noteboard is a small note board: users post short notes, other users upvote
or downvote them, and the tally is revealed to a voter once they have voted.

# Starting the Server

No configuration is required; the defaults give four users and an
in-memory journal:

	go run main.go

Or with flags:

	go run main.go -p 3318 -users "alice,bob,carol" -default-user bob

# Configuration

  - PORT (-p): Server port (default: 3318)
  - NOTEBOARD_USERS (-users): Comma-separated user list
  - NOTEBOARD_DEFAULT_USER (-default-user): Initial acting user
  - NOTEBOARD_POLICY (-policy): additive (default) or reset
  - DATABASE_TYPE (-t), DATABASE_URL (-d): Journal database

Values can also come from a .env file (-env-file).

# Architecture

  - ledger: Vote-state machine (notes, users, votes, acting user)
  - handlers: HTTP request handlers (notes, session, events)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON and validation helpers
  - journal: Session event log on sqlite or postgres
  - metrics: Prometheus collectors
  - models: Request/response types
  - cliparse: Configuration parsing

State lives in memory for the life of the process.
*/
package main
