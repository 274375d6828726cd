// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - Users: Fixed user list (default: User 1 … User 4)
  - DefaultUser: Initial acting user (default: first user)
  - Policy: Vote matrix policy on note creation, additive or reset (default: additive)
  - DatabaseType: Journal driver, sqlite or postgres (default: sqlite)
  - DatabaseURL: Journal connection string (default: in-memory sqlite)

# CLI Flags

	-p             Server port
	-users         Comma-separated user list
	-default-user  Initial acting user
	-policy        additive or reset
	-t             Database type
	-d             Database URL
	-env-file      Dotenv file (default: .env, missing file ignored)

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	NOTEBOARD_USERS        → -users
	NOTEBOARD_DEFAULT_USER → -default-user
	NOTEBOARD_POLICY       → -policy
	DATABASE_TYPE          → -t
	DATABASE_URL           → -d

CLI flags take precedence over environment variables, and environment
variables take precedence over the dotenv file.

# Validation

ParseFlags returns an error when:

  - PORT is not a number
  - the user list is blank
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres

User membership and policy names are checked by ledger.New.

# Journal Storage

The default sqlite journal lives in memory and disappears with the process.
A postgres journal keeps its rows, but it is a write-only audit log: each
run lists only the events of its own session and never reads earlier
sessions back, so board state always starts empty.
*/
package cliparse
