// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the journal table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are RFC 3339 text so sqlite and postgres scan them the same way.
const schema = `
CREATE TABLE IF NOT EXISTS journal_event (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    seq BIGINT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('note_added', 'vote_cast', 'user_switched')),
    actor TEXT NOT NULL,
    note_index INTEGER,
    payload TEXT NOT NULL,
    recorded_at TEXT NOT NULL,
    UNIQUE (session_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_journal_event_session ON journal_event(session_id, seq);
`
