// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/noteboard/models"
)

var ErrUnknownKind = errors.New("unknown event kind")

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Store is an append-only log of ledger mutations for one server session.
// Rows from earlier sessions sharing the same database are never returned.
type Store struct {
	db        *sql.DB
	sessionID string

	mu  sync.Mutex
	seq int64
	now func() time.Time
}

// Open connects to the journal database and creates the schema.
// dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*Store, error) {
	driver := dbType
	if driver == "" {
		driver = "sqlite"
	}
	if driver != "sqlite" && driver != "postgres" {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	if driver == "sqlite" {
		// every pooled connection to :memory: would otherwise see its own database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping journal database: %w", err)
	}

	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database, creating the schema if needed
func New(db *sql.DB) (*Store, error) {
	if err := CreateSchema(db); err != nil {
		return nil, err
	}
	return &Store{
		db:        db,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}, nil
}

func (s *Store) SessionID() string {
	return s.sessionID
}

// Record appends one event. payload is stored as JSON.
func (s *Store) Record(ctx context.Context, kind, actor string, noteIndex *int, payload any) (models.Event, error) {
	switch kind {
	case models.EventNoteAdded, models.EventVoteCast, models.EventUserSwitched:
	default:
		return models.Event{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	// seq allocation and insert happen together so seq order matches row order
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := models.Event{
		ID:         uuid.NewString(),
		Seq:        s.seq + 1,
		Kind:       kind,
		Actor:      actor,
		NoteIndex:  noteIndex,
		Payload:    string(body),
		RecordedAt: s.now().UTC(),
	}

	var idx sql.NullInt64
	if noteIndex != nil {
		idx = sql.NullInt64{Int64: int64(*noteIndex), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO journal_event (id, session_id, seq, kind, actor, note_index, payload, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ev.ID, s.sessionID, ev.Seq, ev.Kind, ev.Actor, idx, ev.Payload, ev.RecordedAt.Format(time.RFC3339Nano))
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to insert event: %w", err)
	}

	s.seq = ev.Seq
	return ev, nil
}

// List returns up to limit of the most recent events, oldest first.
// limit <= 0 selects DefaultListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, kind, actor, note_index, payload, recorded_at
		FROM journal_event
		WHERE session_id = $1
		ORDER BY seq DESC
		LIMIT $2
	`, s.sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var ev models.Event
		var idx sql.NullInt64
		var recordedAt string
		if err := rows.Scan(&ev.ID, &ev.Seq, &ev.Kind, &ev.Actor, &idx, &ev.Payload, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if idx.Valid {
			i := int(idx.Int64)
			ev.NoteIndex = &i
		}
		ev.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse recorded_at: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
