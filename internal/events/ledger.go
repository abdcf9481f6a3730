// Package events keeps a local sqlite ledger of LLM requests, so every
// generation run can be audited and replayed from the workspace.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hayashik/onramp/internal/llm"
	"github.com/hayashik/onramp/internal/state"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS llm_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at    TEXT NOT NULL,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	chunks        INTEGER NOT NULL,
	output_chars  INTEGER NOT NULL,
	latency_ms    INTEGER NOT NULL,
	success       INTEGER NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	request_body  TEXT NOT NULL DEFAULT '',
	response_body TEXT NOT NULL DEFAULT ''
);
`

// Event is one persisted LLM request row.
type Event struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	Chunks       int
	OutputChars  int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Ledger is the sqlite-backed event store for one workspace. It
// implements llm.EventRecorder.
type Ledger struct {
	db *sql.DB
}

// Open connects the workspace ledger, applying pragmas and creating the
// schema on first use.
func Open(workspaceRoot string) (*Ledger, error) {
	path := state.Path(workspaceRoot, state.EventsDBFile)
	if err := state.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// applyPragmas configures SQLite for single-user workloads.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// AppendLLMRequest persists one request record.
func (l *Ledger) AppendLLMRequest(ctx context.Context, rec llm.RequestRecord) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(created_at, provider, model, purpose, chunks, output_chars,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		rec.Provider, rec.Model, rec.Purpose, rec.Chunks, rec.OutputChars,
		rec.LatencyMs, rec.Success, rec.ErrorMessage, rec.RequestBody, rec.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append LLM event: %w", err)
	}
	return nil
}

// List returns the most recent events, newest first.
func (l *Ledger) List(ctx context.Context, limit int) ([]Event, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, created_at, provider, model, purpose, chunks, output_chars,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list LLM events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Get returns one event by id. A missing id is (nil, nil).
func (l *Ledger) Get(ctx context.Context, id int64) (*Event, error) {
	row := l.db.QueryRowContext(ctx, `
		SELECT id, created_at, provider, model, purpose, chunks, output_chars,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_events WHERE id = ?`, id)

	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (Event, error) {
	var ev Event
	var createdAt string
	err := s.Scan(&ev.ID, &createdAt, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.Chunks, &ev.OutputChars, &ev.LatencyMs, &ev.Success,
		&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody)
	if err != nil {
		return Event{}, err
	}
	ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return ev, nil
}
