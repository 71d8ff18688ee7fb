// Package sqlite provides a SQLite-backed relay worker storage implementation.
package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/ulms/assignment-service/internal/platform/storage/sqlitemigrate"
	"github.com/ulms/assignment-service/internal/services/worker/storage"
	"github.com/ulms/assignment-service/internal/services/worker/storage/sqlite/migrations"
	_ "modernc.org/sqlite"

	"database/sql"
)

// Store persists relay worker state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite worker store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordAttempt stores one delivery attempt record.
func (s *Store) RecordAttempt(ctx context.Context, attempt storage.Attempt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(attempt.ID)
	eventID := strings.TrimSpace(attempt.EventID)
	if id == "" {
		return fmt.Errorf("attempt id is required")
	}
	if eventID == "" {
		return fmt.Errorf("event id is required")
	}
	createdAt := attempt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO delivery_attempts (id, event_id, event_type, attempt_number, outcome, last_error, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		id,
		eventID,
		attempt.EventType,
		attempt.AttemptNumber,
		attempt.Outcome,
		attempt.LastError,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// ListAttemptsByEvent returns every attempt recorded for one event in order.
func (s *Store) ListAttemptsByEvent(ctx context.Context, eventID string) ([]storage.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("event id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, event_id, event_type, attempt_number, outcome, last_error, created_at
FROM delivery_attempts
WHERE event_id = ?
ORDER BY created_at ASC, id ASC
`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]storage.Attempt, 0)
	for rows.Next() {
		var attempt storage.Attempt
		var createdAt int64
		if err := rows.Scan(
			&attempt.ID,
			&attempt.EventID,
			&attempt.EventType,
			&attempt.AttemptNumber,
			&attempt.Outcome,
			&attempt.LastError,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempt.CreatedAt = fromMillis(createdAt)
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}
