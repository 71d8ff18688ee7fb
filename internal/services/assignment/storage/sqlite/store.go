// Package sqlite provides a SQLite-backed assignment storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/ulms/assignment-service/internal/platform/storage/sqlitemigrate"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists assignment service state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite assignment store and applies embedded migrations.
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

// PutAssignment upserts one assignment record. This is the seed/admin write
// path; the service itself only reads assignments.
func (s *Store) PutAssignment(ctx context.Context, assignment domain.Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(assignment.ID)
	courseID := strings.TrimSpace(assignment.CourseID)
	if id == "" {
		return fmt.Errorf("assignment id is required")
	}
	if courseID == "" {
		return fmt.Errorf("course id is required")
	}
	createdAt := assignment.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := assignment.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	var dueDate sql.NullInt64
	if !assignment.DueDate.IsZero() {
		dueDate = sql.NullInt64{Int64: toMillis(assignment.DueDate), Valid: true}
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO assignments (id, course_id, title, description, model_answer, due_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	course_id = excluded.course_id,
	title = excluded.title,
	description = excluded.description,
	model_answer = excluded.model_answer,
	due_date = excluded.due_date,
	updated_at = excluded.updated_at
`,
		id,
		courseID,
		assignment.Title,
		assignment.Description,
		assignment.ModelAnswer,
		dueDate,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put assignment: %w", err)
	}
	return nil
}

const assignmentColumns = `
	id,
	course_id,
	title,
	description,
	model_answer,
	due_date,
	created_at,
	updated_at`

func scanAssignment(scan func(dest ...any) error) (domain.Assignment, error) {
	var assignment domain.Assignment
	var dueDate sql.NullInt64
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&assignment.ID,
		&assignment.CourseID,
		&assignment.Title,
		&assignment.Description,
		&assignment.ModelAnswer,
		&dueDate,
		&createdAt,
		&updatedAt,
	); err != nil {
		return domain.Assignment{}, err
	}
	if dueDate.Valid {
		assignment.DueDate = fromMillis(dueDate.Int64)
	}
	assignment.CreatedAt = fromMillis(createdAt)
	assignment.UpdatedAt = fromMillis(updatedAt)
	return assignment, nil
}

// GetAssignment returns one assignment by ID.
func (s *Store) GetAssignment(ctx context.Context, id string) (domain.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Assignment{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Assignment{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Assignment{}, fmt.Errorf("assignment id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT`+assignmentColumns+`
FROM assignments
WHERE id = ?
`, id)
	assignment, err := scanAssignment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Assignment{}, storage.ErrNotFound
		}
		return domain.Assignment{}, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

// ListAssignmentsByCourse returns every assignment owned by one course.
func (s *Store) ListAssignmentsByCourse(ctx context.Context, courseID string) ([]domain.Assignment, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, fmt.Errorf("course id is required")
	}
	return s.ListAssignmentsByCourses(ctx, []string{courseID})
}

// ListAssignmentsByCourses returns assignments for a set of courses ordered
// by creation time. An empty course set yields an empty list.
func (s *Store) ListAssignmentsByCourses(ctx context.Context, courseIDs []string) ([]domain.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	cleaned := make([]string, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		courseID = strings.TrimSpace(courseID)
		if courseID == "" {
			continue
		}
		cleaned = append(cleaned, courseID)
	}
	if len(cleaned) == 0 {
		return []domain.Assignment{}, nil
	}

	placeholders := strings.Repeat("?, ", len(cleaned))
	placeholders = strings.TrimSuffix(placeholders, ", ")
	args := make([]any, 0, len(cleaned))
	for _, courseID := range cleaned {
		args = append(args, courseID)
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT`+assignmentColumns+`
FROM assignments
WHERE course_id IN (`+placeholders+`)
ORDER BY created_at ASC, id ASC
`, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]domain.Assignment, 0)
	for rows.Next() {
		assignment, scanErr := scanAssignment(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scan assignment: %w", scanErr)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return assignments, nil
}
