package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/filter"
)

const submissionColumns = `
	id,
	assignment_id,
	student_id,
	content,
	status,
	plagiarism_check,
	grading,
	final_recommendation,
	analyzed_at,
	error_message,
	created_at`

func scanSubmission(scan func(dest ...any) error) (domain.Submission, error) {
	var submission domain.Submission
	var status string
	var plagiarismCheck int
	var analyzedAt sql.NullInt64
	var createdAt int64
	if err := scan(
		&submission.ID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.Content,
		&status,
		&plagiarismCheck,
		&submission.Grading,
		&submission.FinalRecommendation,
		&analyzedAt,
		&submission.ErrorMessage,
		&createdAt,
	); err != nil {
		return domain.Submission{}, err
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Submission{}, err
	}
	submission.Status = parsed
	submission.PlagiarismCheck = plagiarismCheck != 0
	if analyzedAt.Valid {
		submission.AnalyzedAt = fromMillis(analyzedAt.Int64)
	}
	submission.CreatedAt = fromMillis(createdAt)
	return submission, nil
}

// GetSubmission returns one submission by ID.
func (s *Store) GetSubmission(ctx context.Context, id string) (domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return domain.Submission{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Submission{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Submission{}, fmt.Errorf("submission id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT`+submissionColumns+`
FROM submissions
WHERE id = ?
`, id)
	submission, err := scanSubmission(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Submission{}, storage.ErrNotFound
		}
		return domain.Submission{}, fmt.Errorf("get submission: %w", err)
	}
	return submission, nil
}

// GetSubmissionForStudent returns the single submission one student made to
// one assignment.
func (s *Store) GetSubmissionForStudent(ctx context.Context, assignmentID string, studentID string) (domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return domain.Submission{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Submission{}, fmt.Errorf("storage is not configured")
	}
	assignmentID = strings.TrimSpace(assignmentID)
	studentID = strings.TrimSpace(studentID)
	if assignmentID == "" {
		return domain.Submission{}, fmt.Errorf("assignment id is required")
	}
	if studentID == "" {
		return domain.Submission{}, fmt.Errorf("student id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT`+submissionColumns+`
FROM submissions
WHERE assignment_id = ? AND student_id = ?
`, assignmentID, studentID)
	submission, err := scanSubmission(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Submission{}, storage.ErrNotFound
		}
		return domain.Submission{}, fmt.Errorf("get submission for student: %w", err)
	}
	return submission, nil
}

func encodeSubmissionPageToken(createdAtMillis int64, id string) string {
	raw := strconv.FormatInt(createdAtMillis, 10) + ":" + id
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeSubmissionPageToken(token string) (int64, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, "", fmt.Errorf("decode page token: %w", err)
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("malformed page token")
	}
	createdAtMillis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("malformed page token: %w", err)
	}
	return createdAtMillis, parts[1], nil
}

// ListSubmissionsByAssignment returns one page of an assignment's
// submissions ordered by creation time, optionally narrowed by a filter
// condition.
func (s *Store) ListSubmissionsByAssignment(ctx context.Context, assignmentID string, condition filter.SQLCondition, pageSize int, pageToken string) (storage.SubmissionPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.SubmissionPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SubmissionPage{}, fmt.Errorf("storage is not configured")
	}
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return storage.SubmissionPage{}, fmt.Errorf("assignment id is required")
	}
	if pageSize <= 0 {
		return storage.SubmissionPage{}, fmt.Errorf("page size must be greater than zero")
	}

	query := `
SELECT` + submissionColumns + `
FROM submissions
WHERE assignment_id = ?`
	args := []any{assignmentID}

	if !condition.IsEmpty() {
		query += " AND (" + condition.Clause + ")"
		args = append(args, condition.Params...)
	}

	if strings.TrimSpace(pageToken) != "" {
		afterMillis, afterID, err := decodeSubmissionPageToken(pageToken)
		if err != nil {
			return storage.SubmissionPage{}, err
		}
		query += " AND (created_at > ? OR (created_at = ? AND id > ?))"
		args = append(args, afterMillis, afterMillis, afterID)
	}

	// Fetch one extra row to detect whether another page exists.
	query += `
ORDER BY created_at ASC, id ASC
LIMIT ?`
	args = append(args, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return storage.SubmissionPage{}, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]domain.Submission, 0, pageSize)
	for rows.Next() {
		submission, scanErr := scanSubmission(rows.Scan)
		if scanErr != nil {
			return storage.SubmissionPage{}, fmt.Errorf("scan submission: %w", scanErr)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return storage.SubmissionPage{}, fmt.Errorf("iterate submissions: %w", err)
	}

	page := storage.SubmissionPage{Submissions: submissions}
	if len(submissions) > pageSize {
		page.Submissions = submissions[:pageSize]
		last := page.Submissions[pageSize-1]
		page.NextPageToken = encodeSubmissionPageToken(toMillis(last.CreatedAt), last.ID)
	}
	return page, nil
}

// CreateSubmissionWithOutboxEvent inserts the submission and its integration
// outbox event in one transaction. A duplicate (assignment_id, student_id)
// pair fails with storage.ErrAlreadyExists.
func (s *Store) CreateSubmissionWithOutboxEvent(ctx context.Context, submission domain.Submission, event storage.OutboxEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(submission.ID)
	assignmentID := strings.TrimSpace(submission.AssignmentID)
	studentID := strings.TrimSpace(submission.StudentID)
	if id == "" {
		return fmt.Errorf("submission id is required")
	}
	if assignmentID == "" {
		return fmt.Errorf("assignment id is required")
	}
	if studentID == "" {
		return fmt.Errorf("student id is required")
	}
	if submission.Status != domain.StatusPending {
		return fmt.Errorf("new submissions must be pending")
	}
	createdAt := submission.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start submission transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
INSERT INTO submissions (id, assignment_id, student_id, content, status, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`,
		id,
		assignmentID,
		studentID,
		submission.Content,
		string(submission.Status),
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	if err := enqueueOutboxEvent(ctx, tx, event); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submission transaction: %w", err)
	}
	return nil
}

// FinalizeSubmission applies an analysis outcome to a pending submission.
// The status flip and the outcome fields are written together under a
// compare-and-swap on status = pending, so concurrent finalizes apply once.
func (s *Store) FinalizeSubmission(ctx context.Context, id string, outcome domain.AnalysisOutcome, now time.Time) (storage.FinalizeOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("submission id is required")
	}
	if outcome.IsZero() {
		return "", fmt.Errorf("analysis outcome is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var result sql.Result
	var err error
	if success, ok := outcome.Result(); ok {
		analyzedAt := success.AnalyzedAt
		if analyzedAt.IsZero() {
			analyzedAt = now
		}
		result, err = s.sqlDB.ExecContext(ctx, `
UPDATE submissions
SET
	status = ?,
	plagiarism_check = ?,
	grading = ?,
	final_recommendation = ?,
	analyzed_at = ?,
	error_message = ''
WHERE id = ?
AND status = ?
`,
			string(domain.StatusAnalysisCompleted),
			boolToInt(success.PlagiarismCheck),
			success.Grading,
			success.FinalRecommendation,
			toMillis(analyzedAt),
			id,
			string(domain.StatusPending),
		)
	} else {
		failure, _ := outcome.Failure()
		result, err = s.sqlDB.ExecContext(ctx, `
UPDATE submissions
SET
	status = ?,
	error_message = ?,
	analyzed_at = ?
WHERE id = ?
AND status = ?
`,
			string(domain.StatusAnalysisFailed),
			failure.ErrorMessage,
			toMillis(now),
			id,
			string(domain.StatusPending),
		)
	}
	if err != nil {
		return "", fmt.Errorf("finalize submission: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("finalize rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return storage.FinalizeApplied, nil
	}

	// Nothing matched the compare-and-swap. Distinguish a missing record
	// from one already in a terminal state.
	current, err := s.GetSubmission(ctx, id)
	if err != nil {
		return "", err
	}
	if current.Status.IsTerminal() {
		return storage.FinalizeAlreadyTerminal, nil
	}
	return "", fmt.Errorf("finalize submission %s: no transition applied from status %q", id, current.Status)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
