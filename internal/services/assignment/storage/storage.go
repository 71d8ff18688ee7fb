// Package storage defines persistence contracts for assignment service state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/filter"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness constraint rejected a write.
var ErrAlreadyExists = errors.New("record already exists")

// FinalizeOutcome reports what a finalize attempt did.
type FinalizeOutcome string

const (
	// FinalizeApplied means the submission transitioned to a terminal state.
	FinalizeApplied FinalizeOutcome = "applied"
	// FinalizeAlreadyTerminal means the submission was terminal before the
	// attempt and nothing changed.
	FinalizeAlreadyTerminal FinalizeOutcome = "already_terminal"
)

// SubmissionPage stores a page of submissions for one assignment.
type SubmissionPage struct {
	Submissions   []domain.Submission
	NextPageToken string
}

// AssignmentStore persists course-owned assignments.
type AssignmentStore interface {
	PutAssignment(ctx context.Context, assignment domain.Assignment) error
	GetAssignment(ctx context.Context, id string) (domain.Assignment, error)
	ListAssignmentsByCourse(ctx context.Context, courseID string) ([]domain.Assignment, error)
	ListAssignmentsByCourses(ctx context.Context, courseIDs []string) ([]domain.Assignment, error)
}

// SubmissionStore persists submissions and their lifecycle transitions.
//
// CreateSubmissionWithOutboxEvent inserts the submission row and its
// submission.received outbox event in one transaction so a stored submission
// always has its event enqueued. A duplicate (assignment_id, student_id)
// pair fails with ErrAlreadyExists.
//
// FinalizeSubmission is the only write path out of the pending state. The
// status flip and the outcome fields are written in one transaction guarded
// by a compare-and-swap on status = pending; the interface offers no way to
// change one without the other.
type SubmissionStore interface {
	GetSubmission(ctx context.Context, id string) (domain.Submission, error)
	GetSubmissionForStudent(ctx context.Context, assignmentID string, studentID string) (domain.Submission, error)
	ListSubmissionsByAssignment(ctx context.Context, assignmentID string, condition filter.SQLCondition, pageSize int, pageToken string) (SubmissionPage, error)
	CreateSubmissionWithOutboxEvent(ctx context.Context, submission domain.Submission, event OutboxEvent) error
	FinalizeSubmission(ctx context.Context, id string, outcome domain.AnalysisOutcome, now time.Time) (FinalizeOutcome, error)
}

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus = string

const (
	// OutboxStatusPending marks an event awaiting delivery.
	OutboxStatusPending OutboxStatus = "pending"
	// OutboxStatusLeased marks an event leased by a consumer.
	OutboxStatusLeased OutboxStatus = "leased"
	// OutboxStatusSucceeded marks a delivered event.
	OutboxStatusSucceeded OutboxStatus = "succeeded"
	// OutboxStatusDead marks an event abandoned after repeated failures.
	OutboxStatusDead OutboxStatus = "dead"
)

// OutboxEvent is one integration event awaiting at-least-once delivery.
// PartitionKey orders delivery per submission.
type OutboxEvent struct {
	ID             string
	EventType      string
	PartitionKey   string
	PayloadJSON    string
	DedupeKey      string
	Status         OutboxStatus
	AttemptCount   int
	NextAttemptAt  time.Time
	LeaseOwner     string
	LeaseExpiresAt time.Time
	LastError      string
	ProcessedAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OutboxStore persists integration outbox events and their lease lifecycle.
type OutboxStore interface {
	EnqueueOutboxEvent(ctx context.Context, event OutboxEvent) error
	GetOutboxEvent(ctx context.Context, id string) (OutboxEvent, error)
	LeaseOutboxEvents(ctx context.Context, consumer string, limit int, now time.Time, leaseTTL time.Duration) ([]OutboxEvent, error)
	MarkOutboxSucceeded(ctx context.Context, id string, consumer string, processedAt time.Time) error
	MarkOutboxRetry(ctx context.Context, id string, consumer string, nextAttemptAt time.Time, lastError string) error
	MarkOutboxDead(ctx context.Context, id string, consumer string, lastError string, processedAt time.Time) error
}

// Store combines every persistence contract of the assignment service.
type Store interface {
	AssignmentStore
	SubmissionStore
	OutboxStore
}
