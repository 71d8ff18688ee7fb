// Package storage defines persistence contracts for relay worker state.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// AttemptOutcome is the result of one delivery attempt.
type AttemptOutcome = string

const (
	// AttemptSucceeded marks a delivered event.
	AttemptSucceeded AttemptOutcome = "succeeded"
	// AttemptRetry marks a failed attempt scheduled for retry.
	AttemptRetry AttemptOutcome = "retry"
	// AttemptDead marks the final attempt before dead-lettering.
	AttemptDead AttemptOutcome = "dead"
)

// Attempt records one delivery attempt of one outbox event.
type Attempt struct {
	ID            string
	EventID       string
	EventType     string
	AttemptNumber int
	Outcome       AttemptOutcome
	LastError     string
	CreatedAt     time.Time
}

// AttemptStore persists delivery attempt records.
type AttemptStore interface {
	RecordAttempt(ctx context.Context, attempt Attempt) error
	ListAttemptsByEvent(ctx context.Context, eventID string) ([]Attempt, error)
}
