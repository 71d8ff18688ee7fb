package domain

import (
	"fmt"
	"time"
)

// Status is the submission lifecycle state.
type Status string

const (
	// StatusPending is the initial state after a successful submit.
	StatusPending Status = "pending"
	// StatusAnalysisCompleted is the terminal success state.
	StatusAnalysisCompleted Status = "analysis_completed"
	// StatusAnalysisFailed is the terminal failure state.
	StatusAnalysisFailed Status = "analysis_failed"
)

// IsTerminal reports whether no further transition is defined for the status.
func (s Status) IsTerminal() bool {
	return s == StatusAnalysisCompleted || s == StatusAnalysisFailed
}

// ParseStatus validates a stored status value.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusAnalysisCompleted, StatusAnalysisFailed:
		return Status(value), nil
	default:
		return "", fmt.Errorf("unknown submission status %q", value)
	}
}

// Submission is one student's answer to one assignment. Exactly one
// submission may exist per (assignment, student) pair.
type Submission struct {
	ID           string
	AssignmentID string
	StudentID    string
	Content      string
	Status       Status

	// Analysis fields, populated only once the submission is terminal.
	PlagiarismCheck     bool
	Grading             float64
	FinalRecommendation string
	AnalyzedAt          time.Time
	ErrorMessage        string

	CreatedAt time.Time
}

// AnalysisResult carries the fields of a successful analysis.
type AnalysisResult struct {
	PlagiarismCheck     bool
	Grading             float64
	FinalRecommendation string
	AnalyzedAt          time.Time
}

// AnalysisFailure carries the fields of a failed analysis.
type AnalysisFailure struct {
	ErrorMessage string
}

// AnalysisOutcome is a tagged union of success and failure analysis
// payloads. Exactly one branch is set; construct values through
// CompletedOutcome or FailedOutcome so the finalize path cannot receive an
// open-ended field set.
type AnalysisOutcome struct {
	result  *AnalysisResult
	failure *AnalysisFailure
}

// CompletedOutcome builds a success outcome.
func CompletedOutcome(result AnalysisResult) AnalysisOutcome {
	return AnalysisOutcome{result: &result}
}

// FailedOutcome builds a failure outcome.
func FailedOutcome(errorMessage string) AnalysisOutcome {
	return AnalysisOutcome{failure: &AnalysisFailure{ErrorMessage: errorMessage}}
}

// Result returns the success payload when the outcome is a success.
func (o AnalysisOutcome) Result() (AnalysisResult, bool) {
	if o.result == nil {
		return AnalysisResult{}, false
	}
	return *o.result, true
}

// Failure returns the failure payload when the outcome is a failure.
func (o AnalysisOutcome) Failure() (AnalysisFailure, bool) {
	if o.failure == nil {
		return AnalysisFailure{}, false
	}
	return *o.failure, true
}

// TerminalStatus returns the status this outcome transitions a pending
// submission into.
func (o AnalysisOutcome) TerminalStatus() Status {
	if o.failure != nil {
		return StatusAnalysisFailed
	}
	return StatusAnalysisCompleted
}

// IsZero reports whether the outcome was not constructed through a branch
// constructor.
func (o AnalysisOutcome) IsZero() bool {
	return o.result == nil && o.failure == nil
}
