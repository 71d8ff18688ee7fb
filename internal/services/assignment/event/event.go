// Package event defines the integration event payloads exchanged with the
// analysis pipeline and the consumer that applies completed analyses.
package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

const (
	// TypeSubmissionReceived is emitted when a submission is accepted.
	TypeSubmissionReceived = "assignment.submission.received"
	// TypeAnalysisCompleted is consumed when the analysis pipeline finishes.
	TypeAnalysisCompleted = "assignment.analysis.completed"
)

// SubmissionReceived carries everything the analysis worker needs to grade a
// submission without a second round-trip.
type SubmissionReceived struct {
	SubmissionID       string `json:"submissionId"`
	AssignmentID       string `json:"assignmentId"`
	CourseID           string `json:"courseId"`
	StudentID          string `json:"studentId"`
	Content            string `json:"content"`
	ModelAnswer        string `json:"modelAnswer"`
	AssignmentQuestion string `json:"assignmentQuestion"`
	AssignmentTitle    string `json:"assignmentTitle"`
}

// SubmissionReceivedDedupeKey builds the outbox dedupe key for one
// submission's received event.
func SubmissionReceivedDedupeKey(submissionID string) string {
	return "submission_received:submission:" + submissionID + ":v1"
}

// NewSubmissionReceivedEvent builds the outbox event for an accepted
// submission. The submission id doubles as the partition key so downstream
// processing stays ordered per submission.
func NewSubmissionReceivedEvent(eventID string, submission domain.Submission, assignment domain.Assignment, createdAt time.Time) (storage.OutboxEvent, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return storage.OutboxEvent{}, fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(submission.ID) == "" {
		return storage.OutboxEvent{}, fmt.Errorf("submission id is required")
	}

	payload := SubmissionReceived{
		SubmissionID:       submission.ID,
		AssignmentID:       assignment.ID,
		CourseID:           assignment.CourseID,
		StudentID:          submission.StudentID,
		Content:            submission.Content,
		ModelAnswer:        assignment.ModelAnswer,
		AssignmentQuestion: assignment.Description,
		AssignmentTitle:    assignment.Title,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return storage.OutboxEvent{}, fmt.Errorf("encode submission received payload: %w", err)
	}

	return storage.OutboxEvent{
		ID:           eventID,
		EventType:    TypeSubmissionReceived,
		PartitionKey: submission.ID,
		PayloadJSON:  string(encoded),
		DedupeKey:    SubmissionReceivedDedupeKey(submission.ID),
		Status:       storage.OutboxStatusPending,
		CreatedAt:    createdAt,
	}, nil
}

// AnalysisCompleted is the payload of one finished analysis. Failures are
// discriminated by the explicit Error marker, never by field absence.
type AnalysisCompleted struct {
	SubmissionID        string    `json:"submissionId"`
	Error               bool      `json:"error"`
	ErrorMessage        string    `json:"errorMessage"`
	PlagiarismCheck     bool      `json:"plagiarismCheck"`
	Grading             float64   `json:"grading"`
	FinalRecommendation string    `json:"finalRecommendation"`
	Timestamp           time.Time `json:"timestamp"`
}

// DecodeAnalysisCompleted parses an analysis-completed payload into the
// submission id and its outcome union.
func DecodeAnalysisCompleted(payload []byte) (string, domain.AnalysisOutcome, error) {
	var completed AnalysisCompleted
	if err := json.Unmarshal(payload, &completed); err != nil {
		return "", domain.AnalysisOutcome{}, fmt.Errorf("decode analysis completed payload: %w", err)
	}
	submissionID := strings.TrimSpace(completed.SubmissionID)
	if submissionID == "" {
		return "", domain.AnalysisOutcome{}, fmt.Errorf("analysis completed payload has no submission id")
	}
	if completed.Error {
		message := strings.TrimSpace(completed.ErrorMessage)
		if message == "" {
			message = "analysis failed"
		}
		return submissionID, domain.FailedOutcome(message), nil
	}
	return submissionID, domain.CompletedOutcome(domain.AnalysisResult{
		PlagiarismCheck:     completed.PlagiarismCheck,
		Grading:             completed.Grading,
		FinalRecommendation: completed.FinalRecommendation,
		AnalyzedAt:          completed.Timestamp,
	}), nil
}
