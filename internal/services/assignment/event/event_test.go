package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"google.golang.org/grpc"

	analysisv1 "github.com/ulms/assignment-service/api/gen/go/analysis/v1"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

func TestNewSubmissionReceivedEvent(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	submission := domain.Submission{
		ID:           "s1",
		AssignmentID: "a1",
		StudentID:    "student-1",
		Content:      "my answer",
		Status:       domain.StatusPending,
	}
	assignment := domain.Assignment{
		ID:          "a1",
		CourseID:    "course-1",
		Title:       "Essay on Climate Change",
		Description: "Discuss the impact of climate change.",
		ModelAnswer: "Climate change impacts include...",
	}

	outboxEvent, err := NewSubmissionReceivedEvent("e1", submission, assignment, now)
	if err != nil {
		t.Fatalf("new event: %v", err)
	}
	if outboxEvent.EventType != TypeSubmissionReceived {
		t.Fatalf("event type = %q", outboxEvent.EventType)
	}
	if outboxEvent.PartitionKey != "s1" {
		t.Fatalf("partition key = %q, want s1", outboxEvent.PartitionKey)
	}
	if outboxEvent.DedupeKey != "submission_received:submission:s1:v1" {
		t.Fatalf("dedupe key = %q", outboxEvent.DedupeKey)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(outboxEvent.PayloadJSON), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	want := map[string]string{
		"submissionId":       "s1",
		"assignmentId":       "a1",
		"courseId":           "course-1",
		"studentId":          "student-1",
		"content":            "my answer",
		"modelAnswer":        "Climate change impacts include...",
		"assignmentQuestion": "Discuss the impact of climate change.",
		"assignmentTitle":    "Essay on Climate Change",
	}
	for key, value := range want {
		if payload[key] != value {
			t.Fatalf("payload[%q] = %v, want %q", key, payload[key], value)
		}
	}
}

func TestDecodeAnalysisCompletedSuccess(t *testing.T) {
	payload := `{
		"submissionId": "s1",
		"plagiarismCheck": true,
		"grading": 91.5,
		"finalRecommendation": "Well argued.",
		"timestamp": "2025-01-20T09:00:00Z"
	}`

	submissionID, outcome, err := DecodeAnalysisCompleted([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if submissionID != "s1" {
		t.Fatalf("submission id = %q", submissionID)
	}
	result, ok := outcome.Result()
	if !ok {
		t.Fatal("expected success outcome")
	}
	if !result.PlagiarismCheck || result.Grading != 91.5 || result.FinalRecommendation != "Well argued." {
		t.Fatalf("result = %+v", result)
	}
	if !result.AnalyzedAt.Equal(time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("analyzed at = %v", result.AnalyzedAt)
	}
}

func TestDecodeAnalysisCompletedFailure(t *testing.T) {
	payload := `{"submissionId": "s1", "error": true, "errorMessage": "model timeout"}`

	submissionID, outcome, err := DecodeAnalysisCompleted([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if submissionID != "s1" {
		t.Fatalf("submission id = %q", submissionID)
	}
	failure, ok := outcome.Failure()
	if !ok {
		t.Fatal("expected failure outcome")
	}
	if failure.ErrorMessage != "model timeout" {
		t.Fatalf("error message = %q", failure.ErrorMessage)
	}
}

func TestDecodeAnalysisCompletedErrorMarkerWins(t *testing.T) {
	// The explicit marker discriminates, not field absence: result fields
	// alongside error=true still mean failure.
	payload := `{"submissionId": "s1", "error": true, "grading": 99}`

	_, outcome, err := DecodeAnalysisCompleted([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := outcome.Failure(); !ok {
		t.Fatal("expected failure outcome when marker is set")
	}
}

func TestDecodeAnalysisCompletedRequiresSubmissionID(t *testing.T) {
	if _, _, err := DecodeAnalysisCompleted([]byte(`{"grading": 50}`)); err == nil {
		t.Fatal("expected error for missing submission id")
	}
}

type brokerAck struct {
	eventID string
	outcome analysisv1.CompletedAckOutcome
}

type fakeBroker struct {
	events []*analysisv1.BrokerEvent
	acks   []brokerAck
}

func (f *fakeBroker) PublishSubmission(ctx context.Context, in *analysisv1.PublishSubmissionRequest, opts ...grpc.CallOption) (*analysisv1.PublishSubmissionResponse, error) {
	return &analysisv1.PublishSubmissionResponse{}, nil
}

func (f *fakeBroker) LeaseCompletedEvents(ctx context.Context, in *analysisv1.LeaseCompletedEventsRequest, opts ...grpc.CallOption) (*analysisv1.LeaseCompletedEventsResponse, error) {
	events := f.events
	f.events = nil
	return &analysisv1.LeaseCompletedEventsResponse{Events: events}, nil
}

func (f *fakeBroker) AckCompletedEvent(ctx context.Context, in *analysisv1.AckCompletedEventRequest, opts ...grpc.CallOption) (*analysisv1.AckCompletedEventResponse, error) {
	f.acks = append(f.acks, brokerAck{eventID: in.GetEventId(), outcome: in.GetOutcome()})
	return &analysisv1.AckCompletedEventResponse{}, nil
}

type fakeFinalizer struct {
	result storage.FinalizeOutcome
	err    error
	calls  []string
}

func (f *fakeFinalizer) Finalize(ctx context.Context, submissionID string, outcome domain.AnalysisOutcome) (storage.FinalizeOutcome, error) {
	f.calls = append(f.calls, submissionID)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func completedEvent(id string, payload string) *analysisv1.BrokerEvent {
	return &analysisv1.BrokerEvent{
		Id:          id,
		EventType:   TypeAnalysisCompleted,
		PayloadJson: payload,
	}
}

func TestConsumerAcksSuccessfulFinalize(t *testing.T) {
	broker := &fakeBroker{events: []*analysisv1.BrokerEvent{
		completedEvent("e1", `{"submissionId": "s1", "grading": 80}`),
	}}
	finalizer := &fakeFinalizer{result: storage.FinalizeApplied}
	consumer, err := NewConsumer(broker, finalizer, ConsumerConfig{})
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}

	processed, err := consumer.pollOnce(context.Background())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want 1", processed)
	}
	if len(finalizer.calls) != 1 || finalizer.calls[0] != "s1" {
		t.Fatalf("finalize calls = %v, want [s1]", finalizer.calls)
	}
	if len(broker.acks) != 1 || broker.acks[0].outcome != analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_SUCCEEDED {
		t.Fatalf("acks = %+v, want one success", broker.acks)
	}
}

func TestConsumerAcksAlreadyTerminalNoOp(t *testing.T) {
	broker := &fakeBroker{events: []*analysisv1.BrokerEvent{
		completedEvent("e1", `{"submissionId": "s1", "grading": 80}`),
	}}
	finalizer := &fakeFinalizer{result: storage.FinalizeAlreadyTerminal}
	consumer, err := NewConsumer(broker, finalizer, ConsumerConfig{})
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}

	if _, err := consumer.pollOnce(context.Background()); err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(broker.acks) != 1 || broker.acks[0].outcome != analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_SUCCEEDED {
		t.Fatalf("acks = %+v, want one success", broker.acks)
	}
}

func TestConsumerRetriesFailedFinalize(t *testing.T) {
	broker := &fakeBroker{events: []*analysisv1.BrokerEvent{
		completedEvent("e1", `{"submissionId": "s1", "grading": 80}`),
	}}
	finalizer := &fakeFinalizer{err: context.DeadlineExceeded}
	consumer, err := NewConsumer(broker, finalizer, ConsumerConfig{})
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}

	if _, err := consumer.pollOnce(context.Background()); err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(broker.acks) != 1 || broker.acks[0].outcome != analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_RETRY {
		t.Fatalf("acks = %+v, want one retry", broker.acks)
	}
}

func TestConsumerDeadLettersUndecodableEvent(t *testing.T) {
	broker := &fakeBroker{events: []*analysisv1.BrokerEvent{
		completedEvent("e1", `not json`),
	}}
	finalizer := &fakeFinalizer{result: storage.FinalizeApplied}
	consumer, err := NewConsumer(broker, finalizer, ConsumerConfig{})
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}

	if _, err := consumer.pollOnce(context.Background()); err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(finalizer.calls) != 0 {
		t.Fatalf("finalize calls = %v, want none", finalizer.calls)
	}
	// A malformed payload would fail on every redelivery; it must leave the
	// queue as dead, not cycle as a retry.
	if len(broker.acks) != 1 || broker.acks[0].outcome != analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_DEAD {
		t.Fatalf("acks = %+v, want one dead-letter", broker.acks)
	}
}
