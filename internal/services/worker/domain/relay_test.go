package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"

	analysisv1 "github.com/ulms/assignment-service/api/gen/go/analysis/v1"
)

type fakeBroker struct {
	published []*analysisv1.BrokerEvent
	err       error
}

func (f *fakeBroker) PublishSubmission(ctx context.Context, in *analysisv1.PublishSubmissionRequest, opts ...grpc.CallOption) (*analysisv1.PublishSubmissionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.published = append(f.published, in.GetEvent())
	return &analysisv1.PublishSubmissionResponse{}, nil
}

func (f *fakeBroker) LeaseCompletedEvents(ctx context.Context, in *analysisv1.LeaseCompletedEventsRequest, opts ...grpc.CallOption) (*analysisv1.LeaseCompletedEventsResponse, error) {
	return &analysisv1.LeaseCompletedEventsResponse{}, nil
}

func (f *fakeBroker) AckCompletedEvent(ctx context.Context, in *analysisv1.AckCompletedEventRequest, opts ...grpc.CallOption) (*analysisv1.AckCompletedEventResponse, error) {
	return &analysisv1.AckCompletedEventResponse{}, nil
}

func TestAnalysisPublishHandlerPublishes(t *testing.T) {
	broker := &fakeBroker{}
	handler, err := NewAnalysisPublishHandler(broker)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	event := Event{
		ID:           "e1",
		EventType:    "assignment.submission.received",
		PartitionKey: "s1",
		PayloadJSON:  `{"submissionId":"s1"}`,
		CreatedAt:    time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
	}
	if err := handler.Handle(context.Background(), event); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(broker.published) != 1 {
		t.Fatalf("published = %d events, want 1", len(broker.published))
	}
	got := broker.published[0]
	if got.GetId() != "e1" || got.GetPartitionKey() != "s1" {
		t.Fatalf("published event = %+v", got)
	}
	if got.GetPayloadJson() != `{"submissionId":"s1"}` {
		t.Fatalf("payload = %q", got.GetPayloadJson())
	}
}

func TestAnalysisPublishHandlerWrapsBrokerFailure(t *testing.T) {
	broker := &fakeBroker{err: errors.New("broker down")}
	handler, err := NewAnalysisPublishHandler(broker)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	err = handler.Handle(context.Background(), Event{ID: "e1", PayloadJSON: "{}"})
	if err == nil {
		t.Fatal("expected error")
	}
	if IsPermanent(err) {
		t.Fatal("broker failure should be retryable")
	}
}

func TestAnalysisPublishHandlerRejectsEmptyEventPermanently(t *testing.T) {
	broker := &fakeBroker{}
	handler, err := NewAnalysisPublishHandler(broker)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	if err := handler.Handle(context.Background(), Event{PayloadJSON: "{}"}); !IsPermanent(err) {
		t.Fatalf("missing id error = %v, want permanent", err)
	}
	if err := handler.Handle(context.Background(), Event{ID: "e1"}); !IsPermanent(err) {
		t.Fatalf("missing payload error = %v, want permanent", err)
	}
	if len(broker.published) != 0 {
		t.Fatalf("published = %d events, want none", len(broker.published))
	}
}

func TestNewAnalysisPublishHandlerRequiresClient(t *testing.T) {
	if _, err := NewAnalysisPublishHandler(nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}
