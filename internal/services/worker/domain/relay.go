// Package domain holds the relay worker's event vocabulary and handlers.
package domain

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	analysisv1 "github.com/ulms/assignment-service/api/gen/go/analysis/v1"
)

// Event is one leased outbox event awaiting delivery.
type Event struct {
	ID           string
	EventType    string
	PartitionKey string
	PayloadJSON  string
	AttemptCount int
	CreatedAt    time.Time
}

// EventHandler delivers one event to its destination.
type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

// AnalysisPublishHandler forwards submission.received events to the analysis
// broker. The handler only attempts emission; retry policy belongs to the
// loop driving it.
type AnalysisPublishHandler struct {
	broker analysisv1.AnalysisBrokerClient
}

// NewAnalysisPublishHandler wraps an already-connected broker client.
func NewAnalysisPublishHandler(broker analysisv1.AnalysisBrokerClient) (*AnalysisPublishHandler, error) {
	if broker == nil {
		return nil, fmt.Errorf("analysis broker client is required")
	}
	return &AnalysisPublishHandler{broker: broker}, nil
}

// Handle publishes one event to the analysis broker. Events without an id
// or payload fail permanently; the broker cannot do anything with them.
func (h *AnalysisPublishHandler) Handle(ctx context.Context, event Event) error {
	if h == nil || h.broker == nil {
		return fmt.Errorf("analysis publish handler is not configured")
	}
	if event.ID == "" {
		return Permanent(fmt.Errorf("event id is empty"))
	}
	if event.PayloadJSON == "" {
		return Permanent(fmt.Errorf("event %s has no payload", event.ID))
	}
	_, err := h.broker.PublishSubmission(ctx, &analysisv1.PublishSubmissionRequest{
		Event: &analysisv1.BrokerEvent{
			Id:           event.ID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			PayloadJson:  event.PayloadJSON,
			CreatedAt:    timestamppb.New(event.CreatedAt),
		},
	})
	if err != nil {
		return fmt.Errorf("publish submission event %s: %w", event.ID, err)
	}
	return nil
}
