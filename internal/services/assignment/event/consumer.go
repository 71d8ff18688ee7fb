package event

import (
	"context"
	"fmt"
	"log"
	"time"

	analysisv1 "github.com/ulms/assignment-service/api/gen/go/analysis/v1"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

// Finalizer applies one analysis outcome to a submission.
type Finalizer interface {
	Finalize(ctx context.Context, submissionID string, outcome domain.AnalysisOutcome) (storage.FinalizeOutcome, error)
}

// Consumer drains analysis-completed events from the broker feed and applies
// them through the finalizer. Delivery is at-least-once: an event is acked
// only after the finalizer returns without error, and the already-terminal
// no-op counts as success. Payloads that cannot be decoded are dead-lettered
// instead of retried.
type Consumer struct {
	broker       analysisv1.AnalysisBrokerClient
	finalizer    Finalizer
	consumer     string
	batchSize    int32
	leaseTTL     time.Duration
	pollInterval time.Duration
}

// ConsumerConfig tunes the consumer loop. Zero values pick defaults.
type ConsumerConfig struct {
	Consumer     string
	BatchSize    int32
	LeaseTTL     time.Duration
	PollInterval time.Duration
}

// NewConsumer builds a consumer over an already-connected broker client.
func NewConsumer(broker analysisv1.AnalysisBrokerClient, finalizer Finalizer, cfg ConsumerConfig) (*Consumer, error) {
	if broker == nil {
		return nil, fmt.Errorf("analysis broker client is required")
	}
	if finalizer == nil {
		return nil, fmt.Errorf("finalizer is required")
	}
	consumer := cfg.Consumer
	if consumer == "" {
		consumer = "assignment-analysis-consumer"
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 16
	}
	leaseTTL := cfg.LeaseTTL
	if leaseTTL <= 0 {
		leaseTTL = 30 * time.Second
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Consumer{
		broker:       broker,
		finalizer:    finalizer,
		consumer:     consumer,
		batchSize:    batchSize,
		leaseTTL:     leaseTTL,
		pollInterval: pollInterval,
	}, nil
}

// Run polls the broker feed until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		processed, err := c.pollOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("analysis consumer poll failed: %v", err)
			continue
		}
		// Drain a backlog without waiting out the ticker.
		for processed == int(c.batchSize) {
			processed, err = c.pollOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("analysis consumer poll failed: %v", err)
				break
			}
		}
	}
}

func (c *Consumer) pollOnce(ctx context.Context) (int, error) {
	resp, err := c.broker.LeaseCompletedEvents(ctx, &analysisv1.LeaseCompletedEventsRequest{
		Consumer:   c.consumer,
		Limit:      c.batchSize,
		LeaseTtlMs: c.leaseTTL.Milliseconds(),
	})
	if err != nil {
		return 0, fmt.Errorf("lease completed events: %w", err)
	}

	processed := 0
	for _, brokerEvent := range resp.GetEvents() {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		c.handle(ctx, brokerEvent)
		processed++
	}
	return processed, nil
}

func (c *Consumer) handle(ctx context.Context, brokerEvent *analysisv1.BrokerEvent) {
	submissionID, outcome, err := DecodeAnalysisCompleted([]byte(brokerEvent.GetPayloadJson()))
	if err != nil {
		// A malformed payload never starts decoding; retrying would
		// redeliver it forever.
		log.Printf("analysis event %s undecodable, dead-lettering: %v", brokerEvent.GetId(), err)
		c.ack(ctx, brokerEvent.GetId(), analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_DEAD, err.Error())
		return
	}

	result, err := c.finalizer.Finalize(ctx, submissionID, outcome)
	if err != nil {
		log.Printf("finalize submission %s from event %s failed: %v", submissionID, brokerEvent.GetId(), err)
		c.ack(ctx, brokerEvent.GetId(), analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_RETRY, err.Error())
		return
	}
	if result == storage.FinalizeAlreadyTerminal {
		log.Printf("submission %s already terminal, event %s acked as redundant", submissionID, brokerEvent.GetId())
	}
	c.ack(ctx, brokerEvent.GetId(), analysisv1.CompletedAckOutcome_COMPLETED_ACK_OUTCOME_SUCCEEDED, "")
}

func (c *Consumer) ack(ctx context.Context, eventID string, outcome analysisv1.CompletedAckOutcome, lastError string) {
	_, err := c.broker.AckCompletedEvent(ctx, &analysisv1.AckCompletedEventRequest{
		EventId:   eventID,
		Consumer:  c.consumer,
		Outcome:   outcome,
		LastError: lastError,
	})
	if err != nil {
		// The lease expires on its own; the event will be redelivered.
		log.Printf("ack analysis event %s failed: %v", eventID, err)
	}
}
