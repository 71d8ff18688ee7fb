package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	assignmentv1 "github.com/ulms/assignment-service/api/gen/go/assignment/v1"
	"github.com/ulms/assignment-service/internal/platform/id"
	workerdomain "github.com/ulms/assignment-service/internal/services/worker/domain"
	workerstorage "github.com/ulms/assignment-service/internal/services/worker/storage"
)

const defaultConsumer = "relay-worker"

// Config controls the delivery loop.
type Config struct {
	Consumer      string
	PollInterval  time.Duration
	LeaseTTL      time.Duration
	BatchSize     int32
	MaxAttempts   int
	RetryBackoff  time.Duration
	RetryMaxDelay time.Duration
}

func (c Config) normalized() Config {
	if c.Consumer == "" {
		c.Consumer = defaultConsumer
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.LeaseTTL <= 0 {
		c.LeaseTTL = 30 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 16
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 2 * time.Second
	}
	if c.RetryMaxDelay <= 0 {
		c.RetryMaxDelay = 5 * time.Minute
	}
	return c
}

// Loop leases outbox events from the assignment feed and drives their
// delivery with retry backoff and dead-lettering.
type Loop struct {
	feed     assignmentv1.AssignmentServiceClient
	attempts workerstorage.AttemptStore
	handlers map[string]workerdomain.EventHandler
	cfg      Config
	clock    func() time.Time
}

// New builds a delivery loop over an already-connected feed client.
func New(feed assignmentv1.AssignmentServiceClient, attempts workerstorage.AttemptStore, handlers map[string]workerdomain.EventHandler, cfg Config) (*Loop, error) {
	if feed == nil {
		return nil, fmt.Errorf("assignment feed client is required")
	}
	if len(handlers) == 0 {
		return nil, fmt.Errorf("at least one event handler is required")
	}
	return &Loop{
		feed:     feed,
		attempts: attempts,
		handlers: handlers,
		cfg:      cfg.normalized(),
		clock:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Run polls the outbox feed until the context is canceled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if _, err := l.pollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("relay poll failed: %v", err)
		}
	}
}

func (l *Loop) pollOnce(ctx context.Context) (int, error) {
	resp, err := l.feed.LeaseOutboxEvents(ctx, &assignmentv1.LeaseOutboxEventsRequest{
		Consumer:   l.cfg.Consumer,
		Limit:      l.cfg.BatchSize,
		LeaseTtlMs: l.cfg.LeaseTTL.Milliseconds(),
	})
	if err != nil {
		return 0, fmt.Errorf("lease outbox events: %w", err)
	}

	processed := 0
	for _, leased := range resp.GetEvents() {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		l.deliver(ctx, leased)
		processed++
	}
	return processed, nil
}

func (l *Loop) deliver(ctx context.Context, leased *assignmentv1.OutboxEvent) {
	event := workerdomain.Event{
		ID:           leased.GetId(),
		EventType:    leased.GetEventType(),
		PartitionKey: leased.GetPartitionKey(),
		PayloadJSON:  leased.GetPayloadJson(),
		AttemptCount: int(leased.GetAttemptCount()),
		CreatedAt:    leased.GetCreatedAt().AsTime(),
	}
	attemptNumber := event.AttemptCount + 1
	now := l.clock()

	handler, ok := l.handlers[event.EventType]
	if !ok {
		// No handler will ever exist for this event; retrying is pointless.
		l.ack(ctx, event, &assignmentv1.AckOutboxEventRequest{
			EventId:     event.ID,
			Consumer:    l.cfg.Consumer,
			Outcome:     assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_DEAD,
			LastError:   fmt.Sprintf("no handler for event type %q", event.EventType),
			ProcessedAt: timestamppb.New(now),
		}, workerstorage.AttemptDead, attemptNumber, "no handler for event type")
		return
	}

	if err := handler.Handle(ctx, event); err != nil {
		if workerdomain.IsPermanent(err) || attemptNumber >= l.cfg.MaxAttempts {
			log.Printf("event %s dead after %d attempts: %v", event.ID, attemptNumber, err)
			l.ack(ctx, event, &assignmentv1.AckOutboxEventRequest{
				EventId:     event.ID,
				Consumer:    l.cfg.Consumer,
				Outcome:     assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_DEAD,
				LastError:   err.Error(),
				ProcessedAt: timestamppb.New(now),
			}, workerstorage.AttemptDead, attemptNumber, err.Error())
			return
		}
		delay := l.backoff(attemptNumber)
		log.Printf("event %s attempt %d failed, retrying in %s: %v", event.ID, attemptNumber, delay, err)
		l.ack(ctx, event, &assignmentv1.AckOutboxEventRequest{
			EventId:       event.ID,
			Consumer:      l.cfg.Consumer,
			Outcome:       assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_RETRY,
			NextAttemptAt: timestamppb.New(now.Add(delay)),
			LastError:     err.Error(),
		}, workerstorage.AttemptRetry, attemptNumber, err.Error())
		return
	}

	l.ack(ctx, event, &assignmentv1.AckOutboxEventRequest{
		EventId:     event.ID,
		Consumer:    l.cfg.Consumer,
		Outcome:     assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_SUCCEEDED,
		ProcessedAt: timestamppb.New(now),
	}, workerstorage.AttemptSucceeded, attemptNumber, "")
}

// backoff doubles the base delay per prior attempt, capped at the max delay.
func (l *Loop) backoff(attemptNumber int) time.Duration {
	delay := l.cfg.RetryBackoff
	for i := 1; i < attemptNumber; i++ {
		delay *= 2
		if delay >= l.cfg.RetryMaxDelay {
			return l.cfg.RetryMaxDelay
		}
	}
	if delay > l.cfg.RetryMaxDelay {
		return l.cfg.RetryMaxDelay
	}
	return delay
}

func (l *Loop) ack(ctx context.Context, event workerdomain.Event, request *assignmentv1.AckOutboxEventRequest, outcome workerstorage.AttemptOutcome, attemptNumber int, lastError string) {
	if _, err := l.feed.AckOutboxEvent(ctx, request); err != nil {
		// The lease expires on its own; the event will be re-leased.
		log.Printf("ack event %s failed: %v", event.ID, err)
	}
	l.recordAttempt(ctx, event, outcome, attemptNumber, lastError)
}

func (l *Loop) recordAttempt(ctx context.Context, event workerdomain.Event, outcome workerstorage.AttemptOutcome, attemptNumber int, lastError string) {
	if l.attempts == nil {
		return
	}
	attemptID, err := id.NewID()
	if err != nil {
		log.Printf("generate attempt id for event %s: %v", event.ID, err)
		return
	}
	attempt := workerstorage.Attempt{
		ID:            attemptID,
		EventID:       event.ID,
		EventType:     event.EventType,
		AttemptNumber: attemptNumber,
		Outcome:       outcome,
		LastError:     lastError,
		CreatedAt:     l.clock(),
	}
	if err := l.attempts.RecordAttempt(ctx, attempt); err != nil {
		log.Printf("record attempt for event %s: %v", event.ID, err)
	}
}
