// Package assignment exposes the assignment.v1 gRPC surface. The adapters
// hold no business logic: requests are validated for shape, handed to the
// lifecycle manager, and domain errors are mapped to gRPC statuses.
package assignment

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	assignmentv1 "github.com/ulms/assignment-service/api/gen/go/assignment/v1"
	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
	"github.com/ulms/assignment-service/internal/platform/grpc/pagination"
	"github.com/ulms/assignment-service/internal/services/assignment/lifecycle"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

const (
	defaultSubmissionsPageSize = 20
	maxSubmissionsPageSize     = 100

	defaultOutboxLeaseLimit = 16
	maxOutboxLeaseLimit     = 100
	defaultOutboxLeaseTTL   = 30 * time.Second
)

// Service exposes assignment.v1 gRPC operations.
type Service struct {
	assignmentv1.UnimplementedAssignmentServiceServer
	manager *lifecycle.Manager
	outbox  storage.OutboxStore
}

// NewService creates an assignment service over a lifecycle manager and the
// outbox feed.
func NewService(manager *lifecycle.Manager, outbox storage.OutboxStore) *Service {
	return &Service{
		manager: manager,
		outbox:  outbox,
	}
}

// GetAssignmentById returns one assignment with its submissions.
func (s *Service) GetAssignmentById(ctx context.Context, in *assignmentv1.GetAssignmentByIdRequest) (*assignmentv1.GetAssignmentByIdResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get assignment request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "lifecycle manager is not configured")
	}

	detail, err := s.manager.GetAssignment(ctx, in.GetId())
	if err != nil {
		return nil, platformerrors.HandleError(err)
	}
	return &assignmentv1.GetAssignmentByIdResponse{
		Assignment: assignmentToProto(detail.Assignment, detail.Submissions),
	}, nil
}

// GetStudentAssignments returns the assignments of every course the student
// is enrolled in.
func (s *Service) GetStudentAssignments(ctx context.Context, in *assignmentv1.GetStudentAssignmentsRequest) (*assignmentv1.GetStudentAssignmentsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get student assignments request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "lifecycle manager is not configured")
	}

	assignments, err := s.manager.ListForStudent(ctx, in.GetStudentId())
	if err != nil {
		return nil, platformerrors.HandleError(err)
	}
	return &assignmentv1.GetStudentAssignmentsResponse{
		Assignments: assignmentsToProto(assignments),
	}, nil
}

// GetCourseAssignments returns the assignments owned by one course.
func (s *Service) GetCourseAssignments(ctx context.Context, in *assignmentv1.GetCourseAssignmentsRequest) (*assignmentv1.GetCourseAssignmentsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get course assignments request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "lifecycle manager is not configured")
	}

	assignments, err := s.manager.ListByCourse(ctx, in.GetCourseId())
	if err != nil {
		return nil, platformerrors.HandleError(err)
	}
	return &assignmentv1.GetCourseAssignmentsResponse{
		Assignments: assignmentsToProto(assignments),
	}, nil
}

// GetAssignmentSubmissions returns one filtered page of an assignment's
// submissions.
func (s *Service) GetAssignmentSubmissions(ctx context.Context, in *assignmentv1.GetAssignmentSubmissionsRequest) (*assignmentv1.GetAssignmentSubmissionsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get assignment submissions request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "lifecycle manager is not configured")
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultSubmissionsPageSize,
		Max:     maxSubmissionsPageSize,
	})
	page, err := s.manager.ListSubmissions(ctx, in.GetAssignmentId(), in.GetFilter(), pageSize, in.GetPageToken())
	if err != nil {
		return nil, platformerrors.HandleError(err)
	}
	return &assignmentv1.GetAssignmentSubmissionsResponse{
		Submissions:   submissionsToProto(page.Submissions),
		NextPageToken: page.NextPageToken,
	}, nil
}

// SubmitAssignment accepts one student submission.
func (s *Service) SubmitAssignment(ctx context.Context, in *assignmentv1.SubmitAssignmentRequest) (*assignmentv1.SubmitAssignmentResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "submit assignment request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "lifecycle manager is not configured")
	}

	submission, err := s.manager.Submit(ctx, in.GetAssignmentId(), in.GetStudentId(), in.GetContent())
	if err != nil {
		return nil, platformerrors.HandleError(err)
	}
	return &assignmentv1.SubmitAssignmentResponse{
		Submission: submissionToProto(submission),
	}, nil
}

// LeaseOutboxEvents leases due submission.received events for one relay
// consumer.
func (s *Service) LeaseOutboxEvents(ctx context.Context, in *assignmentv1.LeaseOutboxEventsRequest) (*assignmentv1.LeaseOutboxEventsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "lease outbox events request is required")
	}
	if s == nil || s.outbox == nil {
		return nil, status.Error(codes.Internal, "outbox store is not configured")
	}
	consumer := strings.TrimSpace(in.GetConsumer())
	if consumer == "" {
		return nil, status.Error(codes.InvalidArgument, "consumer is required")
	}

	limit := pagination.ClampPageSize(in.GetLimit(), pagination.PageSizeConfig{
		Default: defaultOutboxLeaseLimit,
		Max:     maxOutboxLeaseLimit,
	})
	leaseTTL := time.Duration(in.GetLeaseTtlMs()) * time.Millisecond
	if leaseTTL <= 0 {
		leaseTTL = defaultOutboxLeaseTTL
	}
	now := time.Now().UTC()
	if in.GetNow() != nil {
		now = in.GetNow().AsTime()
	}

	events, err := s.outbox.LeaseOutboxEvents(ctx, consumer, limit, now, leaseTTL)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "lease outbox events: %v", err)
	}
	out := make([]*assignmentv1.OutboxEvent, 0, len(events))
	for _, event := range events {
		out = append(out, outboxEventToProto(event))
	}
	return &assignmentv1.LeaseOutboxEventsResponse{Events: out}, nil
}

// AckOutboxEvent resolves one leased outbox event.
func (s *Service) AckOutboxEvent(ctx context.Context, in *assignmentv1.AckOutboxEventRequest) (*assignmentv1.AckOutboxEventResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "ack outbox event request is required")
	}
	if s == nil || s.outbox == nil {
		return nil, status.Error(codes.Internal, "outbox store is not configured")
	}
	eventID := strings.TrimSpace(in.GetEventId())
	consumer := strings.TrimSpace(in.GetConsumer())
	if eventID == "" {
		return nil, status.Error(codes.InvalidArgument, "event id is required")
	}
	if consumer == "" {
		return nil, status.Error(codes.InvalidArgument, "consumer is required")
	}
	processedAt := time.Now().UTC()
	if in.GetProcessedAt() != nil {
		processedAt = in.GetProcessedAt().AsTime()
	}

	var err error
	switch in.GetOutcome() {
	case assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_SUCCEEDED:
		err = s.outbox.MarkOutboxSucceeded(ctx, eventID, consumer, processedAt)
	case assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_RETRY:
		if in.GetNextAttemptAt() == nil {
			return nil, status.Error(codes.InvalidArgument, "next attempt at is required for retry")
		}
		err = s.outbox.MarkOutboxRetry(ctx, eventID, consumer, in.GetNextAttemptAt().AsTime(), in.GetLastError())
	case assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_DEAD:
		err = s.outbox.MarkOutboxDead(ctx, eventID, consumer, in.GetLastError(), processedAt)
	default:
		return nil, status.Error(codes.InvalidArgument, "ack outcome is required")
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "outbox event is not leased by this consumer")
		}
		return nil, status.Errorf(codes.Internal, "ack outbox event: %v", err)
	}
	return &assignmentv1.AckOutboxEventResponse{}, nil
}
