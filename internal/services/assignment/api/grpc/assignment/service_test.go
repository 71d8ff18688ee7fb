package assignment

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	assignmentv1 "github.com/ulms/assignment-service/api/gen/go/assignment/v1"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/lifecycle"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/sqlite"
)

type staticRoster struct {
	courseIDs []string
	err       error
}

func (r *staticRoster) EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.courseIDs, nil
}

func newTestService(t *testing.T, resolver *staticRoster) (*Service, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "assignment.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	if resolver == nil {
		resolver = &staticRoster{}
	}
	manager, err := lifecycle.NewManager(store, resolver)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return NewService(manager, store), store
}

func seedAssignment(t *testing.T, store *sqlite.Store, id string, dueDate time.Time) {
	t.Helper()
	err := store.PutAssignment(context.Background(), domain.Assignment{
		ID:          id,
		CourseID:    "course-1",
		Title:       "Essay on Climate Change",
		Description: "Discuss the impact of climate change.",
		ModelAnswer: "Climate change impacts include...",
		DueDate:     dueDate,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
}

func futureDue() time.Time {
	return time.Now().UTC().Add(24 * time.Hour).Truncate(time.Millisecond)
}

func wantStatusCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want gRPC status", err)
	}
	if st.Code() != want {
		t.Fatalf("code = %v, want %v (err: %v)", st.Code(), want, err)
	}
}

func TestSubmitAssignmentCreatesPendingSubmission(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", futureDue())

	resp, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
		AssignmentId: "a1",
		StudentId:    "student-1",
		Content:      "my answer",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	submission := resp.GetSubmission()
	if submission.GetStatus() != assignmentv1.SubmissionStatus_SUBMISSION_STATUS_PENDING {
		t.Fatalf("status = %v, want pending", submission.GetStatus())
	}
	if submission.GetId() == "" {
		t.Fatal("submission id missing")
	}

	// The received event is visible on the outbox feed.
	leased, err := service.LeaseOutboxEvents(context.Background(), &assignmentv1.LeaseOutboxEventsRequest{
		Consumer: "relay-test",
	})
	if err != nil {
		t.Fatalf("lease outbox events: %v", err)
	}
	if len(leased.GetEvents()) != 1 {
		t.Fatalf("leased %d events, want 1", len(leased.GetEvents()))
	}
	if leased.GetEvents()[0].GetPartitionKey() != submission.GetId() {
		t.Fatalf("partition key = %q, want %q", leased.GetEvents()[0].GetPartitionKey(), submission.GetId())
	}
}

func TestSubmitAssignmentUnknownAssignment(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
		AssignmentId: "missing",
		StudentId:    "student-1",
		Content:      "my answer",
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestSubmitAssignmentPastDue(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
		AssignmentId: "a1",
		StudentId:    "student-1",
		Content:      "my answer",
	})
	wantStatusCode(t, err, codes.PermissionDenied)
}

func TestSubmitAssignmentDuplicate(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", futureDue())

	request := &assignmentv1.SubmitAssignmentRequest{
		AssignmentId: "a1",
		StudentId:    "student-1",
		Content:      "my answer",
	}
	if _, err := service.SubmitAssignment(context.Background(), request); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := service.SubmitAssignment(context.Background(), request)
	wantStatusCode(t, err, codes.AlreadyExists)
}

func TestSubmitAssignmentValidation(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
		StudentId: "student-1",
		Content:   "answer",
	})
	wantStatusCode(t, err, codes.InvalidArgument)
}

func TestGetAssignmentByIdIncludesSubmissions(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", futureDue())

	if _, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
		AssignmentId: "a1",
		StudentId:    "student-1",
		Content:      "my answer",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	resp, err := service.GetAssignmentById(context.Background(), &assignmentv1.GetAssignmentByIdRequest{Id: "a1"})
	if err != nil {
		t.Fatalf("get assignment: %v", err)
	}
	if resp.GetAssignment().GetId() != "a1" {
		t.Fatalf("assignment id = %q", resp.GetAssignment().GetId())
	}
	if len(resp.GetAssignment().GetSubmissions()) != 1 {
		t.Fatalf("submissions = %d, want 1", len(resp.GetAssignment().GetSubmissions()))
	}
}

func TestGetAssignmentByIdNotFound(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, err := service.GetAssignmentById(context.Background(), &assignmentv1.GetAssignmentByIdRequest{Id: "missing"})
	wantStatusCode(t, err, codes.NotFound)
}

func TestGetStudentAssignmentsRosterUnavailable(t *testing.T) {
	service, _ := newTestService(t, &staticRoster{err: context.DeadlineExceeded})

	_, err := service.GetStudentAssignments(context.Background(), &assignmentv1.GetStudentAssignmentsRequest{
		StudentId: "student-1",
	})
	wantStatusCode(t, err, codes.Unavailable)
}

func TestGetStudentAssignments(t *testing.T) {
	service, store := newTestService(t, &staticRoster{courseIDs: []string{"course-1"}})
	seedAssignment(t, store, "a1", futureDue())

	resp, err := service.GetStudentAssignments(context.Background(), &assignmentv1.GetStudentAssignmentsRequest{
		StudentId: "student-1",
	})
	if err != nil {
		t.Fatalf("get student assignments: %v", err)
	}
	if len(resp.GetAssignments()) != 1 || resp.GetAssignments()[0].GetId() != "a1" {
		t.Fatalf("assignments = %+v, want [a1]", resp.GetAssignments())
	}
}

func TestGetAssignmentSubmissionsFiltered(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", futureDue())

	for _, studentID := range []string{"student-1", "student-2"} {
		if _, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
			AssignmentId: "a1",
			StudentId:    studentID,
			Content:      "answer",
		}); err != nil {
			t.Fatalf("submit for %s: %v", studentID, err)
		}
	}

	resp, err := service.GetAssignmentSubmissions(context.Background(), &assignmentv1.GetAssignmentSubmissionsRequest{
		AssignmentId: "a1",
		Filter:       `student_id = "student-2"`,
	})
	if err != nil {
		t.Fatalf("get submissions: %v", err)
	}
	if len(resp.GetSubmissions()) != 1 || resp.GetSubmissions()[0].GetStudentId() != "student-2" {
		t.Fatalf("submissions = %+v, want student-2 only", resp.GetSubmissions())
	}
}

func TestGetAssignmentSubmissionsInvalidFilter(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", futureDue())

	_, err := service.GetAssignmentSubmissions(context.Background(), &assignmentv1.GetAssignmentSubmissionsRequest{
		AssignmentId: "a1",
		Filter:       `status >>> "pending"`,
	})
	wantStatusCode(t, err, codes.InvalidArgument)
}

func TestAckOutboxEventLifecycle(t *testing.T) {
	service, store := newTestService(t, nil)
	seedAssignment(t, store, "a1", futureDue())

	if _, err := service.SubmitAssignment(context.Background(), &assignmentv1.SubmitAssignmentRequest{
		AssignmentId: "a1",
		StudentId:    "student-1",
		Content:      "answer",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	leased, err := service.LeaseOutboxEvents(context.Background(), &assignmentv1.LeaseOutboxEventsRequest{
		Consumer: "relay-test",
	})
	if err != nil {
		t.Fatalf("lease: %v", err)
	}
	if len(leased.GetEvents()) != 1 {
		t.Fatalf("leased %d events, want 1", len(leased.GetEvents()))
	}
	eventID := leased.GetEvents()[0].GetId()

	if _, err := service.AckOutboxEvent(context.Background(), &assignmentv1.AckOutboxEventRequest{
		EventId:  eventID,
		Consumer: "relay-test",
		Outcome:  assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_SUCCEEDED,
	}); err != nil {
		t.Fatalf("ack: %v", err)
	}

	// A second ack finds nothing leased.
	_, err = service.AckOutboxEvent(context.Background(), &assignmentv1.AckOutboxEventRequest{
		EventId:  eventID,
		Consumer: "relay-test",
		Outcome:  assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_SUCCEEDED,
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestAckOutboxEventRetryRequiresNextAttempt(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, err := service.AckOutboxEvent(context.Background(), &assignmentv1.AckOutboxEventRequest{
		EventId:  "e1",
		Consumer: "relay-test",
		Outcome:  assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_RETRY,
	})
	wantStatusCode(t, err, codes.InvalidArgument)

	if _, err := service.AckOutboxEvent(context.Background(), &assignmentv1.AckOutboxEventRequest{
		EventId:       "e1",
		Consumer:      "relay-test",
		Outcome:       assignmentv1.OutboxAckOutcome_OUTBOX_ACK_OUTCOME_RETRY,
		NextAttemptAt: timestamppb.New(time.Now().Add(time.Minute)),
	}); err == nil {
		t.Fatal("expected not found for unleased event")
	}
}
