package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/event"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/filter"
)

type fakeStore struct {
	assignments map[string]domain.Assignment
	submissions map[string]domain.Submission

	createErr     error
	createdEvents []storage.OutboxEvent

	finalizeResult storage.FinalizeOutcome
	finalizeErr    error
	finalizeCalls  int

	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		assignments: make(map[string]domain.Assignment),
		submissions: make(map[string]domain.Submission),
	}
}

func (f *fakeStore) PutAssignment(ctx context.Context, assignment domain.Assignment) error {
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeStore) GetAssignment(ctx context.Context, id string) (domain.Assignment, error) {
	assignment, ok := f.assignments[id]
	if !ok {
		return domain.Assignment{}, storage.ErrNotFound
	}
	return assignment, nil
}

func (f *fakeStore) ListAssignmentsByCourse(ctx context.Context, courseID string) ([]domain.Assignment, error) {
	return f.ListAssignmentsByCourses(ctx, []string{courseID})
}

func (f *fakeStore) ListAssignmentsByCourses(ctx context.Context, courseIDs []string) ([]domain.Assignment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	assignments := make([]domain.Assignment, 0)
	for _, courseID := range courseIDs {
		for _, assignment := range f.assignments {
			if assignment.CourseID == courseID {
				assignments = append(assignments, assignment)
			}
		}
	}
	return assignments, nil
}

func (f *fakeStore) GetSubmission(ctx context.Context, id string) (domain.Submission, error) {
	submission, ok := f.submissions[id]
	if !ok {
		return domain.Submission{}, storage.ErrNotFound
	}
	return submission, nil
}

func (f *fakeStore) GetSubmissionForStudent(ctx context.Context, assignmentID string, studentID string) (domain.Submission, error) {
	for _, submission := range f.submissions {
		if submission.AssignmentID == assignmentID && submission.StudentID == studentID {
			return submission, nil
		}
	}
	return domain.Submission{}, storage.ErrNotFound
}

func (f *fakeStore) ListSubmissionsByAssignment(ctx context.Context, assignmentID string, condition filter.SQLCondition, pageSize int, pageToken string) (storage.SubmissionPage, error) {
	page := storage.SubmissionPage{Submissions: []domain.Submission{}}
	for _, submission := range f.submissions {
		if submission.AssignmentID == assignmentID {
			page.Submissions = append(page.Submissions, submission)
		}
	}
	return page, nil
}

func (f *fakeStore) CreateSubmissionWithOutboxEvent(ctx context.Context, submission domain.Submission, outboxEvent storage.OutboxEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.submissions {
		if existing.AssignmentID == submission.AssignmentID && existing.StudentID == submission.StudentID {
			return storage.ErrAlreadyExists
		}
	}
	f.submissions[submission.ID] = submission
	f.createdEvents = append(f.createdEvents, outboxEvent)
	return nil
}

func (f *fakeStore) FinalizeSubmission(ctx context.Context, id string, outcome domain.AnalysisOutcome, now time.Time) (storage.FinalizeOutcome, error) {
	f.finalizeCalls++
	if f.finalizeErr != nil {
		return "", f.finalizeErr
	}
	return f.finalizeResult, nil
}

func (f *fakeStore) EnqueueOutboxEvent(ctx context.Context, outboxEvent storage.OutboxEvent) error {
	f.createdEvents = append(f.createdEvents, outboxEvent)
	return nil
}

func (f *fakeStore) GetOutboxEvent(ctx context.Context, id string) (storage.OutboxEvent, error) {
	return storage.OutboxEvent{}, storage.ErrNotFound
}

func (f *fakeStore) LeaseOutboxEvents(ctx context.Context, consumer string, limit int, now time.Time, leaseTTL time.Duration) ([]storage.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeStore) MarkOutboxSucceeded(ctx context.Context, id string, consumer string, processedAt time.Time) error {
	return nil
}

func (f *fakeStore) MarkOutboxRetry(ctx context.Context, id string, consumer string, nextAttemptAt time.Time, lastError string) error {
	return nil
}

func (f *fakeStore) MarkOutboxDead(ctx context.Context, id string, consumer string, lastError string, processedAt time.Time) error {
	return nil
}

type fakeRoster struct {
	courseIDs []string
	err       error
}

func (f *fakeRoster) EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courseIDs, nil
}

func newTestManager(t *testing.T, store *fakeStore, resolver *fakeRoster) *Manager {
	t.Helper()
	if resolver == nil {
		resolver = &fakeRoster{}
	}
	manager, err := NewManager(store, resolver)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return manager
}

func seedAssignment(store *fakeStore) domain.Assignment {
	assignment := domain.Assignment{
		ID:          "a1",
		CourseID:    "course-1",
		Title:       "Essay on Climate Change",
		Description: "Discuss the impact of climate change.",
		ModelAnswer: "Climate change impacts include...",
		DueDate:     time.Date(2125, 2, 1, 23, 59, 0, 0, time.UTC),
	}
	store.assignments[assignment.ID] = assignment
	return assignment
}

func TestNewManagerRequiresDependencies(t *testing.T) {
	if _, err := NewManager(nil, &fakeRoster{}); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewManager(newFakeStore(), nil); err == nil {
		t.Fatal("expected error for nil roster resolver")
	}
}

func TestSubmitStoresPendingSubmissionWithEvent(t *testing.T) {
	store := newFakeStore()
	assignment := seedAssignment(store)
	manager := newTestManager(t, store, nil)
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	manager.clock = func() time.Time { return now }

	submission, err := manager.Submit(context.Background(), "a1", "student-1", "my answer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submission.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", submission.Status)
	}
	if submission.ID == "" {
		t.Fatal("submission id not generated")
	}
	if !submission.CreatedAt.Equal(now) {
		t.Fatalf("created at = %v, want %v", submission.CreatedAt, now)
	}

	if len(store.createdEvents) != 1 {
		t.Fatalf("created events = %d, want 1", len(store.createdEvents))
	}
	outboxEvent := store.createdEvents[0]
	if outboxEvent.EventType != event.TypeSubmissionReceived {
		t.Fatalf("event type = %q", outboxEvent.EventType)
	}
	if outboxEvent.PartitionKey != submission.ID {
		t.Fatalf("partition key = %q, want %q", outboxEvent.PartitionKey, submission.ID)
	}
	if outboxEvent.DedupeKey != event.SubmissionReceivedDedupeKey(submission.ID) {
		t.Fatalf("dedupe key = %q", outboxEvent.DedupeKey)
	}

	var payload event.SubmissionReceived
	if err := json.Unmarshal([]byte(outboxEvent.PayloadJSON), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.SubmissionID != submission.ID ||
		payload.AssignmentID != assignment.ID ||
		payload.CourseID != assignment.CourseID ||
		payload.StudentID != "student-1" ||
		payload.Content != "my answer" ||
		payload.ModelAnswer != assignment.ModelAnswer ||
		payload.AssignmentQuestion != assignment.Description ||
		payload.AssignmentTitle != assignment.Title {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}

func TestSubmitValidatesArguments(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	manager := newTestManager(t, store, nil)

	tests := []struct {
		name         string
		assignmentID string
		studentID    string
		content      string
		wantCode     platformerrors.Code
	}{
		{"missing assignment id", "", "student-1", "answer", platformerrors.CodeAssignmentIDRequired},
		{"missing student id", "a1", "", "answer", platformerrors.CodeStudentIDRequired},
		{"missing content", "a1", "student-1", "  ", platformerrors.CodeContentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Submit(context.Background(), tt.assignmentID, tt.studentID, tt.content)
			if platformerrors.GetCode(err) != tt.wantCode {
				t.Fatalf("code = %q, want %q (err: %v)", platformerrors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestSubmitAssignmentNotFound(t *testing.T) {
	manager := newTestManager(t, newFakeStore(), nil)

	_, err := manager.Submit(context.Background(), "missing", "student-1", "answer")
	if platformerrors.GetCode(err) != platformerrors.CodeAssignmentNotFound {
		t.Fatalf("code = %q, want assignment not found", platformerrors.GetCode(err))
	}
}

func TestSubmitPastDue(t *testing.T) {
	store := newFakeStore()
	assignment := seedAssignment(store)
	manager := newTestManager(t, store, nil)
	manager.clock = func() time.Time { return assignment.DueDate.Add(time.Second) }

	_, err := manager.Submit(context.Background(), "a1", "student-1", "answer")
	if platformerrors.GetCode(err) != platformerrors.CodeSubmissionPastDue {
		t.Fatalf("code = %q, want past due", platformerrors.GetCode(err))
	}
}

func TestSubmitAtDueDateIsAccepted(t *testing.T) {
	store := newFakeStore()
	assignment := seedAssignment(store)
	manager := newTestManager(t, store, nil)
	manager.clock = func() time.Time { return assignment.DueDate }

	if _, err := manager.Submit(context.Background(), "a1", "student-1", "answer"); err != nil {
		t.Fatalf("submit at due date: %v", err)
	}
}

func TestSubmitWithoutDueDateNeverExpires(t *testing.T) {
	store := newFakeStore()
	assignment := seedAssignment(store)
	assignment.DueDate = time.Time{}
	store.assignments[assignment.ID] = assignment
	manager := newTestManager(t, store, nil)
	manager.clock = func() time.Time { return time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC) }

	if _, err := manager.Submit(context.Background(), "a1", "student-1", "answer"); err != nil {
		t.Fatalf("submit without due date: %v", err)
	}
}

func TestSubmitDuplicateDetectedByPrecheck(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	store.submissions["s0"] = domain.Submission{
		ID:           "s0",
		AssignmentID: "a1",
		StudentID:    "student-1",
		Status:       domain.StatusPending,
	}
	manager := newTestManager(t, store, nil)

	_, err := manager.Submit(context.Background(), "a1", "student-1", "answer")
	if platformerrors.GetCode(err) != platformerrors.CodeSubmissionExists {
		t.Fatalf("code = %q, want submission exists", platformerrors.GetCode(err))
	}
}

func TestSubmitDuplicateDetectedByConstraint(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	// The pre-check sees nothing but the storage constraint rejects the
	// write, as under a concurrent duplicate submit.
	store.createErr = storage.ErrAlreadyExists
	manager := newTestManager(t, store, nil)

	_, err := manager.Submit(context.Background(), "a1", "student-1", "answer")
	if platformerrors.GetCode(err) != platformerrors.CodeSubmissionExists {
		t.Fatalf("code = %q, want submission exists", platformerrors.GetCode(err))
	}
}

func TestSubmitStorageFailure(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	store.createErr = fmt.Errorf("disk full")
	manager := newTestManager(t, store, nil)

	_, err := manager.Submit(context.Background(), "a1", "student-1", "answer")
	if platformerrors.GetCode(err) != platformerrors.CodeStorageFailure {
		t.Fatalf("code = %q, want storage failure", platformerrors.GetCode(err))
	}
}

func TestFinalizeAppliesOutcome(t *testing.T) {
	store := newFakeStore()
	store.finalizeResult = storage.FinalizeApplied
	manager := newTestManager(t, store, nil)

	result, err := manager.Finalize(context.Background(), "s1", domain.FailedOutcome("boom"))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result != storage.FinalizeApplied {
		t.Fatalf("result = %q, want applied", result)
	}
	if store.finalizeCalls != 1 {
		t.Fatalf("finalize calls = %d, want 1", store.finalizeCalls)
	}
}

func TestFinalizeAlreadyTerminalIsNotAnError(t *testing.T) {
	store := newFakeStore()
	store.finalizeResult = storage.FinalizeAlreadyTerminal
	manager := newTestManager(t, store, nil)

	result, err := manager.Finalize(context.Background(), "s1", domain.FailedOutcome("boom"))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result != storage.FinalizeAlreadyTerminal {
		t.Fatalf("result = %q, want already_terminal", result)
	}
}

func TestFinalizeNotFound(t *testing.T) {
	store := newFakeStore()
	store.finalizeErr = storage.ErrNotFound
	manager := newTestManager(t, store, nil)

	_, err := manager.Finalize(context.Background(), "missing", domain.FailedOutcome("boom"))
	if platformerrors.GetCode(err) != platformerrors.CodeSubmissionNotFound {
		t.Fatalf("code = %q, want submission not found", platformerrors.GetCode(err))
	}
}

func TestFinalizeRejectsZeroOutcome(t *testing.T) {
	manager := newTestManager(t, newFakeStore(), nil)

	if _, err := manager.Finalize(context.Background(), "s1", domain.AnalysisOutcome{}); err == nil {
		t.Fatal("expected error for zero outcome")
	}
}

func TestListForStudentPropagatesRosterFailure(t *testing.T) {
	manager := newTestManager(t, newFakeStore(), &fakeRoster{err: errors.New("dial tcp: connection refused")})

	_, err := manager.ListForStudent(context.Background(), "student-1")
	if platformerrors.GetCode(err) != platformerrors.CodeRosterUnavailable {
		t.Fatalf("code = %q, want roster unavailable", platformerrors.GetCode(err))
	}
}

func TestListForStudentWithNoEnrollment(t *testing.T) {
	manager := newTestManager(t, newFakeStore(), &fakeRoster{})

	assignments, err := manager.ListForStudent(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("list for student: %v", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("len = %d, want 0", len(assignments))
	}
}

func TestListForStudentReturnsCourseAssignments(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	manager := newTestManager(t, store, &fakeRoster{courseIDs: []string{"course-1"}})

	assignments, err := manager.ListForStudent(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("list for student: %v", err)
	}
	if len(assignments) != 1 || assignments[0].ID != "a1" {
		t.Fatalf("assignments = %+v, want [a1]", assignments)
	}
}

func TestListSubmissionsRejectsInvalidFilter(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	manager := newTestManager(t, store, nil)

	_, err := manager.ListSubmissions(context.Background(), "a1", `grade >>> 1`, 10, "")
	if platformerrors.GetCode(err) != platformerrors.CodeInvalidFilter {
		t.Fatalf("code = %q, want invalid filter", platformerrors.GetCode(err))
	}
}

func TestGetAssignmentIncludesSubmissions(t *testing.T) {
	store := newFakeStore()
	seedAssignment(store)
	store.submissions["s1"] = domain.Submission{
		ID:           "s1",
		AssignmentID: "a1",
		StudentID:    "student-1",
		Status:       domain.StatusPending,
	}
	manager := newTestManager(t, store, nil)

	detail, err := manager.GetAssignment(context.Background(), "a1")
	if err != nil {
		t.Fatalf("get assignment: %v", err)
	}
	if detail.Assignment.ID != "a1" {
		t.Fatalf("assignment id = %q", detail.Assignment.ID)
	}
	if len(detail.Submissions) != 1 || detail.Submissions[0].ID != "s1" {
		t.Fatalf("submissions = %+v, want [s1]", detail.Submissions)
	}
}
