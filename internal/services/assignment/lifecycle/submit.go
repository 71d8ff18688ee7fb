package lifecycle

import (
	"context"
	"errors"
	"strings"

	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/event"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

// Submit accepts one student's answer to one assignment. Preconditions are
// checked in order, first failure wins: the assignment must exist, the due
// date must not have passed, and the student must not have submitted before.
// The pre-check on an existing submission is a fast path only; under
// concurrency the storage uniqueness constraint is the authority and
// surfaces as the same already-exists error.
//
// On success the pending submission and its submission.received outbox event
// are stored in one transaction, so a persisted submission always has its
// event enqueued (persist-then-publish, never the reverse).
func (m *Manager) Submit(ctx context.Context, assignmentID string, studentID string, content string) (domain.Submission, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	studentID = strings.TrimSpace(studentID)
	if assignmentID == "" {
		return domain.Submission{}, platformerrors.New(platformerrors.CodeAssignmentIDRequired, "assignment id is required")
	}
	if studentID == "" {
		return domain.Submission{}, platformerrors.New(platformerrors.CodeStudentIDRequired, "student id is required")
	}
	if strings.TrimSpace(content) == "" {
		return domain.Submission{}, platformerrors.New(platformerrors.CodeContentRequired, "submission content is required")
	}

	assignment, err := m.store.GetAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Submission{}, platformerrors.WithMetadata(
				platformerrors.CodeAssignmentNotFound,
				"assignment not found",
				map[string]string{"assignment_id": assignmentID},
			)
		}
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "load assignment", err)
	}

	now := m.clock()
	if !assignment.AcceptsSubmissionsAt(now) {
		return domain.Submission{}, platformerrors.WithMetadata(
			platformerrors.CodeSubmissionPastDue,
			"assignment due date has passed",
			map[string]string{
				"assignment_id": assignmentID,
				"due_date":      assignment.DueDate.Format("2006-01-02T15:04:05Z07:00"),
			},
		)
	}

	if _, err := m.store.GetSubmissionForStudent(ctx, assignmentID, studentID); err == nil {
		return domain.Submission{}, submissionExistsError(assignmentID, studentID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "check existing submission", err)
	}

	submissionID, err := m.newID()
	if err != nil {
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "generate submission id", err)
	}
	eventID, err := m.newID()
	if err != nil {
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "generate event id", err)
	}

	submission := domain.Submission{
		ID:           submissionID,
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      content,
		Status:       domain.StatusPending,
		CreatedAt:    now,
	}
	outboxEvent, err := event.NewSubmissionReceivedEvent(eventID, submission, assignment, now)
	if err != nil {
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeEventPublishFailed, "build submission received event", err)
	}

	if err := m.store.CreateSubmissionWithOutboxEvent(ctx, submission, outboxEvent); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return domain.Submission{}, submissionExistsError(assignmentID, studentID)
		}
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "store submission", err)
	}
	return submission, nil
}

func submissionExistsError(assignmentID string, studentID string) error {
	return platformerrors.WithMetadata(
		platformerrors.CodeSubmissionExists,
		"student already submitted this assignment",
		map[string]string{
			"assignment_id": assignmentID,
			"student_id":    studentID,
		},
	)
}
