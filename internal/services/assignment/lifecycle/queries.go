package lifecycle

import (
	"context"
	"errors"
	"strings"

	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/filter"
)

// AssignmentDetail pairs an assignment with its submissions.
type AssignmentDetail struct {
	Assignment  domain.Assignment
	Submissions []domain.Submission
}

// GetSubmission returns one submission by id.
func (m *Manager) GetSubmission(ctx context.Context, submissionID string) (domain.Submission, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return domain.Submission{}, platformerrors.New(platformerrors.CodeSubmissionIDRequired, "submission id is required")
	}
	submission, err := m.store.GetSubmission(ctx, submissionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Submission{}, platformerrors.WithMetadata(
				platformerrors.CodeSubmissionNotFound,
				"submission not found",
				map[string]string{"submission_id": submissionID},
			)
		}
		return domain.Submission{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "load submission", err)
	}
	return submission, nil
}

// GetAssignment returns one assignment with every submission made to it.
func (m *Manager) GetAssignment(ctx context.Context, assignmentID string) (AssignmentDetail, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return AssignmentDetail{}, platformerrors.New(platformerrors.CodeAssignmentIDRequired, "assignment id is required")
	}
	assignment, err := m.store.GetAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AssignmentDetail{}, platformerrors.WithMetadata(
				platformerrors.CodeAssignmentNotFound,
				"assignment not found",
				map[string]string{"assignment_id": assignmentID},
			)
		}
		return AssignmentDetail{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "load assignment", err)
	}

	detail := AssignmentDetail{Assignment: assignment}
	pageToken := ""
	for {
		page, err := m.store.ListSubmissionsByAssignment(ctx, assignmentID, filter.SQLCondition{}, 100, pageToken)
		if err != nil {
			return AssignmentDetail{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "load submissions", err)
		}
		detail.Submissions = append(detail.Submissions, page.Submissions...)
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return detail, nil
}

// ListSubmissions returns one page of an assignment's submissions narrowed
// by an optional filter expression.
func (m *Manager) ListSubmissions(ctx context.Context, assignmentID string, filterExpr string, pageSize int, pageToken string) (storage.SubmissionPage, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return storage.SubmissionPage{}, platformerrors.New(platformerrors.CodeAssignmentIDRequired, "assignment id is required")
	}
	if _, err := m.store.GetAssignment(ctx, assignmentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.SubmissionPage{}, platformerrors.WithMetadata(
				platformerrors.CodeAssignmentNotFound,
				"assignment not found",
				map[string]string{"assignment_id": assignmentID},
			)
		}
		return storage.SubmissionPage{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "load assignment", err)
	}

	condition, err := filter.ParseSubmissionFilter(filterExpr)
	if err != nil {
		return storage.SubmissionPage{}, platformerrors.Wrap(platformerrors.CodeInvalidFilter, "invalid submission filter", err)
	}

	page, err := m.store.ListSubmissionsByAssignment(ctx, assignmentID, condition, pageSize, pageToken)
	if err != nil {
		return storage.SubmissionPage{}, platformerrors.Wrap(platformerrors.CodeStorageFailure, "list submissions", err)
	}
	return page, nil
}

// ListForStudent resolves the student's enrolled courses through the roster
// and returns the assignments of those courses. A roster failure propagates
// as an unavailable error, never an empty list.
func (m *Manager) ListForStudent(ctx context.Context, studentID string) ([]domain.Assignment, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, platformerrors.New(platformerrors.CodeStudentIDRequired, "student id is required")
	}

	courseIDs, err := m.roster.EnrolledCourseIDs(ctx, studentID)
	if err != nil {
		if platformerrors.GetCode(err) == platformerrors.CodeRosterUnavailable {
			return nil, err
		}
		return nil, platformerrors.Wrap(platformerrors.CodeRosterUnavailable, "course roster lookup failed", err)
	}
	if len(courseIDs) == 0 {
		return []domain.Assignment{}, nil
	}

	assignments, err := m.store.ListAssignmentsByCourses(ctx, courseIDs)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.CodeStorageFailure, "list assignments", err)
	}
	return assignments, nil
}

// ListByCourse returns the assignments owned by one course.
func (m *Manager) ListByCourse(ctx context.Context, courseID string) ([]domain.Assignment, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, platformerrors.New(platformerrors.CodeCourseIDRequired, "course id is required")
	}
	assignments, err := m.store.ListAssignmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.CodeStorageFailure, "list assignments", err)
	}
	return assignments, nil
}
