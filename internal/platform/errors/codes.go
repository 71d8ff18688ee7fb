// Package errors provides structured error handling for the assignment service.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors
	CodeAssignmentIDRequired Code = "ASSIGNMENT_ID_REQUIRED"
	CodeStudentIDRequired    Code = "STUDENT_ID_REQUIRED"
	CodeCourseIDRequired     Code = "COURSE_ID_REQUIRED"
	CodeSubmissionIDRequired Code = "SUBMISSION_ID_REQUIRED"
	CodeContentRequired      Code = "SUBMISSION_CONTENT_REQUIRED"
	CodeInvalidFilter        Code = "INVALID_FILTER"

	// Lifecycle errors
	CodeAssignmentNotFound Code = "ASSIGNMENT_NOT_FOUND"
	CodeSubmissionNotFound Code = "SUBMISSION_NOT_FOUND"
	CodeSubmissionExists   Code = "SUBMISSION_ALREADY_EXISTS"
	CodeSubmissionPastDue  Code = "SUBMISSION_PAST_DUE"

	// Dependency errors
	CodeRosterUnavailable  Code = "ROSTER_UNAVAILABLE"
	CodeEventPublishFailed Code = "EVENT_PUBLISH_FAILED"
	CodeStorageFailure     Code = "STORAGE_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeAssignmentIDRequired,
		CodeStudentIDRequired,
		CodeCourseIDRequired,
		CodeSubmissionIDRequired,
		CodeContentRequired,
		CodeInvalidFilter:
		return codes.InvalidArgument

	case CodeAssignmentNotFound,
		CodeSubmissionNotFound:
		return codes.NotFound

	case CodeSubmissionExists:
		return codes.AlreadyExists

	case CodeSubmissionPastDue:
		return codes.PermissionDenied

	case CodeRosterUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
