package assignment

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	assignmentv1 "github.com/ulms/assignment-service/api/gen/go/assignment/v1"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

func statusToProto(status domain.Status) assignmentv1.SubmissionStatus {
	switch status {
	case domain.StatusPending:
		return assignmentv1.SubmissionStatus_SUBMISSION_STATUS_PENDING
	case domain.StatusAnalysisCompleted:
		return assignmentv1.SubmissionStatus_SUBMISSION_STATUS_ANALYSIS_COMPLETED
	case domain.StatusAnalysisFailed:
		return assignmentv1.SubmissionStatus_SUBMISSION_STATUS_ANALYSIS_FAILED
	default:
		return assignmentv1.SubmissionStatus_SUBMISSION_STATUS_UNSPECIFIED
	}
}

func submissionToProto(submission domain.Submission) *assignmentv1.Submission {
	out := &assignmentv1.Submission{
		Id:                  submission.ID,
		AssignmentId:        submission.AssignmentID,
		StudentId:           submission.StudentID,
		Content:             submission.Content,
		Status:              statusToProto(submission.Status),
		PlagiarismCheck:     submission.PlagiarismCheck,
		Grading:             submission.Grading,
		FinalRecommendation: submission.FinalRecommendation,
		ErrorMessage:        submission.ErrorMessage,
		CreatedAt:           timestamppb.New(submission.CreatedAt),
	}
	if !submission.AnalyzedAt.IsZero() {
		out.AnalyzedAt = timestamppb.New(submission.AnalyzedAt)
	}
	return out
}

func submissionsToProto(submissions []domain.Submission) []*assignmentv1.Submission {
	out := make([]*assignmentv1.Submission, 0, len(submissions))
	for _, submission := range submissions {
		out = append(out, submissionToProto(submission))
	}
	return out
}

func assignmentToProto(assignment domain.Assignment, submissions []domain.Submission) *assignmentv1.Assignment {
	out := &assignmentv1.Assignment{
		Id:          assignment.ID,
		CourseId:    assignment.CourseID,
		Title:       assignment.Title,
		Description: assignment.Description,
		ModelAnswer: assignment.ModelAnswer,
		CreatedAt:   timestamppb.New(assignment.CreatedAt),
		UpdatedAt:   timestamppb.New(assignment.UpdatedAt),
		Submissions: submissionsToProto(submissions),
	}
	if !assignment.DueDate.IsZero() {
		out.DueDate = timestamppb.New(assignment.DueDate)
	}
	return out
}

func assignmentsToProto(assignments []domain.Assignment) []*assignmentv1.Assignment {
	out := make([]*assignmentv1.Assignment, 0, len(assignments))
	for _, assignment := range assignments {
		out = append(out, assignmentToProto(assignment, nil))
	}
	return out
}

func outboxEventToProto(event storage.OutboxEvent) *assignmentv1.OutboxEvent {
	return &assignmentv1.OutboxEvent{
		Id:            event.ID,
		EventType:     event.EventType,
		PartitionKey:  event.PartitionKey,
		PayloadJson:   event.PayloadJSON,
		DedupeKey:     event.DedupeKey,
		AttemptCount:  int32(event.AttemptCount),
		NextAttemptAt: timestamppb.New(event.NextAttemptAt),
		CreatedAt:     timestamppb.New(event.CreatedAt),
	}
}
