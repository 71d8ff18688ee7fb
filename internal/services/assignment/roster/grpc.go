package roster

import (
	"context"
	"fmt"
	"strings"

	coursev1 "github.com/ulms/assignment-service/api/gen/go/course/v1"
	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
)

// GRPCResolver resolves enrollment through the course service RPC surface.
type GRPCResolver struct {
	client coursev1.CourseServiceClient
}

// NewGRPCResolver wraps an already-connected course service client.
func NewGRPCResolver(client coursev1.CourseServiceClient) (*GRPCResolver, error) {
	if client == nil {
		return nil, fmt.Errorf("course service client is required")
	}
	return &GRPCResolver{client: client}, nil
}

// EnrolledCourseIDs returns the distinct course IDs the student has offers
// for. The roster contract is loose, so offers are validated at this
// boundary: offers without a course id are dropped and duplicates collapse.
// Any transport failure surfaces as a roster-unavailable error.
func (r *GRPCResolver) EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("roster resolver is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, fmt.Errorf("student id is required")
	}

	resp, err := r.client.GetOffersForStudent(ctx, &coursev1.GetOffersForStudentRequest{
		StudentId: studentID,
	})
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.CodeRosterUnavailable, "course roster lookup failed", err)
	}

	seen := make(map[string]struct{})
	courseIDs := make([]string, 0, len(resp.GetOffers()))
	for _, offer := range resp.GetOffers() {
		courseID := strings.TrimSpace(offer.GetCourseId())
		if courseID == "" {
			continue
		}
		if _, ok := seen[courseID]; ok {
			continue
		}
		seen[courseID] = struct{}{}
		courseIDs = append(courseIDs, courseID)
	}
	return courseIDs, nil
}
