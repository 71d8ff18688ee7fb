// Package roster resolves a student's course enrollment through the external
// course service.
package roster

import "context"

// Resolver maps a student to the course IDs they are enrolled in.
type Resolver interface {
	EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error)
}
