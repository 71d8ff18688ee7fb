package domain

import "time"

// Assignment is a course-owned assignment. It is read-only from this
// service's perspective; administrative updates happen elsewhere.
type Assignment struct {
	ID          string
	CourseID    string
	Title       string
	Description string
	ModelAnswer string
	// DueDate is the submission deadline. A zero value means no deadline.
	DueDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsSubmissionsAt reports whether a submission at the given instant is
// within the assignment deadline. Submissions exactly at the due date are
// still accepted; only strictly-later instants are rejected.
func (a Assignment) AcceptsSubmissionsAt(now time.Time) bool {
	if a.DueDate.IsZero() {
		return true
	}
	return !now.After(a.DueDate)
}
