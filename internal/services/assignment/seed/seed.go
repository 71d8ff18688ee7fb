// Package seed loads the sample assignment fixtures used by local
// development environments.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

// DemoCourseID is the course every sample assignment belongs to.
const DemoCourseID = "384a3fe5-8d6c-4f51-a278-8271d982e01c"

func at(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(fmt.Sprintf("seed: bad fixture time %q: %v", value, err))
	}
	return parsed
}

// Assignments returns the sample fixtures. IDs are fixed so repeated seeding
// upserts instead of duplicating.
func Assignments() []domain.Assignment {
	return []domain.Assignment{
		{
			ID:          "seed-algorithm-design-tracing",
			CourseID:    DemoCourseID,
			Title:       "Assignment 1: Algorithm Design & Tracing",
			Description: "Design and trace simple algorithms using pseudocode. Focus on understanding control flow (sequence, selection, and iteration) and explaining each step clearly.",
			ModelAnswer: `<h2>Model Answer – Assignment 1: Algorithm Design & Tracing</h2>
<p>Task 1 initializes max with a, then compares against b and c in sequence; max ends holding the largest value. Task 2 sums 1..n with a FOR loop in O(n), or via the closed form n(n+1)/2 in O(1). Full marks require correct initialization, clear IF/FOR structure, and a basic complexity discussion.</p>`,
			DueDate:   at("2025-02-01T23:59:00Z"),
			CreatedAt: at("2025-01-15T10:00:00Z"),
			UpdatedAt: at("2025-01-15T10:00:00Z"),
		},
		{
			ID:          "seed-intro-data-structures",
			CourseID:    DemoCourseID,
			Title:       "Assignment 2: Introduction to Data Structures",
			Description: "Compare arrays and linked lists through simple operations such as insertion, deletion, and access. Explain trade-offs using both natural language and basic Big O notation.",
			ModelAnswer: `<h2>Model Answer – Assignment 2: Introduction to Data Structures</h2>
<p>Arrays use contiguous memory with O(1) index access but O(n) inserts at the front; singly linked lists invert the trade-off with O(1) front inserts and O(n) access. A strong answer gives accurate Big O for the main operations, one practical scenario per structure, and concise explanations rather than formula lists.</p>`,
			DueDate:   at("2025-02-10T23:59:00Z"),
			CreatedAt: at("2025-01-16T10:00:00Z"),
			UpdatedAt: at("2025-01-16T10:00:00Z"),
		},
		{
			ID:          "seed-basic-control-flow",
			CourseID:    DemoCourseID,
			Title:       "Assignment 3: Basic Programming – Control Flow",
			Description: "Write small programs that use conditionals and loops to solve simple numeric problems. Emphasis is on clarity, readability, and correct use of control structures.",
			ModelAnswer: `<h2>Model Answer – Assignment 3: Basic Programming – Control Flow</h2>
<p>Task 1 decides even/odd with the modulo operator; task 2 prints a multiplication table with a FOR loop over 1..10. Quality expectations: meaningful variable names, consistent indentation mirroring control structure, and direct logic without unnecessary steps.</p>`,
			DueDate:   at("2025-02-20T23:59:00Z"),
			CreatedAt: at("2025-01-17T10:00:00Z"),
			UpdatedAt: at("2025-01-17T10:00:00Z"),
		},
		{
			ID:          "seed-problem-solving-pseudocode",
			CourseID:    DemoCourseID,
			Title:       "Assignment 4: Problem-Solving with Pseudocode",
			Description: "Break down a real-world problem into inputs, outputs, and a step-by-step solution using pseudocode. Focus on clarity and structured thinking rather than syntax.",
			ModelAnswer: `<h2>Model Answer – Assignment 4: Problem-Solving with Pseudocode</h2>
<p>The grade calculator reads three scores, computes the mean, and compares it against the pass threshold of 50. The decomposition names inputs (three numeric scores), processing (arithmetic mean), decision (threshold comparison), and output (pass/fail message with the average).</p>`,
			DueDate:   at("2025-02-28T23:59:00Z"),
			CreatedAt: at("2025-01-18T10:00:00Z"),
			UpdatedAt: at("2025-01-18T10:00:00Z"),
		},
	}
}

// Apply upserts every fixture into the assignment store.
func Apply(ctx context.Context, store storage.AssignmentStore) error {
	if store == nil {
		return fmt.Errorf("assignment store is required")
	}
	for _, assignment := range Assignments() {
		if err := store.PutAssignment(ctx, assignment); err != nil {
			return fmt.Errorf("seed assignment %s: %w", assignment.ID, err)
		}
	}
	return nil
}
