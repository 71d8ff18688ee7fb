package lifecycle

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
	"github.com/ulms/assignment-service/internal/services/assignment/storage/filter"
	sqlitestore "github.com/ulms/assignment-service/internal/services/assignment/storage/sqlite"
)

// newSQLiteManager wires a manager over a real SQLite store so races go
// through actual transactions rather than the in-memory fake.
func newSQLiteManager(t *testing.T) (*Manager, *sqlitestore.Store) {
	t.Helper()
	store, err := sqlitestore.Open(filepath.Join(t.TempDir(), "assignment.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	manager, err := NewManager(store, &fakeRoster{})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return manager, store
}

func TestSubmitConcurrentDuplicatePair(t *testing.T) {
	manager, store := newSQLiteManager(t)
	ctx := context.Background()

	assignment := domain.Assignment{
		ID:        "a1",
		CourseID:  "course-1",
		Title:     "Essay on Climate Change",
		DueDate:   time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.PutAssignment(ctx, assignment); err != nil {
		t.Fatalf("put assignment: %v", err)
	}

	const submitters = 8
	errs := make([]error, submitters)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = manager.Submit(ctx, "a1", "student-1", "my answer")
		}(i)
	}
	close(start)
	wg.Wait()

	successes := 0
	duplicates := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case platformerrors.GetCode(err) == platformerrors.CodeSubmissionExists:
			duplicates++
		default:
			t.Fatalf("unexpected submit error: %v", err)
		}
	}
	if successes != 1 || duplicates != submitters-1 {
		t.Fatalf("successes = %d, duplicates = %d, want 1 and %d", successes, duplicates, submitters-1)
	}

	page, err := store.ListSubmissionsByAssignment(ctx, "a1", filter.SQLCondition{}, submitters, "")
	if err != nil {
		t.Fatalf("list submissions: %v", err)
	}
	if len(page.Submissions) != 1 {
		t.Fatalf("stored submissions = %d, want exactly 1", len(page.Submissions))
	}
}

func TestFinalizeConcurrentAppliesOnce(t *testing.T) {
	manager, store := newSQLiteManager(t)
	ctx := context.Background()

	assignment := domain.Assignment{
		ID:        "a1",
		CourseID:  "course-1",
		Title:     "Essay on Climate Change",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.PutAssignment(ctx, assignment); err != nil {
		t.Fatalf("put assignment: %v", err)
	}
	submission, err := manager.Submit(ctx, "a1", "student-1", "my answer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	outcome := domain.CompletedOutcome(domain.AnalysisResult{
		PlagiarismCheck:     true,
		Grading:             91.0,
		FinalRecommendation: "Well argued.",
		AnalyzedAt:          time.Now().UTC(),
	})

	const finalizers = 8
	results := make([]storage.FinalizeOutcome, finalizers)
	errs := make([]error, finalizers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < finalizers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = manager.Finalize(ctx, submission.ID, outcome)
		}(i)
	}
	close(start)
	wg.Wait()

	applied := 0
	alreadyTerminal := 0
	for i, err := range errs {
		if err != nil {
			t.Fatalf("finalize error: %v", err)
		}
		switch results[i] {
		case storage.FinalizeApplied:
			applied++
		case storage.FinalizeAlreadyTerminal:
			alreadyTerminal++
		default:
			t.Fatalf("unexpected finalize result %q", results[i])
		}
	}
	if applied != 1 || alreadyTerminal != finalizers-1 {
		t.Fatalf("applied = %d, already terminal = %d, want 1 and %d", applied, alreadyTerminal, finalizers-1)
	}

	got, err := manager.GetSubmission(ctx, submission.ID)
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if got.Status != domain.StatusAnalysisCompleted || got.Grading != 91.0 {
		t.Fatalf("finalized record: %+v", got)
	}
}
