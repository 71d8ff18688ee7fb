package domain

import (
	"testing"
	"time"
)

func TestStatusIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
	if !StatusAnalysisCompleted.IsTerminal() {
		t.Fatal("analysis_completed must be terminal")
	}
	if !StatusAnalysisFailed.IsTerminal() {
		t.Fatal("analysis_failed must be terminal")
	}
}

func TestParseStatus(t *testing.T) {
	for _, value := range []string{"pending", "analysis_completed", "analysis_failed"} {
		if _, err := ParseStatus(value); err != nil {
			t.Fatalf("parse %q: %v", value, err)
		}
	}
	if _, err := ParseStatus("graded"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestAcceptsSubmissionsAt(t *testing.T) {
	due := time.Date(2025, 2, 1, 23, 59, 0, 0, time.UTC)
	assignment := Assignment{DueDate: due}

	if !assignment.AcceptsSubmissionsAt(due.Add(-time.Hour)) {
		t.Fatal("expected submission before due date to be accepted")
	}
	if !assignment.AcceptsSubmissionsAt(due) {
		t.Fatal("expected submission exactly at due date to be accepted")
	}
	if assignment.AcceptsSubmissionsAt(due.Add(time.Minute)) {
		t.Fatal("expected submission after due date to be rejected")
	}

	noDeadline := Assignment{}
	if !noDeadline.AcceptsSubmissionsAt(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected assignment without due date to always accept")
	}
}

func TestAnalysisOutcomeBranches(t *testing.T) {
	analyzedAt := time.Date(2025, 1, 21, 10, 0, 0, 0, time.UTC)
	success := CompletedOutcome(AnalysisResult{
		PlagiarismCheck:     false,
		Grading:             87.5,
		FinalRecommendation: "Strong answer",
		AnalyzedAt:          analyzedAt,
	})
	if success.IsZero() {
		t.Fatal("expected non-zero outcome")
	}
	if success.TerminalStatus() != StatusAnalysisCompleted {
		t.Fatalf("terminal status = %s, want analysis_completed", success.TerminalStatus())
	}
	result, ok := success.Result()
	if !ok {
		t.Fatal("expected success branch")
	}
	if result.Grading != 87.5 || !result.AnalyzedAt.Equal(analyzedAt) {
		t.Fatalf("unexpected result: %+v", result)
	}
	if _, ok := success.Failure(); ok {
		t.Fatal("success outcome must not carry a failure branch")
	}

	failed := FailedOutcome("timeout")
	if failed.TerminalStatus() != StatusAnalysisFailed {
		t.Fatalf("terminal status = %s, want analysis_failed", failed.TerminalStatus())
	}
	failure, ok := failed.Failure()
	if !ok || failure.ErrorMessage != "timeout" {
		t.Fatalf("unexpected failure: %+v ok=%v", failure, ok)
	}
	if _, ok := failed.Result(); ok {
		t.Fatal("failure outcome must not carry a result branch")
	}

	var zero AnalysisOutcome
	if !zero.IsZero() {
		t.Fatal("expected zero outcome")
	}
}
