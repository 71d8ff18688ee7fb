package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	platformerrors "github.com/ulms/assignment-service/internal/platform/errors"
	"github.com/ulms/assignment-service/internal/services/assignment/domain"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

// Finalize applies one analysis outcome to a pending submission. The call is
// idempotent under at-least-once delivery: a submission already in a
// terminal state reports FinalizeAlreadyTerminal without touching the
// record, and concurrent calls for the same id resolve through the storage
// compare-and-swap so exactly one applies.
func (m *Manager) Finalize(ctx context.Context, submissionID string, outcome domain.AnalysisOutcome) (storage.FinalizeOutcome, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return "", platformerrors.New(platformerrors.CodeSubmissionIDRequired, "submission id is required")
	}
	if outcome.IsZero() {
		return "", fmt.Errorf("analysis outcome is required")
	}

	result, err := m.store.FinalizeSubmission(ctx, submissionID, outcome, m.clock())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", platformerrors.WithMetadata(
				platformerrors.CodeSubmissionNotFound,
				"submission not found",
				map[string]string{"submission_id": submissionID},
			)
		}
		return "", platformerrors.Wrap(platformerrors.CodeStorageFailure, "finalize submission", err)
	}
	return result, nil
}
