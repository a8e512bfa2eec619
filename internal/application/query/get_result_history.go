package query

import (
	"context"
	"fmt"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET RESULT HISTORY QUERY
// Lists a user's past assessment results, newest first. Results are immutable
// and superseded rather than overwritten, so history is the audit trail of a
// user's classification over time.
// ══════════════════════════════════════════════════════════════════════════════

// maxHistoryLimit caps a single history page.
const maxHistoryLimit = 50

// defaultHistoryLimit is used when the caller does not specify a limit.
const defaultHistoryLimit = 10

// GetResultHistoryQuery contains the query parameters.
type GetResultHistoryQuery struct {
	// UserID is the platform user whose history is requested.
	UserID string

	// Limit caps the number of results returned (0 = default page size).
	Limit int
}

// Validate validates the query.
func (q GetResultHistoryQuery) Validate() error {
	if _, err := shared.NewUserID(q.UserID); err != nil {
		return fmt.Errorf("get_result_history: %w", err)
	}
	return nil
}

// HistoryEntry is one past result with its subtype profile name attached.
type HistoryEntry struct {
	Result  *assessment.Result
	Profile assessment.Profile
}

// GetResultHistoryResult contains the history page.
type GetResultHistoryResult struct {
	Entries []HistoryEntry
}

// GetResultHistoryHandler handles the GetResultHistoryQuery.
type GetResultHistoryHandler struct {
	store assessment.ResultHistory
}

// NewGetResultHistoryHandler creates a new GetResultHistoryHandler.
func NewGetResultHistoryHandler(store assessment.ResultHistory) *GetResultHistoryHandler {
	return &GetResultHistoryHandler{store: store}
}

// Handle loads the user's past results. An empty history is a valid, empty
// page, not an error; the caller distinguishes "never took it" via the
// profile endpoint.
func (h *GetResultHistoryHandler) Handle(ctx context.Context, q GetResultHistoryQuery) (*GetResultHistoryResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	results, err := h.store.GetHistory(ctx, shared.UserID(q.UserID), limit)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, len(results))
	for i, r := range results {
		profile, _ := assessment.ProfileFor(r.Subtype)
		entries[i] = HistoryEntry{Result: r, Profile: profile}
	}
	return &GetResultHistoryResult{Entries: entries}, nil
}
