package query

import (
	"context"
	"fmt"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET LATEST PROFILE QUERY
// Returns the user's current DNA profile: the latest persisted Result plus
// the coaching copy for its subtype and operating loop.
// ══════════════════════════════════════════════════════════════════════════════

// GetLatestProfileQuery contains the query parameters.
type GetLatestProfileQuery struct {
	// UserID is the platform user whose profile is requested.
	UserID string
}

// Validate validates the query.
func (q GetLatestProfileQuery) Validate() error {
	if _, err := shared.NewUserID(q.UserID); err != nil {
		return fmt.Errorf("get_latest_profile: %w", err)
	}
	return nil
}

// GetLatestProfileResult contains the assembled profile view.
type GetLatestProfileResult struct {
	// Result is the latest persisted assessment result.
	Result *assessment.Result

	// Profile is the coaching profile of the classified subtype.
	Profile assessment.Profile

	// Loop is the operating loop of the classified default type.
	Loop assessment.OperatingLoop

	// StrongAlignments counts validation answers that matched the subtype
	// exactly; a quick confidence signal for coaches.
	StrongAlignments int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// GetLatestProfileHandler handles the GetLatestProfileQuery.
type GetLatestProfileHandler struct {
	store assessment.ResultStore
}

// NewGetLatestProfileHandler creates a new GetLatestProfileHandler.
func NewGetLatestProfileHandler(store assessment.ResultStore) *GetLatestProfileHandler {
	return &GetLatestProfileHandler{store: store}
}

// Handle loads and assembles the latest profile. Absence of any result
// surfaces as shared.ErrNotFound for the transport layer to translate.
func (h *GetLatestProfileHandler) Handle(ctx context.Context, q GetLatestProfileQuery) (*GetLatestProfileResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	result, err := h.store.GetLatest(ctx, shared.UserID(q.UserID))
	if err != nil {
		return nil, err
	}

	profile, _ := assessment.ProfileFor(result.Subtype)
	loop, _ := assessment.LoopFor(result.DefaultType)

	return &GetLatestProfileResult{
		Result:           result,
		Profile:          profile,
		Loop:             loop,
		StrongAlignments: result.StrongAlignmentCount(),
	}, nil
}
