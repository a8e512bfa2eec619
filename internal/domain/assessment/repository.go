package assessment

import (
	"context"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ResultStore persists completed assessment results. Results are immutable:
// Save is insert-only, and a later result for the same user supersedes the
// earlier one without touching it.
//
// Implementations translate their transport failures to ErrStoreUnavailable
// and absence to ErrResultNotFound so callers can match with errors.Is.
type ResultStore interface {
	// Save persists a newly created result. It must never overwrite an
	// existing result.
	Save(ctx context.Context, result *Result) error

	// GetLatest returns the most recent result for a user, by CreatedAt.
	// Returns ErrResultNotFound when the user has never completed a run.
	GetLatest(ctx context.Context, userID shared.UserID) (*Result, error)
}

// ResultHistory lists a user's past results, newest first. The engine itself
// only needs GetLatest; history is a coaching surface served straight from
// the authoritative store, never from the cache.
type ResultHistory interface {
	GetHistory(ctx context.Context, userID shared.UserID, limit int) ([]*Result, error)
}
