// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHECK ELIGIBILITY QUERY
// Answers "may this user start a new run, and if not, when?". Read-only:
// it never mutates state and never blocks a bypass identity.
// ══════════════════════════════════════════════════════════════════════════════

// CheckEligibilityQuery contains the query parameters.
type CheckEligibilityQuery struct {
	// UserID is the platform user to check.
	UserID string

	// Role is the caller's resolved role.
	Role shared.Role
}

// Validate validates the query.
func (q CheckEligibilityQuery) Validate() error {
	if _, err := shared.NewUserID(q.UserID); err != nil {
		return fmt.Errorf("check_eligibility: %w", err)
	}
	return nil
}

// CheckEligibilityResult contains the eligibility decision.
type CheckEligibilityResult struct {
	// CanRetake reports whether a new run may start now.
	CanRetake bool

	// NextRetakeDate is set only when CanRetake is false.
	NextRetakeDate *time.Time

	// HasPriorResult reports whether the user has ever completed a run.
	HasPriorResult bool

	// Degraded is set when the store could not be read and the gate
	// failed closed. The decision is conservative, not authoritative.
	Degraded bool
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// cooldownReader is implemented by cached stores that keep a retake marker.
// The marker is only ever trusted to deny: it is written from the
// authoritative creation time and expires with the window, so a present,
// unexpired marker means the user is inside the cooldown. Eligibility is
// never granted from it.
type cooldownReader interface {
	CooldownUntil(ctx context.Context, userID shared.UserID) (time.Time, error)
}

// CheckEligibilityHandler handles the CheckEligibilityQuery.
type CheckEligibilityHandler struct {
	store assessment.ResultStore
	gate  *assessment.Gate
	clock timeutil.Clock
}

// NewCheckEligibilityHandler creates a new CheckEligibilityHandler.
func NewCheckEligibilityHandler(
	store assessment.ResultStore,
	gate *assessment.Gate,
	clock timeutil.Clock,
) *CheckEligibilityHandler {
	return &CheckEligibilityHandler{
		store: store,
		gate:  gate,
		clock: clock,
	}
}

// Handle evaluates retake eligibility.
//
// The bypass override is checked before any store read or date arithmetic.
// When the store is unreachable the gate fails closed: the caller gets
// CanRetake=false with a conservative next date, never a false green light.
func (h *CheckEligibilityHandler) Handle(ctx context.Context, q CheckEligibilityQuery) (*CheckEligibilityResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()

	if q.Role.BypassesCooldown() {
		return &CheckEligibilityResult{CanRetake: true}, nil
	}

	// Cooldown-marker fast path: a live marker denies without touching the
	// database. A miss, an expired marker, or any cache error falls through
	// to the authoritative store.
	if cr, ok := h.store.(cooldownReader); ok {
		if until, err := cr.CooldownUntil(ctx, shared.UserID(q.UserID)); err == nil && now.Before(until) {
			return &CheckEligibilityResult{
				CanRetake:      false,
				NextRetakeDate: &until,
				HasPriorResult: true,
			}, nil
		}
	}

	prior, err := h.store.GetLatest(ctx, shared.UserID(q.UserID))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			eligibility := h.gate.Check(now, q.Role, nil)
			return &CheckEligibilityResult{CanRetake: eligibility.CanRetake}, nil
		}
		closed := h.gate.FailClosed(now)
		return &CheckEligibilityResult{
			CanRetake:      closed.CanRetake,
			NextRetakeDate: closed.NextRetakeDate,
			Degraded:       true,
		}, nil
	}

	eligibility := h.gate.Check(now, q.Role, prior)
	return &CheckEligibilityResult{
		CanRetake:      eligibility.CanRetake,
		NextRetakeDate: eligibility.NextRetakeDate,
		HasPriorResult: true,
	}, nil
}
