package assessment

import (
	"time"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ELIGIBILITY GATE
// ══════════════════════════════════════════════════════════════════════════════

// DefaultRetakeWindow is the cooldown between assessment runs.
const DefaultRetakeWindow = 30 * 24 * time.Hour

// Gate decides whether a user may start a new run. Time is passed in
// explicitly so the gate stays deterministic under test; the surrounding
// application supplies its clock.
type Gate struct {
	window time.Duration
}

// NewGate creates a gate with the given cooldown window. A non-positive
// window falls back to the default.
func NewGate(window time.Duration) *Gate {
	if window <= 0 {
		window = DefaultRetakeWindow
	}
	return &Gate{window: window}
}

// Window returns the configured cooldown.
func (g *Gate) Window() time.Duration {
	return g.window
}

// Check evaluates retake eligibility against the most recent persisted
// result, or nil when the user has never completed a run.
//
// The bypass for administrative roles is evaluated before any date
// arithmetic: a bypass identity is eligible even when the prior result is
// malformed or the window has not elapsed.
func (g *Gate) Check(now time.Time, role shared.Role, prior *Result) Eligibility {
	if role.BypassesCooldown() {
		return Eligibility{CanRetake: true}
	}
	if prior == nil {
		return Eligibility{CanRetake: true}
	}
	next := prior.CreatedAt.Add(g.window)
	if !now.Before(next) {
		return Eligibility{CanRetake: true}
	}
	return Eligibility{CanRetake: false, NextRetakeDate: &next}
}

// FailClosed is the eligibility returned when prior state cannot be read.
// The gate never fails open: the caller gets a conservative retry date of
// now plus the full window.
func (g *Gate) FailClosed(now time.Time) Eligibility {
	next := now.Add(g.window)
	return Eligibility{CanRetake: false, NextRetakeDate: &next}
}
