package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

func priorResultAt(createdAt time.Time) *Result {
	return &Result{CreatedAt: createdAt}
}

func TestGate_NoPriorResult(t *testing.T) {
	g := NewGate(DefaultRetakeWindow)

	e := g.Check(time.Now(), shared.RoleMember, nil)
	assert.True(t, e.CanRetake)
	assert.Nil(t, e.NextRetakeDate)
}

func TestGate_WindowBoundary(t *testing.T) {
	g := NewGate(30 * 24 * time.Hour)
	taken := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	prior := priorResultAt(taken)

	// One second into the window: blocked.
	e := g.Check(taken.Add(time.Second), shared.RoleMember, prior)
	assert.False(t, e.CanRetake)
	require.NotNil(t, e.NextRetakeDate)
	assert.Equal(t, taken.Add(30*24*time.Hour), *e.NextRetakeDate)

	// Day 29: still blocked.
	e = g.Check(taken.Add(29*24*time.Hour), shared.RoleMember, prior)
	assert.False(t, e.CanRetake)

	// Exactly day 30: eligible. The boundary instant itself is open.
	e = g.Check(taken.Add(30*24*time.Hour), shared.RoleMember, prior)
	assert.True(t, e.CanRetake)
	assert.Nil(t, e.NextRetakeDate)

	// Well past the window: eligible.
	e = g.Check(taken.Add(45*24*time.Hour), shared.RoleMember, prior)
	assert.True(t, e.CanRetake)
}

func TestGate_BypassRoles(t *testing.T) {
	g := NewGate(DefaultRetakeWindow)
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	// Bypass applies even one day after the prior run.
	prior := priorResultAt(now.Add(-24 * time.Hour))

	for _, role := range []shared.Role{shared.RoleAdmin, shared.RoleMaster} {
		e := g.Check(now, role, prior)
		assert.True(t, e.CanRetake, "role %s must bypass the cooldown", role)
	}

	for _, role := range []shared.Role{shared.RoleMember, shared.RoleCoach} {
		e := g.Check(now, role, prior)
		assert.False(t, e.CanRetake, "role %s must respect the cooldown", role)
	}
}

func TestGate_BypassBeforeDateArithmetic(t *testing.T) {
	g := NewGate(DefaultRetakeWindow)

	// A malformed prior result (zero CreatedAt) must not break the bypass.
	prior := priorResultAt(time.Time{})
	e := g.Check(time.Now(), shared.RoleAdmin, prior)
	assert.True(t, e.CanRetake)
}

func TestGate_FailClosed(t *testing.T) {
	g := NewGate(30 * 24 * time.Hour)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	e := g.FailClosed(now)
	assert.False(t, e.CanRetake)
	require.NotNil(t, e.NextRetakeDate)
	assert.Equal(t, now.Add(30*24*time.Hour), *e.NextRetakeDate)
}

func TestNewGate_DefaultsNonPositiveWindow(t *testing.T) {
	assert.Equal(t, DefaultRetakeWindow, NewGate(0).Window())
	assert.Equal(t, DefaultRetakeWindow, NewGate(-time.Hour).Window())
	assert.Equal(t, 7*24*time.Hour, NewGate(7*24*time.Hour).Window())
}
