package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/timeutil"
)

const testUserID = "3f0b8a2e-5c1d-4e7f-9a6b-2c4d6e8f0a1b"

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type fakeResultStore struct {
	latest   *assessment.Result
	getErr   error
	getCalls int
}

func (f *fakeResultStore) Save(_ context.Context, _ *assessment.Result) error {
	return errors.New("read-only fake")
}

func (f *fakeResultStore) GetLatest(_ context.Context, _ shared.UserID) (*assessment.Result, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.latest == nil {
		return nil, assessment.ErrResultNotFound
	}
	return f.latest, nil
}

func newEligibilityHandler(store assessment.ResultStore) *CheckEligibilityHandler {
	return NewCheckEligibilityHandler(
		store,
		assessment.NewGate(assessment.DefaultRetakeWindow),
		timeutil.NewFixedClock(testNow),
	)
}

func TestCheckEligibility_NoPriorResult(t *testing.T) {
	h := newEligibilityHandler(&fakeResultStore{})

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err)
	assert.True(t, out.CanRetake)
	assert.False(t, out.HasPriorResult)
	assert.False(t, out.Degraded)
}

func TestCheckEligibility_WithinWindow(t *testing.T) {
	taken := testNow.Add(-10 * 24 * time.Hour)
	h := newEligibilityHandler(&fakeResultStore{latest: &assessment.Result{
		ID:        uuid.New(),
		CreatedAt: taken,
	}})

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err)
	assert.False(t, out.CanRetake)
	assert.True(t, out.HasPriorResult)
	require.NotNil(t, out.NextRetakeDate)
	assert.Equal(t, taken.Add(assessment.DefaultRetakeWindow), *out.NextRetakeDate)
}

func TestCheckEligibility_WindowElapsed(t *testing.T) {
	h := newEligibilityHandler(&fakeResultStore{latest: &assessment.Result{
		ID:        uuid.New(),
		CreatedAt: testNow.Add(-assessment.DefaultRetakeWindow),
	}})

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err)
	assert.True(t, out.CanRetake)
	assert.True(t, out.HasPriorResult)
	assert.Nil(t, out.NextRetakeDate)
}

func TestCheckEligibility_BypassSkipsStore(t *testing.T) {
	store := &fakeResultStore{getErr: errors.New("connection refused")}
	h := newEligibilityHandler(store)

	for _, role := range []shared.Role{shared.RoleAdmin, shared.RoleMaster} {
		out, err := h.Handle(context.Background(), CheckEligibilityQuery{
			UserID: testUserID,
			Role:   role,
		})
		require.NoError(t, err)
		assert.True(t, out.CanRetake, "role %s", role)
	}
	assert.Zero(t, store.getCalls, "bypass must not touch the store")
}

func TestCheckEligibility_StoreFailureFailsClosed(t *testing.T) {
	h := newEligibilityHandler(&fakeResultStore{getErr: errors.New("connection refused")})

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err, "a degraded check is an answer, not an error")
	assert.False(t, out.CanRetake)
	assert.True(t, out.Degraded)
	require.NotNil(t, out.NextRetakeDate)
	assert.Equal(t, testNow.Add(assessment.DefaultRetakeWindow), *out.NextRetakeDate)
}

// fakeCooldownStore layers a cooldown marker over the result store, the way
// the Redis decorator does in production.
type fakeCooldownStore struct {
	fakeResultStore
	until         time.Time
	cooldownErr   error
	cooldownCalls int
}

func (f *fakeCooldownStore) CooldownUntil(_ context.Context, _ shared.UserID) (time.Time, error) {
	f.cooldownCalls++
	if f.cooldownErr != nil {
		return time.Time{}, f.cooldownErr
	}
	return f.until, nil
}

func TestCheckEligibility_CooldownMarkerDeniesWithoutStoreRead(t *testing.T) {
	until := testNow.Add(5 * 24 * time.Hour)
	store := &fakeCooldownStore{
		fakeResultStore: fakeResultStore{getErr: errors.New("should not be called")},
		until:           until,
	}
	h := newEligibilityHandler(store)

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err)
	assert.False(t, out.CanRetake)
	assert.True(t, out.HasPriorResult)
	require.NotNil(t, out.NextRetakeDate)
	assert.Equal(t, until, *out.NextRetakeDate)
	assert.Equal(t, 1, store.cooldownCalls)
	assert.Zero(t, store.getCalls, "a live marker must answer without the store")
}

func TestCheckEligibility_ExpiredMarkerFallsThrough(t *testing.T) {
	// A marker at exactly now is no longer inside the cooldown.
	store := &fakeCooldownStore{until: testNow}
	h := newEligibilityHandler(store)

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err)
	assert.True(t, out.CanRetake)
	assert.Equal(t, 1, store.getCalls, "an expired marker must defer to the store")
}

func TestCheckEligibility_MarkerErrorFallsThrough(t *testing.T) {
	taken := testNow.Add(-10 * 24 * time.Hour)
	store := &fakeCooldownStore{
		fakeResultStore: fakeResultStore{latest: &assessment.Result{
			ID:        uuid.New(),
			CreatedAt: taken,
		}},
		cooldownErr: errors.New("connection refused"),
	}
	h := newEligibilityHandler(store)

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	require.NoError(t, err)
	assert.False(t, out.CanRetake)
	require.NotNil(t, out.NextRetakeDate)
	assert.Equal(t, taken.Add(assessment.DefaultRetakeWindow), *out.NextRetakeDate)
	assert.Equal(t, 1, store.getCalls, "a broken marker read must defer to the store")
}

func TestCheckEligibility_BypassSkipsCooldownMarker(t *testing.T) {
	store := &fakeCooldownStore{until: testNow.Add(24 * time.Hour)}
	h := newEligibilityHandler(store)

	out, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: testUserID,
		Role:   shared.RoleAdmin,
	})
	require.NoError(t, err)
	assert.True(t, out.CanRetake)
	assert.Zero(t, store.cooldownCalls)
}

func TestCheckEligibility_InvalidUserID(t *testing.T) {
	h := newEligibilityHandler(&fakeResultStore{})

	_, err := h.Handle(context.Background(), CheckEligibilityQuery{
		UserID: "not-a-uuid",
		Role:   shared.RoleMember,
	})
	assert.ErrorIs(t, err, shared.ErrInvalidID)
}
