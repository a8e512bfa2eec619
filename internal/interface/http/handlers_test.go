package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/application/query"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/identity"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

const testUserID = "3f0b8a2e-5c1d-4e7f-9a6b-2c4d6e8f0a1b"

// stubResolver resolves every token to a fixed caller.
type stubResolver struct {
	caller identity.Caller
	err    error
}

func (s stubResolver) Resolve(_ context.Context, _ string) (identity.Caller, error) {
	return s.caller, s.err
}

type stubHistoryStore struct {
	results []*assessment.Result
}

func (s *stubHistoryStore) GetHistory(_ context.Context, _ shared.UserID, _ int) ([]*assessment.Result, error) {
	return s.results, nil
}

type stubInvalidator struct {
	calls []shared.UserID
	err   error
}

func (s *stubInvalidator) Invalidate(_ context.Context, userID shared.UserID) error {
	s.calls = append(s.calls, userID)
	return s.err
}

type stubMinter struct {
	tokens  []string
	callers []identity.Caller
	err     error
}

func (s *stubMinter) StoreSession(_ context.Context, token string, caller identity.Caller) error {
	s.tokens = append(s.tokens, token)
	s.callers = append(s.callers, caller)
	return s.err
}

func newTestServer(t *testing.T, deps Dependencies) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RateLimitPerMinute = 0
	if deps.Resolver == nil {
		deps.Resolver = stubResolver{caller: identity.Caller{
			UserID: shared.UserID(testUserID),
			Role:   shared.RoleMember,
		}}
	}
	return NewServer(cfg, deps)
}

func doRequest(s *Server, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func asCaller(role shared.Role) stubResolver {
	return stubResolver{caller: identity.Caller{
		UserID: shared.UserID(testUserID),
		Role:   role,
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// History endpoint
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleGetHistory_DisabledAnswersNotFound(t *testing.T) {
	s := newTestServer(t, Dependencies{})

	rec := doRequest(s, http.MethodGet, "/api/v1/assessment/history", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetHistory_ReturnsEntries(t *testing.T) {
	store := &stubHistoryStore{results: []*assessment.Result{
		{
			ID:          uuid.New(),
			UserID:      shared.UserID(testUserID),
			DefaultType: assessment.DefaultArchitect,
			Subtype:     assessment.SubtypeMasterStrategist,
			CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	s := newTestServer(t, Dependencies{
		GetResultHistoryHandler: query.NewGetResultHistoryHandler(store),
	})

	rec := doRequest(s, http.MethodGet, "/api/v1/assessment/history?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Profile struct {
				Subtype string `json:"subtype"`
			} `json:"profile"`
		} `json:"data"`
		Meta struct {
			TotalCount int `json:"total_count"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, string(assessment.SubtypeMasterStrategist), resp.Data[0].Profile.Subtype)
	assert.Equal(t, 1, resp.Meta.TotalCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleInvalidateCache_RequiresBypassRole(t *testing.T) {
	inv := &stubInvalidator{}
	s := newTestServer(t, Dependencies{
		Resolver:         asCaller(shared.RoleCoach),
		CacheInvalidator: inv,
	})

	rec := doRequest(s, http.MethodDelete, "/api/v1/admin/cache/"+testUserID, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, inv.calls)
}

func TestHandleInvalidateCache_CacheDisabled(t *testing.T) {
	s := newTestServer(t, Dependencies{Resolver: asCaller(shared.RoleAdmin)})

	rec := doRequest(s, http.MethodDelete, "/api/v1/admin/cache/"+testUserID, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleInvalidateCache_DropsUserState(t *testing.T) {
	inv := &stubInvalidator{}
	s := newTestServer(t, Dependencies{
		Resolver:         asCaller(shared.RoleAdmin),
		CacheInvalidator: inv,
	})

	rec := doRequest(s, http.MethodDelete, "/api/v1/admin/cache/"+testUserID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, inv.calls, 1)
	assert.Equal(t, shared.UserID(testUserID), inv.calls[0])
}

func TestHandleInvalidateCache_RejectsBadUserID(t *testing.T) {
	inv := &stubInvalidator{}
	s := newTestServer(t, Dependencies{
		Resolver:         asCaller(shared.RoleMaster),
		CacheInvalidator: inv,
	})

	rec := doRequest(s, http.MethodDelete, "/api/v1/admin/cache/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, inv.calls)
}

func TestHandleMintSession_RequiresBypassRole(t *testing.T) {
	minter := &stubMinter{}
	s := newTestServer(t, Dependencies{
		Resolver:      asCaller(shared.RoleMember),
		SessionMinter: minter,
	})

	body := `{"user_id":"` + testUserID + `","role":"member"}`
	rec := doRequest(s, http.MethodPost, "/api/v1/admin/sessions", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, minter.tokens)
}

func TestHandleMintSession_MintsToken(t *testing.T) {
	minter := &stubMinter{}
	s := newTestServer(t, Dependencies{
		Resolver:      asCaller(shared.RoleAdmin),
		SessionMinter: minter,
	})

	body := `{"user_id":"` + testUserID + `","role":"coach"}`
	rec := doRequest(s, http.MethodPost, "/api/v1/admin/sessions", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, minter.tokens, 1)
	assert.Equal(t, shared.UserID(testUserID), minter.callers[0].UserID)
	assert.Equal(t, shared.RoleCoach, minter.callers[0].Role)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, minter.tokens[0], resp.Data.Token)
}

func TestHandleMintSession_RejectsBadUserID(t *testing.T) {
	minter := &stubMinter{}
	s := newTestServer(t, Dependencies{
		Resolver:      asCaller(shared.RoleAdmin),
		SessionMinter: minter,
	})

	rec := doRequest(s, http.MethodPost, "/api/v1/admin/sessions", `{"user_id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, minter.tokens)
}
