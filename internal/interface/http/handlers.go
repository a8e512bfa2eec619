package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dna-hub/dna-coaching-hub/internal/application/command"
	"github.com/dna-hub/dna-coaching-hub/internal/application/query"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/identity"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATION
// ══════════════════════════════════════════════════════════════════════════════

// authenticate resolves the caller from the Authorization header.
func (s *Server) authenticate(r *http.Request) (identity.Caller, error) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		token = header
	}
	return s.deps.Resolver.Resolve(r.Context(), token)
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH ENDPOINTS
// ══════════════════════════════════════════════════════════════════════════════

// handleHealth returns basic service health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  s.Uptime().String(),
		"service": "dna-coaching-hub",
	})
}

// handleReady checks dependency health for readiness probes.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.deps.HealthChecker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}

	checks := s.deps.HealthChecker.Check(r.Context())
	status := http.StatusOK
	statusText := "ready"
	details := make(map[string]string, len(checks))
	for name, err := range checks {
		if err != nil {
			status = http.StatusServiceUnavailable
			statusText = "not_ready"
			details[name] = err.Error()
			continue
		}
		details[name] = "ok"
	}

	writeJSON(w, status, map[string]interface{}{
		"status": statusText,
		"checks": details,
	})
}

// handleLive is the liveness probe.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// handleRoot returns service metadata.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSONError(w, http.StatusNotFound, "not_found", "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "dna-coaching-hub",
		"version": "v1",
		"docs":    "/api/v1",
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// ASSESSMENT ENDPOINTS
// ══════════════════════════════════════════════════════════════════════════════

// eligibilityResponse is the wire form of an eligibility decision.
type eligibilityResponse struct {
	CanRetake      bool       `json:"can_retake"`
	NextRetakeDate *time.Time `json:"next_retake_date,omitempty"`
	HasPriorResult bool       `json:"has_prior_result"`
	Degraded       bool       `json:"degraded,omitempty"`
}

// handleCheckEligibility answers whether the caller may start a new run.
func (s *Server) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	result, err := s.deps.CheckEligibilityHandler.Handle(r.Context(), query.CheckEligibilityQuery{
		UserID: caller.UserID.String(),
		Role:   caller.Role,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eligibilityResponse{
		CanRetake:      result.CanRetake,
		NextRetakeDate: result.NextRetakeDate,
		HasPriorResult: result.HasPriorResult,
		Degraded:       result.Degraded,
	})
}

// submitRequest is the wire form of a full-run submission.
type submitRequest struct {
	Answers []struct {
		QuestionID int    `json:"question_id"`
		Option     string `json:"option"`
	} `json:"answers"`
}

// submitResponse is the wire form of a completed submission.
type submitResponse struct {
	Result     *assessment.Result       `json:"result"`
	Profile    assessment.Profile       `json:"profile"`
	Loop       assessment.OperatingLoop `json:"operating_loop"`
	Superseded bool                     `json:"superseded"`
}

// handleSubmitAssessment accepts a complete answer ledger, classifies it and
// persists the result. The answers arrive as one batch; partial runs live
// client-side and are never stored.
func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return
	}

	answers := make([]assessment.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, assessment.Answer{
			QuestionID: assessment.QuestionID(a.QuestionID),
			Option:     assessment.OptionID(a.Option),
		})
	}

	result, err := s.deps.SubmitAssessmentHandler.Handle(r.Context(), command.SubmitAssessmentCommand{
		UserID:        caller.UserID.String(),
		Role:          caller.Role,
		Answers:       answers,
		CorrelationID: getRequestID(r.Context()),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Result:     result.Result,
		Profile:    result.Profile,
		Loop:       result.Loop,
		Superseded: result.Superseded,
	})
}

// profileResponse is the wire form of a profile read.
type profileResponse struct {
	Result           *assessment.Result       `json:"result"`
	Profile          assessment.Profile       `json:"profile"`
	Loop             assessment.OperatingLoop `json:"operating_loop"`
	StrongAlignments int                      `json:"strong_alignments"`
}

// handleGetProfile returns the caller's own latest profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.serveProfile(w, r, caller.UserID.String())
}

// handleGetProfileByID returns another member's profile. Restricted to
// coaches and bypass roles; members can only read their own.
func (s *Server) handleGetProfileByID(w http.ResponseWriter, r *http.Request) {
	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	userID := r.PathValue("userId")
	if userID != caller.UserID.String() && caller.Role != shared.RoleCoach && !caller.IsBypass() {
		writeJSONError(w, http.StatusForbidden, "forbidden", "Only coaches may view other members' profiles")
		return
	}
	s.serveProfile(w, r, userID)
}

func (s *Server) serveProfile(w http.ResponseWriter, r *http.Request, userID string) {
	result, err := s.deps.GetLatestProfileHandler.Handle(r.Context(), query.GetLatestProfileQuery{
		UserID: userID,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Result:           result.Result,
		Profile:          result.Profile,
		Loop:             result.Loop,
		StrongAlignments: result.StrongAlignments,
	})
}

// historyEntry is the wire form of one past result.
type historyEntry struct {
	Result  *assessment.Result `json:"result"`
	Profile assessment.Profile `json:"profile"`
}

// handleGetHistory lists the caller's past results, newest first. The route
// exists only when the history feature is enabled at wiring time.
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.deps.GetResultHistoryHandler == nil {
		writeJSONError(w, http.StatusNotFound, "not_found", "Resource not found")
		return
	}

	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	result, err := s.deps.GetResultHistoryHandler.Handle(r.Context(), query.GetResultHistoryQuery{
		UserID: caller.UserID.String(),
		Limit:  getQueryParamInt(r, "limit", 0),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	entries := make([]historyEntry, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = historyEntry{Result: e.Result, Profile: e.Profile}
	}
	writeJSONWithMeta(w, r, http.StatusOK, entries, &ResponseMeta{
		TotalCount: len(entries),
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// ADMIN ENDPOINTS
// ══════════════════════════════════════════════════════════════════════════════

// handleInvalidateCache drops the cached result and cooldown marker for a
// user. Bypass roles only; the next read falls through to Postgres.
func (s *Server) handleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !caller.IsBypass() {
		writeJSONError(w, http.StatusForbidden, "forbidden", "Admin access required")
		return
	}

	if s.deps.CacheInvalidator == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "cache_disabled", "Result caching is not enabled")
		return
	}

	userID, err := shared.NewUserID(r.PathValue("userId"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	if err := s.deps.CacheInvalidator.Invalidate(r.Context(), userID); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "invalidated",
		"user_id": userID.String(),
	})
}

// mintSessionRequest is the wire form of an admin session mint.
type mintSessionRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// handleMintSession creates a bearer session for a user. Bypass roles only;
// used by internal tooling and support flows, not by the public login path.
func (s *Server) handleMintSession(w http.ResponseWriter, r *http.Request) {
	caller, err := s.authenticate(r)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if !caller.IsBypass() {
		writeJSONError(w, http.StatusForbidden, "forbidden", "Admin access required")
		return
	}

	if s.deps.SessionMinter == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "sessions_disabled", "Session storage is not enabled")
		return
	}

	var req mintSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return
	}

	userID, err := shared.NewUserID(req.UserID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	token := uuid.NewString()
	subject := identity.Caller{UserID: userID, Role: shared.ParseRole(req.Role)}
	if err := s.deps.SessionMinter.StoreSession(r.Context(), token, subject); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"token":   token,
		"user_id": userID.String(),
		"role":    subject.Role.String(),
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// ERROR MAPPING
// ══════════════════════════════════════════════════════════════════════════════

// writeDomainError maps domain error kinds to HTTP responses. Unknown errors
// become a 500 without leaking internals.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrUnauthorized):
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Valid credentials are required")
	case errors.Is(err, assessment.ErrRetakeNotAllowed):
		w.Header().Set("Retry-After", "86400")
		writeJSONError(w, http.StatusTooManyRequests, "retake_not_allowed", "The retake window has not elapsed yet")
	case errors.Is(err, shared.ErrForbidden):
		writeJSONError(w, http.StatusForbidden, "forbidden", "You do not have access to this resource")
	case errors.Is(err, shared.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", "No assessment result found")
	case errors.Is(err, shared.ErrIncomplete):
		writeJSONError(w, http.StatusUnprocessableEntity, "incomplete_answers", "Not all required questions are answered")
	case errors.Is(err, shared.ErrInvalidState):
		writeJSONError(w, http.StatusUnprocessableEntity, "invalid_submission", "The answer set does not form a complete run")
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrInvalidInput), errors.Is(err, shared.ErrInvalidID):
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "validation_error", "Invalid request", err.Error())
	case errors.Is(err, shared.ErrServiceUnavailable), errors.Is(err, shared.ErrTimeout):
		writeJSONError(w, http.StatusServiceUnavailable, "service_unavailable", "A backing service is unavailable, try again later")
	default:
		s.logger.Error("unhandled error",
			logger.Err(err),
			logger.String("path", r.URL.Path),
			logger.String("request_id", getRequestID(r.Context())),
		)
		writeJSONError(w, http.StatusInternalServerError, "internal_server_error", "An unexpected error occurred")
	}
}
