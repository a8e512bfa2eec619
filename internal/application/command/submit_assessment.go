// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT ASSESSMENT COMMAND
// Runs the full five-stage pipeline over a complete answer ledger, persists
// the Result, and publishes the completion events. The eligibility gate is
// checked before any scoring happens.
// ══════════════════════════════════════════════════════════════════════════════

// SubmitAssessmentCommand contains a full assessment submission.
type SubmitAssessmentCommand struct {
	// UserID is the platform user the run belongs to.
	UserID string

	// Role is the caller's resolved role. It comes from the identity
	// resolver, never from raw request data.
	Role shared.Role

	// Answers is the complete answer ledger of the run.
	Answers []assessment.Answer

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c SubmitAssessmentCommand) Validate() error {
	if _, err := shared.NewUserID(c.UserID); err != nil {
		return fmt.Errorf("submit_assessment: %w", err)
	}
	if len(c.Answers) == 0 {
		return errors.New("submit_assessment: answers are required")
	}
	for _, a := range c.Answers {
		if !a.IsValid() {
			return fmt.Errorf("submit_assessment: invalid answer for question %d", a.QuestionID)
		}
	}
	return nil
}

// SubmitAssessmentResult contains the result of a submission.
type SubmitAssessmentResult struct {
	// Result is the persisted assessment result.
	Result *assessment.Result

	// Profile is the coaching profile of the classified subtype.
	Profile assessment.Profile

	// Loop is the operating loop of the classified default type.
	Loop assessment.OperatingLoop

	// Superseded indicates that an earlier result existed and was replaced.
	Superseded bool

	// Events contains domain events generated.
	Events []shared.Event

	// SubmittedAt is when the result was created.
	SubmittedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// SubmitAssessmentHandler handles the SubmitAssessmentCommand.
type SubmitAssessmentHandler struct {
	catalog        *assessment.Catalog
	store          assessment.ResultStore
	gate           *assessment.Gate
	clock          timeutil.Clock
	eventPublisher shared.EventPublisher
}

// NewSubmitAssessmentHandler creates a new SubmitAssessmentHandler.
func NewSubmitAssessmentHandler(
	catalog *assessment.Catalog,
	store assessment.ResultStore,
	gate *assessment.Gate,
	clock timeutil.Clock,
	eventPublisher shared.EventPublisher,
) *SubmitAssessmentHandler {
	return &SubmitAssessmentHandler{
		catalog:        catalog,
		store:          store,
		gate:           gate,
		clock:          clock,
		eventPublisher: eventPublisher,
	}
}

// Handle executes the submission.
//
// The retake gate is evaluated first. Bypass roles skip the prior-result
// lookup entirely; for everyone else a store failure fails closed and the
// submission is denied rather than risking a premature retake.
func (h *SubmitAssessmentHandler) Handle(ctx context.Context, cmd SubmitAssessmentCommand) (*SubmitAssessmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	userID := shared.UserID(cmd.UserID)
	now := h.clock.Now()

	var prior *assessment.Result
	if !cmd.Role.BypassesCooldown() {
		var err error
		prior, err = h.getPrior(ctx, userID)
		if err != nil {
			h.publish(shared.NewRetakeDeniedEvent(cmd.UserID, now.Add(h.gate.Window())))
			return nil, err
		}
	}

	eligibility := h.gate.Check(now, cmd.Role, prior)
	if !eligibility.CanRetake {
		h.publish(shared.NewRetakeDeniedEvent(cmd.UserID, *eligibility.NextRetakeDate))
		return nil, assessment.ErrRetakeNotAllowed
	}

	ledger := assessment.LedgerFromAnswers(cmd.Answers)
	result, err := assessment.CompletePipeline(h.catalog, userID, ledger, uuid.New(), now)
	if err != nil {
		return nil, err
	}

	if err := h.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("submit_assessment: failed to persist result: %w", err)
	}

	profile, _ := assessment.ProfileFor(result.Subtype)
	loop, _ := assessment.LoopFor(result.DefaultType)

	out := &SubmitAssessmentResult{
		Result:      result,
		Profile:     profile,
		Loop:        loop,
		Superseded:  prior != nil,
		Events:      make([]shared.Event, 0, 2),
		SubmittedAt: now,
	}

	completed := shared.NewAssessmentCompletedEvent(
		cmd.UserID,
		result.ID.String(),
		result.DefaultType.String(),
		result.Subtype.String(),
		result.AwarenessPercentage.Int(),
	)
	h.publish(completed)
	out.Events = append(out.Events, completed)

	if prior != nil {
		superseded := shared.NewProfileSupersededEvent(cmd.UserID, prior.ID.String(), result.ID.String())
		h.publish(superseded)
		out.Events = append(out.Events, superseded)
	}

	return out, nil
}

// getPrior loads the latest persisted result. Absence is not an error;
// any other failure propagates so the gate can fail closed.
func (h *SubmitAssessmentHandler) getPrior(ctx context.Context, userID shared.UserID) (*assessment.Result, error) {
	prior, err := h.store.GetLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, assessment.ErrStoreUnavailable
	}
	return prior, nil
}

// publish delivers an event best-effort; a failed publish never fails the
// command itself.
func (h *SubmitAssessmentHandler) publish(event shared.Event) {
	if h.eventPublisher == nil {
		return
	}
	_ = h.eventPublisher.Publish(event)
}
