package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESULT AGGREGATE
// ══════════════════════════════════════════════════════════════════════════════

// Result is the terminal, immutable outcome of a completed pipeline run.
// A Result is created exactly once, at StageComplete, and is never mutated
// afterwards; a later run for the same user supersedes it with a new Result.
type Result struct {
	ID                  uuid.UUID           `json:"id"`
	UserID              shared.UserID       `json:"user_id"`
	DefaultType         DefaultType         `json:"default_type"`
	AwarenessScore      AwarenessScore      `json:"awareness_score"`
	AwarenessPercentage shared.Percentage   `json:"awareness_percentage"`
	PathChoice          PathChoice          `json:"path_choice"`
	Subtype             Subtype             `json:"subtype"`
	SubtypeCompletion   shared.Percentage   `json:"subtype_completion"`
	Validation          []QuestionAlignment `json:"validation"`
	Answers             []Answer            `json:"answers"`
	CreatedAt           time.Time           `json:"created_at"`
}

// NewResult assembles a Result from the stage outputs and the full ledger.
// The ledger must contain exactly the question count the catalog requires;
// a short-circuited or partial run must never produce a persistable Result.
func NewResult(
	c *Catalog,
	id uuid.UUID,
	userID shared.UserID,
	s1 Stage1Result,
	s2 Stage2Result,
	s3 Stage3Result,
	s4 Stage4Result,
	s5 Stage5Result,
	ledger *Ledger,
	createdAt time.Time,
) (*Result, error) {
	if ledger.Len() != c.RequiredAnswerCount() {
		return nil, ErrInvalidAnswerCount
	}
	return &Result{
		ID:                  id,
		UserID:              userID,
		DefaultType:         s1.DefaultType,
		AwarenessScore:      s2.RawScore,
		AwarenessPercentage: s2.AwarenessPercentage,
		PathChoice:          s3.PathChoice,
		Subtype:             s4.Subtype,
		SubtypeCompletion:   s4.CompletionPercentage,
		Validation:          s5.Alignments,
		Answers:             ledger.Answers(),
		CreatedAt:           createdAt,
	}, nil
}

// StrongAlignmentCount returns how many validation answers aligned exactly
// with the classified subtype.
func (r *Result) StrongAlignmentCount() int {
	return Stage5Result{Alignments: r.Validation}.StrongCount()
}
