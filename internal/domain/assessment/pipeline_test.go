package assessment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

func advanceThrough(t *testing.T, p *Pipeline, c *Catalog, l *Ledger) {
	t.Helper()
	for !p.CurrentStage().IsTerminal() {
		for _, q := range p.Questions() {
			o, ok := l.Get(q.ID)
			require.True(t, ok, "fixture ledger missing question %d", q.ID)
			require.NoError(t, p.RecordAnswer(q.ID, o))
		}
		require.NoError(t, p.AdvanceStage())
	}
}

func TestPipeline_HappyPath(t *testing.T) {
	c := testCatalog(t)
	full := completeArchitectLedger(t, c)
	userID := shared.UserID("9f1b2a4c-0d3e-4f5a-8b6c-7d8e9f0a1b2c")

	p := NewPipeline(c, userID)
	assert.Equal(t, StageDefaultType, p.CurrentStage())

	advanceThrough(t, p, c, full)
	assert.Equal(t, StageComplete, p.CurrentStage())

	id := uuid.New()
	createdAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	result, err := p.Complete(id, createdAt)
	require.NoError(t, err)

	assert.Equal(t, id, result.ID)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, DefaultArchitect, result.DefaultType)
	assert.Equal(t, AwarenessScore(4), result.AwarenessScore)
	assert.Equal(t, 50, result.AwarenessPercentage.Int())
	assert.Equal(t, PathEarly, result.PathChoice)
	assert.Equal(t, SubtypeMasterStrategist, result.Subtype)
	assert.Equal(t, 100, result.SubtypeCompletion.Int())
	assert.Equal(t, 2, result.StrongAlignmentCount())
	assert.Len(t, result.Answers, c.RequiredAnswerCount())
	assert.Equal(t, createdAt, result.CreatedAt)
}

func TestPipeline_RejectsQuestionsOfFutureStages(t *testing.T) {
	c := testCatalog(t)
	p := NewPipeline(c, "user-1")

	awarenessQ := c.AwarenessQuestions(DefaultArchitect)[0]
	err := p.RecordAnswer(awarenessQ.ID, OptionA)
	assert.ErrorIs(t, err, ErrStageNotReady)

	err = p.RecordAnswer(QuestionID(999), OptionA)
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	stage1Q := c.Stage1Questions()[0]
	err = p.RecordAnswer(stage1Q.ID, OptionID("E"))
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestPipeline_AdvanceRequiresCompleteStage(t *testing.T) {
	c := testCatalog(t)
	p := NewPipeline(c, "user-1")

	// Answer only five of six stage-1 questions.
	qs := c.Stage1Questions()
	for _, q := range qs[:5] {
		require.NoError(t, p.RecordAnswer(q.ID, q.Options[0].ID))
	}

	err := p.AdvanceStage()
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
	assert.Equal(t, StageDefaultType, p.CurrentStage(), "run must stay put on failure")
}

func TestPipeline_RewindInvalidatesLaterStages(t *testing.T) {
	c := testCatalog(t)
	full := completeArchitectLedger(t, c)

	p := NewPipeline(c, "user-1")
	advanceThrough(t, p, c, full)
	require.Equal(t, StageComplete, p.CurrentStage())

	// Overwrite a stage-1 answer: the run rewinds to stage 1 and every later
	// stage result is discarded.
	q := c.Stage1Questions()[0]
	alchemist := optionWhere(t, q, func(o Option) bool { return o.Type == CategoryAlchemist })
	require.NoError(t, p.RecordAnswer(q.ID, alchemist))
	assert.Equal(t, StageDefaultType, p.CurrentStage())

	// Completing now must fail; the run has to be re-advanced.
	_, err := p.Complete(uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrRunNotComplete)

	// Re-advancing re-runs the classifiers over the updated ledger: five
	// architect answers still clear the threshold.
	advanceThrough(t, p, c, p.Ledger())
	result, err := p.Complete(uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, DefaultArchitect, result.DefaultType)
}

func TestPipeline_CompleteBeforeTerminal(t *testing.T) {
	c := testCatalog(t)
	p := NewPipeline(c, "user-1")

	_, err := p.Complete(uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrRunNotComplete)
}

func TestCompletePipeline_Deterministic(t *testing.T) {
	c := testCatalog(t)
	full := completeArchitectLedger(t, c)
	id := uuid.New()
	createdAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	first, err := CompletePipeline(c, "user-1", full.Clone(), id, createdAt)
	require.NoError(t, err)
	second, err := CompletePipeline(c, "user-1", full.Clone(), id, createdAt)
	require.NoError(t, err)

	// Same ledger, same inputs: field-identical results.
	assert.Equal(t, first, second)
}

func TestCompletePipeline_MissingAnswer(t *testing.T) {
	c := testCatalog(t)
	full := completeArchitectLedger(t, c)

	// Drop the last validation answer.
	validationQ := c.ValidationQuestions(DefaultArchitect)[3].ID
	partial := NewLedger()
	for _, a := range full.Answers() {
		if a.QuestionID != validationQ {
			partial.Set(a.QuestionID, a.Option)
		}
	}

	_, err := CompletePipeline(c, "user-1", partial, uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
}

func TestCompletePipeline_MatchesStagewiseRun(t *testing.T) {
	c := testCatalog(t)
	full := completeArchitectLedger(t, c)
	id := uuid.New()
	createdAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	oneShot, err := CompletePipeline(c, "user-1", full.Clone(), id, createdAt)
	require.NoError(t, err)

	p := NewPipeline(c, "user-1")
	advanceThrough(t, p, c, full)
	stagewise, err := p.Complete(id, createdAt)
	require.NoError(t, err)

	assert.Equal(t, oneShot, stagewise)
}

func TestNewResult_RejectsWrongAnswerCount(t *testing.T) {
	c := testCatalog(t)
	full := completeArchitectLedger(t, c)

	s1, err := RunStage1(c, full)
	require.NoError(t, err)
	s2, err := RunStage2(c, full, s1.DefaultType)
	require.NoError(t, err)
	s3, err := RunStage3(c, full)
	require.NoError(t, err)
	s4, err := RunStage4(c, full, s1.DefaultType, s3.PathChoice)
	require.NoError(t, err)
	s5, err := RunStage5(c, full, s1.DefaultType, s4.Subtype)
	require.NoError(t, err)

	// An oversized ledger must be rejected even when every stage classified.
	oversized := full.Clone()
	oversized.Set(QuestionID(999), OptionA)

	_, err = NewResult(c, uuid.New(), "user-1", s1, s2, s3, s4, s5, oversized, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAnswerCount)
}
