package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared fixtures for the assessment tests. All ledger builders answer by
// looking up options in the catalog rather than hard-coding option letters,
// so reordering catalog options never breaks the suite.

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(DefaultCatalogData())
	require.NoError(t, err)
	return c
}

// optionWhere returns the ID of the first option of q matching the predicate.
func optionWhere(t *testing.T, q Question, match func(Option) bool) OptionID {
	t.Helper()
	for _, o := range q.Options {
		if match(o) {
			return o.ID
		}
	}
	t.Fatalf("question %d has no option matching the predicate", q.ID)
	return ""
}

// answerStage1 answers the six stage-1 questions with one category each.
func answerStage1(t *testing.T, c *Catalog, l *Ledger, cats ...TypeCategory) {
	t.Helper()
	qs := c.Stage1Questions()
	require.Len(t, cats, len(qs))
	for i, q := range qs {
		cat := cats[i]
		l.Set(q.ID, optionWhere(t, q, func(o Option) bool { return o.Type == cat }))
	}
}

// answerAwareness answers the stage-2 bank with the given number of
// opposite-aligned picks; the rest take the non-counting option.
func answerAwareness(t *testing.T, c *Catalog, l *Ledger, dt DefaultType, opposite int) {
	t.Helper()
	qs := c.AwarenessQuestions(dt)
	require.LessOrEqual(t, opposite, len(qs))
	for i, q := range qs {
		wantOpposite := i < opposite
		l.Set(q.ID, optionWhere(t, q, func(o Option) bool { return o.Opposite == wantOpposite }))
	}
}

// answerPath answers the stage-3 question with the given path choice.
func answerPath(t *testing.T, c *Catalog, l *Ledger, p PathChoice) {
	t.Helper()
	q := c.PathQuestion()
	l.Set(q.ID, optionWhere(t, q, func(o Option) bool { return o.Path == p }))
}

// answerSubtype answers the stage-4 bank with one subtype vote per question.
func answerSubtype(t *testing.T, c *Catalog, l *Ledger, dt DefaultType, p PathChoice, votes ...Subtype) {
	t.Helper()
	qs := c.SubtypeQuestions(dt, p)
	require.Len(t, votes, len(qs))
	for i, q := range qs {
		vote := votes[i]
		l.Set(q.ID, optionWhere(t, q, func(o Option) bool { return o.Subtype == vote }))
	}
}

// answerValidation answers the stage-5 bank with one subtype pick per question.
func answerValidation(t *testing.T, c *Catalog, l *Ledger, dt DefaultType, picks ...Subtype) {
	t.Helper()
	qs := c.ValidationQuestions(dt)
	require.Len(t, picks, len(qs))
	for i, q := range qs {
		pick := picks[i]
		l.Set(q.ID, optionWhere(t, q, func(o Option) bool { return o.Subtype == pick }))
	}
}

// completeArchitectLedger builds a full 23-answer run that classifies as an
// early-path Architect / Master Strategist with awareness score 4.
func completeArchitectLedger(t *testing.T, c *Catalog) *Ledger {
	t.Helper()
	l := NewLedger()
	answerStage1(t, c, l,
		CategoryArchitect, CategoryArchitect, CategoryArchitect,
		CategoryArchitect, CategoryArchitect, CategoryArchitect)
	answerAwareness(t, c, l, DefaultArchitect, 4)
	answerPath(t, c, l, PathEarly)
	answerSubtype(t, c, l, DefaultArchitect, PathEarly,
		SubtypeMasterStrategist, SubtypeMasterStrategist, SubtypeMasterStrategist,
		SubtypeSystemisedBuilder, SubtypeSystemisedBuilder, SubtypeInternalAnalyzer)
	answerValidation(t, c, l, DefaultArchitect,
		SubtypeMasterStrategist, SubtypeMasterStrategist,
		SubtypeSystemisedBuilder, SubtypeInternalAnalyzer)
	return l
}
