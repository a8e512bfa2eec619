package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 1 — DEFAULT TYPE
// ══════════════════════════════════════════════════════════════════════════════

func TestRunStage1_Thresholds(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name          string
		cats          []TypeCategory
		wantType      DefaultType
		wantArchitect int
		wantAlchemist int
	}{
		{
			name: "six architect answers",
			cats: []TypeCategory{
				CategoryArchitect, CategoryArchitect, CategoryArchitect,
				CategoryArchitect, CategoryArchitect, CategoryArchitect,
			},
			wantType:      DefaultArchitect,
			wantArchitect: 6,
		},
		{
			name: "five architect answers meet the threshold",
			cats: []TypeCategory{
				CategoryArchitect, CategoryArchitect, CategoryArchitect,
				CategoryArchitect, CategoryArchitect, CategoryAlchemist,
			},
			wantType:      DefaultArchitect,
			wantArchitect: 5,
			wantAlchemist: 1,
		},
		{
			name: "five alchemist answers meet the threshold",
			cats: []TypeCategory{
				CategoryAlchemist, CategoryAlchemist, CategoryAlchemist,
				CategoryAlchemist, CategoryAlchemist, CategoryBlurred,
			},
			wantType:      DefaultAlchemist,
			wantAlchemist: 5,
		},
		{
			name: "four architect answers fall to blurred",
			cats: []TypeCategory{
				CategoryArchitect, CategoryArchitect, CategoryArchitect,
				CategoryArchitect, CategoryAlchemist, CategoryAlchemist,
			},
			wantType:      DefaultBlurred,
			wantArchitect: 4,
			wantAlchemist: 2,
		},
		{
			name: "blurred and undeclared answers count toward neither type",
			cats: []TypeCategory{
				CategoryArchitect, CategoryArchitect, CategoryBlurred,
				CategoryBlurred, CategoryUndeclared, CategoryUndeclared,
			},
			wantType:      DefaultBlurred,
			wantArchitect: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger()
			answerStage1(t, c, l, tt.cats...)

			res, err := RunStage1(c, l)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, res.DefaultType)
			assert.Equal(t, tt.wantArchitect, res.ArchitectCount)
			assert.Equal(t, tt.wantAlchemist, res.AlchemistCount)
		})
	}
}

func TestRunStage1_ExhaustiveRule(t *testing.T) {
	c := testCatalog(t)
	categories := []TypeCategory{
		CategoryArchitect, CategoryAlchemist, CategoryBlurred, CategoryUndeclared,
	}

	// The six-question bank admits 4^6 = 4096 answer vectors; the rule is
	// small enough to check against every single one.
	cats := make([]TypeCategory, 6)
	for vector := 0; vector < 4096; vector++ {
		architect, alchemist := 0, 0
		v := vector
		for i := range cats {
			cats[i] = categories[v%4]
			v /= 4
			switch cats[i] {
			case CategoryArchitect:
				architect++
			case CategoryAlchemist:
				alchemist++
			}
		}

		want := DefaultBlurred
		switch {
		case architect >= 5:
			want = DefaultArchitect
		case alchemist >= 5:
			want = DefaultAlchemist
		}

		l := NewLedger()
		answerStage1(t, c, l, cats...)
		res, err := RunStage1(c, l)
		require.NoError(t, err)
		require.Equal(t, want, res.DefaultType, "vector %d", vector)
		require.Equal(t, architect, res.ArchitectCount, "vector %d", vector)
		require.Equal(t, alchemist, res.AlchemistCount, "vector %d", vector)
	}
}

func TestRunStage1_IncompleteAnswers(t *testing.T) {
	c := testCatalog(t)
	l := NewLedger()
	answerStage1(t, c, l,
		CategoryArchitect, CategoryArchitect, CategoryArchitect,
		CategoryArchitect, CategoryArchitect, CategoryArchitect)

	// Drop one stage-1 answer: the classifier must refuse, not guess.
	missing := c.Stage1Questions()[3].ID
	l2 := NewLedger()
	for _, a := range l.Answers() {
		if a.QuestionID != missing {
			l2.Set(a.QuestionID, a.Option)
		}
	}

	_, err := RunStage1(c, l2)
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 2 — AWARENESS
// ══════════════════════════════════════════════════════════════════════════════

func TestRunStage2_ScoreTable(t *testing.T) {
	c := testCatalog(t)

	// The percentage table is non-linear on purpose: 0 and 1 share a band.
	wantPercentage := []int{20, 20, 30, 40, 50, 60, 70}

	for score := 0; score <= 6; score++ {
		l := NewLedger()
		answerAwareness(t, c, l, DefaultArchitect, score)

		res, err := RunStage2(c, l, DefaultArchitect)
		require.NoError(t, err)
		assert.Equal(t, AwarenessScore(score), res.RawScore)
		assert.Equal(t, wantPercentage[score], res.AwarenessPercentage.Int(),
			"raw score %d", score)
	}
}

func TestRunStage2_BankIndependentLedger(t *testing.T) {
	c := testCatalog(t)

	// Awareness banks share question IDs, so a ledger filled against one bank
	// is a complete answer set for any of them.
	for _, dt := range []DefaultType{DefaultArchitect, DefaultAlchemist, DefaultBlurred} {
		l := NewLedger()
		answerAwareness(t, c, l, dt, 6)

		res, err := RunStage2(c, l, dt)
		require.NoError(t, err)
		assert.Equal(t, MaxAwarenessScore, res.RawScore)
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 3 — PATH CHOICE
// ══════════════════════════════════════════════════════════════════════════════

func TestRunStage3_BothPaths(t *testing.T) {
	c := testCatalog(t)

	for _, p := range []PathChoice{PathEarly, PathDeveloped} {
		l := NewLedger()
		answerPath(t, c, l, p)

		res, err := RunStage3(c, l)
		require.NoError(t, err)
		assert.Equal(t, p, res.PathChoice)
	}
}

func TestRunStage3_Unanswered(t *testing.T) {
	c := testCatalog(t)
	_, err := RunStage3(c, NewLedger())
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 4 — SUBTYPE
// ══════════════════════════════════════════════════════════════════════════════

func TestRunStage4_PluralityVote(t *testing.T) {
	c := testCatalog(t)
	l := NewLedger()
	answerSubtype(t, c, l, DefaultArchitect, PathEarly,
		SubtypeSystemisedBuilder, SubtypeSystemisedBuilder, SubtypeSystemisedBuilder,
		SubtypeMasterStrategist, SubtypeMasterStrategist, SubtypeInternalAnalyzer)

	res, err := RunStage4(c, l, DefaultArchitect, PathEarly)
	require.NoError(t, err)
	assert.Equal(t, SubtypeSystemisedBuilder, res.Subtype)
	assert.Equal(t, 100, res.CompletionPercentage.Int())
	assert.Equal(t, map[Subtype]int{
		SubtypeSystemisedBuilder: 3,
		SubtypeMasterStrategist:  2,
		SubtypeInternalAnalyzer:  1,
	}, res.Counts)
}

func TestRunStage4_TieBreakPrefersFirstDeclared(t *testing.T) {
	c := testCatalog(t)

	// Builder and Analyzer tie at two votes each. Builder is declared earlier
	// in the Architect family, so it must win every time.
	l := NewLedger()
	answerSubtype(t, c, l, DefaultArchitect, PathEarly,
		SubtypeSystemisedBuilder, SubtypeSystemisedBuilder,
		SubtypeInternalAnalyzer, SubtypeInternalAnalyzer,
		SubtypeMasterStrategist, SubtypeUltimateStrategist)

	for i := 0; i < 20; i++ {
		res, err := RunStage4(c, l, DefaultArchitect, PathEarly)
		require.NoError(t, err)
		assert.Equal(t, SubtypeSystemisedBuilder, res.Subtype)
	}
}

func TestRunStage4_BankSelection(t *testing.T) {
	c := testCatalog(t)

	// The same ledger question IDs serve different banks; the blurred bank
	// votes for blurred-family subtypes only.
	l := NewLedger()
	answerSubtype(t, c, l, DefaultBlurred, PathDeveloped,
		SubtypePerformer, SubtypePerformer, SubtypePerformer,
		SubtypePerformer, SubtypeOverthinker, SubtypeOverthinker)

	res, err := RunStage4(c, l, DefaultBlurred, PathDeveloped)
	require.NoError(t, err)
	assert.Equal(t, SubtypePerformer, res.Subtype)
	assert.Equal(t, DefaultBlurred, res.Subtype.Family())
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 5 — VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

func TestRunStage5_AlignmentTags(t *testing.T) {
	c := testCatalog(t)
	l := NewLedger()
	answerValidation(t, c, l, DefaultArchitect,
		SubtypeMasterStrategist,  // exact match
		SubtypeMasterStrategist,  // exact match
		SubtypeSystemisedBuilder, // same family
		SubtypeInternalAnalyzer)  // same family

	res, err := RunStage5(c, l, DefaultArchitect, SubtypeMasterStrategist)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 4)

	assert.Equal(t, AlignmentStrong, res.Alignments[0].Tag)
	assert.Equal(t, AlignmentStrong, res.Alignments[1].Tag)
	assert.Equal(t, AlignmentPartial, res.Alignments[2].Tag)
	assert.Equal(t, AlignmentPartial, res.Alignments[3].Tag)
	assert.Equal(t, 2, res.StrongCount())

	// Tags are keyed to the validation questions in bank order.
	for i, q := range c.ValidationQuestions(DefaultArchitect) {
		assert.Equal(t, q.ID, res.Alignments[i].QuestionID)
	}
}

func TestRunStage5_PoorAlignmentOutsideFamily(t *testing.T) {
	// The shipped banks keep validation options in-family, so build a catalog
	// where one architect validation option maps to an alchemist subtype.
	data := DefaultCatalogData()
	bank := data.Validation[DefaultArchitect]
	bank[0].Options[0].Subtype = SubtypeVisionaryOracle
	data.Validation[DefaultArchitect] = bank

	c, err := NewCatalog(data)
	require.NoError(t, err)

	l := NewLedger()
	qs := c.ValidationQuestions(DefaultArchitect)
	l.Set(qs[0].ID, qs[0].Options[0].ID)
	for _, q := range qs[1:] {
		l.Set(q.ID, optionWhere(t, q, func(o Option) bool {
			return o.Subtype == SubtypeMasterStrategist
		}))
	}

	res, err := RunStage5(c, l, DefaultArchitect, SubtypeMasterStrategist)
	require.NoError(t, err)
	assert.Equal(t, AlignmentPoor, res.Alignments[0].Tag)
	assert.Equal(t, AlignmentStrong, res.Alignments[1].Tag)
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

func TestCompletionPercentage_Rounding(t *testing.T) {
	assert.Equal(t, 0, completionPercentage(0, 6).Int())
	assert.Equal(t, 17, completionPercentage(1, 6).Int())
	assert.Equal(t, 33, completionPercentage(2, 6).Int())
	assert.Equal(t, 50, completionPercentage(3, 6).Int())
	assert.Equal(t, 67, completionPercentage(4, 6).Int())
	assert.Equal(t, 83, completionPercentage(5, 6).Int())
	assert.Equal(t, 100, completionPercentage(6, 6).Int())
	assert.Equal(t, 0, completionPercentage(0, 0).Int())
}

func TestAwarenessScore_PercentageIsNotLinear(t *testing.T) {
	// Guard against "simplifying" the table into score*10 arithmetic.
	assert.Equal(t, AwarenessScore(0).Percentage(), AwarenessScore(1).Percentage())
	assert.NotEqual(t, 0, AwarenessScore(0).Percentage().Int())
	assert.NotEqual(t, 60, AwarenessScore(6).Percentage().Int())
}
