package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

func TestNewCatalog_DefaultDataIsValid(t *testing.T) {
	c, err := NewCatalog(DefaultCatalogData())
	require.NoError(t, err)

	// 6 type + 6 awareness + 1 path + 6 subtype + 4 validation.
	assert.Equal(t, 23, c.RequiredAnswerCount())
}

func TestCatalog_StageOf(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		q    QuestionID
		want Stage
	}{
		{c.Stage1Questions()[0].ID, StageDefaultType},
		{c.AwarenessQuestions(DefaultAlchemist)[5].ID, StageAwareness},
		{c.PathQuestion().ID, StagePath},
		{c.SubtypeQuestions(DefaultBlurred, PathDeveloped)[0].ID, StageSubtype},
		{c.ValidationQuestions(DefaultArchitect)[3].ID, StageValidation},
	}
	for _, tt := range tests {
		s, ok := c.StageOf(tt.q)
		require.True(t, ok, "question %d", tt.q)
		assert.Equal(t, tt.want, s, "question %d", tt.q)
	}

	_, ok := c.StageOf(QuestionID(999))
	assert.False(t, ok)
}

func TestNewCatalog_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatalogData)
	}{
		{
			name: "wrong stage-1 question count",
			mutate: func(d *CatalogData) {
				d.DefaultType = d.DefaultType[:5]
			},
		},
		{
			name: "missing awareness bank",
			mutate: func(d *CatalogData) {
				delete(d.Awareness, DefaultBlurred)
			},
		},
		{
			name: "awareness bank ID drifts from reference",
			mutate: func(d *CatalogData) {
				bank := append([]Question(nil), d.Awareness[DefaultAlchemist]...)
				bank[2].ID = QuestionID(99)
				d.Awareness[DefaultAlchemist] = bank
			},
		},
		{
			name: "path question missing a choice",
			mutate: func(d *CatalogData) {
				for i := range d.Path.Options {
					d.Path.Options[i].Path = PathEarly
				}
			},
		},
		{
			name: "missing subtype bank",
			mutate: func(d *CatalogData) {
				delete(d.Subtype, BankKey{Type: DefaultAlchemist, Path: PathDeveloped})
			},
		},
		{
			name: "subtype option outside the family",
			mutate: func(d *CatalogData) {
				key := BankKey{Type: DefaultArchitect, Path: PathEarly}
				bank := append([]Question(nil), d.Subtype[key]...)
				bank[0].Options = append([]Option(nil), bank[0].Options...)
				bank[0].Options[0].Subtype = SubtypeVisionaryOracle
				d.Subtype[key] = bank
			},
		},
		{
			name: "duplicate option ID",
			mutate: func(d *CatalogData) {
				bank := append([]Question(nil), d.DefaultType...)
				bank[0].Options = append([]Option(nil), bank[0].Options...)
				bank[0].Options[1].ID = bank[0].Options[0].ID
				d.DefaultType = bank
			},
		},
		{
			name: "validation bank without any in-family option",
			mutate: func(d *CatalogData) {
				bank := append([]Question(nil), d.Validation[DefaultBlurred]...)
				bank[0].Options = append([]Option(nil), bank[0].Options...)
				for i := range bank[0].Options {
					bank[0].Options[i].Subtype = SubtypeMasterStrategist
				}
				d.Validation[DefaultBlurred] = bank
			},
		},
		{
			name: "question ID claimed by two stages",
			mutate: func(d *CatalogData) {
				bank := append([]Question(nil), d.DefaultType...)
				bank[5].ID = d.Path.ID
				d.DefaultType = bank
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := DefaultCatalogData()
			tt.mutate(&data)

			_, err := NewCatalog(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidConfiguration)
		})
	}
}

func TestDefaultCatalog_Stage1CategoryAssignments(t *testing.T) {
	c := testCatalog(t)

	// Anchors the answer-text-to-category mapping of the shipped bank: the
	// impulsive last-minute packer is the Alchemist pick and the anxious
	// list-rewriter is Blurred, not the other way around.
	anchors := []struct {
		text string
		want TypeCategory
	}{
		{"I mentally run through what I need and pack once — essentials are covered.", CategoryArchitect},
		{"I write a full list, check everything off, repack a few times, still feel uneasy.", CategoryBlurred},
		{"I throw things in last minute and trust it'll be fine.", CategoryAlchemist},
		{"I pack, unpack, and get overwhelmed deciding what I even need.", CategoryUndeclared},
		{"I stick to it. Fatigue doesn't override commitment unless it's serious.", CategoryArchitect},
		{"I ask myself if the reason still matters — if not, I adjust without guilt.", CategoryAlchemist},
		{"I feel torn — I want to keep going but can't force myself either.", CategoryBlurred},
		{"I sleep in, feel bad, and try again tomorrow.", CategoryUndeclared},
	}

	byText := make(map[string]TypeCategory)
	for _, q := range c.Stage1Questions() {
		for _, o := range q.Options {
			byText[o.Text] = o.Type
		}
	}
	for _, a := range anchors {
		got, ok := byText[a.text]
		require.True(t, ok, "answer text missing from the bank: %q", a.text)
		assert.Equal(t, a.want, got, "%q", a.text)
	}
}

func TestDefaultCatalog_Stage1OnePerCategory(t *testing.T) {
	c := testCatalog(t)

	// Every stage-1 question carries exactly one option per category, so no
	// answer vector can double-count a type.
	for _, q := range c.Stage1Questions() {
		got := make(map[TypeCategory]int)
		for _, o := range q.Options {
			got[o.Type]++
		}
		for _, cat := range []TypeCategory{CategoryArchitect, CategoryAlchemist, CategoryBlurred, CategoryUndeclared} {
			assert.Equal(t, 1, got[cat], "question %d category %s", q.ID, cat)
		}
	}
}

func TestQuestion_OptionLookup(t *testing.T) {
	c := testCatalog(t)
	q := c.Stage1Questions()[0]

	o, ok := q.Option(q.Options[2].ID)
	require.True(t, ok)
	assert.Equal(t, q.Options[2], o)

	_, ok = q.Option(OptionID("Z"))
	assert.False(t, ok)
}
