package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_SetOverwrites(t *testing.T) {
	l := NewLedger()
	l.Set(QuestionID(1), OptionA)
	l.Set(QuestionID(1), OptionC)

	o, ok := l.Get(QuestionID(1))
	require.True(t, ok)
	assert.Equal(t, OptionC, o)
	assert.Equal(t, 1, l.Len())
}

func TestLedgerFromAnswers_LastWriteWins(t *testing.T) {
	l := LedgerFromAnswers([]Answer{
		{QuestionID: 1, Option: OptionA},
		{QuestionID: 2, Option: OptionB},
		{QuestionID: 1, Option: OptionD},
	})

	assert.Equal(t, 2, l.Len())
	o, _ := l.Get(QuestionID(1))
	assert.Equal(t, OptionD, o)
}

func TestLedger_HasAll(t *testing.T) {
	l := NewLedger()
	l.Set(QuestionID(1), OptionA)
	l.Set(QuestionID(2), OptionB)

	assert.True(t, l.HasAll([]QuestionID{1, 2}))
	assert.False(t, l.HasAll([]QuestionID{1, 2, 3}))
	assert.True(t, l.HasAll(nil))
}

func TestLedger_AnswersSorted(t *testing.T) {
	l := NewLedger()
	l.Set(QuestionID(14), OptionC)
	l.Set(QuestionID(1), OptionA)
	l.Set(QuestionID(7), OptionB)

	want := []Answer{
		{QuestionID: 1, Option: OptionA},
		{QuestionID: 7, Option: OptionB},
		{QuestionID: 14, Option: OptionC},
	}
	// Map iteration order must never leak into the output.
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, l.Answers())
	}
}

func TestLedger_CloneIsIndependent(t *testing.T) {
	l := NewLedger()
	l.Set(QuestionID(1), OptionA)

	c := l.Clone()
	c.Set(QuestionID(1), OptionB)
	c.Set(QuestionID(2), OptionC)

	o, _ := l.Get(QuestionID(1))
	assert.Equal(t, OptionA, o)
	assert.False(t, l.Has(QuestionID(2)))
	assert.Equal(t, 2, c.Len())
}

func TestAnswer_IsValid(t *testing.T) {
	assert.True(t, Answer{QuestionID: 1, Option: OptionA}.IsValid())
	assert.False(t, Answer{QuestionID: 0, Option: OptionA}.IsValid())
	assert.False(t, Answer{QuestionID: 1, Option: OptionID("")}.IsValid())
}
