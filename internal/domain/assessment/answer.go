package assessment

import (
	"sort"
)

// ══════════════════════════════════════════════════════════════════════════════
// ANSWER & LEDGER
// ══════════════════════════════════════════════════════════════════════════════

// Answer is a single question/option pair recorded during a run.
type Answer struct {
	QuestionID QuestionID `json:"question_id"`
	Option     OptionID   `json:"option"`
}

// IsValid checks the answer's identifiers.
func (a Answer) IsValid() bool {
	return a.QuestionID.IsValid() && a.Option.IsValid()
}

// Ledger is the per-run accumulator of answers. A question may be answered
// at most once per run; recording the same question again overwrites the
// earlier answer (last-write-wins). The ledger lives only for the duration
// of a run and is discarded if the run is abandoned.
type Ledger struct {
	answers map[QuestionID]OptionID
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{answers: make(map[QuestionID]OptionID)}
}

// LedgerFromAnswers builds a ledger from a slice of answers, applying
// last-write-wins for duplicate question IDs.
func LedgerFromAnswers(answers []Answer) *Ledger {
	l := NewLedger()
	for _, a := range answers {
		l.Set(a.QuestionID, a.Option)
	}
	return l
}

// Set records or overwrites the answer for a question.
func (l *Ledger) Set(q QuestionID, o OptionID) {
	l.answers[q] = o
}

// Get returns the recorded option for a question.
func (l *Ledger) Get(q QuestionID) (OptionID, bool) {
	o, ok := l.answers[q]
	return o, ok
}

// Has reports whether the question has been answered.
func (l *Ledger) Has(q QuestionID) bool {
	_, ok := l.answers[q]
	return ok
}

// HasAll reports whether every question in ids has been answered.
func (l *Ledger) HasAll(ids []QuestionID) bool {
	for _, id := range ids {
		if !l.Has(id) {
			return false
		}
	}
	return true
}

// Len returns the number of answered questions.
func (l *Ledger) Len() int {
	return len(l.answers)
}

// Answers returns all answers ordered by question ID. The ordering is
// deterministic so that identical ledgers serialize identically.
func (l *Ledger) Answers() []Answer {
	out := make([]Answer, 0, len(l.answers))
	for q, o := range l.answers {
		out = append(out, Answer{QuestionID: q, Option: o})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QuestionID < out[j].QuestionID
	})
	return out
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	for q, o := range l.answers {
		c.answers[q] = o
	}
	return c
}
