package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/timeutil"
)

const testUserID = "3f0b8a2e-5c1d-4e7f-9a6b-2c4d6e8f0a1b"

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeResultStore struct {
	latest   *assessment.Result
	getErr   error
	saveErr  error
	saved    []*assessment.Result
	getCalls int
}

func (f *fakeResultStore) Save(_ context.Context, r *assessment.Result) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeResultStore) GetLatest(_ context.Context, _ shared.UserID) (*assessment.Result, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.latest == nil {
		return nil, assessment.ErrResultNotFound
	}
	return f.latest, nil
}

type capturingPublisher struct {
	events []shared.Event
}

func (p *capturingPublisher) Publish(e shared.Event) error {
	p.events = append(p.events, e)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

func testCatalog(t *testing.T) *assessment.Catalog {
	t.Helper()
	c, err := assessment.NewCatalog(assessment.DefaultCatalogData())
	require.NoError(t, err)
	return c
}

func pickOption(t *testing.T, q assessment.Question, match func(assessment.Option) bool) assessment.OptionID {
	t.Helper()
	for _, o := range q.Options {
		if match(o) {
			return o.ID
		}
	}
	t.Fatalf("question %d has no matching option", q.ID)
	return ""
}

// architectAnswers builds a complete 23-answer submission that classifies
// as an early-path Architect / Master Strategist.
func architectAnswers(t *testing.T, c *assessment.Catalog) []assessment.Answer {
	t.Helper()
	var answers []assessment.Answer
	add := func(q assessment.Question, match func(assessment.Option) bool) {
		answers = append(answers, assessment.Answer{
			QuestionID: q.ID,
			Option:     pickOption(t, q, match),
		})
	}

	for _, q := range c.Stage1Questions() {
		add(q, func(o assessment.Option) bool { return o.Type == assessment.CategoryArchitect })
	}
	for i, q := range c.AwarenessQuestions(assessment.DefaultArchitect) {
		wantOpposite := i < 4
		add(q, func(o assessment.Option) bool { return o.Opposite == wantOpposite })
	}
	add(c.PathQuestion(), func(o assessment.Option) bool { return o.Path == assessment.PathEarly })

	votes := []assessment.Subtype{
		assessment.SubtypeMasterStrategist, assessment.SubtypeMasterStrategist,
		assessment.SubtypeMasterStrategist, assessment.SubtypeSystemisedBuilder,
		assessment.SubtypeSystemisedBuilder, assessment.SubtypeInternalAnalyzer,
	}
	for i, q := range c.SubtypeQuestions(assessment.DefaultArchitect, assessment.PathEarly) {
		vote := votes[i]
		add(q, func(o assessment.Option) bool { return o.Subtype == vote })
	}

	picks := []assessment.Subtype{
		assessment.SubtypeMasterStrategist, assessment.SubtypeMasterStrategist,
		assessment.SubtypeSystemisedBuilder, assessment.SubtypeInternalAnalyzer,
	}
	for i, q := range c.ValidationQuestions(assessment.DefaultArchitect) {
		pick := picks[i]
		add(q, func(o assessment.Option) bool { return o.Subtype == pick })
	}
	return answers
}

func newHandler(t *testing.T, store *fakeResultStore, pub *capturingPublisher) *SubmitAssessmentHandler {
	t.Helper()
	return NewSubmitAssessmentHandler(
		testCatalog(t),
		store,
		assessment.NewGate(assessment.DefaultRetakeWindow),
		timeutil.NewFixedClock(testNow),
		pub,
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmitAssessment_FirstRun(t *testing.T) {
	store := &fakeResultStore{}
	pub := &capturingPublisher{}
	h := newHandler(t, store, pub)

	out, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	require.NoError(t, err)

	assert.Equal(t, assessment.DefaultArchitect, out.Result.DefaultType)
	assert.Equal(t, assessment.SubtypeMasterStrategist, out.Result.Subtype)
	assert.Equal(t, testNow, out.Result.CreatedAt)
	assert.False(t, out.Superseded)
	assert.Equal(t, assessment.SubtypeMasterStrategist, out.Profile.Subtype)
	assert.NotEmpty(t, out.Loop.Format)

	require.Len(t, store.saved, 1)
	assert.Same(t, out.Result, store.saved[0])

	require.Len(t, pub.events, 1)
	assert.Equal(t, shared.EventAssessmentCompleted, pub.events[0].EventType())
	assert.Equal(t, testUserID, pub.events[0].AggregateID())
}

func TestSubmitAssessment_SupersedesPriorResult(t *testing.T) {
	priorID := uuid.New()
	store := &fakeResultStore{latest: &assessment.Result{
		ID:        priorID,
		UserID:    shared.UserID(testUserID),
		CreatedAt: testNow.Add(-31 * 24 * time.Hour),
	}}
	pub := &capturingPublisher{}
	h := newHandler(t, store, pub)

	out, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	require.NoError(t, err)

	assert.True(t, out.Superseded)
	require.Len(t, pub.events, 2)
	assert.Equal(t, shared.EventAssessmentCompleted, pub.events[0].EventType())

	superseded, ok := pub.events[1].(shared.ProfileSupersededEvent)
	require.True(t, ok)
	assert.Equal(t, priorID.String(), superseded.OldResultID)
	assert.Equal(t, out.Result.ID.String(), superseded.NewResultID)
}

func TestSubmitAssessment_DeniedWithinWindow(t *testing.T) {
	store := &fakeResultStore{latest: &assessment.Result{
		ID:        uuid.New(),
		CreatedAt: testNow.Add(-24 * time.Hour),
	}}
	pub := &capturingPublisher{}
	h := newHandler(t, store, pub)

	_, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	assert.ErrorIs(t, err, assessment.ErrRetakeNotAllowed)

	assert.Empty(t, store.saved, "a denied submission must not persist anything")
	require.Len(t, pub.events, 1)
	denied, ok := pub.events[0].(shared.RetakeDeniedEvent)
	require.True(t, ok)
	assert.Equal(t, testNow.Add(-24*time.Hour).Add(assessment.DefaultRetakeWindow), denied.NextRetakeDate)
}

func TestSubmitAssessment_BypassSkipsPriorLookup(t *testing.T) {
	// The store is broken, but a bypass role never reads it for gating.
	store := &fakeResultStore{getErr: errors.New("connection refused")}
	pub := &capturingPublisher{}
	h := newHandler(t, store, pub)

	out, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleAdmin,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	require.NoError(t, err)

	assert.Zero(t, store.getCalls)
	assert.False(t, out.Superseded)
	require.Len(t, store.saved, 1)
}

func TestSubmitAssessment_StoreReadFailureFailsClosed(t *testing.T) {
	store := &fakeResultStore{getErr: errors.New("connection refused")}
	pub := &capturingPublisher{}
	h := newHandler(t, store, pub)

	_, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	assert.ErrorIs(t, err, assessment.ErrStoreUnavailable)
	assert.Empty(t, store.saved)

	require.Len(t, pub.events, 1)
	assert.Equal(t, shared.EventRetakeDenied, pub.events[0].EventType())
}

func TestSubmitAssessment_SaveFailure(t *testing.T) {
	saveErr := errors.New("insert failed")
	store := &fakeResultStore{saveErr: saveErr}
	pub := &capturingPublisher{}
	h := newHandler(t, store, pub)

	_, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	require.ErrorIs(t, err, saveErr)
	assert.Empty(t, pub.events, "no completion event without a persisted result")
}

func TestSubmitAssessment_IncompleteLedger(t *testing.T) {
	store := &fakeResultStore{}
	h := newHandler(t, store, &capturingPublisher{})

	answers := architectAnswers(t, testCatalog(t))
	_, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: answers[:len(answers)-1],
	})
	assert.ErrorIs(t, err, assessment.ErrIncompleteAnswers)
	assert.Empty(t, store.saved)
}

func TestSubmitAssessment_Validation(t *testing.T) {
	h := newHandler(t, &fakeResultStore{}, &capturingPublisher{})

	_, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  "not-a-uuid",
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidID)

	_, err = h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID: testUserID,
		Role:   shared.RoleMember,
	})
	assert.Error(t, err)

	_, err = h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: []assessment.Answer{{QuestionID: 0, Option: assessment.OptionA}},
	})
	assert.Error(t, err)
}

func TestSubmitAssessment_NilPublisher(t *testing.T) {
	store := &fakeResultStore{}
	h := NewSubmitAssessmentHandler(
		testCatalog(t),
		store,
		assessment.NewGate(assessment.DefaultRetakeWindow),
		timeutil.NewFixedClock(testNow),
		nil,
	)

	out, err := h.Handle(context.Background(), SubmitAssessmentCommand{
		UserID:  testUserID,
		Role:    shared.RoleMember,
		Answers: architectAnswers(t, testCatalog(t)),
	})
	require.NoError(t, err)
	assert.Len(t, out.Events, 1)
}
