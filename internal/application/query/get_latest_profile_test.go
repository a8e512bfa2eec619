package query

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

func storedArchitectResult() *assessment.Result {
	return &assessment.Result{
		ID:                  uuid.New(),
		UserID:              shared.UserID(testUserID),
		DefaultType:         assessment.DefaultArchitect,
		AwarenessScore:      4,
		AwarenessPercentage: 50,
		PathChoice:          assessment.PathEarly,
		Subtype:             assessment.SubtypeMasterStrategist,
		SubtypeCompletion:   100,
		Validation: []assessment.QuestionAlignment{
			{QuestionID: 20, Tag: assessment.AlignmentStrong},
			{QuestionID: 21, Tag: assessment.AlignmentStrong},
			{QuestionID: 22, Tag: assessment.AlignmentPartial},
			{QuestionID: 23, Tag: assessment.AlignmentPartial},
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetLatestProfile_AssemblesView(t *testing.T) {
	stored := storedArchitectResult()
	h := NewGetLatestProfileHandler(&fakeResultStore{latest: stored})

	out, err := h.Handle(context.Background(), GetLatestProfileQuery{UserID: testUserID})
	require.NoError(t, err)

	assert.Same(t, stored, out.Result)
	assert.Equal(t, assessment.SubtypeMasterStrategist, out.Profile.Subtype)
	assert.Equal(t, assessment.DefaultArchitect, out.Profile.Family)
	assert.NotEmpty(t, out.Profile.Summary)
	assert.NotEmpty(t, out.Loop.Format)
	assert.Equal(t, 2, out.StrongAlignments)
}

func TestGetLatestProfile_NotFound(t *testing.T) {
	h := NewGetLatestProfileHandler(&fakeResultStore{})

	_, err := h.Handle(context.Background(), GetLatestProfileQuery{UserID: testUserID})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetLatestProfile_InvalidUserID(t *testing.T) {
	h := NewGetLatestProfileHandler(&fakeResultStore{})

	_, err := h.Handle(context.Background(), GetLatestProfileQuery{UserID: ""})
	assert.ErrorIs(t, err, shared.ErrInvalidID)
}
