package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/rating"
	"github.com/skillpath/skillpath-api/internal/events"
	"github.com/skillpath/skillpath-api/internal/store"
)

func newRatingTestService(
	t *testing.T,
	repo *mockEngagementRepository,
	emitter *mockEventEmitter,
) RatingService {
	t.Helper()
	svc, err := NewRatingService(repo, emitter, nil)
	require.NoError(t, err)
	return svc
}

func ratedTask(t *testing.T) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(nil, "Learn SQL joins", "Practice inner and outer joins",
		domain.CategoryDataScience, domain.DifficultyMedium, 45, []string{"SQL"}, nil)
	require.NoError(t, err)
	return task
}

func TestRecordRatingAppliesAndEmitsRefresh(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	updated := ratedTask(t)
	updated.AverageRating = 4.0
	updated.RatingCount = 3

	repo := &mockEngagementRepository{
		ApplyRatingFunc: func(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error) {
			assert.Equal(t, updated.ID, id)
			assert.Equal(t, 4.0, value)
			assert.False(t, now.IsZero())
			return updated, nil
		},
	}
	emitter := &mockEventEmitter{}
	svc := newRatingTestService(t, repo, emitter)

	task, err := svc.RecordRating(context.Background(), userID, updated.ID, 4.0)
	require.NoError(t, err)
	assert.Equal(t, 3, task.RatingCount)

	require.Len(t, emitter.Events, 1)
	event := emitter.Events[0]
	assert.Equal(t, events.EventTypeScoreRefresh, event.Type)

	var payload events.ScoreRefreshPayload
	require.NoError(t, event.UnmarshalPayload(&payload))
	assert.Equal(t, updated.ID, payload.TaskID)
	assert.Equal(t, userID, payload.UserID)
}

func TestRecordRatingRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	applied := false
	repo := &mockEngagementRepository{
		ApplyRatingFunc: func(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error) {
			applied = true
			return nil, nil
		},
	}
	emitter := &mockEventEmitter{}
	svc := newRatingTestService(t, repo, emitter)

	for _, value := range []float64{-0.1, 5.1, 100} {
		_, err := svc.RecordRating(context.Background(), uuid.New(), uuid.New(), value)
		assert.ErrorIs(t, err, rating.ErrInvalidRating)
	}
	assert.False(t, applied)
	assert.Empty(t, emitter.Events)
}

func TestRecordRatingAcceptsBoundaryValues(t *testing.T) {
	t.Parallel()

	updated := ratedTask(t)
	repo := &mockEngagementRepository{
		ApplyRatingFunc: func(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error) {
			return updated, nil
		},
	}
	svc := newRatingTestService(t, repo, &mockEventEmitter{})

	for _, value := range []float64{0, 5} {
		_, err := svc.RecordRating(context.Background(), uuid.New(), uuid.New(), value)
		assert.NoError(t, err)
	}
}

func TestRecordRatingMapsTaskNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockEngagementRepository{
		ApplyRatingFunc: func(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error) {
			return nil, store.ErrTaskNotFound
		},
	}
	emitter := &mockEventEmitter{}
	svc := newRatingTestService(t, repo, emitter)

	_, err := svc.RecordRating(context.Background(), uuid.New(), uuid.New(), 3.5)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Empty(t, emitter.Events)
}

func TestRecordCompletionIncrementsAndEmitsRefresh(t *testing.T) {
	t.Parallel()

	updated := ratedTask(t)
	updated.CompletionCount = 12

	repo := &mockEngagementRepository{
		IncrementCompletionFunc: func(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Task, error) {
			assert.Equal(t, updated.ID, id)
			return updated, nil
		},
	}
	emitter := &mockEventEmitter{}
	svc := newRatingTestService(t, repo, emitter)

	task, err := svc.RecordCompletion(context.Background(), uuid.New(), updated.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, task.CompletionCount)
	assert.Len(t, emitter.Events, 1)
}

func TestEmitFailureDoesNotFailEngagementWrite(t *testing.T) {
	t.Parallel()

	updated := ratedTask(t)
	repo := &mockEngagementRepository{
		IncrementCompletionFunc: func(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Task, error) {
			return updated, nil
		},
	}
	emitter := &mockEventEmitter{EmitError: assert.AnError}
	svc := newRatingTestService(t, repo, emitter)

	task, err := svc.RecordCompletion(context.Background(), uuid.New(), updated.ID)
	require.NoError(t, err)
	assert.NotNil(t, task)
}
