package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/rating"
	"github.com/skillpath/skillpath-api/internal/store"
)

var taskColumnNames = []string{
	"id", "created_by_id", "title", "description", "category", "difficulty",
	"estimated_minutes", "skills", "tags", "ai_score", "is_public", "is_active",
	"completion_count", "average_rating", "rating_count", "created_at", "updated_at",
}

// taskRow builds a full mock row for the given task.
func taskRow(id uuid.UUID, skills, tags string, completions int, avg float64, ratings int) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(taskColumnNames).AddRow(
		id.String(), nil, "Build a REST API", "Design and ship a small HTTP service.",
		string(domain.CategoryProgramming), string(domain.DifficultyMedium),
		120, skills, tags, 0, true, true,
		completions, avg, ratings, now, now,
	)
}

func TestTaskStoreGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()

	mock.ExpectQuery(`SELECT id, created_by_id, title`).
		WithArgs(taskID).
		WillReturnRows(taskRow(taskID, `["go","sql"]`, `["backend"]`, 3, 4.5, 2))

	task, err := taskStore.GetByID(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Nil(t, task.CreatedByID)
	assert.Equal(t, []string{"go", "sql"}, task.Skills)
	assert.Equal(t, []string{"backend"}, task.Tags)
	assert.Equal(t, 3, task.CompletionCount)
	assert.InDelta(t, 4.5, task.AverageRating, 1e-9)
	assert.Equal(t, 2, task.RatingCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()

	mock.ExpectQuery(`SELECT id, created_by_id, title`).
		WithArgs(taskID).
		WillReturnRows(sqlmock.NewRows(taskColumnNames))

	task, err := taskStore.GetByID(context.Background(), taskID)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreListCandidatesFiltersInSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	first := uuid.New()
	second := uuid.New()

	rows := taskRow(first, `["go"]`, `[]`, 0, 0, 0)
	now := time.Now().UTC()
	rows.AddRow(
		second.String(), nil, "Design a logo", "Sketch and refine a brand mark.",
		string(domain.CategoryDesign), string(domain.DifficultyEasy),
		60, `["illustration"]`, `[]`, 0, true, true,
		0, 0.0, 0, now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE is_active = TRUE AND is_public = TRUE`)).
		WillReturnRows(rows)

	tasks, err := taskStore.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first, tasks[0].ID)
	assert.Equal(t, second, tasks[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreApplyRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()
	now := time.Now().UTC()

	// The arithmetic must happen inside the statement itself.
	mock.ExpectQuery(regexp.QuoteMeta(`((average_rating * rating_count) + $2) / (rating_count + 1)`)).
		WithArgs(taskID, 4.0, now).
		WillReturnRows(taskRow(taskID, `["go"]`, `[]`, 0, 4.0, 1))

	task, err := taskStore.ApplyRating(context.Background(), taskID, 4.0, now)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, task.AverageRating, 1e-9)
	assert.Equal(t, 1, task.RatingCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreApplyRatingRejectsOutOfRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)

	for _, value := range []float64{-0.5, 5.5} {
		_, err := taskStore.ApplyRating(context.Background(), uuid.New(), value, time.Now().UTC())
		assert.ErrorIs(t, err, rating.ErrInvalidRating)
	}

	// No queries may reach the database for rejected values.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreApplyRatingNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE tasks`).
		WithArgs(taskID, 3.0, now).
		WillReturnRows(sqlmock.NewRows(taskColumnNames))

	_, err = taskStore.ApplyRating(context.Background(), taskID, 3.0, now)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreIncrementCompletion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`completion_count = completion_count + 1`)).
		WithArgs(taskID, now).
		WillReturnRows(taskRow(taskID, `[]`, `[]`, 6, 0, 0))

	task, err := taskStore.IncrementCompletion(context.Background(), taskID, now)
	require.NoError(t, err)
	assert.Equal(t, 6, task.CompletionCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreUpdateAIScore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`SET ai_score = $2`)).
		WithArgs(taskID, 85, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = taskStore.UpdateAIScore(context.Background(), taskID, 85, now)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStoreUpdateAIScoreNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := NewPostgresTaskStore(db, nil)
	taskID := uuid.New()

	mock.ExpectExec(`UPDATE tasks`).
		WithArgs(taskID, 42, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = taskStore.UpdateAIScore(context.Background(), taskID, 42, time.Now().UTC())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
