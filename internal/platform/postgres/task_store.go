package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/platform/logger"
	"github.com/skillpath/skillpath-api/internal/domain/rating"
	"github.com/skillpath/skillpath-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// taskColumns is the column list shared by every query that reads a full task row.
const taskColumns = `id, created_by_id, title, description, category, difficulty,
	estimated_minutes, skills, tags, ai_score, is_public, is_active,
	completion_count, average_rating, rating_count, created_at, updated_at`

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, decoding the JSONB skill and tag arrays.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var createdBy uuid.NullUUID
	var skillsJSON, tagsJSON []byte

	err := row.Scan(
		&task.ID,
		&createdBy,
		&task.Title,
		&task.Description,
		&task.Category,
		&task.Difficulty,
		&task.EstimatedMinutes,
		&skillsJSON,
		&tagsJSON,
		&task.AIScore,
		&task.IsPublic,
		&task.IsActive,
		&task.CompletionCount,
		&task.AverageRating,
		&task.RatingCount,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		id := createdBy.UUID
		task.CreatedByID = &id
	}
	if err := json.Unmarshal(skillsJSON, &task.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode task skills: %w", err)
	}
	if err := json.Unmarshal(tagsJSON, &task.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode task tags: %w", err)
	}

	return &task, nil
}

// encodeStrings marshals a string slice for a JSONB column, mapping nil to
// an empty array so the column never stores SQL NULL.
func encodeStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

// Create implements store.TaskStore.Create
// Returns validation errors from the domain Task if data is invalid.
// Returns store.ErrInvalidEntity if the creator does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	skillsJSON, err := encodeStrings(task.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode task skills: %w", err)
	}
	tagsJSON, err := encodeStrings(task.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode task tags: %w", err)
	}

	query := `
		INSERT INTO tasks (id, created_by_id, title, description, category, difficulty,
			estimated_minutes, skills, tags, ai_score, is_public, is_active,
			completion_count, average_rating, rating_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.CreatedByID,
		task.Title,
		task.Description,
		task.Category,
		task.Difficulty,
		task.EstimatedMinutes,
		skillsJSON,
		tagsJSON,
		task.AIScore,
		task.IsPublic,
		task.IsActive,
		task.CompletionCount,
		task.AverageRating,
		task.RatingCount,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("error", err.Error()),
				slog.String("task_id", task.ID.String()))
			return fmt.Errorf("%w: task creator not found", store.ErrInvalidEntity)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("category", string(task.Category)))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	return task, nil
}

// ListCandidates implements store.TaskStore.ListCandidates
// It returns all active, public tasks ordered by creation time, which is the
// catalog order tie-broken recommendations preserve.
func (s *PostgresTaskStore) ListCandidates(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE is_active = TRUE AND is_public = TRUE
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list candidate tasks",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan candidate task",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while iterating candidate tasks",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed candidate tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update
// Engagement counters and the score cache are deliberately absent from the
// statement; they change only through ApplyRating, IncrementCompletion, and
// UpdateAIScore.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	skillsJSON, err := encodeStrings(task.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode task skills: %w", err)
	}
	tagsJSON, err := encodeStrings(task.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode task tags: %w", err)
	}

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, category = $3, difficulty = $4,
			estimated_minutes = $5, skills = $6, tags = $7,
			is_public = $8, is_active = $9, updated_at = $10
		WHERE id = $11
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Category,
		task.Difficulty,
		task.EstimatedMinutes,
		skillsJSON,
		tagsJSON,
		task.IsPublic,
		task.IsActive,
		task.UpdatedAt,
		task.ID,
	)

	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.String("task_id", task.ID.String()))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully",
		slog.String("task_id", id.String()))
	return nil
}

// ApplyRating implements store.TaskStore.ApplyRating
// The whole running-average update happens inside one UPDATE statement, so
// two concurrent ratings can never read the same count and lose a vote.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) ApplyRating(
	ctx context.Context,
	id uuid.UUID,
	value float64,
	now time.Time,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if value < rating.MinRating || value > rating.MaxRating {
		return nil, rating.ErrInvalidRating
	}

	query := `
		UPDATE tasks
		SET average_rating = ((average_rating * rating_count) + $2) / (rating_count + 1),
			rating_count = rating_count + 1,
			updated_at = $3
		WHERE id = $1
		RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, value, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for rating", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to apply rating",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	log.Info("rating applied",
		slog.String("task_id", id.String()),
		slog.Float64("value", value),
		slog.Int("rating_count", task.RatingCount))
	return task, nil
}

// IncrementCompletion implements store.TaskStore.IncrementCompletion
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) IncrementCompletion(
	ctx context.Context,
	id uuid.UUID,
	now time.Time,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET completion_count = completion_count + 1,
			updated_at = $2
		WHERE id = $1
		RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for completion", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to increment completion count",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	log.Info("completion recorded",
		slog.String("task_id", id.String()),
		slog.Int("completion_count", task.CompletionCount))
	return task, nil
}

// UpdateAIScore implements store.TaskStore.UpdateAIScore
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) UpdateAIScore(
	ctx context.Context,
	id uuid.UUID,
	score int,
	now time.Time,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET ai_score = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id, score, now)
	if err != nil {
		log.Error("failed to update score cache",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	log.Debug("score cache updated",
		slog.String("task_id", id.String()),
		slog.Int("score", score))
	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}
