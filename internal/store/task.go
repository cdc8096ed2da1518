package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// TaskStore defines the interface for task catalog persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListCandidates retrieves all active, public tasks in catalog order
	// (oldest first). These are the tasks eligible for recommendation;
	// per-user preference filtering happens in the recommend package.
	ListCandidates(ctx context.Context) ([]*domain.Task, error)

	// Update modifies an existing task's authored fields (title, description,
	// category, difficulty, skills, tags, flags). Engagement counters are
	// never written through Update; use ApplyRating and IncrementCompletion.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ApplyRating folds a new rating value into the task's running average
	// in a single atomic statement, so concurrent ratings never lose counts.
	// Returns the updated task, or ErrTaskNotFound if the task does not exist.
	ApplyRating(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error)

	// IncrementCompletion adds one to the task's completion count in a
	// single atomic statement.
	// Returns the updated task, or ErrTaskNotFound if the task does not exist.
	IncrementCompletion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Task, error)

	// UpdateAIScore persists a freshly computed score into the task's
	// diagnostic score cache. Recommendation reads never consult the cache;
	// it exists for operators inspecting the catalog.
	UpdateAIScore(ctx context.Context, id uuid.UUID, score int, now time.Time) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) TaskStore
}
