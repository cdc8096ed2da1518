package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/store"
)

// TaskRepository defines the task persistence operations the task service needs.
// This is aligned with store.TaskStore to keep the service decoupled from the
// concrete database implementation.
type TaskRepository interface {
	// Create saves a new task to the store
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update modifies an existing task's authored fields
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskInput carries the authored fields of a task through create and update.
type TaskInput struct {
	Title            string
	Description      string
	Category         domain.Category
	Difficulty       domain.Difficulty
	EstimatedMinutes int
	Skills           []string
	Tags             []string
}

// TaskService provides catalog authoring operations.
type TaskService interface {
	// CreateTask creates a new public, active task authored by the given user.
	CreateTask(ctx context.Context, creatorID uuid.UUID, input TaskInput) (*domain.Task, error)

	// GetTask retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTask replaces a task's authored fields. Only the task's creator
	// may update it; seeded catalog tasks without a creator are immutable
	// through this path.
	// Returns ErrNotOwned if the user is not the creator.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input TaskInput) (*domain.Task, error)

	// DeleteTask removes a task. Only the task's creator may delete it.
	// Returns ErrNotOwned if the user is not the creator.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors directly and maps store-level sentinels
// to service-level ones.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrNotOwned) {
		return err
	}
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskRepo TaskRepository
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(taskRepo TaskRepository, logger *slog.Logger) (TaskService, error) {
	if taskRepo == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskRepo cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskRepo: taskRepo,
		logger:   logger.With("component", "task_service"),
	}, nil
}

// CreateTask creates a new public, active task authored by the given user.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	creatorID uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	task, err := domain.NewTask(
		&creatorID,
		input.Title,
		input.Description,
		input.Category,
		input.Difficulty,
		input.EstimatedMinutes,
		input.Skills,
		input.Tags,
	)
	if err != nil {
		s.logger.Warn("task creation rejected by validation",
			"error", err,
			"user_id", creatorID)
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"task_id", task.ID,
			"user_id", creatorID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"user_id", creatorID)
	return task, nil
}

// GetTask retrieves a task by its ID.
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to retrieve task",
			"error", err,
			"task_id", taskID)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// getOwnedTask loads a task and verifies the user is its creator.
func (s *taskServiceImpl) getOwnedTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.CreatedByID == nil || *task.CreatedByID != userID {
		s.logger.Warn("task modification rejected: not the creator",
			"task_id", taskID,
			"user_id", userID)
		return nil, ErrNotOwned
	}
	return task, nil
}

// UpdateTask replaces a task's authored fields after an ownership check.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	task, err := s.getOwnedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Category = input.Category
	task.Difficulty = input.Difficulty
	task.EstimatedMinutes = input.EstimatedMinutes
	task.Skills = input.Skills
	task.Tags = input.Tags

	if err := task.Validate(); err != nil {
		s.logger.Warn("task update rejected by validation",
			"error", err,
			"task_id", taskID)
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID)
		return nil, NewTaskServiceError("update_task", "failed to save task", err)
	}

	s.logger.Info("task updated",
		"task_id", taskID,
		"user_id", userID)
	return task, nil
}

// DeleteTask removes a task after an ownership check.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.getOwnedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", taskID)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted",
		"task_id", taskID,
		"user_id", userID)
	return nil
}
