package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/rating"
	"github.com/skillpath/skillpath-api/internal/events"
	"github.com/skillpath/skillpath-api/internal/store"
)

// EngagementRepository defines the atomic engagement updates the rating
// service needs. This is aligned with store.TaskStore.
type EngagementRepository interface {
	// ApplyRating folds a rating into the task's running average atomically
	ApplyRating(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error)

	// IncrementCompletion adds one completion atomically
	IncrementCompletion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Task, error)
}

// RatingService records user engagement with tasks: completions and ratings.
type RatingService interface {
	// RecordRating folds a rating value in [0, 5] into the task's running
	// average and requests a background score refresh.
	// Returns rating.ErrInvalidRating for out-of-range values and
	// ErrTaskNotFound if the task does not exist.
	RecordRating(ctx context.Context, userID, taskID uuid.UUID, value float64) (*domain.Task, error)

	// RecordCompletion increments the task's completion count and requests
	// a background score refresh. Completions are not idempotent; each call
	// counts.
	RecordCompletion(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

// RatingServiceError wraps errors from the rating service with context.
type RatingServiceError struct {
	// Operation is the operation that failed (e.g., "record_rating")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for RatingServiceError.
func (e *RatingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rating service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("rating service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RatingServiceError) Unwrap() error {
	return e.Err
}

// NewRatingServiceError creates a new RatingServiceError.
// It returns known sentinel errors directly and maps store-level sentinels
// to service-level ones.
func NewRatingServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, rating.ErrInvalidRating) {
		return err
	}
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &RatingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ratingServiceImpl implements the RatingService interface
type ratingServiceImpl struct {
	engagementRepo EngagementRepository
	eventEmitter   events.EventEmitter
	logger         *slog.Logger
	timeFunc       func() time.Time
}

// NewRatingService creates a new RatingService.
// It returns an error if any of the required dependencies are nil.
func NewRatingService(
	engagementRepo EngagementRepository,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (RatingService, error) {
	if engagementRepo == nil {
		return nil, &RatingServiceError{
			Operation: "create_service",
			Message:   "engagementRepo cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &RatingServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ratingServiceImpl{
		engagementRepo: engagementRepo,
		eventEmitter:   eventEmitter,
		logger:         logger.With("component", "rating_service"),
		timeFunc:       time.Now,
	}, nil
}

// requestScoreRefresh emits a score-refresh event for the task/user pair.
// Emission failures are logged but never fail the engagement write; the
// score cache is diagnostic and the next engagement refreshes it anyway.
func (s *ratingServiceImpl) requestScoreRefresh(ctx context.Context, taskID, userID uuid.UUID) {
	event, err := events.NewEvent(events.EventTypeScoreRefresh, events.ScoreRefreshPayload{
		TaskID: taskID,
		UserID: userID,
	})
	if err != nil {
		s.logger.Error("failed to create score refresh event",
			"error", err,
			"task_id", taskID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.logger.Error("failed to emit score refresh event",
			"error", err,
			"task_id", taskID,
			"event_id", event.ID)
	}
}

// RecordRating folds a rating value into the task's running average.
func (s *ratingServiceImpl) RecordRating(
	ctx context.Context,
	userID, taskID uuid.UUID,
	value float64,
) (*domain.Task, error) {
	if value < rating.MinRating || value > rating.MaxRating {
		s.logger.Debug("rating rejected: out of range",
			"task_id", taskID,
			"value", value)
		return nil, rating.ErrInvalidRating
	}

	task, err := s.engagementRepo.ApplyRating(ctx, taskID, value, s.timeFunc().UTC())
	if err != nil {
		s.logger.Error("failed to record rating",
			"error", err,
			"task_id", taskID,
			"user_id", userID)
		return nil, NewRatingServiceError("record_rating", "failed to record rating", err)
	}

	s.logger.Info("rating recorded",
		"task_id", taskID,
		"user_id", userID,
		"value", value,
		"average_rating", task.AverageRating,
		"rating_count", task.RatingCount)

	s.requestScoreRefresh(ctx, taskID, userID)
	return task, nil
}

// RecordCompletion increments the task's completion count.
func (s *ratingServiceImpl) RecordCompletion(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.engagementRepo.IncrementCompletion(ctx, taskID, s.timeFunc().UTC())
	if err != nil {
		s.logger.Error("failed to record completion",
			"error", err,
			"task_id", taskID,
			"user_id", userID)
		return nil, NewRatingServiceError("record_completion", "failed to record completion", err)
	}

	s.logger.Info("completion recorded",
		"task_id", taskID,
		"user_id", userID,
		"completion_count", task.CompletionCount)

	s.requestScoreRefresh(ctx, taskID, userID)
	return task, nil
}
