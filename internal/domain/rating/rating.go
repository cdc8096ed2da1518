// Package rating maintains a task's community feedback counters: the running
// average rating and the completion count. It is the only legal mutator of
// those fields; every other component treats them as read-only.
package rating

import (
	"errors"
	"time"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// Rating value bounds.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Common errors
var (
	ErrNilTask = errors.New("task cannot be nil")

	// ErrInvalidRating is returned when a submitted rating falls outside
	// the [0,5] range.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

// RecordCompletion returns a copy of the task with its completion count
// incremented by one. Each call represents exactly one completion event;
// the operation is deliberately not idempotent, so callers must invoke it
// once per actual completion.
func RecordCompletion(task *domain.Task, now time.Time) (*domain.Task, error) {
	if task == nil {
		return nil, ErrNilTask
	}

	updated := task.Clone()
	updated.CompletionCount++
	updated.UpdatedAt = now

	return updated, nil
}

// RecordRating returns a copy of the task with the new rating folded into
// its running average. The rating count and average always move together:
// either both reflect the new rating or, on error, neither does.
func RecordRating(task *domain.Task, value float64, now time.Time) (*domain.Task, error) {
	if task == nil {
		return nil, ErrNilTask
	}

	if value < MinRating || value > MaxRating {
		return nil, ErrInvalidRating
	}

	updated := task.Clone()
	total := updated.AverageRating*float64(updated.RatingCount) + value
	updated.RatingCount++
	updated.AverageRating = total / float64(updated.RatingCount)
	updated.UpdatedAt = now

	return updated, nil
}
