package rating

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/skillpath/skillpath-api/internal/domain"
)

func newTask(t *testing.T) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(nil, "Practice SQL joins",
		"Work through a set of join exercises on a sample schema.",
		domain.CategoryProgramming, domain.DifficultyEasy, 45,
		[]string{"sql"}, nil)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

func TestRecordRatingRunningAverage(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	task := newTask(t)

	task, err := RecordRating(task, 4, now)
	if err != nil {
		t.Fatalf("First rating failed: %v", err)
	}

	task, err = RecordRating(task, 2, now)
	if err != nil {
		t.Fatalf("Second rating failed: %v", err)
	}

	if task.RatingCount != 2 {
		t.Errorf("Expected rating count 2, got %d", task.RatingCount)
	}

	if task.AverageRating != 3.0 {
		t.Errorf("Expected average rating 3.0, got %v", task.AverageRating)
	}
}

func TestRecordRatingSequence(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	task := newTask(t)
	ratings := []float64{5, 3, 4, 0, 2.5}

	var err error
	sum := 0.0
	for i, value := range ratings {
		task, err = RecordRating(task, value, now)
		if err != nil {
			t.Fatalf("Rating %d failed: %v", i, err)
		}
		sum += value

		expected := sum / float64(i+1)
		if math.Abs(task.AverageRating-expected) > 1e-9 {
			t.Errorf("After %d ratings: expected average %v, got %v", i+1, expected, task.AverageRating)
		}
	}

	if task.RatingCount != len(ratings) {
		t.Errorf("Expected rating count %d, got %d", len(ratings), task.RatingCount)
	}
}

func TestRecordRatingRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	task := newTask(t)

	for _, value := range []float64{-0.1, 5.1, 100} {
		updated, err := RecordRating(task, value, now)
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Rating %v: expected ErrInvalidRating, got %v", value, err)
		}
		if updated != nil {
			t.Errorf("Rating %v: expected nil task on error", value)
		}
	}

	// The rejected ratings must leave the pair untouched.
	if task.RatingCount != 0 || task.AverageRating != 0 {
		t.Errorf("Expected rating state unchanged, got count=%d average=%v",
			task.RatingCount, task.AverageRating)
	}
}

func TestRecordRatingBoundaryValuesAccepted(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	for _, value := range []float64{0, 5} {
		task := newTask(t)
		updated, err := RecordRating(task, value, now)
		if err != nil {
			t.Errorf("Rating %v: expected no error, got %v", value, err)
			continue
		}
		if updated.AverageRating != value {
			t.Errorf("Rating %v: expected average %v, got %v", value, value, updated.AverageRating)
		}
	}
}

func TestRecordRatingDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	original := newTask(t)

	updated, err := RecordRating(original, 4, now)
	if err != nil {
		t.Fatalf("RecordRating failed: %v", err)
	}

	if original.RatingCount != 0 || original.AverageRating != 0 {
		t.Error("Expected the original task to be unchanged")
	}

	if updated == original {
		t.Error("Expected RecordRating to return a new task instance")
	}
}

func TestRecordCompletionIsMonotonic(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	task := newTask(t)

	var err error
	previous := task.CompletionCount
	for i := 0; i < 5; i++ {
		task, err = RecordCompletion(task, now)
		if err != nil {
			t.Fatalf("Completion %d failed: %v", i, err)
		}

		if task.CompletionCount != previous+1 {
			t.Errorf("Expected completion count %d, got %d", previous+1, task.CompletionCount)
		}
		previous = task.CompletionCount
	}
}

func TestRecordCompletionDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	original := newTask(t)

	updated, err := RecordCompletion(original, now)
	if err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}

	if original.CompletionCount != 0 {
		t.Error("Expected the original task to be unchanged")
	}

	if updated.CompletionCount != 1 {
		t.Errorf("Expected completion count 1, got %d", updated.CompletionCount)
	}
}

func TestNilTaskRejected(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	if _, err := RecordRating(nil, 3, now); !errors.Is(err, ErrNilTask) {
		t.Errorf("RecordRating: expected ErrNilTask, got %v", err)
	}

	if _, err := RecordCompletion(nil, now); !errors.Is(err, ErrNilTask) {
		t.Errorf("RecordCompletion: expected ErrNilTask, got %v", err)
	}
}
