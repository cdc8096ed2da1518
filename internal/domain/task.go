package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Limits on task content and estimated time.
const (
	MaxTaskTitleLength       = 200
	MaxTaskDescriptionLength = 2000
	MinTaskEstimatedMinutes  = 1
	MaxTaskEstimatedMinutes  = 1440 // 24 hours
)

// Task-specific validation errors
var (
	ErrTaskIDEmpty             = errors.New("task ID cannot be empty")
	ErrTaskTitleEmpty          = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong        = errors.New("task title exceeds maximum length")
	ErrTaskDescriptionEmpty    = errors.New("task description cannot be empty")
	ErrTaskDescriptionTooLong  = errors.New("task description exceeds maximum length")
	ErrInvalidEstimatedMinutes = errors.New("task estimated minutes must be between 1 and 1440")
	ErrInvalidAIScore          = errors.New("task AI score must be between 0 and 100")
	ErrNegativeCompletionCount = errors.New("task completion count cannot be negative")
	ErrInvalidAverageRating    = errors.New("task average rating must be between 0 and 5")
	ErrNegativeRatingCount     = errors.New("task rating count cannot be negative")
)

// Task is a learning or practice task from the catalog. Skills holds
// free-text skill identifiers that the matcher compares against user skill
// names; Tags are free-form labels for discovery.
//
// AIScore caches the most recently computed match score for whichever user
// context last scored this task. It is a diagnostic value only: every
// recommendation pass recomputes scores fresh and never ranks on this field.
//
// CompletionCount, AverageRating, and RatingCount are mutated exclusively
// through the rating package; AverageRating is always the arithmetic mean of
// exactly RatingCount submitted ratings.
type Task struct {
	ID               uuid.UUID  `json:"id"`
	CreatedByID      *uuid.UUID `json:"created_by_id,omitempty"` // nil for system seed data
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         Category   `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Skills           []string   `json:"skills"`
	Tags             []string   `json:"tags"`
	AIScore          int        `json:"ai_score"`
	IsPublic         bool       `json:"is_public"`
	IsActive         bool       `json:"is_active"`
	CompletionCount  int        `json:"completion_count"`
	AverageRating    float64    `json:"average_rating"`
	RatingCount      int        `json:"rating_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NewTask creates a new public, active Task with zeroed community stats.
// It generates a new UUID for the task ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(
	createdByID *uuid.UUID,
	title, description string,
	category Category,
	difficulty Difficulty,
	estimatedMinutes int,
	skills, tags []string,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:               uuid.New(),
		CreatedByID:      createdByID,
		Title:            title,
		Description:      description,
		Category:         category,
		Difficulty:       difficulty,
		EstimatedMinutes: estimatedMinutes,
		Skills:           skills,
		Tags:             tags,
		AIScore:          0,
		IsPublic:         true,
		IsActive:         true,
		CompletionCount:  0,
		AverageRating:    0,
		RatingCount:      0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if len(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleTooLong
	}

	if t.Description == "" {
		return ErrTaskDescriptionEmpty
	}

	if len(t.Description) > MaxTaskDescriptionLength {
		return ErrTaskDescriptionTooLong
	}

	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}

	if !t.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}

	if t.EstimatedMinutes < MinTaskEstimatedMinutes || t.EstimatedMinutes > MaxTaskEstimatedMinutes {
		return ErrInvalidEstimatedMinutes
	}

	if t.AIScore < 0 || t.AIScore > 100 {
		return ErrInvalidAIScore
	}

	if t.CompletionCount < 0 {
		return ErrNegativeCompletionCount
	}

	if t.AverageRating < 0 || t.AverageRating > 5 {
		return ErrInvalidAverageRating
	}

	if t.RatingCount < 0 {
		return ErrNegativeRatingCount
	}

	return nil
}

// Clone returns a deep copy of the task. Slices are copied so the clone can
// be modified without aliasing the original.
func (t *Task) Clone() *Task {
	clone := *t
	if t.CreatedByID != nil {
		id := *t.CreatedByID
		clone.CreatedByID = &id
	}
	clone.Skills = append([]string(nil), t.Skills...)
	clone.Tags = append([]string(nil), t.Tags...)
	return &clone
}
