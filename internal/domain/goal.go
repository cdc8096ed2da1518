package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// GoalPriority represents how important a goal is to the user.
type GoalPriority string

// Possible goal priority values
const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal-specific validation errors
var (
	ErrGoalIDEmpty          = errors.New("goal ID cannot be empty")
	ErrGoalUserIDEmpty      = errors.New("goal user ID cannot be empty")
	ErrGoalTitleEmpty       = errors.New("goal title cannot be empty")
	ErrGoalDescriptionEmpty = errors.New("goal description cannot be empty")
	ErrInvalidGoalPriority  = errors.New("invalid goal priority")
)

// Goal is a learning objective a user is working toward. An active goal in a
// task's category contributes the goal-alignment term to that task's match score.
// Priority is recorded but not currently weighted in scoring.
type Goal struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Priority    GoalPriority `json:"priority"`
	TargetDate  *time.Time   `json:"target_date,omitempty"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewGoal creates a new, not yet completed Goal owned by the given user.
// It generates a new UUID for the goal ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewGoal(
	userID uuid.UUID,
	title, description string,
	category Category,
	priority GoalPriority,
	targetDate *time.Time,
) (*Goal, error) {
	now := time.Now().UTC()
	goal := &Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		TargetDate:  targetDate,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	return goal, nil
}

// Validate checks if the Goal has valid data.
// Returns an error if any field fails validation.
func (g *Goal) Validate() error {
	if g.ID == uuid.Nil {
		return ErrGoalIDEmpty
	}

	if g.UserID == uuid.Nil {
		return ErrGoalUserIDEmpty
	}

	if g.Title == "" {
		return ErrGoalTitleEmpty
	}

	if g.Description == "" {
		return ErrGoalDescriptionEmpty
	}

	if !g.Category.IsValid() {
		return ErrInvalidCategory
	}

	if !isValidGoalPriority(g.Priority) {
		return ErrInvalidGoalPriority
	}

	return nil
}

// isValidGoalPriority checks if the given priority is a valid GoalPriority.
func isValidGoalPriority(priority GoalPriority) bool {
	switch priority {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	default:
		return false
	}
}
