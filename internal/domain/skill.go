package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SkillLevel represents a user's proficiency in a skill.
type SkillLevel string

// Possible skill level values
const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// Skill-specific validation errors
var (
	ErrSkillIDEmpty       = errors.New("skill ID cannot be empty")
	ErrSkillUserIDEmpty   = errors.New("skill user ID cannot be empty")
	ErrSkillNameEmpty     = errors.New("skill name cannot be empty")
	ErrInvalidSkillLevel  = errors.New("invalid skill level")
	ErrInvalidConfidence  = errors.New("skill confidence must be between 0 and 100")
	ErrNegativeExperience = errors.New("skill experience cannot be negative")
)

// Skill is a self-reported ability belonging to a user. The free-text name is
// what the recommendation matcher compares against a task's declared skills.
type Skill struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	Category        Category   `json:"category"`
	Level           SkillLevel `json:"level"`
	Confidence      int        `json:"confidence"`       // 0-100 self-assessment
	ExperienceYears float64    `json:"experience_years"` // >= 0
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewSkill creates a new Skill owned by the given user.
// It generates a new UUID for the skill ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewSkill(
	userID uuid.UUID,
	name string,
	category Category,
	level SkillLevel,
	confidence int,
	experienceYears float64,
) (*Skill, error) {
	now := time.Now().UTC()
	skill := &Skill{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Category:        category,
		Level:           level,
		Confidence:      confidence,
		ExperienceYears: experienceYears,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := skill.Validate(); err != nil {
		return nil, err
	}

	return skill, nil
}

// Validate checks if the Skill has valid data.
// Returns an error if any field fails validation.
func (s *Skill) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSkillIDEmpty
	}

	if s.UserID == uuid.Nil {
		return ErrSkillUserIDEmpty
	}

	if s.Name == "" {
		return ErrSkillNameEmpty
	}

	if !s.Category.IsValid() {
		return ErrInvalidCategory
	}

	if !isValidSkillLevel(s.Level) {
		return ErrInvalidSkillLevel
	}

	if s.Confidence < 0 || s.Confidence > 100 {
		return ErrInvalidConfidence
	}

	if s.ExperienceYears < 0 {
		return ErrNegativeExperience
	}

	return nil
}

// isValidSkillLevel checks if the given level is a valid SkillLevel.
func isValidSkillLevel(level SkillLevel) bool {
	switch level {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	default:
		return false
	}
}
