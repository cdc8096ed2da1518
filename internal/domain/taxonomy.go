package domain

import "errors"

// Category classifies skills, goals, and tasks into a closed vocabulary.
// The values are part of the storage and wire contract and must not drift.
type Category string

// Possible category values
const (
	CategoryProgramming Category = "Programming"
	CategoryDesign      Category = "Design"
	CategoryBusiness    Category = "Business"
	CategoryMarketing   Category = "Marketing"
	CategoryDataScience Category = "Data Science"
	CategoryOther       Category = "Other"
)

// Difficulty represents how demanding a task is.
type Difficulty string

// Possible difficulty values
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyFilter is a difficulty preference; unlike Difficulty it admits
// "all", meaning no filtering.
type DifficultyFilter string

// Possible difficulty filter values
const (
	DifficultyFilterEasy   DifficultyFilter = "easy"
	DifficultyFilterMedium DifficultyFilter = "medium"
	DifficultyFilterHard   DifficultyFilter = "hard"
	DifficultyFilterAll    DifficultyFilter = "all"
)

// TimeCommitment expresses how much time a user wants to spend per task.
type TimeCommitment string

// Possible time commitment values
const (
	TimeCommitmentShort  TimeCommitment = "short"
	TimeCommitmentMedium TimeCommitment = "medium"
	TimeCommitmentLong   TimeCommitment = "long"
	TimeCommitmentAll    TimeCommitment = "all"
)

// Validation errors for taxonomy values
var (
	ErrInvalidCategory         = errors.New("invalid category")
	ErrInvalidDifficulty       = errors.New("invalid difficulty")
	ErrInvalidDifficultyFilter = errors.New("invalid difficulty filter")
	ErrInvalidTimeCommitment   = errors.New("invalid time commitment")
)

// Categories returns all valid category values in a stable order.
func Categories() []Category {
	return []Category{
		CategoryProgramming,
		CategoryDesign,
		CategoryBusiness,
		CategoryMarketing,
		CategoryDataScience,
		CategoryOther,
	}
}

// IsValid reports whether the category is one of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryProgramming, CategoryDesign, CategoryBusiness,
		CategoryMarketing, CategoryDataScience, CategoryOther:
		return true
	default:
		return false
	}
}

// IsValid reports whether the difficulty is one of the closed set.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// IsValid reports whether the difficulty filter is one of the closed set.
func (d DifficultyFilter) IsValid() bool {
	switch d {
	case DifficultyFilterEasy, DifficultyFilterMedium, DifficultyFilterHard, DifficultyFilterAll:
		return true
	default:
		return false
	}
}

// Matches reports whether a task difficulty passes this filter.
// The "all" filter matches every difficulty.
func (d DifficultyFilter) Matches(difficulty Difficulty) bool {
	return d == DifficultyFilterAll || string(d) == string(difficulty)
}

// IsValid reports whether the time commitment is one of the closed set.
func (t TimeCommitment) IsValid() bool {
	switch t {
	case TimeCommitmentShort, TimeCommitmentMedium, TimeCommitmentLong, TimeCommitmentAll:
		return true
	default:
		return false
	}
}
