package recommend

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skillpath/skillpath-api/internal/domain"
)

func newCatalogTask(t *testing.T, category domain.Category, skills []string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(
		nil,
		"Build a REST API",
		"Design and implement a small REST API with persistence.",
		category,
		domain.DifficultyMedium,
		120,
		skills,
		nil,
	)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

func activeGoalIn(category domain.Category) domain.Goal {
	return domain.Goal{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Category: category,
	}
}

func TestCalculateScore(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name       string
		taskSkills []string
		category   domain.Category
		skills     []domain.Skill
		goals      []domain.Goal
		expected   int
	}{
		{
			name:       "full skill overlap with matching goal reaches 100",
			taskSkills: []string{"go", "postgres"},
			category:   domain.CategoryProgramming,
			skills:     userSkills("go", "postgres"),
			goals:      []domain.Goal{activeGoalIn(domain.CategoryProgramming)},
			expected:   100, // 60 + 30 + 10
		},
		{
			name:       "no overlap and no goal yields the difficulty floor",
			taskSkills: []string{"go"},
			category:   domain.CategoryProgramming,
			skills:     userSkills("figma"),
			goals:      nil,
			expected:   10,
		},
		{
			name:       "half skill overlap without goal",
			taskSkills: []string{"go", "kubernetes"},
			category:   domain.CategoryProgramming,
			skills:     userSkills("go"),
			goals:      nil,
			expected:   40, // 30 + 0 + 10
		},
		{
			name:       "goal bonus without skill overlap",
			taskSkills: []string{"go"},
			category:   domain.CategoryDesign,
			skills:     nil,
			goals:      []domain.Goal{activeGoalIn(domain.CategoryDesign)},
			expected:   40, // 0 + 30 + 10
		},
		{
			name:       "task with no declared skills earns no skill points",
			taskSkills: nil,
			category:   domain.CategoryProgramming,
			skills:     userSkills("go", "sql", "docker"),
			goals:      nil,
			expected:   10,
		},
		{
			name:       "one third overlap rounds to nearest integer",
			taskSkills: []string{"go", "sql", "docker"},
			category:   domain.CategoryProgramming,
			skills:     userSkills("go"),
			goals:      nil,
			expected:   30, // round(20 + 10) = 30
		},
		{
			name:       "two thirds overlap rounds to nearest integer",
			taskSkills: []string{"go", "sql", "docker"},
			category:   domain.CategoryProgramming,
			skills:     userSkills("go", "sql"),
			goals:      nil,
			expected:   50, // round(40 + 10) = 50
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			task := newCatalogTask(t, tc.category, tc.taskSkills)

			got := calculateScore(task, tc.skills, tc.goals, params)

			if got != tc.expected {
				t.Errorf("Expected score %d, got %d", tc.expected, got)
			}

			if got < 0 || got > 100 {
				t.Errorf("Score %d outside [0,100]", got)
			}
		})
	}
}

func TestCalculateScoreIsDeterministic(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	task := newCatalogTask(t, domain.CategoryProgramming, []string{"go", "sql"})
	skills := userSkills("go")
	goals := []domain.Goal{activeGoalIn(domain.CategoryProgramming)}

	first := calculateScore(task, skills, goals, params)
	for i := 0; i < 10; i++ {
		if got := calculateScore(task, skills, goals, params); got != first {
			t.Fatalf("Expected stable score %d, got %d on iteration %d", first, got, i)
		}
	}
}

func TestCalculateScoreIgnoresCachedAIScore(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	task := newCatalogTask(t, domain.CategoryProgramming, []string{"go"})
	task.AIScore = 97 // stale cache from some other user's context

	got := calculateScore(task, nil, nil, params)

	if got != 10 {
		t.Errorf("Expected score 10 regardless of cached value, got %d", got)
	}
}
