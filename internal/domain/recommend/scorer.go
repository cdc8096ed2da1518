package recommend

import (
	"math"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// calculateScore computes the 0-100 match score for a task against a user's
// skills and goals. It is a pure function of its inputs: identical inputs
// always produce identical output.
//
// The score is a weighted sum of three terms:
//   - skill term: fraction of the task's declared skills the user matches,
//     scaled by params.SkillWeight. A task declaring no skills earns a
//     fraction of 0, not 1, so skill-less tasks are not rewarded.
//   - goal term: params.GoalWeight when the user has an active goal in the
//     task's category, otherwise 0.
//   - difficulty term: params.DifficultyWeight, unconditionally for now.
//
// The weighted sum is normalized by the total weight onto a 0-100 scale,
// rounded to the nearest integer, and clamped.
func calculateScore(
	task *domain.Task,
	userSkills []domain.Skill,
	userGoals []domain.Goal,
	params *Params,
) int {
	skillRatio := 0.0
	if len(task.Skills) > 0 {
		matched := MatchSkills(task.Skills, userSkills)
		skillRatio = float64(matched) / float64(len(task.Skills))
	}

	earned := skillRatio * params.SkillWeight

	if MatchGoals(task.Category, userGoals) {
		earned += params.GoalWeight
	}

	earned += params.DifficultyWeight

	score := int(math.Round(earned / params.TotalWeight() * 100))

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}
