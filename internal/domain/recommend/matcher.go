// Package recommend implements the match scoring engine and the task query
// layer that turn a user's profile into a ranked, personalized task list.
package recommend

import (
	"strings"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// MatchSkills counts how many of a task's declared skills are satisfied by
// the user's skill set. A task skill is satisfied when it and some user skill
// name contain one another case-insensitively in either direction; the
// containment is deliberately lenient so that free-text names like "react"
// and "React Hooks" still line up. Each task skill counts at most once no
// matter how many user skills satisfy it.
func MatchSkills(taskSkills []string, userSkills []domain.Skill) int {
	matched := 0
	for _, taskSkill := range taskSkills {
		if skillSatisfied(taskSkill, userSkills) {
			matched++
		}
	}
	return matched
}

// skillSatisfied reports whether any user skill name and the task skill
// contain each other case-insensitively.
func skillSatisfied(taskSkill string, userSkills []domain.Skill) bool {
	needle := strings.ToLower(taskSkill)
	for _, userSkill := range userSkills {
		name := strings.ToLower(userSkill.Name)
		if name == "" || needle == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return true
		}
	}
	return false
}

// MatchGoals reports whether the user has at least one active (not yet
// completed) goal in the task's category. Goal priority is not weighted;
// a high-priority and a low-priority goal count the same.
func MatchGoals(taskCategory domain.Category, userGoals []domain.Goal) bool {
	for _, goal := range userGoals {
		if goal.Category == taskCategory && !goal.Completed {
			return true
		}
	}
	return false
}
