package recommend

import (
	"sort"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// ScoredTask pairs a catalog task with its freshly computed match score.
// The query layer returns these instead of writing scores back onto the
// tasks, so a recommendation pass never mutates the catalog.
type ScoredTask struct {
	Task  *domain.Task `json:"task"`
	Score int          `json:"score"`
}

// isCandidate reports whether a task survives the visibility and preference
// filters for the given profile.
func isCandidate(task *domain.Task, prefs domain.Preferences) bool {
	if !task.IsActive || !task.IsPublic {
		return false
	}

	if !prefs.Difficulty.Matches(task.Difficulty) {
		return false
	}

	return prefs.AllowsCategory(task.Category)
}

// rankCandidates filters the catalog down to candidates, scores each one
// fresh, and orders the result descending by score with average rating as
// the tie-break. The sort is stable, so tasks tied on both keys keep their
// original catalog order.
func rankCandidates(
	catalog []*domain.Task,
	profile *domain.Profile,
	limit int,
	params *Params,
) []ScoredTask {
	scored := make([]ScoredTask, 0, len(catalog))
	for _, task := range catalog {
		if !isCandidate(task, profile.Preferences) {
			continue
		}
		scored = append(scored, ScoredTask{
			Task:  task,
			Score: calculateScore(task, profile.Skills, profile.Goals, params),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Task.AverageRating > scored[j].Task.AverageRating
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored
}
