package recommend

import (
	"errors"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not specify one.
const DefaultLimit = 20

// Common errors
var (
	ErrNilTask      = errors.New("task cannot be nil")
	ErrNilProfile   = errors.New("profile cannot be nil")
	ErrInvalidLimit = errors.New("limit must be greater than zero")
)

// Service defines the interface for match scoring and recommendation
// operations. Implementations are stateless and safe for concurrent use.
type Service interface {
	// Score computes the 0-100 match score of a single task against the
	// given skills and goals. It never reads or writes the task's cached
	// AIScore field.
	Score(task *domain.Task, skills []domain.Skill, goals []domain.Goal) (int, error)

	// Recommend filters the catalog by the profile's preferences, scores
	// every surviving candidate, and returns at most limit results ordered
	// by (score, average rating) descending. An empty result is not an
	// error. The catalog is not mutated.
	Recommend(catalog []*domain.Task, profile *domain.Profile, limit int) ([]ScoredTask, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new recommendation service with default weights.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new recommendation service with custom weights.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Score implements the Service interface for scoring a single task.
func (s *defaultService) Score(
	task *domain.Task,
	skills []domain.Skill,
	goals []domain.Goal,
) (int, error) {
	if task == nil {
		return 0, ErrNilTask
	}

	return calculateScore(task, skills, goals, s.params), nil
}

// Recommend implements the Service interface for ranking a catalog.
func (s *defaultService) Recommend(
	catalog []*domain.Task,
	profile *domain.Profile,
	limit int,
) ([]ScoredTask, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	return rankCandidates(catalog, profile, limit, s.params), nil
}
