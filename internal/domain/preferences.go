package domain

// Preferences hold a user's task filtering choices. The zero-filtering
// defaults ("all", no categories) mean every eligible task is a candidate.
type Preferences struct {
	Difficulty     DifficultyFilter `json:"difficulty"`
	Categories     []Category       `json:"categories"`
	TimeCommitment TimeCommitment   `json:"time_commitment"`
}

// DefaultPreferences returns preferences that apply no filtering.
func DefaultPreferences() Preferences {
	return Preferences{
		Difficulty:     DifficultyFilterAll,
		Categories:     nil,
		TimeCommitment: TimeCommitmentAll,
	}
}

// Validate checks if the Preferences contain only valid taxonomy values.
// Returns an error if any field fails validation.
func (p Preferences) Validate() error {
	if !p.Difficulty.IsValid() {
		return ErrInvalidDifficultyFilter
	}

	for _, c := range p.Categories {
		if !c.IsValid() {
			return ErrInvalidCategory
		}
	}

	if !p.TimeCommitment.IsValid() {
		return ErrInvalidTimeCommitment
	}

	return nil
}

// AllowsCategory reports whether the given category passes the category
// filter. An empty category set means no filtering.
func (p Preferences) AllowsCategory(category Category) bool {
	if len(p.Categories) == 0 {
		return true
	}
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Profile is the read-only snapshot of a user's skills, goals, and
// preferences that the recommendation engine consumes. The engine never
// mutates it.
type Profile struct {
	Skills      []Skill     `json:"skills"`
	Goals       []Goal      `json:"goals"`
	Preferences Preferences `json:"preferences"`
}
