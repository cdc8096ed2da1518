package recommend

// Params defines the weights of the scoring heuristic. The three weights sum
// to 100 by default, so each earned point maps directly onto the 0-100 scale.
type Params struct {
	// SkillWeight is the maximum contribution of the skill-overlap term.
	SkillWeight float64

	// GoalWeight is the flat contribution earned when the user has an
	// active goal in the task's category.
	GoalWeight float64

	// DifficultyWeight is currently awarded unconditionally. It reserves
	// room for difficulty-preference scoring; the constant behavior is
	// intentional and must not be repurposed without revisiting callers
	// that rely on the 10-point floor.
	DifficultyWeight float64
}

// ParamsConfig allows overriding the default weights when creating a new
// Params instance. Zero values keep the corresponding default.
type ParamsConfig struct {
	SkillWeight      float64
	GoalWeight       float64
	DifficultyWeight float64
}

// NewDefaultParams creates a new Params instance with the standard
// 60/30/10 weighting.
func NewDefaultParams() *Params {
	return &Params{
		SkillWeight:      60,
		GoalWeight:       30,
		DifficultyWeight: 10,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.SkillWeight > 0 {
		params.SkillWeight = config.SkillWeight
	}
	if config.GoalWeight > 0 {
		params.GoalWeight = config.GoalWeight
	}
	if config.DifficultyWeight > 0 {
		params.DifficultyWeight = config.DifficultyWeight
	}

	return params
}

// TotalWeight returns the sum of all weights, used as the scoring
// denominator.
func (p *Params) TotalWeight() float64 {
	return p.SkillWeight + p.GoalWeight + p.DifficultyWeight
}
