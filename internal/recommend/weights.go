package recommend

// Weights are the tunable constants of the scoring formula. They are
// injected rather than hardcoded so operators can tune them from
// configuration without code changes.
type Weights struct {
	// Default is the baseline score so services with no signal still rank.
	Default float64 `yaml:"default"`
	// MaxRating scales a user's own decayed ratings onto [0, MaxRating].
	MaxRating float64 `yaml:"max_rating"`
	// Favorite is added flat when the target user favorited the service.
	Favorite float64 `yaml:"favorite"`
	// Similarity scales each positive item-item similarity contribution.
	Similarity float64 `yaml:"similarity"`
	// DecayWindowDays is the age, in days, after which a rating's
	// contribution decays to zero.
	DecayWindowDays float64 `yaml:"decay_window_days"`
}

// DefaultWeights returns the documented default tuning.
func DefaultWeights() Weights {
	return Weights{
		Default:         2,
		MaxRating:       4,
		Favorite:        2.5,
		Similarity:      2,
		DecayWindowDays: 2,
	}
}
