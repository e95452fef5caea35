package recommend

import "github.com/vitalsign/habit-engine/internal/catalog"

// #region priority
// Priority orders recommendation tiers. Critical always precedes high,
// which always precedes moderate.
type Priority string

const (
	Critical Priority = "critical"
	High     Priority = "high"
	Moderate Priority = "moderate"
)

// #endregion priority

// #region recommendation
// Recommendation is one ranked, templated suggestion to change a
// habit's level. ExpectedImpact is a coarse textual range, not a
// guaranteed numeric forecast.
type Recommendation struct {
	Priority       Priority
	HabitID        catalog.HabitID
	Action         string
	Rationale      string
	ExpectedImpact string
}

// #endregion recommendation

// #region config
// Config holds the fixed habit tiers and thresholds. In-tier output
// order is the declaration order of these lists; the ranker never
// re-sorts within a tier.
type Config struct {
	// CriticalHabits at level >= CriticalThreshold earn a "reduce"
	// recommendation. The canonical threshold is 1: any non-zero
	// engagement with a critical harmful habit is worth surfacing.
	CriticalHabits    []catalog.HabitID
	CriticalThreshold int

	// FoundationalHabits below TargetLevel earn an "increase"
	// recommendation at high priority.
	FoundationalHabits []catalog.HabitID

	// SecondaryHabits below TargetLevel earn moderate recommendations
	// while the list has room.
	SecondaryHabits []catalog.HabitID

	TargetLevel        int
	MaxRecommendations int
}

// DefaultConfig returns the canonical tiers.
func DefaultConfig() Config {
	return Config{
		CriticalHabits: []catalog.HabitID{
			catalog.ChronicStress,
			catalog.RecreationalDrugs,
			catalog.Smoking,
			catalog.Alcohol,
		},
		CriticalThreshold: 1,
		FoundationalHabits: []catalog.HabitID{
			catalog.SleepConsistency,
			catalog.Exercise,
			catalog.HealthyDiet,
		},
		SecondaryHabits: []catalog.HabitID{
			catalog.SocialConnection,
			catalog.Meditation,
			catalog.Hydration,
		},
		TargetLevel:        2,
		MaxRecommendations: 5,
	}
}

// #endregion config
