package scoring

import (
	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/impact"
)

// #region profile
// MetricProfile maps each metric to its clamped value.
type MetricProfile map[impact.Metric]float64

// #endregion profile

// #region direction
// Direction classifies a dominant factor by the habit's valence, not by
// the sign of any single delta. A harmful habit with a short-term lift
// on happiness is still a negative factor overall.
type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
)

// #endregion direction

// #region dominant-factor
// DominantFactor is a habit whose compounding effect is large enough to
// surface as a standout explanation. Impact aggregates |delta| across
// the habit's exponential descriptors only.
type DominantFactor struct {
	HabitID     catalog.HabitID
	Level       int
	Impact      float64
	Direction   Direction
	Explanation string
}

// #endregion dominant-factor

// #region config
// Config holds scoring thresholds.
type Config struct {
	// DominanceThreshold is the |magnitude| an exponential descriptor
	// must exceed for its habit to qualify as a dominant factor.
	DominanceThreshold float64
}

// DefaultConfig returns the canonical thresholds.
func DefaultConfig() Config {
	return Config{DominanceThreshold: 3.0}
}

// #endregion config

// #region result
// Result bundles everything returned by Score().
type Result struct {
	Metrics  MetricProfile
	Positive []DominantFactor // descending by Impact
	Negative []DominantFactor // descending by Impact
}

// #endregion result
