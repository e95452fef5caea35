package impact

import "github.com/vitalsign/habit-engine/internal/catalog"

// #region effect-shape
// EffectShape selects how a habit's level scales its per-metric delta.
type EffectShape string

const (
	// Linear: delta = magnitude * level.
	Linear EffectShape = "linear"
	// Exponential: delta = magnitude * level^exponent. Used for habits
	// whose effect compounds super-linearly with intensity.
	Exponential EffectShape = "exponential"
	// Diminishing: delta = magnitude * sqrt(level). Used for small,
	// saturating effects.
	Diminishing EffectShape = "diminishing"
)

// #endregion effect-shape

// #region metric
// Metric names a whole-body well-being quantity.
type Metric string

const (
	GeneralHealth   Metric = "generalHealth"
	MentalHealth    Metric = "mentalHealth"
	PhysicalFitness Metric = "physicalFitness"
	QualityOfLife   Metric = "qualityOfLife"
	Happiness       Metric = "happiness"
	LifeExpectancy  Metric = "lifeExpectancy"
	DiseaseRisk     Metric = "diseaseRisk"
)

// MetricDef declares a metric's baseline and clamp range.
type MetricDef struct {
	Name     Metric  `yaml:"name"`
	Baseline float64 `yaml:"baseline"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
}

// #endregion metric

// #region effect
// Effect is one (habit, metric) effect descriptor. Absent pairs mean
// zero effect. Exponent is only consulted for Exponential shape.
type Effect struct {
	Metric    Metric      `yaml:"metric"`
	Shape     EffectShape `yaml:"shape"`
	Magnitude float64     `yaml:"magnitude"`
	Exponent  float64     `yaml:"exponent,omitempty"`
}

// #endregion effect

// #region organ-weights
// OrganWeights holds one organ's projection baseline and its per-habit
// vulnerability weights. The sign of each weight carries direction.
type OrganWeights struct {
	Baseline float64                     `yaml:"baseline"`
	Weights  map[catalog.HabitID]float64 `yaml:"weights"`
}

// #endregion organ-weights

// #region model
// Model is the canonical impact model: metric declarations, per-habit
// effect descriptors, and per-organ vulnerability tables. Immutable
// after load; safe for concurrent reads.
type Model struct {
	metrics     map[Metric]MetricDef
	metricOrder []Metric
	effects     map[catalog.HabitID][]Effect
	organs      map[catalog.OrganID]OrganWeights

	// OrganConstant scales weight*level in the organ projection.
	OrganConstant float64
	// OrganMin and OrganMax bound every projected organ value.
	OrganMin float64
	OrganMax float64
}

// #endregion model
