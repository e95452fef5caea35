package impact

import "github.com/vitalsign/habit-engine/internal/catalog"

// The canonical tuning. The numbers are illustrative calibration, not
// medical evidence; alternative tunings are YAML edits, not code edits.

// #region default-metrics

var defaultMetrics = []MetricDef{
	{Name: GeneralHealth, Baseline: 50, Min: 10, Max: 100},
	{Name: MentalHealth, Baseline: 50, Min: 10, Max: 100},
	{Name: PhysicalFitness, Baseline: 45, Min: 10, Max: 100},
	{Name: QualityOfLife, Baseline: 55, Min: 10, Max: 100},
	{Name: Happiness, Baseline: 50, Min: 10, Max: 100},
	{Name: LifeExpectancy, Baseline: 78, Min: 65, Max: 95},
	{Name: DiseaseRisk, Baseline: 25, Min: 5, Max: 85},
}

// #endregion default-metrics

// #region default-effects

var defaultEffects = map[catalog.HabitID][]Effect{
	catalog.Smoking: {
		{Metric: GeneralHealth, Shape: Exponential, Magnitude: -4.5, Exponent: 1.4},
		{Metric: DiseaseRisk, Shape: Exponential, Magnitude: 5.0, Exponent: 1.4},
		{Metric: LifeExpectancy, Shape: Exponential, Magnitude: -2.5, Exponent: 1.5},
		{Metric: PhysicalFitness, Shape: Linear, Magnitude: -3.0},
	},
	catalog.Alcohol: {
		{Metric: GeneralHealth, Shape: Exponential, Magnitude: -3.5, Exponent: 1.3},
		{Metric: DiseaseRisk, Shape: Exponential, Magnitude: 3.2, Exponent: 1.3},
		{Metric: MentalHealth, Shape: Linear, Magnitude: -2.5},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: -1.5},
		// short-term lift; the habit still surfaces as a negative factor
		{Metric: Happiness, Shape: Linear, Magnitude: 1.0},
	},
	catalog.RecreationalDrugs: {
		{Metric: MentalHealth, Shape: Exponential, Magnitude: -5.0, Exponent: 1.5},
		{Metric: GeneralHealth, Shape: Exponential, Magnitude: -4.0, Exponent: 1.4},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: -2.0},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: 4.0},
		{Metric: QualityOfLife, Shape: Linear, Magnitude: -3.0},
		{Metric: Happiness, Shape: Linear, Magnitude: 1.5},
	},
	catalog.ChronicStress: {
		{Metric: MentalHealth, Shape: Exponential, Magnitude: -4.5, Exponent: 1.35},
		{Metric: GeneralHealth, Shape: Linear, Magnitude: -2.5},
		{Metric: Happiness, Shape: Linear, Magnitude: -3.0},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: 3.0},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: -1.0},
		{Metric: QualityOfLife, Shape: Linear, Magnitude: -2.5},
	},
	catalog.JunkFood: {
		{Metric: GeneralHealth, Shape: Linear, Magnitude: -2.0},
		{Metric: PhysicalFitness, Shape: Linear, Magnitude: -2.0},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: 2.5},
		{Metric: Happiness, Shape: Linear, Magnitude: 0.5},
	},
	catalog.Sedentary: {
		{Metric: PhysicalFitness, Shape: Linear, Magnitude: -3.5},
		{Metric: GeneralHealth, Shape: Linear, Magnitude: -2.0},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: 2.0},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: -0.8},
	},
	catalog.LateScreenTime: {
		{Metric: MentalHealth, Shape: Linear, Magnitude: -1.5},
		{Metric: Happiness, Shape: Linear, Magnitude: -1.0},
		{Metric: GeneralHealth, Shape: Linear, Magnitude: -0.8},
	},
	catalog.SugaryDrinks: {
		{Metric: GeneralHealth, Shape: Linear, Magnitude: -1.5},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: 2.0},
		{Metric: PhysicalFitness, Shape: Linear, Magnitude: -1.0},
	},

	catalog.SleepConsistency: {
		{Metric: GeneralHealth, Shape: Exponential, Magnitude: 3.6, Exponent: 1.3},
		{Metric: MentalHealth, Shape: Exponential, Magnitude: 4.5, Exponent: 1.3},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: 1.2},
		{Metric: Happiness, Shape: Linear, Magnitude: 2.0},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: -2.0},
	},
	catalog.Exercise: {
		{Metric: GeneralHealth, Shape: Exponential, Magnitude: 4.2, Exponent: 1.25},
		{Metric: PhysicalFitness, Shape: Exponential, Magnitude: 5.0, Exponent: 1.3},
		{Metric: MentalHealth, Shape: Linear, Magnitude: 4.0},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: 1.5},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: -3.0},
		{Metric: Happiness, Shape: Linear, Magnitude: 2.0},
	},
	catalog.HealthyDiet: {
		{Metric: GeneralHealth, Shape: Exponential, Magnitude: 4.0, Exponent: 1.2},
		{Metric: PhysicalFitness, Shape: Linear, Magnitude: 2.5},
		{Metric: MentalHealth, Shape: Linear, Magnitude: 2.5},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: -3.5},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: 1.3},
	},
	catalog.SocialConnection: {
		{Metric: MentalHealth, Shape: Exponential, Magnitude: 3.5, Exponent: 1.3},
		{Metric: Happiness, Shape: Exponential, Magnitude: 3.4, Exponent: 1.2},
		{Metric: QualityOfLife, Shape: Linear, Magnitude: 2.5},
		{Metric: LifeExpectancy, Shape: Linear, Magnitude: 0.8},
		{Metric: GeneralHealth, Shape: Linear, Magnitude: 1.5},
	},
	catalog.Meditation: {
		{Metric: MentalHealth, Shape: Exponential, Magnitude: 3.3, Exponent: 1.2},
		{Metric: Happiness, Shape: Linear, Magnitude: 2.0},
		{Metric: QualityOfLife, Shape: Linear, Magnitude: 1.5},
	},
	catalog.Hydration: {
		{Metric: GeneralHealth, Shape: Linear, Magnitude: 1.5},
		{Metric: PhysicalFitness, Shape: Linear, Magnitude: 1.0},
		{Metric: DiseaseRisk, Shape: Linear, Magnitude: -1.0},
	},
	catalog.Reading: {
		{Metric: MentalHealth, Shape: Diminishing, Magnitude: 1.8},
		{Metric: QualityOfLife, Shape: Diminishing, Magnitude: 1.2},
	},
	catalog.Journaling: {
		{Metric: MentalHealth, Shape: Diminishing, Magnitude: 1.5},
		{Metric: Happiness, Shape: Diminishing, Magnitude: 1.0},
	},
}

// #endregion default-effects

// #region default-organs

var defaultOrganWeights = map[catalog.OrganID]OrganWeights{
	catalog.Lungs: {
		Baseline: 78,
		Weights: map[catalog.HabitID]float64{
			catalog.Smoking:  -5.5,
			catalog.Exercise: 2.5,
		},
	},
	catalog.Heart: {
		Baseline: 76,
		Weights: map[catalog.HabitID]float64{
			catalog.Smoking:           -3.5,
			catalog.ChronicStress:     -3.5,
			catalog.RecreationalDrugs: -3.0,
			catalog.JunkFood:          -2.0,
			catalog.Sedentary:         -2.0,
			catalog.Alcohol:           -1.5,
			catalog.Exercise:          3.5,
			catalog.HealthyDiet:       2.5,
			catalog.SleepConsistency:  1.5,
			catalog.Meditation:        1.5,
			catalog.SocialConnection:  1.0,
		},
	},
	catalog.Brain: {
		Baseline: 80,
		Weights: map[catalog.HabitID]float64{
			catalog.RecreationalDrugs: -5.0,
			catalog.ChronicStress:     -3.0,
			catalog.Alcohol:           -2.5,
			catalog.LateScreenTime:    -1.5,
			catalog.SleepConsistency:  3.0,
			catalog.Meditation:        2.5,
			catalog.Reading:           2.0,
			catalog.Exercise:          1.5,
			catalog.SocialConnection:  1.5,
			catalog.Journaling:        1.0,
		},
	},
	catalog.Liver: {
		Baseline: 74,
		Weights: map[catalog.HabitID]float64{
			catalog.Alcohol:           -5.0,
			catalog.RecreationalDrugs: -2.5,
			catalog.JunkFood:          -2.0,
			catalog.SugaryDrinks:      -1.0,
			catalog.HealthyDiet:       2.0,
		},
	},
	catalog.Kidneys: {
		Baseline: 76,
		Weights: map[catalog.HabitID]float64{
			catalog.Alcohol:           -2.0,
			catalog.RecreationalDrugs: -2.0,
			catalog.SugaryDrinks:      -1.5,
			catalog.Hydration:         3.0,
			catalog.HealthyDiet:       1.5,
		},
	},
	catalog.Gut: {
		Baseline: 72,
		Weights: map[catalog.HabitID]float64{
			catalog.JunkFood:      -3.0,
			catalog.ChronicStress: -2.5,
			catalog.SugaryDrinks:  -2.0,
			catalog.Alcohol:       -1.0,
			catalog.Sedentary:     -1.0,
			catalog.HealthyDiet:   3.5,
			catalog.Hydration:     1.5,
			catalog.Exercise:      1.0,
		},
	},
	catalog.Skin: {
		Baseline: 70,
		Weights: map[catalog.HabitID]float64{
			catalog.ChronicStress:     -2.0,
			catalog.Smoking:           -1.5,
			catalog.JunkFood:          -1.5,
			catalog.RecreationalDrugs: -1.5,
			catalog.Alcohol:           -1.0,
			catalog.SugaryDrinks:      -1.0,
			catalog.LateScreenTime:    -0.5,
			catalog.Hydration:         2.5,
			catalog.HealthyDiet:       1.5,
			catalog.SleepConsistency:  1.5,
		},
	},
}

// #endregion default-organs

// #region default-model

// Default returns the canonical compiled-in model, validated against the
// given catalog. It never fails against catalog.Default().
func Default(cat *catalog.Catalog) (*Model, error) {
	return NewModel(cat, modelInput{
		Metrics:       defaultMetrics,
		Effects:       defaultEffects,
		Organs:        defaultOrganWeights,
		OrganConstant: 4.0,
		OrganMin:      15,
		OrganMax:      100,
	})
}

// #endregion default-model
