package catalog

// #region default-habits

// harmful habits use escalating-use labels, beneficial habits use
// consistency labels. Level 0 ("not practiced") is implicit.
var defaultHabits = []Habit{
	{ID: Smoking, DisplayName: "Smoking", Category: "substance", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"occasional", "regular", "heavy"}},
	{ID: Alcohol, DisplayName: "Alcohol", Category: "substance", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"occasional", "regular", "heavy"}},
	{ID: RecreationalDrugs, DisplayName: "Recreational drugs", Category: "substance", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"occasional", "regular", "heavy"}},
	{ID: ChronicStress, DisplayName: "Chronic stress", Category: "mental", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"mild", "persistent", "severe"}},
	{ID: JunkFood, DisplayName: "Junk food", Category: "nutrition", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"occasional", "frequent", "daily"}},
	{ID: Sedentary, DisplayName: "Sedentary lifestyle", Category: "activity", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"some days", "most days", "every day"}},
	{ID: LateScreenTime, DisplayName: "Late-night screen time", Category: "sleep", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"occasional", "frequent", "nightly"}},
	{ID: SugaryDrinks, DisplayName: "Sugary drinks", Category: "nutrition", Valence: Harmful,
		MaxLevel: 3, Levels: []string{"occasional", "frequent", "daily"}},

	{ID: SleepConsistency, DisplayName: "Sleep consistency", Category: "sleep", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: Exercise, DisplayName: "Exercise", Category: "activity", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: HealthyDiet, DisplayName: "Healthy diet", Category: "nutrition", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: SocialConnection, DisplayName: "Social connection", Category: "social", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: Meditation, DisplayName: "Meditation", Category: "mental", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: Hydration, DisplayName: "Hydration", Category: "nutrition", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: Reading, DisplayName: "Reading", Category: "mental", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
	{ID: Journaling, DisplayName: "Journaling", Category: "mental", Valence: Beneficial,
		MaxLevel: 3, Levels: []string{"light", "moderate", "consistent"}},
}

// #endregion default-habits

// #region default-organs

var defaultOrgans = []Organ{
	{ID: Lungs, DisplayName: "Lungs", Narration: "oxygen intake and respiratory capacity"},
	{ID: Heart, DisplayName: "Heart", Narration: "cardiovascular strength and circulation"},
	{ID: Brain, DisplayName: "Brain", Narration: "cognition, mood regulation and recovery"},
	{ID: Liver, DisplayName: "Liver", Narration: "detoxification and metabolic processing"},
	{ID: Kidneys, DisplayName: "Kidneys", Narration: "filtration and fluid balance"},
	{ID: Gut, DisplayName: "Gut", Narration: "digestion and microbiome balance"},
	{ID: Skin, DisplayName: "Skin", Narration: "hydration, elasticity and repair"},
}

// #endregion default-organs

// #region default-catalog

// Default returns the compiled-in catalog. It never fails: the default
// tables are covered by tests.
func Default() *Catalog {
	c, err := New(defaultHabits, defaultOrgans)
	if err != nil {
		panic(err)
	}
	return c
}

// #endregion default-catalog
