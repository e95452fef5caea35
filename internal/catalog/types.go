package catalog

// #region habit-id
// HabitID identifies a trackable lifestyle habit.
type HabitID string

const (
	Smoking           HabitID = "smoking"
	Alcohol           HabitID = "alcohol"
	RecreationalDrugs HabitID = "recreational_drugs"
	ChronicStress     HabitID = "chronic_stress"
	JunkFood          HabitID = "junk_food"
	Sedentary         HabitID = "sedentary"
	LateScreenTime    HabitID = "late_screen_time"
	SugaryDrinks      HabitID = "sugary_drinks"
	SleepConsistency  HabitID = "sleep_consistency"
	Exercise          HabitID = "exercise"
	HealthyDiet       HabitID = "healthy_diet"
	SocialConnection  HabitID = "social_connection"
	Meditation        HabitID = "meditation"
	Hydration         HabitID = "hydration"
	Reading           HabitID = "reading"
	Journaling        HabitID = "journaling"
)

// #endregion habit-id

// #region valence
// Valence classifies a habit as beneficial or harmful.
type Valence string

const (
	Beneficial Valence = "beneficial"
	Harmful    Valence = "harmful"
)

// #endregion valence

// #region habit
// Habit is the static reference record for one habit. Immutable after load.
// Level 0 always means "not practiced"; Levels names levels 1..MaxLevel.
type Habit struct {
	ID          HabitID  `yaml:"id"`
	DisplayName string   `yaml:"display_name"`
	Category    string   `yaml:"category"`
	Valence     Valence  `yaml:"valence"`
	MaxLevel    int      `yaml:"max_level"`
	Levels      []string `yaml:"levels"`
}

// #endregion habit

// #region organ-id
// OrganID identifies one organ in the fixed organ set.
type OrganID string

const (
	Lungs   OrganID = "lungs"
	Heart   OrganID = "heart"
	Brain   OrganID = "brain"
	Liver   OrganID = "liver"
	Kidneys OrganID = "kidneys"
	Gut     OrganID = "gut"
	Skin    OrganID = "skin"
)

// #endregion organ-id

// #region organ
// Organ is the static reference record for one organ.
type Organ struct {
	ID          OrganID `yaml:"id"`
	DisplayName string  `yaml:"display_name"`
	Narration   string  `yaml:"narration"`
}

// #endregion organ

// #region catalog
// Catalog holds the full habit and organ reference data, keyed by id.
// Loaded once at startup and never mutated; safe for concurrent reads.
type Catalog struct {
	habits     map[HabitID]Habit
	habitOrder []HabitID
	organs     map[OrganID]Organ
	organOrder []OrganID
}

// #endregion catalog
