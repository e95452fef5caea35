package recommend

import (
	"fmt"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/scoring"
)

// #region rank

// Rank produces a priority-ordered list of suggested habit changes,
// capped at cfg.MaxRecommendations. Tiers are filled in fixed order
// (critical, high, moderate) and each tier walks its fixed habit list
// in declaration order; there is no magnitude re-sort at this stage.
// The dominant-factor list only enriches rationale text.
func Rank(sel map[catalog.HabitID]int, factors []scoring.DominantFactor, cat *catalog.Catalog, cfg Config) []Recommendation {
	dominant := make(map[catalog.HabitID]bool, len(factors))
	for _, f := range factors {
		dominant[f.HabitID] = true
	}

	var recs []Recommendation
	full := func() bool { return len(recs) >= cfg.MaxRecommendations }

	for _, id := range cfg.CriticalHabits {
		if full() {
			break
		}
		level := sel[id]
		if level < cfg.CriticalThreshold {
			continue
		}
		name := cat.DisplayName(id)
		rationale := fmt.Sprintf("%s at its current level is one of the strongest drags on your overall profile.", name)
		if dominant[id] {
			rationale = fmt.Sprintf("%s is a dominant negative factor in your current profile.", name)
		}
		recs = append(recs, Recommendation{
			Priority:       Critical,
			HabitID:        id,
			Action:         fmt.Sprintf("Reduce %s", lower(name)),
			Rationale:      rationale,
			ExpectedImpact: "large gains across general health, disease risk and life expectancy",
		})
	}

	for _, id := range cfg.FoundationalHabits {
		if full() {
			break
		}
		if sel[id] >= cfg.TargetLevel {
			continue
		}
		name := cat.DisplayName(id)
		recs = append(recs, Recommendation{
			Priority:       High,
			HabitID:        id,
			Action:         fmt.Sprintf("Increase %s", lower(name)),
			Rationale:      fmt.Sprintf("%s is a foundational habit; its benefits compound with consistency.", name),
			ExpectedImpact: "broad improvement to general and mental health",
		})
	}

	for _, id := range cfg.SecondaryHabits {
		if full() {
			break
		}
		if sel[id] >= cfg.TargetLevel {
			continue
		}
		name := cat.DisplayName(id)
		recs = append(recs, Recommendation{
			Priority:       Moderate,
			HabitID:        id,
			Action:         fmt.Sprintf("Increase %s", lower(name)),
			Rationale:      fmt.Sprintf("More %s would round out an already workable routine.", lower(name)),
			ExpectedImpact: "modest lift to mood and quality of life",
		})
	}

	return recs
}

// #endregion rank

// #region helpers

// lower folds only the first rune; display names are single-cased.
func lower(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// #endregion helpers
