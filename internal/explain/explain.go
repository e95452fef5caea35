// Package explain renders human-readable justification text for dominant
// factors and organ effects. Pure string templating: template selection
// and interpolation only, no scoring logic.
package explain

import (
	"fmt"

	"github.com/vitalsign/habit-engine/internal/catalog"
)

// #region templates

// factorTemplates are per-habit canned explanations. The first verb
// slot takes the level label, the second the aggregate impact.
var factorTemplates = map[catalog.HabitID]string{
	catalog.Smoking:           "%s (%s) compounds damage across your lungs, heart and overall health (impact %.1f).",
	catalog.Alcohol:           "%s (%s) strains your liver and raises long-term disease risk (impact %.1f).",
	catalog.RecreationalDrugs: "%s (%s) has a compounding toll on mental health and overall resilience (impact %.1f).",
	catalog.ChronicStress:     "%s (%s) erodes mental health and keeps your body in a costly alert state (impact %.1f).",
	catalog.SleepConsistency:  "%s (%s) is foundational; its benefits compound into nearly every metric (impact %.1f).",
	catalog.Exercise:          "%s (%s) builds fitness and general health faster the more consistent it gets (impact %.1f).",
	catalog.HealthyDiet:       "%s (%s) feeds gains in general health and pushes disease risk down (impact %.1f).",
	catalog.SocialConnection:  "%s (%s) compounds into mood and mental health (impact %.1f).",
	catalog.Meditation:        "%s (%s) steadies mood and strengthens mental health (impact %.1f).",
}

// #endregion templates

// #region factor

// Factor renders the explanation for one dominant factor. Falls back to
// a generic template for habits without a specific one.
func Factor(cat *catalog.Catalog, id catalog.HabitID, level int, impactMag float64) string {
	name := cat.DisplayName(id)
	if tpl, ok := factorTemplates[id]; ok {
		return fmt.Sprintf(tpl, name, levelLabel(cat, id, level), impactMag)
	}
	return fmt.Sprintf("%s at level %d affects your health in multiple ways", name, level)
}

// #endregion factor

// #region organ

// Organ renders a one-line explanation of an organ's current value
// using the catalog narration.
func Organ(cat *catalog.Catalog, id catalog.OrganID, value, baseline float64) string {
	o, ok := cat.Organ(id)
	if !ok {
		return fmt.Sprintf("%s health is at %.0f", id, value)
	}
	switch {
	case value < baseline:
		return fmt.Sprintf("%s (%s) is below baseline at %.0f; your current habits are working against it.", o.DisplayName, o.Narration, value)
	case value > baseline:
		return fmt.Sprintf("%s (%s) is above baseline at %.0f; your current habits are supporting it.", o.DisplayName, o.Narration, value)
	default:
		return fmt.Sprintf("%s (%s) is holding at its baseline of %.0f.", o.DisplayName, o.Narration, value)
	}
}

// #endregion organ

// #region helpers

// levelLabel resolves a habit's level name, falling back to the number.
func levelLabel(cat *catalog.Catalog, id catalog.HabitID, level int) string {
	if h, ok := cat.Habit(id); ok && level >= 1 && level <= len(h.Levels) {
		return h.Levels[level-1]
	}
	return fmt.Sprintf("level %d", level)
}

// #endregion helpers
