// Package organ projects a habit selection onto per-organ health values.
// Deliberately decoupled from the metric scoring engine: it reads its own
// baselines and vulnerability weights and is reproducible from the
// selection alone.
package organ

import (
	"sort"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/impact"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region profile
// Profile maps each organ to its clamped health value.
type Profile map[catalog.OrganID]float64

// #endregion profile

// #region project

// Project computes the organ profile for a selection. For each organ,
// each selected habit in its weight table contributes
// weight * level * organConstant (sign carried by the weight); the
// running value is clamped to the organ range at the end. Organs no
// selected habit mentions keep their baseline exactly.
func Project(sel selection.Selection, cat *catalog.Catalog, model *impact.Model) (Profile, error) {
	if err := selection.ValidateLevels(sel, cat); err != nil {
		return nil, err
	}

	profile := make(Profile, len(cat.Organs()))
	for _, o := range cat.Organs() {
		ow, ok := model.OrganWeights(o.ID)
		if !ok {
			// organ without a weight table sits at the range midpoint
			profile[o.ID] = model.ClampOrgan((model.OrganMin + model.OrganMax) / 2)
			continue
		}

		v := ow.Baseline
		for _, id := range sortedHabits(ow.Weights) {
			level, selected := sel[id]
			if !selected || level <= 0 {
				continue
			}
			if _, known := cat.Habit(id); !known {
				continue
			}
			v += ow.Weights[id] * float64(level) * model.OrganConstant
		}
		profile[o.ID] = model.ClampOrgan(v)
	}

	return profile, nil
}

// #endregion project

// #region helpers

// sortedHabits fixes the fold order; float accumulation must not depend
// on map iteration order.
func sortedHabits(weights map[catalog.HabitID]float64) []catalog.HabitID {
	ids := make([]catalog.HabitID, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// #endregion helpers
