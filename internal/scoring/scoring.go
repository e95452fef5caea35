package scoring

import (
	"math"
	"sort"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/impact"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region score

// Score evaluates the impact model against a habit selection. Pure and
// deterministic: identical selections yield bit-identical results.
//
// Metrics start at their declared baselines, every effect descriptor of
// every selected habit folds its delta in, and clamping happens once at
// the end. Habits absent from the model are no-ops; level-0 entries are
// skipped. Levels outside [0, max] fail with selection.ErrInvalidLevel
// rather than being clamped silently.
func Score(sel selection.Selection, cat *catalog.Catalog, model *impact.Model, cfg Config) (Result, error) {
	if err := selection.ValidateLevels(sel, cat); err != nil {
		return Result{}, err
	}

	metrics := make(MetricProfile, len(model.Metrics()))
	for _, def := range model.Metrics() {
		metrics[def.Name] = def.Baseline
	}

	// Per-habit aggregate of |delta| over exponential descriptors, and
	// whether any exponential descriptor crosses the dominance threshold.
	type dominance struct {
		impact    float64
		qualifies bool
		level     int
	}
	candidates := make(map[catalog.HabitID]dominance)

	// Fold habits in sorted-id order: float accumulation is order
	// sensitive and identical selections must yield bit-identical output.
	ids := make([]catalog.HabitID, 0, len(sel))
	for id := range sel {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		level := sel[id]
		if level <= 0 {
			continue
		}
		effects := model.Effects(id)
		if len(effects) == 0 {
			continue
		}

		dom := dominance{level: level}
		for _, e := range effects {
			delta := Delta(e, level)
			metrics[e.Metric] += delta

			if e.Shape == impact.Exponential {
				dom.impact += math.Abs(delta)
				if math.Abs(e.Magnitude) > cfg.DominanceThreshold {
					dom.qualifies = true
				}
			}
		}
		if dom.qualifies {
			candidates[id] = dom
		}
	}

	for name, v := range metrics {
		metrics[name] = model.Clamp(name, v)
	}

	var positive, negative []DominantFactor
	for id, dom := range candidates {
		h, ok := cat.Habit(id)
		if !ok {
			// model validation guarantees this; skip rather than crash
			continue
		}
		f := DominantFactor{HabitID: id, Level: dom.level, Impact: dom.impact}
		if h.Valence == catalog.Beneficial {
			f.Direction = Positive
			positive = append(positive, f)
		} else {
			f.Direction = Negative
			negative = append(negative, f)
		}
	}
	sortFactors(positive)
	sortFactors(negative)

	return Result{Metrics: metrics, Positive: positive, Negative: negative}, nil
}

// #endregion score

// #region delta

// Delta computes one descriptor's contribution at the given level.
func Delta(e impact.Effect, level int) float64 {
	l := float64(level)
	switch e.Shape {
	case impact.Linear:
		return e.Magnitude * l
	case impact.Exponential:
		return e.Magnitude * math.Pow(l, e.Exponent)
	case impact.Diminishing:
		return e.Magnitude * math.Sqrt(l)
	default:
		return 0
	}
}

// #endregion delta

// #region helpers

// sortFactors orders descending by impact, ties broken by habit id so
// output is reproducible.
func sortFactors(fs []DominantFactor) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].Impact != fs[j].Impact {
			return fs[i].Impact > fs[j].Impact
		}
		return fs[i].HabitID < fs[j].HabitID
	})
}

// #endregion helpers
