package report

import (
	"fmt"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/explain"
	"github.com/vitalsign/habit-engine/internal/impact"
	"github.com/vitalsign/habit-engine/internal/organ"
	"github.com/vitalsign/habit-engine/internal/recommend"
	"github.com/vitalsign/habit-engine/internal/scoring"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region engine

// Engine is the engine's public entry point: catalog + impact model +
// config, wired once at startup. Evaluate is pure and re-entrant; the
// held tables are read-only, so concurrent evaluations need no locking.
type Engine struct {
	cat   *catalog.Catalog
	model *impact.Model
	cfg   Config
}

// NewEngine wires an engine over a validated catalog and model.
func NewEngine(cat *catalog.Catalog, model *impact.Model, cfg Config) *Engine {
	return &Engine{cat: cat, model: model, cfg: cfg}
}

// NewDefaultEngine wires the compiled-in catalog and canonical model.
func NewDefaultEngine() (*Engine, error) {
	cat := catalog.Default()
	model, err := impact.Default(cat)
	if err != nil {
		return nil, fmt.Errorf("default model: %w", err)
	}
	return NewEngine(cat, model, DefaultConfig()), nil
}

// Catalog exposes the read-only catalog for presentation layers.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Model exposes the read-only impact model.
func (e *Engine) Model() *impact.Model { return e.model }

// #endregion engine

// #region evaluate

// Evaluate runs the full pipeline for one selection:
// normalize, score, project, rank, explain, verify bounds.
func (e *Engine) Evaluate(sel selection.Selection) (Report, error) {
	norm, dropped, err := selection.Normalize(sel, e.cat)
	if err != nil {
		return Report{}, err
	}

	scored, err := scoring.Score(norm, e.cat, e.model, e.cfg.Scoring)
	if err != nil {
		return Report{}, fmt.Errorf("score: %w", err)
	}

	organs, err := organ.Project(norm, e.cat, e.model)
	if err != nil {
		return Report{}, fmt.Errorf("project organs: %w", err)
	}

	recs := recommend.Rank(norm, scored.Negative, e.cat, e.cfg.Recommend)

	for i := range scored.Positive {
		f := &scored.Positive[i]
		f.Explanation = explain.Factor(e.cat, f.HabitID, f.Level, f.Impact)
	}
	for i := range scored.Negative {
		f := &scored.Negative[i]
		f.Explanation = explain.Factor(e.cat, f.HabitID, f.Level, f.Impact)
	}

	notes := make(map[catalog.OrganID]string, len(organs))
	for id, v := range organs {
		baseline := v
		if ow, ok := e.model.OrganWeights(id); ok {
			baseline = ow.Baseline
		}
		notes[id] = explain.Organ(e.cat, id, v, baseline)
	}

	rep := Report{
		Selection:       selection.Clone(norm),
		SelectionHash:   selection.Hash(norm),
		Metrics:         scored.Metrics,
		Organs:          organs,
		OrganNotes:      notes,
		Positive:        scored.Positive,
		Negative:        scored.Negative,
		Recommendations: recs,
		Dropped:         dropped,
	}

	if err := e.verify(&rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// #endregion evaluate

// #region verify

// verify re-checks every output bound after assembly. A violation here
// means a model/engine bug, not bad input: Strict mode fails fast,
// otherwise the value is re-clamped and evaluation continues.
func (e *Engine) verify(rep *Report) error {
	for _, c := range e.Verify(*rep) {
		if c.Pass {
			continue
		}
		if e.cfg.Strict {
			return fmt.Errorf("invariant violation: %s = %v out of bounds", c.Name, c.Value)
		}
	}

	for _, def := range e.model.Metrics() {
		rep.Metrics[def.Name] = e.model.Clamp(def.Name, rep.Metrics[def.Name])
	}
	for id, v := range rep.Organs {
		rep.Organs[id] = e.model.ClampOrgan(v)
	}
	if n := len(rep.Recommendations); n > e.cfg.Recommend.MaxRecommendations {
		rep.Recommendations = rep.Recommendations[:e.cfg.Recommend.MaxRecommendations]
	}
	return nil
}

// Verify runs every bounds check against an assembled report and
// returns the full check list. Used by the replay tooling to surface
// which bound a bad tuning escaped.
func (e *Engine) Verify(rep Report) []InvariantCheck {
	var checks []InvariantCheck

	for _, def := range e.model.Metrics() {
		v := rep.Metrics[def.Name]
		checks = append(checks, InvariantCheck{
			Name:  string(def.Name),
			Value: v,
			Pass:  v >= def.Min && v <= def.Max,
		})
	}

	for _, o := range e.cat.Organs() {
		v, ok := rep.Organs[o.ID]
		if !ok {
			continue
		}
		checks = append(checks, InvariantCheck{
			Name:  "organ_" + string(o.ID),
			Value: v,
			Pass:  v >= e.model.OrganMin && v <= e.model.OrganMax,
		})
	}

	checks = append(checks, InvariantCheck{
		Name:  "recommendation_count",
		Value: float64(len(rep.Recommendations)),
		Pass:  len(rep.Recommendations) <= e.cfg.Recommend.MaxRecommendations,
	})
	return checks
}

// #endregion verify
