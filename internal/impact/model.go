package impact

import (
	"fmt"

	"github.com/vitalsign/habit-engine/internal/catalog"
)

// #region errors

var (
	// ErrDanglingEffect marks an effect or weight referencing a habit
	// the catalog does not define.
	ErrDanglingEffect = fmt.Errorf("effect references unknown habit")
	// ErrBadModel marks any other load-time model integrity failure.
	ErrBadModel = fmt.Errorf("bad impact model")
)

// #endregion errors

// #region constructor

// modelInput bundles the raw tables handed to NewModel.
type modelInput struct {
	Metrics       []MetricDef
	Effects       map[catalog.HabitID][]Effect
	Organs        map[catalog.OrganID]OrganWeights
	OrganConstant float64
	OrganMin      float64
	OrganMax      float64
}

// NewModel validates raw tables against the catalog and builds a Model.
// Every effect's habit and metric must exist, exponential exponents must
// be >= 1, and every baseline must sit inside its declared range.
func NewModel(cat *catalog.Catalog, in modelInput) (*Model, error) {
	m := &Model{
		metrics:       make(map[Metric]MetricDef, len(in.Metrics)),
		effects:       in.Effects,
		organs:        in.Organs,
		OrganConstant: in.OrganConstant,
		OrganMin:      in.OrganMin,
		OrganMax:      in.OrganMax,
	}

	if m.OrganConstant <= 0 {
		return nil, fmt.Errorf("%w: organ constant %v", ErrBadModel, m.OrganConstant)
	}
	if m.OrganMin >= m.OrganMax {
		return nil, fmt.Errorf("%w: organ range [%v, %v]", ErrBadModel, m.OrganMin, m.OrganMax)
	}

	for _, def := range in.Metrics {
		if def.Min >= def.Max {
			return nil, fmt.Errorf("%w: metric %s range [%v, %v]", ErrBadModel, def.Name, def.Min, def.Max)
		}
		if def.Baseline < def.Min || def.Baseline > def.Max {
			return nil, fmt.Errorf("%w: metric %s baseline %v outside [%v, %v]",
				ErrBadModel, def.Name, def.Baseline, def.Min, def.Max)
		}
		if _, dup := m.metrics[def.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate metric %s", ErrBadModel, def.Name)
		}
		m.metrics[def.Name] = def
		m.metricOrder = append(m.metricOrder, def.Name)
	}

	for habitID, effects := range in.Effects {
		if _, ok := cat.Habit(habitID); !ok {
			return nil, fmt.Errorf("%w: %s", ErrDanglingEffect, habitID)
		}
		for _, e := range effects {
			if _, ok := m.metrics[e.Metric]; !ok {
				return nil, fmt.Errorf("%w: habit %s affects unknown metric %s", ErrBadModel, habitID, e.Metric)
			}
			switch e.Shape {
			case Linear, Diminishing:
			case Exponential:
				if e.Exponent < 1.0 {
					return nil, fmt.Errorf("%w: habit %s metric %s exponent %v < 1",
						ErrBadModel, habitID, e.Metric, e.Exponent)
				}
			default:
				return nil, fmt.Errorf("%w: habit %s metric %s shape %q", ErrBadModel, habitID, e.Metric, e.Shape)
			}
		}
	}

	for organID, ow := range in.Organs {
		if _, ok := cat.Organ(organID); !ok {
			return nil, fmt.Errorf("%w: weights for unknown organ %s", ErrBadModel, organID)
		}
		if ow.Baseline < m.OrganMin || ow.Baseline > m.OrganMax {
			return nil, fmt.Errorf("%w: organ %s baseline %v outside [%v, %v]",
				ErrBadModel, organID, ow.Baseline, m.OrganMin, m.OrganMax)
		}
		for habitID := range ow.Weights {
			if _, ok := cat.Habit(habitID); !ok {
				return nil, fmt.Errorf("%w: organ %s weight for %s", ErrDanglingEffect, organID, habitID)
			}
		}
	}

	return m, nil
}

// #endregion constructor

// #region accessors

// MetricDef looks up one metric declaration.
func (m *Model) MetricDef(name Metric) (MetricDef, bool) {
	def, ok := m.metrics[name]
	return def, ok
}

// Metrics returns all metric declarations in declaration order.
func (m *Model) Metrics() []MetricDef {
	out := make([]MetricDef, 0, len(m.metricOrder))
	for _, name := range m.metricOrder {
		out = append(out, m.metrics[name])
	}
	return out
}

// Effects returns the effect descriptors for one habit. Habits with no
// entry have zero effect on every metric.
func (m *Model) Effects(id catalog.HabitID) []Effect {
	return m.effects[id]
}

// OrganWeights returns one organ's projection table.
func (m *Model) OrganWeights(id catalog.OrganID) (OrganWeights, bool) {
	ow, ok := m.organs[id]
	return ow, ok
}

// #endregion accessors

// #region clamp

// Clamp bounds v to the metric's declared range. Unknown metrics pass
// through unchanged.
func (m *Model) Clamp(name Metric, v float64) float64 {
	def, ok := m.metrics[name]
	if !ok {
		return v
	}
	if v < def.Min {
		return def.Min
	}
	if v > def.Max {
		return def.Max
	}
	return v
}

// ClampOrgan bounds v to the organ range.
func (m *Model) ClampOrgan(v float64) float64 {
	if v < m.OrganMin {
		return m.OrganMin
	}
	if v > m.OrganMax {
		return m.OrganMax
	}
	return v
}

// #endregion clamp
