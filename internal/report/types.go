package report

import (
	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/organ"
	"github.com/vitalsign/habit-engine/internal/recommend"
	"github.com/vitalsign/habit-engine/internal/scoring"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region report
// Report is the single aggregate result returned to the caller:
// whole-body metrics, organ health, explained dominant factors, and
// ranked recommendations. Recomputed in full on every evaluation.
type Report struct {
	Selection       selection.Selection        `json:"selection"`
	SelectionHash   string                     `json:"selection_hash"`
	Metrics         scoring.MetricProfile      `json:"metrics"`
	Organs          organ.Profile              `json:"organs"`
	OrganNotes      map[catalog.OrganID]string `json:"organ_notes"`
	Positive        []scoring.DominantFactor   `json:"positive_factors"`
	Negative        []scoring.DominantFactor   `json:"negative_factors"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Dropped         []selection.Dropped        `json:"dropped,omitempty"`
}

// #endregion report

// #region invariant-check
// InvariantCheck captures one bounds verification on the assembled report.
type InvariantCheck struct {
	Name  string
	Value float64
	Pass  bool
}

// #endregion invariant-check

// #region config
// Config bundles the per-stage tunables.
type Config struct {
	Scoring   scoring.Config
	Recommend recommend.Config

	// Strict makes a failed post-assembly bounds check an error
	// instead of a silent re-clamp. On in development, off for
	// production callers that must never crash on a data bug.
	Strict bool
}

// DefaultConfig returns the canonical stage configs with Strict off.
func DefaultConfig() Config {
	return Config{
		Scoring:   scoring.DefaultConfig(),
		Recommend: recommend.DefaultConfig(),
	}
}

// #endregion config
