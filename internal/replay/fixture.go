package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded evaluation
// with expected outcomes. Fixtures pin a tuning: rerunning them after
// a model edit shows exactly which expectations moved.
type Fixture struct {
	Description string         `json:"description"`
	Selection   map[string]int `json:"selection"`
	Config      FixtureConfig  `json:"config"`
	Expected    Expected       `json:"expected"`
}

// FixtureConfig mirrors the engine tunables with JSON tags.
type FixtureConfig struct {
	DominanceThreshold float64 `json:"dominance_threshold"`
}

// Expected captures the assertions a fixture makes.
type Expected struct {
	// Metrics are exact expected values, compared within Tolerance.
	Metrics map[string]float64 `json:"metrics,omitempty"`
	// Organs are exact expected values, compared within Tolerance.
	Organs map[string]float64 `json:"organs,omitempty"`
	// Tolerance for metric/organ comparison. Zero means 1e-9.
	Tolerance float64 `json:"tolerance,omitempty"`
	// FirstRecommendation, when set, must match the priority of the
	// first ranked recommendation ("critical", "high", "moderate").
	FirstRecommendation string `json:"first_recommendation,omitempty"`
	// RecommendationCount, when present, must match exactly.
	RecommendationCount *int `json:"recommendation_count,omitempty"`
	// NegativeFactors, when non-nil, must match the ordered habit ids
	// of the negative dominant-factor list.
	NegativeFactors []string `json:"negative_factors,omitempty"`
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes a fixture as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// ToSelection converts the fixture's string-keyed selection.
func (f *Fixture) ToSelection() selection.Selection {
	sel := make(selection.Selection, len(f.Selection))
	for id, level := range f.Selection {
		sel[catalog.HabitID(id)] = level
	}
	return sel
}

// #endregion fixture-io
