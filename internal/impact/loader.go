package impact

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitalsign/habit-engine/internal/catalog"
)

// #region file-format

// modelFile is the YAML document shape for an external impact model.
type modelFile struct {
	Metrics []MetricDef                         `yaml:"metrics"`
	Effects map[catalog.HabitID][]Effect        `yaml:"effects"`
	Organs  map[catalog.OrganID]organWeightsDoc `yaml:"organs"`
	Organ   organSettingsDoc                    `yaml:"organ_settings"`
}

type organWeightsDoc struct {
	Baseline float64                     `yaml:"baseline"`
	Weights  map[catalog.HabitID]float64 `yaml:"weights"`
}

type organSettingsDoc struct {
	Constant float64 `yaml:"constant"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
}

// #endregion file-format

// #region loader

// Load reads an impact model from a YAML file and validates it against
// the catalog. Omitted organ settings fall back to the canonical
// constant and range.
func Load(path string, cat *catalog.Catalog) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	var f modelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if len(f.Metrics) == 0 {
		return nil, fmt.Errorf("model %s: no metrics defined", path)
	}

	organs := make(map[catalog.OrganID]OrganWeights, len(f.Organs))
	for id, doc := range f.Organs {
		organs[id] = OrganWeights{Baseline: doc.Baseline, Weights: doc.Weights}
	}

	in := modelInput{
		Metrics:       f.Metrics,
		Effects:       f.Effects,
		Organs:        organs,
		OrganConstant: f.Organ.Constant,
		OrganMin:      f.Organ.Min,
		OrganMax:      f.Organ.Max,
	}
	if in.OrganConstant == 0 {
		in.OrganConstant = 4.0
	}
	if in.OrganMin == 0 && in.OrganMax == 0 {
		in.OrganMin, in.OrganMax = 15, 100
	}

	m, err := NewModel(cat, in)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

// #endregion loader
