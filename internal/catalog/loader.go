package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region file-format

// catalogFile is the YAML document shape for an external catalog.
type catalogFile struct {
	Habits []Habit `yaml:"habits"`
	Organs []Organ `yaml:"organs"`
}

// #endregion file-format

// #region loader

// Load reads a catalog from a YAML file. The file fully replaces the
// compiled-in defaults; partial overrides are not supported so that the
// file is always the single source of truth for a tuning.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Habits) == 0 {
		return nil, fmt.Errorf("catalog %s: no habits defined", path)
	}
	if len(f.Organs) == 0 {
		return nil, fmt.Errorf("catalog %s: no organs defined", path)
	}
	c, err := New(f.Habits, f.Organs)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// #endregion loader
