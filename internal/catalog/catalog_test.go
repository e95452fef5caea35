package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()

	if len(c.Habits()) != 16 {
		t.Fatalf("expected 16 habits, got %d", len(c.Habits()))
	}
	if len(c.Organs()) != 7 {
		t.Fatalf("expected 7 organs, got %d", len(c.Organs()))
	}

	h, ok := c.Habit(Smoking)
	if !ok {
		t.Fatal("smoking missing from default catalog")
	}
	if h.Valence != Harmful {
		t.Fatalf("smoking valence = %s", h.Valence)
	}
	if h.MaxLevel != 3 || len(h.Levels) != 3 {
		t.Fatalf("smoking levels malformed: max=%d labels=%d", h.MaxLevel, len(h.Levels))
	}
}

func TestDefaultCatalogOrderStable(t *testing.T) {
	a := Default().Habits()
	b := Default().Habits()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("habit order differs at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestNewRejectsDuplicateHabit(t *testing.T) {
	habits := []Habit{
		{ID: "x", DisplayName: "X", Valence: Harmful, MaxLevel: 1, Levels: []string{"a"}},
		{ID: "x", DisplayName: "X2", Valence: Harmful, MaxLevel: 1, Levels: []string{"a"}},
	}
	if _, err := New(habits, defaultOrgans); err == nil {
		t.Fatal("expected duplicate habit error")
	}
}

func TestNewRejectsBadValence(t *testing.T) {
	habits := []Habit{
		{ID: "x", DisplayName: "X", Valence: "neutral", MaxLevel: 1, Levels: []string{"a"}},
	}
	if _, err := New(habits, defaultOrgans); err == nil {
		t.Fatal("expected valence error")
	}
}

func TestNewRejectsLevelLabelMismatch(t *testing.T) {
	habits := []Habit{
		{ID: "x", DisplayName: "X", Valence: Beneficial, MaxLevel: 3, Levels: []string{"only one"}},
	}
	if _, err := New(habits, defaultOrgans); err == nil {
		t.Fatal("expected level label mismatch error")
	}
}

func TestDisplayNameFallsBackToID(t *testing.T) {
	c := Default()
	if got := c.DisplayName("mystery_habit"); got != "mystery_habit" {
		t.Fatalf("expected raw id fallback, got %q", got)
	}
	if got := c.DisplayName(Exercise); got != "Exercise" {
		t.Fatalf("expected display name, got %q", got)
	}
}

func TestLoadFromYAML(t *testing.T) {
	doc := `
habits:
  - id: smoking
    display_name: Smoking
    category: substance
    valence: harmful
    max_level: 2
    levels: [occasional, heavy]
organs:
  - id: lungs
    display_name: Lungs
    narration: breathing
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	h, ok := c.Habit(Smoking)
	if !ok {
		t.Fatal("smoking missing")
	}
	if h.MaxLevel != 2 {
		t.Fatalf("expected max level 2 from file, got %d", h.MaxLevel)
	}
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("habits: []\norgans: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
