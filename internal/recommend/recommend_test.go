package recommend

import (
	"testing"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/scoring"
)

func TestSmokingRankedCriticalFirst(t *testing.T) {
	cat := catalog.Default()
	sel := map[catalog.HabitID]int{catalog.Smoking: 3, catalog.Exercise: 0}

	recs := Rank(sel, nil, cat, DefaultConfig())
	if len(recs) == 0 {
		t.Fatal("no recommendations")
	}
	if recs[0].Priority != Critical || recs[0].HabitID != catalog.Smoking {
		t.Fatalf("first recommendation = %+v, want critical reduce-smoking", recs[0])
	}
	if recs[0].Action != "Reduce smoking" {
		t.Fatalf("action = %q", recs[0].Action)
	}
}

func TestCapAtFive(t *testing.T) {
	cat := catalog.Default()
	// everything wrong at once: 4 critical + 3 foundational + 3 secondary candidates
	sel := map[catalog.HabitID]int{
		catalog.ChronicStress:     3,
		catalog.RecreationalDrugs: 2,
		catalog.Smoking:           3,
		catalog.Alcohol:           1,
	}

	recs := Rank(sel, nil, cat, DefaultConfig())
	if len(recs) != 5 {
		t.Fatalf("expected exactly 5 recommendations, got %d", len(recs))
	}
	// all four criticals fit, then one foundational
	for i := 0; i < 4; i++ {
		if recs[i].Priority != Critical {
			t.Fatalf("rec %d priority = %s, want critical", i, recs[i].Priority)
		}
	}
	if recs[4].Priority != High {
		t.Fatalf("rec 4 priority = %s, want high", recs[4].Priority)
	}
}

func TestTierOrderingNeverInterleaves(t *testing.T) {
	cat := catalog.Default()
	sel := map[catalog.HabitID]int{catalog.Alcohol: 1}

	recs := Rank(sel, nil, cat, DefaultConfig())
	rank := map[Priority]int{Critical: 0, High: 1, Moderate: 2}
	for i := 1; i < len(recs); i++ {
		if rank[recs[i].Priority] < rank[recs[i-1].Priority] {
			t.Fatalf("tier order violated at %d: %s after %s", i, recs[i].Priority, recs[i-1].Priority)
		}
	}
}

func TestInTierOrderFollowsFixedList(t *testing.T) {
	cat := catalog.Default()
	cfg := DefaultConfig()
	// every critical habit active; output must follow cfg.CriticalHabits order
	sel := map[catalog.HabitID]int{
		catalog.Smoking:           3,
		catalog.Alcohol:           3,
		catalog.ChronicStress:     1,
		catalog.RecreationalDrugs: 1,
	}

	recs := Rank(sel, nil, cat, cfg)
	for i, want := range cfg.CriticalHabits {
		if recs[i].HabitID != want {
			t.Fatalf("critical slot %d = %s, want %s", i, recs[i].HabitID, want)
		}
	}
}

func TestCriticalThresholdIsLevelOne(t *testing.T) {
	cat := catalog.Default()
	recs := Rank(map[catalog.HabitID]int{catalog.Smoking: 1}, nil, cat, DefaultConfig())
	if len(recs) == 0 || recs[0].Priority != Critical || recs[0].HabitID != catalog.Smoking {
		t.Fatalf("level-1 smoking should be critical, got %+v", recs)
	}
}

func TestFoundationalAtTargetNotRecommended(t *testing.T) {
	cat := catalog.Default()
	sel := map[catalog.HabitID]int{
		catalog.SleepConsistency: 2,
		catalog.Exercise:         3,
		catalog.HealthyDiet:      2,
		catalog.SocialConnection: 2,
		catalog.Meditation:       2,
		catalog.Hydration:        2,
	}
	recs := Rank(sel, nil, cat, DefaultConfig())
	if len(recs) != 0 {
		t.Fatalf("well-kept routine should produce no recommendations, got %+v", recs)
	}
}

func TestDominantFactorEnrichesRationale(t *testing.T) {
	cat := catalog.Default()
	sel := map[catalog.HabitID]int{catalog.Smoking: 3}
	factors := []scoring.DominantFactor{{HabitID: catalog.Smoking, Direction: scoring.Negative, Impact: 50}}

	recs := Rank(sel, factors, cat, DefaultConfig())
	if recs[0].Rationale != "Smoking is a dominant negative factor in your current profile." {
		t.Fatalf("rationale = %q", recs[0].Rationale)
	}
}

func TestEveryRecommendationCarriesText(t *testing.T) {
	cat := catalog.Default()
	recs := Rank(map[catalog.HabitID]int{catalog.Alcohol: 2}, nil, cat, DefaultConfig())
	for _, r := range recs {
		if r.Action == "" || r.Rationale == "" || r.ExpectedImpact == "" {
			t.Fatalf("recommendation missing text: %+v", r)
		}
	}
}
