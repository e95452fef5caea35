package replay

import (
	"fmt"
	"math"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/impact"
	"github.com/vitalsign/habit-engine/internal/report"
	"github.com/vitalsign/habit-engine/internal/scoring"
)

// #region types

// Check is one fixture assertion outcome.
type Check struct {
	Name string
	Want string
	Got  string
	Pass bool
}

// Result captures a full fixture run.
type Result struct {
	Description string
	Passed      bool
	Checks      []Check
	Report      report.Report
}

// #endregion types

// #region run

// Run evaluates a fixture's selection through the engine and diffs the
// outcome against the fixture's expectations. Operates entirely
// in-memory; the engine's own config is overridden by the fixture's.
func Run(f *Fixture, eng *report.Engine) (Result, error) {
	cfg := report.DefaultConfig()
	if f.Config.DominanceThreshold > 0 {
		cfg.Scoring.DominanceThreshold = f.Config.DominanceThreshold
	}
	eng = report.NewEngine(eng.Catalog(), eng.Model(), cfg)

	rep, err := eng.Evaluate(f.ToSelection())
	if err != nil {
		return Result{}, fmt.Errorf("evaluate fixture: %w", err)
	}

	tol := f.Expected.Tolerance
	if tol == 0 {
		tol = 1e-9
	}

	res := Result{Description: f.Description, Passed: true, Report: rep}
	add := func(c Check) {
		res.Checks = append(res.Checks, c)
		if !c.Pass {
			res.Passed = false
		}
	}

	for name, want := range f.Expected.Metrics {
		got, ok := rep.Metrics[impact.Metric(name)]
		add(Check{
			Name: "metric " + name,
			Want: fmt.Sprintf("%.4f", want),
			Got:  fmt.Sprintf("%.4f", got),
			Pass: ok && math.Abs(got-want) <= tol,
		})
	}

	for name, want := range f.Expected.Organs {
		got, ok := rep.Organs[catalog.OrganID(name)]
		add(Check{
			Name: "organ " + name,
			Want: fmt.Sprintf("%.4f", want),
			Got:  fmt.Sprintf("%.4f", got),
			Pass: ok && math.Abs(got-want) <= tol,
		})
	}

	if f.Expected.FirstRecommendation != "" {
		got := "none"
		if len(rep.Recommendations) > 0 {
			got = string(rep.Recommendations[0].Priority)
		}
		add(Check{
			Name: "first recommendation",
			Want: f.Expected.FirstRecommendation,
			Got:  got,
			Pass: got == f.Expected.FirstRecommendation,
		})
	}

	if f.Expected.RecommendationCount != nil {
		want := *f.Expected.RecommendationCount
		add(Check{
			Name: "recommendation count",
			Want: fmt.Sprintf("%d", want),
			Got:  fmt.Sprintf("%d", len(rep.Recommendations)),
			Pass: len(rep.Recommendations) == want,
		})
	}

	if f.Expected.NegativeFactors != nil {
		got := make([]string, len(rep.Negative))
		for i, fac := range rep.Negative {
			got[i] = string(fac.HabitID)
		}
		add(Check{
			Name: "negative factors",
			Want: fmt.Sprintf("%v", f.Expected.NegativeFactors),
			Got:  fmt.Sprintf("%v", got),
			Pass: equalStrings(got, f.Expected.NegativeFactors),
		})
	}

	return res, nil
}

// #endregion run

// #region export

// Export evaluates a selection and records the outcome as a fixture
// whose expectations match the current tuning exactly.
func Export(description string, sel map[string]int, eng *report.Engine) (*Fixture, error) {
	f := &Fixture{
		Description: description,
		Selection:   sel,
		Config:      FixtureConfig{DominanceThreshold: scoring.DefaultConfig().DominanceThreshold},
	}

	rep, err := eng.Evaluate(f.ToSelection())
	if err != nil {
		return nil, fmt.Errorf("evaluate for export: %w", err)
	}

	metrics := make(map[string]float64, len(rep.Metrics))
	for name, v := range rep.Metrics {
		metrics[string(name)] = v
	}
	organs := make(map[string]float64, len(rep.Organs))
	for id, v := range rep.Organs {
		organs[string(id)] = v
	}

	count := len(rep.Recommendations)
	f.Expected = Expected{
		Metrics:             metrics,
		Organs:              organs,
		Tolerance:           1e-9,
		RecommendationCount: &count,
	}
	if len(rep.Recommendations) > 0 {
		f.Expected.FirstRecommendation = string(rep.Recommendations[0].Priority)
	}
	negatives := make([]string, len(rep.Negative))
	for i, fac := range rep.Negative {
		negatives[i] = string(fac.HabitID)
	}
	f.Expected.NegativeFactors = negatives

	return f, nil
}

// #endregion export

// #region helpers

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion helpers
