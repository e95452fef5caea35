package scoring

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/impact"
	"github.com/vitalsign/habit-engine/internal/selection"
)

func testModel(t *testing.T) (*catalog.Catalog, *impact.Model) {
	t.Helper()
	cat := catalog.Default()
	model, err := impact.Default(cat)
	if err != nil {
		t.Fatalf("default model: %v", err)
	}
	return cat, model
}

func TestBaselineIdentity(t *testing.T) {
	cat, model := testModel(t)

	res, err := Score(selection.Selection{}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	for _, def := range model.Metrics() {
		if got := res.Metrics[def.Name]; got != def.Baseline {
			t.Errorf("%s: empty selection gave %v, baseline is %v", def.Name, got, def.Baseline)
		}
	}
	if len(res.Positive) != 0 || len(res.Negative) != 0 {
		t.Fatal("empty selection produced dominant factors")
	}
}

func TestLevelZeroEqualsAbsent(t *testing.T) {
	cat, model := testModel(t)

	withZero, err := Score(selection.Selection{catalog.Smoking: 0}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	empty, err := Score(selection.Selection{}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(withZero, empty) {
		t.Fatal("level-0 entry perturbed the baseline")
	}
}

func TestUnknownHabitIsNoOp(t *testing.T) {
	cat, model := testModel(t)

	with, err := Score(selection.Selection{catalog.Smoking: 2, "hoverboarding": 3}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	without, err := Score(selection.Selection{catalog.Smoking: 2}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(with, without) {
		t.Fatal("unknown habit changed the result")
	}
}

func TestDeterminism(t *testing.T) {
	cat, model := testModel(t)
	sel := selection.Selection{
		catalog.Smoking:          3,
		catalog.Exercise:         2,
		catalog.Reading:          1,
		catalog.ChronicStress:    2,
		catalog.SleepConsistency: 1,
		catalog.Hydration:        3,
	}

	r1, err := Score(sel, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		r2, err := Score(sel, cat, model, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestInvalidLevelRejected(t *testing.T) {
	cat, model := testModel(t)

	_, err := Score(selection.Selection{catalog.Smoking: -1}, cat, model, DefaultConfig())
	if !errors.Is(err, selection.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	_, err = Score(selection.Selection{catalog.Smoking: 7}, cat, model, DefaultConfig())
	if !errors.Is(err, selection.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestClampCorrectness(t *testing.T) {
	cat, model := testModel(t)

	// every harmful habit maxed: several metrics should pin at bounds,
	// none may escape its declared range
	sel := selection.Selection{}
	for _, h := range cat.Habits() {
		if h.Valence == catalog.Harmful {
			sel[h.ID] = h.MaxLevel
		}
	}

	res, err := Score(sel, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, def := range model.Metrics() {
		v := res.Metrics[def.Name]
		if v < def.Min || v > def.Max {
			t.Errorf("%s = %v outside [%v, %v]", def.Name, v, def.Min, def.Max)
		}
	}
	if res.Metrics[impact.GeneralHealth] != 10 {
		t.Fatalf("all harmful habits maxed should floor generalHealth, got %v", res.Metrics[impact.GeneralHealth])
	}
	if res.Metrics[impact.LifeExpectancy] != 65 {
		t.Fatalf("all harmful habits maxed should floor lifeExpectancy, got %v", res.Metrics[impact.LifeExpectancy])
	}
}

func TestMonotonicityBeneficialHabit(t *testing.T) {
	_, model := testModel(t)

	// raw (pre-clamp) contribution must never decrease with level for a
	// positively-affected metric
	for _, e := range model.Effects(catalog.Exercise) {
		if e.Magnitude <= 0 {
			continue
		}
		prev := 0.0
		for level := 1; level <= 3; level++ {
			d := Delta(e, level)
			if d < prev {
				t.Errorf("exercise %s: delta(%d)=%v < delta(%d)=%v", e.Metric, level, d, level-1, prev)
			}
			prev = d
		}
	}
}

func TestEffectShapes(t *testing.T) {
	lin := impact.Effect{Metric: impact.GeneralHealth, Shape: impact.Linear, Magnitude: 2.0}
	if got := Delta(lin, 3); got != 6.0 {
		t.Fatalf("linear delta = %v", got)
	}
	exp := impact.Effect{Metric: impact.GeneralHealth, Shape: impact.Exponential, Magnitude: 2.0, Exponent: 2.0}
	if got := Delta(exp, 3); got != 18.0 {
		t.Fatalf("exponential delta = %v", got)
	}
	dim := impact.Effect{Metric: impact.GeneralHealth, Shape: impact.Diminishing, Magnitude: 2.0}
	if got := Delta(dim, 4); got != 4.0 {
		t.Fatalf("diminishing delta = %v", got)
	}
}

func TestFoundationalHabitsMaxedClampAtCeiling(t *testing.T) {
	cat, model := testModel(t)
	sel := selection.Selection{
		catalog.SleepConsistency: 3,
		catalog.Exercise:         3,
		catalog.HealthyDiet:      3,
		catalog.SocialConnection: 3,
	}

	res, err := Score(sel, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Metrics[impact.GeneralHealth] != 100 {
		t.Fatalf("generalHealth = %v, want 100", res.Metrics[impact.GeneralHealth])
	}
	if res.Metrics[impact.MentalHealth] != 100 {
		t.Fatalf("mentalHealth = %v, want 100", res.Metrics[impact.MentalHealth])
	}
	if len(res.Positive) == 0 {
		t.Fatal("expected non-empty positive dominant factors")
	}
	if len(res.Negative) != 0 {
		t.Fatalf("beneficial-only selection produced negative factors: %+v", res.Negative)
	}
}

func TestDominantFactorDetection(t *testing.T) {
	cat, model := testModel(t)

	res, err := Score(selection.Selection{catalog.Smoking: 3}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Negative) != 1 {
		t.Fatalf("expected smoking as the one negative factor, got %+v", res.Negative)
	}
	f := res.Negative[0]
	if f.HabitID != catalog.Smoking || f.Direction != Negative {
		t.Fatalf("unexpected factor: %+v", f)
	}

	// aggregate = sum of |delta| over exponential descriptors only
	want := 0.0
	for _, e := range model.Effects(catalog.Smoking) {
		if e.Shape == impact.Exponential {
			want += math.Abs(Delta(e, 3))
		}
	}
	if f.Impact != want {
		t.Fatalf("aggregate impact = %v, want %v", f.Impact, want)
	}
}

func TestHarmfulHabitWithPositiveDeltaStaysNegative(t *testing.T) {
	cat, model := testModel(t)

	// alcohol has a positive short-term happiness delta but must still
	// be classified by valence
	res, err := Score(selection.Selection{catalog.Alcohol: 2}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Positive) != 0 {
		t.Fatalf("alcohol listed as positive factor: %+v", res.Positive)
	}
	if len(res.Negative) != 1 || res.Negative[0].HabitID != catalog.Alcohol {
		t.Fatalf("expected alcohol as negative factor, got %+v", res.Negative)
	}
}

func TestDominantFactorsSortedByImpact(t *testing.T) {
	cat, model := testModel(t)
	sel := selection.Selection{
		catalog.Smoking:       1,
		catalog.Alcohol:       3,
		catalog.ChronicStress: 2,
	}

	res, err := Score(sel, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Negative) < 2 {
		t.Fatalf("expected multiple negative factors, got %+v", res.Negative)
	}
	for i := 1; i < len(res.Negative); i++ {
		if res.Negative[i].Impact > res.Negative[i-1].Impact {
			t.Fatalf("factors not descending at %d: %+v", i, res.Negative)
		}
	}
}

func TestLinearOnlyHabitNeverDominates(t *testing.T) {
	cat, model := testModel(t)

	// junk food is linear-only in the canonical model
	res, err := Score(selection.Selection{catalog.JunkFood: 3}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Negative) != 0 || len(res.Positive) != 0 {
		t.Fatalf("linear-only habit produced dominant factors: %+v %+v", res.Positive, res.Negative)
	}
}

func TestTwoHabitsSumBeforeClamp(t *testing.T) {
	cat, model := testModel(t)

	// junk food and sugary drinks both hit generalHealth linearly;
	// combined result must equal baseline + both deltas (no per-habit clamp)
	res, err := Score(selection.Selection{catalog.JunkFood: 2, catalog.SugaryDrinks: 2}, cat, model, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// -2.0*2 + -1.5*2 = -7
	if got := res.Metrics[impact.GeneralHealth]; got != 43 {
		t.Fatalf("generalHealth = %v, want 43", got)
	}
}
