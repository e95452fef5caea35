package profilecache

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/report"
	"github.com/vitalsign/habit-engine/internal/selection"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "profiles.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(t *testing.T, sel selection.Selection) report.Report {
	t.Helper()
	e, err := report.NewDefaultEngine()
	if err != nil {
		t.Fatal(err)
	}
	rep, err := e.Evaluate(sel)
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestPutGetRoundTrip(t *testing.T) {
	s := testStore(t)
	rep := testReport(t, selection.Selection{catalog.Smoking: 2, catalog.Exercise: 1})

	evalID, err := s.Put(rep, "user_change", "selection edited")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if evalID == "" {
		t.Fatal("empty evaluation id")
	}

	got, ok, err := s.Get(rep.SelectionHash)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("cache miss after put")
	}
	if !reflect.DeepEqual(got.Metrics, rep.Metrics) {
		t.Fatalf("metrics differ after round trip:\n got %v\nwant %v", got.Metrics, rep.Metrics)
	}
	if !reflect.DeepEqual(got.Organs, rep.Organs) {
		t.Fatal("organs differ after round trip")
	}
	if len(got.Recommendations) != len(rep.Recommendations) {
		t.Fatal("recommendations differ after round trip")
	}
}

func TestGetBySelection(t *testing.T) {
	s := testStore(t)
	sel := selection.Selection{catalog.Alcohol: 1}
	rep := testReport(t, sel)
	if _, err := s.Put(rep, "user_change", ""); err != nil {
		t.Fatal(err)
	}

	// different map instance, same content
	_, ok, err := s.GetBySelection(selection.Selection{catalog.Alcohol: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected hit via equivalent selection")
	}
}

func TestCacheMiss(t *testing.T) {
	s := testStore(t)
	_, ok, err := s.Get("no-such-hash")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestRePutReplacesCachedRow(t *testing.T) {
	s := testStore(t)
	rep := testReport(t, selection.Selection{catalog.Reading: 1})

	if _, err := s.Put(rep, "user_change", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put(rep, "replay", "fixture rerun"); err != nil {
		t.Fatal(err)
	}

	entries, err := s.History(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 cached row, got %d", len(entries))
	}

	// the log keeps both evaluations
	log, err := s.Log(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 2 {
		t.Fatalf("expected 2 log rows, got %d", len(log))
	}
	if log[0].TriggerType != "replay" {
		t.Fatalf("newest log row trigger = %q", log[0].TriggerType)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := testStore(t)
	first := testReport(t, selection.Selection{catalog.Smoking: 1})
	second := testReport(t, selection.Selection{catalog.Smoking: 2})

	if _, err := s.Put(first, "user_change", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put(second, "user_change", ""); err != nil {
		t.Fatal(err)
	}

	entries, err := s.History(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].SelectionHash != second.SelectionHash {
		t.Fatal("history not newest first")
	}
	if entries[0].SelectionCanon != "smoking=2" {
		t.Fatalf("canon = %q", entries[0].SelectionCanon)
	}
}
