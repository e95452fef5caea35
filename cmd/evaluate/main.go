package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vitalsign/habit-engine/internal/catalog"
	"github.com/vitalsign/habit-engine/internal/impact"
	"github.com/vitalsign/habit-engine/internal/profilecache"
	"github.com/vitalsign/habit-engine/internal/report"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region main

func main() {
	selectFlag := flag.String("select", "", `habit selection, e.g. "smoking=3,exercise=2"`)
	catalogPath := flag.String("catalog", "", "optional catalog YAML (defaults to compiled-in)")
	modelPath := flag.String("model", "", "optional impact model YAML (defaults to compiled-in)")
	dbPath := flag.String("db", "", "optional profile cache db; result is stored when set")
	strict := flag.Bool("strict", false, "fail on any post-assembly invariant violation")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *selectFlag == "" {
		fmt.Fprintln(os.Stderr, `usage: evaluate --select "smoking=3,exercise=2" [--catalog f] [--model f] [--db f] [--json]`)
		os.Exit(2)
	}

	if err := run(*selectFlag, *catalogPath, *modelPath, *dbPath, *strict, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(selectFlag, catalogPath, modelPath, dbPath string, strict, jsonOut bool) error {
	eng, err := buildEngine(catalogPath, modelPath, strict)
	if err != nil {
		return err
	}

	sel, err := parseSelection(selectFlag)
	if err != nil {
		return err
	}

	rep, err := eng.Evaluate(sel)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	if dbPath != "" {
		store, err := profilecache.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.Put(rep, "cli", "evaluate command"); err != nil {
			return err
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(eng, rep)
	return nil
}

func buildEngine(catalogPath, modelPath string, strict bool) (*report.Engine, error) {
	cat := catalog.Default()
	if catalogPath != "" {
		var err error
		cat, err = catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
	}

	var model *impact.Model
	var err error
	if modelPath != "" {
		model, err = impact.Load(modelPath, cat)
	} else {
		model, err = impact.Default(cat)
	}
	if err != nil {
		return nil, err
	}

	cfg := report.DefaultConfig()
	cfg.Strict = strict
	return report.NewEngine(cat, model, cfg), nil
}

// #endregion run

// #region parse

// parseSelection parses "id=level,id=level". Levels must be integers;
// range and unknown-id handling is the engine's job.
func parseSelection(s string) (selection.Selection, error) {
	sel := selection.Selection{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, levelStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad selection entry %q (want id=level)", pair)
		}
		level, err := strconv.Atoi(strings.TrimSpace(levelStr))
		if err != nil {
			return nil, fmt.Errorf("bad level in %q: %w", pair, err)
		}
		sel[catalog.HabitID(strings.TrimSpace(id))] = level
	}
	return sel, nil
}

// #endregion parse

// #region print

func printReport(eng *report.Engine, rep report.Report) {
	fmt.Printf("selection  %s\n", selection.Canonical(rep.Selection))
	fmt.Printf("hash       %s\n\n", rep.SelectionHash[:12])

	fmt.Println("METRICS")
	for _, def := range eng.Model().Metrics() {
		fmt.Printf("  %-16s %7.2f  [%g, %g]\n", def.Name, rep.Metrics[def.Name], def.Min, def.Max)
	}

	fmt.Println("\nORGANS")
	for _, o := range eng.Catalog().Organs() {
		fmt.Printf("  %-16s %7.2f\n", o.ID, rep.Organs[o.ID])
	}

	if len(rep.Negative) > 0 {
		fmt.Println("\nNEGATIVE FACTORS")
		for _, f := range rep.Negative {
			fmt.Printf("  %-20s impact %6.1f  %s\n", f.HabitID, f.Impact, f.Explanation)
		}
	}
	if len(rep.Positive) > 0 {
		fmt.Println("\nPOSITIVE FACTORS")
		for _, f := range rep.Positive {
			fmt.Printf("  %-20s impact %6.1f  %s\n", f.HabitID, f.Impact, f.Explanation)
		}
	}

	if len(rep.Recommendations) > 0 {
		fmt.Println("\nRECOMMENDATIONS")
		for i, r := range rep.Recommendations {
			fmt.Printf("  %d. [%s] %s\n     %s\n     expected: %s\n", i+1, r.Priority, r.Action, r.Rationale, r.ExpectedImpact)
		}
	}

	if len(rep.Dropped) > 0 {
		fmt.Println("\nIGNORED")
		for _, d := range rep.Dropped {
			fmt.Printf("  %s (%s)\n", d.HabitID, d.Reason)
		}
	}
}

// #endregion print
