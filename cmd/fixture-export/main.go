package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vitalsign/habit-engine/internal/replay"
	"github.com/vitalsign/habit-engine/internal/report"
)

// #region main

func main() {
	selectFlag := flag.String("select", "", `habit selection, e.g. "smoking=3,exercise=2"`)
	desc := flag.String("desc", "", "fixture description")
	out := flag.String("out", "", "output fixture path")
	flag.Parse()

	if *selectFlag == "" || *out == "" {
		fmt.Fprintln(os.Stderr, `usage: fixture-export --select "smoking=3" --out fixture.json [--desc text]`)
		os.Exit(2)
	}

	if err := run(*selectFlag, *desc, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(selectFlag, desc, out string) error {
	eng, err := report.NewDefaultEngine()
	if err != nil {
		return err
	}

	sel, err := parseSelection(selectFlag)
	if err != nil {
		return err
	}

	if desc == "" {
		desc = "exported from " + selectFlag
	}
	f, err := replay.Export(desc, sel, eng)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := replay.WriteFixture(out, f); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d checks pinned)\n", out, len(f.Expected.Metrics)+len(f.Expected.Organs))
	return nil
}

func parseSelection(s string) (map[string]int, error) {
	sel := map[string]int{}
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
		sel[strings.TrimSpace(id)] = level
	}
	return sel, nil
}

// #endregion run
