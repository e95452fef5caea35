package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vitalsign/habit-engine/internal/replay"
	"github.com/vitalsign/habit-engine/internal/report"
)

// #region main

func main() {
	verbose := flag.Bool("v", false, "print every check, not just failures")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [-v] fixture.json [fixture.json ...]")
		os.Exit(2)
	}

	eng, err := report.NewDefaultEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range flag.Args() {
		if !runOne(eng, path, *verbose) {
			failed++
		}
	}

	fmt.Printf("\n%d fixture(s), %d failed\n", flag.NArg(), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region run-one

func runOne(eng *report.Engine, path string, verbose bool) bool {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Printf("FAIL  %s: %v\n", path, err)
		return false
	}

	res, err := replay.Run(f, eng)
	if err != nil {
		fmt.Printf("FAIL  %s: %v\n", path, err)
		return false
	}

	status := "ok"
	if !res.Passed {
		status = "FAIL"
	}
	fmt.Printf("%-5s %s  (%s)\n", status, path, res.Description)

	for _, c := range res.Checks {
		if c.Pass && !verbose {
			continue
		}
		mark := "ok"
		if !c.Pass {
			mark = "DRIFT"
		}
		fmt.Printf("      %-5s %-28s want %v  got %v\n", mark, c.Name, c.Want, c.Got)
	}
	return res.Passed
}

// #endregion run-one
