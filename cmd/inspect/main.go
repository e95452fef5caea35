package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/vitalsign/habit-engine/internal/profilecache"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "profile cache db path")
	last := flag.Int("last", 10, "number of cached reports to list")
	hash := flag.String("hash", "", "show the full report for one selection hash")
	logN := flag.Int("log", 0, "show the last N evaluation log rows instead")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db file [--last N | --hash H | --log N] [--json]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *hash, *logN, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(dbPath string, last int, hash string, logN int, jsonOut bool) error {
	store, err := profilecache.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case hash != "":
		return showDetail(store, hash, jsonOut)
	case logN > 0:
		return showLog(store, logN, jsonOut)
	default:
		return showHistory(store, last, jsonOut)
	}
}

// #endregion run

// #region detail

func showDetail(store *profilecache.Store, hash string, jsonOut bool) error {
	rep, ok, err := store.Get(hash)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no cached report for hash %s", hash)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Printf("hash      %s\n", rep.SelectionHash)
	fmt.Println("\nMETRICS")
	for _, name := range sortedKeys(rep.Metrics) {
		fmt.Printf("  %-16s %7.2f\n", name, rep.Metrics[name])
	}
	fmt.Println("\nORGANS")
	for _, id := range sortedKeys(rep.Organs) {
		fmt.Printf("  %-16s %7.2f\n", id, rep.Organs[id])
	}
	fmt.Printf("\nfactors: %d negative, %d positive; %d recommendations\n",
		len(rep.Negative), len(rep.Positive), len(rep.Recommendations))
	return nil
}

// #endregion detail

// #region history

func showHistory(store *profilecache.Store, n int, jsonOut bool) error {
	entries, err := store.History(n)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("cache is empty")
		return nil
	}
	fmt.Printf("%-14s %-28s %-30s %s\n", "HASH", "CREATED", "SELECTION", "RECS")
	for _, e := range entries {
		fmt.Printf("%-14s %-28s %-30s %d\n",
			e.SelectionHash[:12],
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(e.SelectionCanon, 30),
			len(e.Report.Recommendations))
	}
	return nil
}

func showLog(store *profilecache.Store, n int, jsonOut bool) error {
	rows, err := store.Log(n)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("evaluation log is empty")
		return nil
	}
	fmt.Printf("%-38s %-14s %-12s %s\n", "EVALUATION", "HASH", "TRIGGER", "REASON")
	for _, r := range rows {
		fmt.Printf("%-38s %-14s %-12s %s\n", r.EvaluationID, r.SelectionHash[:12], r.TriggerType, r.Reason)
	}
	return nil
}

func sortedKeys[K ~string](m map[K]float64) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// #endregion history
