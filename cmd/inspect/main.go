package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spectra-hq/spectra/go-client/internal/timeline"
)

// #region main

func main() {
	dbPath := flag.String("db", "spectra_timeline.db", "path to timeline database")
	sessionID := flag.String("session", "", "session id to inspect")
	apiBase := flag.String("api", "", "analytics API base URL (hydrates before local fallback)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *sessionID == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --session <id> [--db path] [--api http://host] [--json]")
		os.Exit(2)
	}

	store, err := timeline.NewSQLiteStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []timeline.Entry
	if *apiBase != "" {
		entries = timeline.Hydrate(context.Background(), *apiBase, *sessionID, store)
	} else {
		entries, err = store.ReadAll(*sessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *jsonOut {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if len(entries) == 0 {
		fmt.Printf("no timeline entries for session %s\n", *sessionID)
		return
	}

	fmt.Printf("session %s — %d entries\n", *sessionID, len(entries))
	for i, e := range entries {
		label := "-"
		if e.Adaptation != nil {
			label = *e.Adaptation
		}
		fmt.Printf("%3d  t=%d phase=%-10s stress=%.2f focus=%.2f adaptation=%s\n",
			i, e.T, e.Phase, e.Stress, e.Focus, label)
	}

	sum := timeline.Summarize(entries)
	fmt.Printf("\npeak_stress=%.2f (t=%d) top_focus=%.2f (t=%d) adaptations=%d\n",
		sum.PeakStress, sum.PeakStressT, sum.TopFocus, sum.TopFocusT, sum.Adaptations)
	for label, count := range sum.ByLabel {
		fmt.Printf("  %-18s %d\n", label, count)
	}
}

// #endregion main
