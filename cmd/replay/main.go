package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spectra-hq/spectra/go-client/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to recorded event log JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/session.json")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results, summary := replay.Replay(f)

	if f.Description != "" {
		fmt.Printf("# %s\n", f.Description)
	}
	for _, r := range results {
		status := "applied"
		if !r.Applied {
			status = "rejected"
		}
		line := fmt.Sprintf("%3d  %-18s %s", r.Index, r.Type, status)
		if r.Adaptation != nil {
			line += " adaptation=" + *r.Adaptation
		}
		fmt.Println(line)
	}

	fmt.Printf("\nevents=%d applied=%d rejected=%d\n",
		summary.TotalEvents, summary.Applied, summary.Rejected)
	fmt.Printf("final: phase=%s time=%.0fs game_over=%v score=%.0f\n",
		summary.FinalState.Phase, summary.FinalState.TimeRemaining,
		summary.FinalState.GameOver, summary.FinalState.FinalScore)
	fmt.Printf("timeline: entries=%d peak_stress=%.2f top_focus=%.2f adaptations=%d\n",
		summary.Analytics.Entries, summary.Analytics.PeakStress,
		summary.Analytics.TopFocus, summary.Analytics.Adaptations)

	if failed := replay.Verify(f, results); len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d expectation(s) not met at indexes %v\n", len(failed), failed)
		os.Exit(1)
	}
	if len(f.Expected) > 0 {
		fmt.Printf("PASS: %d expectation(s) met\n", len(f.Expected))
	}
}

// #endregion main
