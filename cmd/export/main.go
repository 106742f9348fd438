package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spectra-hq/spectra/go-client/internal/replay"
	"github.com/spectra-hq/spectra/go-client/internal/timeline"
)

// #region main

// export converts a persisted session timeline into a replay fixture whose
// events are timeline_point messages, so analytics runs can be re-fed
// through the replay harness.
func main() {
	dbPath := flag.String("db", "spectra_timeline.db", "path to timeline database")
	sessionID := flag.String("session", "", "session id to export")
	outPath := flag.String("out", "", "output fixture JSON path (stdout when empty)")
	flag.Parse()

	if *sessionID == "" {
		fmt.Fprintln(os.Stderr, "usage: export --session <id> [--db path] [--out fixture.json]")
		os.Exit(2)
	}

	store, err := timeline.NewSQLiteStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.ReadAll(*sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "no timeline entries for session %s\n", *sessionID)
		os.Exit(1)
	}

	fixture := replay.Fixture{
		Description: fmt.Sprintf("timeline export for session %s", *sessionID),
		SessionID:   *sessionID,
		Events:      make([]json.RawMessage, 0, len(entries)),
	}
	for _, e := range entries {
		raw, err := json.Marshal(struct {
			Type string         `json:"type"`
			Data timeline.Entry `json:"data"`
		}{Type: "timeline_point", Data: e})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fixture.Events = append(fixture.Events, raw)
	}

	out, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d events to %s\n", len(fixture.Events), *outPath)
}

// #endregion main
