package replay

import (
	"encoding/json"

	"github.com/spectra-hq/spectra/go-client/internal/protocol"
	"github.com/spectra-hq/spectra/go-client/internal/session"
	"github.com/spectra-hq/spectra/go-client/internal/state"
	"github.com/spectra-hq/spectra/go-client/internal/timeline"
)

// #region types

// Result captures the outcome of replaying one raw event.
type Result struct {
	Index      int
	Type       string
	Applied    bool
	Adaptation *string
}

// Summary aggregates a replay run: the final state plus timeline analytics.
type Summary struct {
	TotalEvents int
	Applied     int
	Rejected    int
	FinalState  state.State
	Timeline    []timeline.Entry
	Analytics   timeline.Summary
}

// #endregion types

// #region replay

// Replay folds a recorded event log through the validator and reducer,
// exactly as the live driver would, and returns per-event results plus a
// summary. Operates entirely in memory.
func Replay(f *Fixture) ([]Result, Summary) {
	current := state.InitState(f.SessionID)
	store := timeline.NewMemoryStore()
	recorder := timeline.NewRecorder(store, f.SessionID)

	results := make([]Result, 0, len(f.Events))
	for i, raw := range f.Events {
		ev, ok := protocol.Decode(raw)
		if !ok {
			results = append(results, Result{Index: i, Type: rawType(raw)})
			continue
		}

		r := Result{Index: i, Type: eventName(ev), Applied: true}

		if point, isPoint := ev.(protocol.TimelinePoint); isPoint {
			recorder.Record(timeline.Entry{
				T:          point.T,
				Phase:      point.Phase,
				Stress:     point.Stress,
				Focus:      point.Focus,
				Adaptation: point.Adaptation,
			})
			results = append(results, r)
			continue
		}

		reduced := session.Reduce(current, ev)
		current = reduced.State
		if reduced.Timeline != nil {
			recorder.Record(*reduced.Timeline)
			r.Adaptation = reduced.Timeline.Adaptation
		}
		results = append(results, r)
	}

	entries := recorder.Entries()
	summary := Summary{
		TotalEvents: len(results),
		FinalState:  current,
		Timeline:    entries,
		Analytics:   timeline.Summarize(entries),
	}
	for _, r := range results {
		if r.Applied {
			summary.Applied++
		} else {
			summary.Rejected++
		}
	}
	return results, summary
}

// Verify checks replay results against a fixture's expectations and returns
// the indexes that mismatched.
func Verify(f *Fixture, results []Result) []int {
	var failed []int
	for _, exp := range f.Expected {
		if exp.Index < 0 || exp.Index >= len(results) {
			failed = append(failed, exp.Index)
			continue
		}
		got := results[exp.Index]
		if got.Applied != exp.Applied || !labelEqual(got.Adaptation, exp.Adaptation) {
			failed = append(failed, exp.Index)
		}
	}
	return failed
}

// #endregion replay

// #region helpers

func labelEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// rawType best-effort extracts the discriminator of a rejected payload.
func rawType(raw []byte) string {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Type == "" {
		return "invalid"
	}
	return probe.Type
}

// eventName maps a decoded event back to its wire discriminator.
func eventName(ev protocol.Inbound) string {
	switch ev.(type) {
	case protocol.Connected:
		return "connected"
	case protocol.Disconnected:
		return "disconnected"
	case protocol.TimerTick:
		return "timer_tick"
	case protocol.PhaseChange:
		return "phase_change"
	case protocol.OracleSaid:
		return "oracle_said"
	case protocol.GameEnd:
		return "game_end"
	case protocol.UIUpdate:
		return "ui_update"
	case protocol.EmotionUpdate:
		return "emotion_update"
	case protocol.GameStateUpdate:
		return "game_state_update"
	case protocol.TimelinePoint:
		return "timeline_point"
	}
	return "unknown"
}

// #endregion helpers
