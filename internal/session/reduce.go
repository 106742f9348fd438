package session

import (
	"fmt"

	"github.com/spectra-hq/spectra/go-client/internal/derive"
	"github.com/spectra-hq/spectra/go-client/internal/protocol"
	"github.com/spectra-hq/spectra/go-client/internal/state"
	"github.com/spectra-hq/spectra/go-client/internal/timeline"
)

// #region result

// Result bundles everything returned by Reduce. Timeline is non-nil only
// for emotion updates; the caller owns recording it, which keeps Reduce
// free of I/O.
type Result struct {
	State    state.State
	Timeline *timeline.Entry
}

// #endregion result

// #region reduce

// Reduce folds one validated event into the previous session state and
// returns the next. Pure: the input state is never mutated, and identical
// (state, event) pairs always produce identical results. Every transition
// replaces only the listed fields; everything else carries over.
func Reduce(s state.State, ev protocol.Inbound) Result {
	switch ev := ev.(type) {
	case protocol.Connected:
		s.Connected = true
		return Result{State: s}

	case protocol.Disconnected:
		s.Connected = false
		return Result{State: s}

	case protocol.TimerTick:
		// The sender's value is authoritative; no clamping here.
		s.TimeRemaining = ev.TimeRemaining
		return Result{State: s}

	case protocol.PhaseChange:
		// Entering a phase empties comms and installs that phase's fixed
		// option catalog so each screen offers different choices.
		s.Phase = ev.Phase
		s.Comms = []state.CommsEntry{}
		s.UI.Options = state.OptionCatalog(ev.Phase)
		return Result{State: s}

	case protocol.GameEnd:
		s.GameOver = true
		s.FinalScore = ev.FinalScore
		s.Oracle = &state.OracleResponse{
			Text:       fmt.Sprintf("Mission ended. Score: %v", ev.FinalScore),
			VoiceStyle: state.VoiceNeutral,
		}
		return Result{State: s}

	case protocol.UIUpdate:
		s.UI = ev.Data
		return Result{State: s}

	case protocol.EmotionUpdate:
		prev := s.UI
		next := derive.FromEmotion(ev.Data, s.UI)
		s.UI = next
		return Result{
			State: s,
			Timeline: &timeline.Entry{
				T:          ev.Data.Timestamp,
				Phase:      s.Phase,
				Stress:     ev.Data.Emotions.Stress,
				Focus:      ev.Data.Emotions.Focus,
				Adaptation: ClassifyAdaptation(prev, next),
			},
		}

	case protocol.OracleSaid:
		s.Oracle = &state.OracleResponse{Text: ev.Text, VoiceStyle: ev.VoiceStyle}
		comms := make([]state.CommsEntry, len(s.Comms), len(s.Comms)+1)
		copy(comms, s.Comms)
		s.Comms = append(comms, state.CommsEntry{Role: state.RoleOracle, Text: ev.Text})
		return Result{State: s}

	case protocol.GameStateUpdate:
		s.CurrentScore = ev.CurrentScore
		s.DecisionsMade = ev.DecisionsMade
		return Result{State: s}
	}

	// Recognized-but-inert events (timeline_point is recorded by the
	// driver, not the reducer) fall through unchanged.
	return Result{State: s}
}

// #endregion reduce
