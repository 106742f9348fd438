package driver

import (
	"strings"
	"testing"
	"time"

	"github.com/spectra-hq/spectra/go-client/internal/protocol"
	"github.com/spectra-hq/spectra/go-client/internal/state"
	"github.com/spectra-hq/spectra/go-client/internal/timeline"
)

// waitFor drains state changes until pred holds or the deadline passes.
func waitFor(t *testing.T, changes <-chan state.State, pred func(state.State) bool) state.State {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case s := <-changes:
			if pred(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for state condition")
			return state.State{}
		}
	}
}

func newDemoDriver(t *testing.T) (*Driver, chan state.State) {
	t.Helper()
	changes := make(chan state.State, 256)
	d := New(Options{
		SessionID: "demo-test",
		Demo:      true,
		Store:     timeline.NewMemoryStore(),
		OnChange: func(s state.State) {
			select {
			case changes <- s:
			default:
			}
		},
	})
	return d, changes
}

func TestDriverDemoConnects(t *testing.T) {
	d, changes := newDemoDriver(t)
	d.Start()
	defer d.Close()

	waitFor(t, changes, func(s state.State) bool { return s.Connected })
}

func TestDriverEmotionFlow(t *testing.T) {
	d, changes := newDemoDriver(t)
	d.Start()
	defer d.Close()

	d.DispatchEmotion(state.EmotionSnapshot{
		Timestamp: 500,
		Emotions:  state.EmotionVector{Stress: 0.9, Confusion: 0.2},
	})

	waitFor(t, changes, func(s state.State) bool {
		return s.UI.Complexity == state.ComplexitySimplified
	})

	entries := d.Recorder().Entries()
	if len(entries) == 0 {
		t.Fatal("expected a timeline entry")
	}
	first := entries[0]
	if first.T != 500 || first.Stress != 0.9 {
		t.Fatalf("unexpected entry %+v", first)
	}
	if first.Adaptation == nil || *first.Adaptation != "ui_simplified" {
		t.Fatalf("expected ui_simplified, got %v", first.Adaptation)
	}
}

func TestDriverPhaseAndPick(t *testing.T) {
	d, changes := newDemoDriver(t)
	d.Start()
	defer d.Close()

	d.SetPhase(state.PhaseVault)
	s := waitFor(t, changes, func(s state.State) bool { return s.Phase == state.PhaseVault })
	if len(s.UI.Options) != 3 || s.UI.Options[0].ID != "FAST" {
		t.Fatalf("expected vault catalog, got %+v", s.UI.Options)
	}

	d.PickOption("FAST")
	waitFor(t, changes, func(s state.State) bool {
		for _, c := range s.Comms {
			if strings.Contains(c.Text, "Player picked FAST") {
				return true
			}
		}
		return false
	})
}

func TestDriverDemoSayEchoes(t *testing.T) {
	d, changes := newDemoDriver(t)
	d.Start()
	defer d.Close()

	d.Say("opening the vault")
	s := waitFor(t, changes, func(s state.State) bool { return s.Oracle != nil })
	if !strings.Contains(s.Oracle.Text, "opening the vault") {
		t.Fatalf("unexpected echo %q", s.Oracle.Text)
	}
}

func TestDriverTimelinePointBypassesReducer(t *testing.T) {
	d, changes := newDemoDriver(t)
	d.Start()
	defer d.Close()

	waitFor(t, changes, func(s state.State) bool { return s.Connected })

	label := "voice_calmed"
	d.dispatch(protocol.TimelinePoint{T: 777, Phase: state.PhaseEscape, Stress: 0.3, Focus: 0.6, Adaptation: &label})

	deadline := time.After(3 * time.Second)
	for {
		entries := d.Recorder().Entries()
		if len(entries) > 0 {
			if entries[0].T != 777 || entries[0].Phase != state.PhaseEscape {
				t.Fatalf("unexpected entry %+v", entries[0])
			}
			// The reducer never saw it: phase is unchanged.
			if d.State().Phase != state.PhaseInfiltrate {
				t.Fatalf("timeline_point leaked into reducer, phase=%s", d.State().Phase)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for timeline entry")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDriverCloseIdempotent(t *testing.T) {
	d, _ := newDemoDriver(t)
	d.Start()
	d.Close()
	d.Close()
}

func TestDriverGeneratesSessionID(t *testing.T) {
	d := New(Options{Demo: true})
	if d.SessionID() == "" {
		t.Fatal("expected generated session id")
	}
	if d.State().SessionID != d.SessionID() {
		t.Fatal("state session id mismatch")
	}
}
