package state

import "testing"

func TestInitState(t *testing.T) {
	s := InitState("s1")

	if s.SessionID != "s1" {
		t.Fatalf("expected session id s1, got %s", s.SessionID)
	}
	if s.Connected {
		t.Fatal("expected disconnected start")
	}
	if s.Phase != PhaseInfiltrate {
		t.Fatalf("expected infiltrate, got %s", s.Phase)
	}
	if s.TimeRemaining != 300 {
		t.Fatalf("expected 300s, got %v", s.TimeRemaining)
	}
	if s.UI.Complexity != ComplexityStandard || len(s.UI.Options) != 3 {
		t.Fatalf("unexpected default ui %+v", s.UI)
	}
	if len(s.Comms) != 0 {
		t.Fatalf("expected empty comms, got %d", len(s.Comms))
	}
}

func TestOptionCatalogs(t *testing.T) {
	for _, phase := range []Phase{PhaseInfiltrate, PhaseVault, PhaseEscape, PhaseDebrief} {
		if got := OptionCatalog(phase); len(got) != 3 {
			t.Fatalf("phase %s: expected 3 options, got %d", phase, len(got))
		}
	}

	if OptionCatalog(PhaseInfiltrate)[0].ID != "A" {
		t.Fatal("unexpected infiltrate catalog")
	}
	if OptionCatalog(PhaseVault)[2].ID != "ABORT" {
		t.Fatal("unexpected vault catalog")
	}
	if OptionCatalog(PhaseEscape)[1].ID != "TUNNEL" {
		t.Fatal("unexpected escape catalog")
	}
	// Debrief shares the escape catalog.
	if OptionCatalog(PhaseDebrief)[0].ID != "CORRIDOR" {
		t.Fatal("unexpected debrief catalog")
	}
}

func TestNextPhase(t *testing.T) {
	if NextPhase(PhaseInfiltrate) != PhaseVault {
		t.Fatal("infiltrate should advance to vault")
	}
	if NextPhase(PhaseVault) != PhaseEscape {
		t.Fatal("vault should advance to escape")
	}
	if NextPhase(PhaseEscape) != PhaseEscape {
		t.Fatal("escape is a fixed point")
	}
}

func TestValidPhase(t *testing.T) {
	if !ValidPhase(PhaseDebrief) {
		t.Fatal("debrief is valid")
	}
	if ValidPhase("lobby") {
		t.Fatal("lobby is not a phase")
	}
}

func TestRecentComms(t *testing.T) {
	s := InitState("s1")
	s.Comms = []CommsEntry{
		{Role: RoleOracle, Text: "one"},
		{Role: RolePlayer, Text: "two"},
		{Role: RoleOracle, Text: "three"},
	}

	got := s.RecentComms(2)
	if len(got) != 2 || got[0].Text != "two" || got[1].Text != "three" {
		t.Fatalf("unexpected window %+v", got)
	}

	if got := s.RecentComms(10); len(got) != 3 {
		t.Fatalf("expected all 3, got %d", len(got))
	}
	if got := s.RecentComms(0); got != nil {
		t.Fatalf("expected nil for zero cap, got %+v", got)
	}
}
