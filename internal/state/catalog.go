package state

// #region default-ui
// DefaultUI returns the interface configuration a session starts with:
// standard density, neutral mood, three placeholder options.
func DefaultUI() UICommands {
	return UICommands{
		Complexity:    ComplexityStandard,
		ColorMood:     MoodNeutral,
		PanelsVisible: []Panel{PanelMain, PanelStats},
		Options: []UIOption{
			{ID: "A", Label: "Option A"},
			{ID: "B", Label: "Option B"},
			{ID: "C", Label: "Option C"},
		},
		GuidanceLevel: GuidanceLow,
	}
}

// #endregion default-ui

// #region init-state
// InitState seeds a fresh session: infiltrate phase, 300s on the clock,
// disconnected, default interface, empty comms.
func InitState(sessionID string) State {
	return State{
		SessionID:     sessionID,
		Connected:     false,
		Phase:         PhaseInfiltrate,
		TimeRemaining: 300,
		UI:            DefaultUI(),
		Comms:         []CommsEntry{},
	}
}

// #endregion init-state

// #region option-catalog
// OptionCatalog returns the fixed three-entry option set for a phase.
// Debrief shares the escape catalog; the backend never offers debrief
// choices of its own.
func OptionCatalog(phase Phase) []UIOption {
	switch phase {
	case PhaseInfiltrate:
		return []UIOption{
			{ID: "A", Label: "Node A"},
			{ID: "B", Label: "Node B"},
			{ID: "C", Label: "Node C"},
		}
	case PhaseVault:
		return []UIOption{
			{ID: "FAST", Label: "Fast decrypt (risky)"},
			{ID: "SAFE", Label: "Safe decrypt (slow)"},
			{ID: "ABORT", Label: "Abort and reroute"},
		}
	default:
		return []UIOption{
			{ID: "CORRIDOR", Label: "Main corridor"},
			{ID: "TUNNEL", Label: "Service tunnel"},
			{ID: "ROOF", Label: "Rooftop"},
		}
	}
}

// #endregion option-catalog
