package state

// #region phase
// Phase is the current stage of the mission narrative.
type Phase string

const (
	PhaseInfiltrate Phase = "infiltrate"
	PhaseVault      Phase = "vault"
	PhaseEscape     Phase = "escape"
	PhaseDebrief    Phase = "debrief"
)

// ValidPhase reports whether p is one of the four known phases.
func ValidPhase(p Phase) bool {
	switch p {
	case PhaseInfiltrate, PhaseVault, PhaseEscape, PhaseDebrief:
		return true
	}
	return false
}

// NextPhase advances the mission narrative. Escape is a fixed point;
// debrief is only ever entered by an explicit phase_change.
func NextPhase(current Phase) Phase {
	switch current {
	case PhaseInfiltrate:
		return PhaseVault
	case PhaseVault:
		return PhaseEscape
	default:
		return PhaseEscape
	}
}

// #endregion phase

// #region ui
// Complexity controls how dense the rendered interface is.
type Complexity string

const (
	ComplexitySimplified Complexity = "simplified"
	ComplexityStandard   Complexity = "standard"
	ComplexityFull       Complexity = "full"
)

// ColorMood drives the presentation layer's color theme.
type ColorMood string

const (
	MoodCalm    ColorMood = "calm"
	MoodNeutral ColorMood = "neutral"
	MoodIntense ColorMood = "intense"
)

// GuidanceLevel controls how much hand-holding the interface offers.
type GuidanceLevel string

const (
	GuidanceNone   GuidanceLevel = "none"
	GuidanceLow    GuidanceLevel = "low"
	GuidanceMedium GuidanceLevel = "medium"
	GuidanceHigh   GuidanceLevel = "high"
)

// Panel names a region of the mission screen.
type Panel string

const (
	PanelMain  Panel = "main"
	PanelStats Panel = "stats"
	PanelRadar Panel = "radar"
	PanelComms Panel = "comms"
)

// UIOption is one selectable choice offered to the player.
type UIOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// UICommands is the full interface configuration. It is replaced wholesale
// whenever derivation or a remote ui_update produces a new value; options
// may survive derivation when the phase has not changed.
type UICommands struct {
	Complexity    Complexity    `json:"complexity"`
	ColorMood     ColorMood     `json:"color_mood"`
	PanelsVisible []Panel       `json:"panels_visible"`
	Options       []UIOption    `json:"options"`
	GuidanceLevel GuidanceLevel `json:"guidance_level"`
}

// #endregion ui

// #region emotion
// EmotionVector holds the five inferred affect scores, each in [0, 1].
type EmotionVector struct {
	Stress     float64 `json:"stress"`
	Focus      float64 `json:"focus"`
	Confusion  float64 `json:"confusion"`
	Confidence float64 `json:"confidence"`
	Neutral    float64 `json:"neutral"`
}

// EmotionSnapshot is a point-in-time emotion reading produced by an external
// sensor pipeline or simulator. Immutable once received.
type EmotionSnapshot struct {
	Timestamp    int64         `json:"timestamp"`
	Emotions     EmotionVector `json:"emotions"`
	Dominant     string        `json:"dominant"`
	FaceDetected bool          `json:"face_detected"`
}

// #endregion emotion

// #region oracle
// OracleResponse is the most recent utterance from the mission oracle.
type OracleResponse struct {
	Text       string `json:"text"`
	VoiceStyle string `json:"voice_style"`
}

// Voice styles the oracle backend may request.
const (
	VoiceCalmReassuring = "calm_reassuring"
	VoiceDirectFast     = "direct_fast"
	VoiceUrgent         = "urgent"
	VoiceNeutral        = "neutral"
)

// #endregion oracle

// #region comms
// CommsRole identifies the speaker of a comms line.
type CommsRole string

const (
	RoleOracle CommsRole = "oracle"
	RolePlayer CommsRole = "player"
)

// CommsEntry is one line of the session comms log.
type CommsEntry struct {
	Role CommsRole `json:"role"`
	Text string    `json:"text"`
}

// #endregion comms

// #region session-state
// State is the single canonical root of one mission run. It is created by
// InitState and mutated only through session.Reduce.
type State struct {
	SessionID     string
	Connected     bool
	Phase         Phase
	TimeRemaining float64
	UI            UICommands
	Oracle        *OracleResponse
	Comms         []CommsEntry
	GameOver      bool
	FinalScore    float64
	CurrentScore  float64
	DecisionsMade int
}

// RecentComms returns up to n most recent comms lines. The comms log itself
// is unbounded; display consumers cap it with this.
func (s State) RecentComms(n int) []CommsEntry {
	if n <= 0 || len(s.Comms) == 0 {
		return nil
	}
	if len(s.Comms) <= n {
		out := make([]CommsEntry, len(s.Comms))
		copy(out, s.Comms)
		return out
	}
	out := make([]CommsEntry, n)
	copy(out, s.Comms[len(s.Comms)-n:])
	return out
}

// #endregion session-state
