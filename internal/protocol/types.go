package protocol

import "github.com/spectra-hq/spectra/go-client/internal/state"

// #region inbound

// Inbound is a validated message received from the session endpoint.
// The set of variants is closed; Decode never produces anything else.
type Inbound interface {
	isInbound()
}

// Connected signals the backend considers the session live.
type Connected struct{}

// Disconnected signals the backend dropped the session.
type Disconnected struct{}

// TimerTick carries the authoritative mission clock value in seconds.
type TimerTick struct {
	TimeRemaining float64
}

// PhaseChange moves the session to a new mission phase.
type PhaseChange struct {
	Phase state.Phase
}

// OracleSaid carries one oracle utterance.
type OracleSaid struct {
	Text       string
	VoiceStyle string
}

// GameEnd terminates the mission with a final score.
type GameEnd struct {
	FinalScore float64
}

// UIUpdate replaces the interface configuration wholesale.
type UIUpdate struct {
	Data state.UICommands
}

// EmotionUpdate carries one emotion snapshot from the sensor pipeline.
type EmotionUpdate struct {
	Data state.EmotionSnapshot
}

// GameStateUpdate refreshes live score bookkeeping.
type GameStateUpdate struct {
	CurrentScore  float64
	DecisionsMade int
	Phase         state.Phase
	TimeRemaining float64
}

// TimelinePoint is a backend-pushed live timeline sample. It bypasses the
// reducer and is appended straight to the timeline recorder.
type TimelinePoint struct {
	T          int64
	Phase      state.Phase
	Stress     float64
	Focus      float64
	Adaptation *string
}

func (Connected) isInbound()       {}
func (Disconnected) isInbound()    {}
func (TimerTick) isInbound()       {}
func (PhaseChange) isInbound()     {}
func (OracleSaid) isInbound()      {}
func (GameEnd) isInbound()         {}
func (UIUpdate) isInbound()        {}
func (EmotionUpdate) isInbound()   {}
func (GameStateUpdate) isInbound() {}
func (TimelinePoint) isInbound()   {}

// #endregion inbound

// #region outbound

// Outbound is a message the client may send. Delivery is best-effort.
type Outbound interface {
	isOutbound()
}

// PlayerSpeech relays spoken or typed player input to the oracle.
type PlayerSpeech struct {
	Text string
}

// EmotionData forwards a locally produced emotion snapshot upstream.
type EmotionData struct {
	Data state.EmotionSnapshot
}

// ClientEvent is a free-form client-side event for backend analytics.
type ClientEvent struct {
	Name    string
	Payload any
}

func (PlayerSpeech) isOutbound() {}
func (EmotionData) isOutbound()  {}
func (ClientEvent) isOutbound()  {}

// #endregion outbound
