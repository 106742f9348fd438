package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spectra-hq/spectra/go-client/internal/state"
)

// #region envelope

// envelope captures every field any inbound variant may carry. Fields stay
// raw so presence and JSON type can be checked independently.
type envelope struct {
	Type          string          `json:"type"`
	Data          json.RawMessage `json:"data"`
	TimeRemaining json.RawMessage `json:"time_remaining"`
	Phase         json.RawMessage `json:"phase"`
	Text          json.RawMessage `json:"text"`
	VoiceStyle    json.RawMessage `json:"voice_style"`
	FinalScore    json.RawMessage `json:"final_score"`
	CurrentScore  json.RawMessage `json:"current_score"`
	DecisionsMade json.RawMessage `json:"decisions_made"`
}

// #endregion envelope

// #region decode

// Decode parses a raw transport payload into a typed inbound event.
// Rejection is silent (nil, false): unparseable payloads, missing or
// unknown discriminators, and wrong-typed required fields are all dropped.
// Unknown types are a compatibility policy, not an error — the backend may
// grow message types without breaking older clients.
func Decode(raw []byte) (Inbound, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}

	switch env.Type {
	case "connected":
		return Connected{}, true

	case "disconnected":
		return Disconnected{}, true

	case "timer_tick":
		v, ok := asNumber(env.TimeRemaining)
		if !ok {
			return nil, false
		}
		return TimerTick{TimeRemaining: v}, true

	case "phase_change":
		s, ok := asString(env.Phase)
		if !ok || !state.ValidPhase(state.Phase(s)) {
			return nil, false
		}
		return PhaseChange{Phase: state.Phase(s)}, true

	case "oracle_said":
		text, ok := asString(env.Text)
		if !ok {
			return nil, false
		}
		voice := state.VoiceNeutral
		if v, ok := asString(env.VoiceStyle); ok && v != "" {
			voice = v
		}
		return OracleSaid{Text: text, VoiceStyle: voice}, true

	case "game_end":
		v, ok := asNumber(env.FinalScore)
		if !ok {
			return nil, false
		}
		return GameEnd{FinalScore: v}, true

	case "ui_update":
		if !isObject(env.Data) {
			return nil, false
		}
		var ui state.UICommands
		if err := json.Unmarshal(env.Data, &ui); err != nil {
			return nil, false
		}
		return UIUpdate{Data: ui}, true

	case "emotion_update":
		if !isObject(env.Data) {
			return nil, false
		}
		var probe struct {
			Emotions json.RawMessage `json:"emotions"`
		}
		if err := json.Unmarshal(env.Data, &probe); err != nil || !isObject(probe.Emotions) {
			return nil, false
		}
		var snap state.EmotionSnapshot
		if err := json.Unmarshal(env.Data, &snap); err != nil {
			return nil, false
		}
		return EmotionUpdate{Data: snap}, true

	case "game_state_update":
		score, ok := asNumber(env.CurrentScore)
		if !ok {
			return nil, false
		}
		ev := GameStateUpdate{CurrentScore: score}
		if v, ok := asNumber(env.DecisionsMade); ok {
			ev.DecisionsMade = int(v)
		}
		if s, ok := asString(env.Phase); ok {
			ev.Phase = state.Phase(s)
		}
		if v, ok := asNumber(env.TimeRemaining); ok {
			ev.TimeRemaining = v
		}
		return ev, true

	case "timeline_point":
		if !isObject(env.Data) {
			return nil, false
		}
		var point struct {
			T          json.RawMessage `json:"t"`
			Phase      string          `json:"phase"`
			Stress     float64         `json:"stress"`
			Focus      float64         `json:"focus"`
			Adaptation *string         `json:"adaptation"`
		}
		if err := json.Unmarshal(env.Data, &point); err != nil {
			return nil, false
		}
		t, ok := asNumber(point.T)
		if !ok {
			return nil, false
		}
		return TimelinePoint{
			T:          int64(t),
			Phase:      state.Phase(point.Phase),
			Stress:     point.Stress,
			Focus:      point.Focus,
			Adaptation: point.Adaptation,
		}, true
	}

	return nil, false
}

// #endregion decode

// #region encode

// Encode serializes an outbound message into its wire shape.
func Encode(msg Outbound) ([]byte, error) {
	switch m := msg.(type) {
	case PlayerSpeech:
		return json.Marshal(struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{Type: "player_speech", Text: m.Text})
	case EmotionData:
		return json.Marshal(struct {
			Type string                `json:"type"`
			Data state.EmotionSnapshot `json:"data"`
		}{Type: "emotion_data", Data: m.Data})
	case ClientEvent:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Name    string `json:"name"`
			Payload any    `json:"payload,omitempty"`
		}{Type: "client_event", Name: m.Name, Payload: m.Payload})
	}
	return nil, fmt.Errorf("encode: unknown outbound message %T", msg)
}

// #endregion encode

// #region raw-checks

// asNumber reports whether raw is present and a JSON number.
func asNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// asString reports whether raw is present and a JSON string.
func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// isObject reports whether raw is present and a JSON object.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// #endregion raw-checks
