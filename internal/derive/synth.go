package derive

import "github.com/spectra-hq/spectra/go-client/internal/state"

// #region from-stress

// FromStress is the coarse scalar variant used by demo controls: only the
// stress level is known, so only complexity/mood/panels/guidance are set.
func FromStress(stress float64) (state.Complexity, state.ColorMood, []state.Panel, state.GuidanceLevel) {
	if stress > stressSimplify {
		return state.ComplexitySimplified, state.MoodCalm,
			[]state.Panel{state.PanelMain}, state.GuidanceHigh
	}
	if stress < stressExpandMax {
		return state.ComplexityFull, state.MoodIntense,
			[]state.Panel{state.PanelMain, state.PanelStats, state.PanelRadar, state.PanelComms},
			state.GuidanceLow
	}
	return state.ComplexityStandard, state.MoodNeutral,
		[]state.Panel{state.PanelMain, state.PanelStats}, state.GuidanceMedium
}

// #endregion from-stress

// #region synthesize

// SynthesizeSnapshot fabricates a plausible emotion vector from a single
// stress level, for demo mode and offline testing. The companion scores are
// simple complements: focused players are unstressed, confusion tracks
// stress at 60%, confidence tracks calm at 70%.
func SynthesizeSnapshot(stress float64, timestampMS int64) state.EmotionSnapshot {
	s := clamp(stress)
	focus := clamp(1 - s)
	confusion := clamp(s * 0.6)
	confidence := clamp((1 - s) * 0.7)
	neutral := 0.1

	dominant := "confidence"
	switch {
	case s >= focus && s >= confusion && s >= confidence:
		dominant = "stress"
	case focus >= confusion && focus >= confidence:
		dominant = "focus"
	case confusion >= confidence:
		dominant = "confusion"
	}

	return state.EmotionSnapshot{
		Timestamp: timestampMS,
		Emotions: state.EmotionVector{
			Stress:     s,
			Focus:      focus,
			Confusion:  confusion,
			Confidence: confidence,
			Neutral:    neutral,
		},
		Dominant:     dominant,
		FaceDetected: true,
	}
}

// #endregion synthesize
