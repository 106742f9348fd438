package derive

import "github.com/spectra-hq/spectra/go-client/internal/state"

// #region thresholds

// Rule thresholds. Stress/confusion dominates focus: a stressed player is
// always simplified, never shown the dense view.
const (
	stressSimplify    = 0.6
	confusionSimplify = 0.5
	focusExpand       = 0.6
	stressExpandMax   = 0.3
	confidenceExpand  = 0.5
)

// #endregion thresholds

// #region from-emotion

// FromEmotion maps an emotion snapshot plus the current interface
// configuration to a new configuration. Pure; ordered rules, first match
// wins.
func FromEmotion(emotion state.EmotionSnapshot, current state.UICommands) state.UICommands {
	e := emotion.Emotions

	// Rule 1: high stress OR high confusion — simplify, calm, high guidance.
	// Options narrow to the first two, each highlighted as a recommendation.
	// An empty narrowed list keeps the prior options unchanged.
	if e.Stress > stressSimplify || e.Confusion > confusionSimplify {
		narrowed := narrowOptions(current.Options)
		options := narrowed
		if len(narrowed) == 0 {
			options = copyOptions(current.Options)
		}
		next := current
		next.Complexity = state.ComplexitySimplified
		next.ColorMood = state.MoodCalm
		next.PanelsVisible = []state.Panel{state.PanelMain}
		next.GuidanceLevel = state.GuidanceHigh
		next.Options = options
		return next
	}

	// Rule 2: high focus AND low stress AND confident — full dashboard.
	if e.Focus > focusExpand && e.Stress < stressExpandMax && e.Confidence > confidenceExpand {
		next := current
		next.Complexity = state.ComplexityFull
		next.ColorMood = state.MoodIntense
		next.PanelsVisible = []state.Panel{state.PanelMain, state.PanelStats, state.PanelRadar, state.PanelComms}
		next.GuidanceLevel = state.GuidanceLow
		next.Options = unhighlight(current.Options)
		return next
	}

	// Default: standard density, neutral mood.
	next := current
	next.Complexity = state.ComplexityStandard
	next.ColorMood = state.MoodNeutral
	next.PanelsVisible = []state.Panel{state.PanelMain, state.PanelStats}
	next.GuidanceLevel = state.GuidanceMedium
	next.Options = unhighlight(current.Options)
	return next
}

// #endregion from-emotion

// #region helpers

// narrowOptions keeps at most the first two options, all highlighted.
func narrowOptions(options []state.UIOption) []state.UIOption {
	n := len(options)
	if n > 2 {
		n = 2
	}
	out := make([]state.UIOption, n)
	for i := 0; i < n; i++ {
		out[i] = options[i]
		out[i].Highlighted = true
	}
	return out
}

// unhighlight returns a copy of options with every highlight cleared.
func unhighlight(options []state.UIOption) []state.UIOption {
	out := make([]state.UIOption, len(options))
	for i, o := range options {
		o.Highlighted = false
		out[i] = o
	}
	return out
}

func copyOptions(options []state.UIOption) []state.UIOption {
	out := make([]state.UIOption, len(options))
	copy(out, options)
	return out
}

// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
