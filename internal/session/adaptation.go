package session

import "github.com/spectra-hq/spectra/go-client/internal/state"

// #region labels

// Adaptation labels recorded on the timeline for analytics.
const (
	AdaptUISimplified    = "ui_simplified"
	AdaptOptionsExpanded = "options_expanded"
	AdaptVoiceCalmed     = "voice_calmed"
	AdaptFullDashboard   = "full_dashboard"
)

// #endregion labels

// #region classify

// ClassifyAdaptation labels the interface change between two configurations.
// Exactly one check fires: complexity takes precedence over mood. Returns
// nil when neither complexity nor mood changed.
func ClassifyAdaptation(prev, next state.UICommands) *string {
	if prev.Complexity != next.Complexity {
		label := AdaptOptionsExpanded
		if next.Complexity == state.ComplexitySimplified {
			label = AdaptUISimplified
		}
		return &label
	}
	if prev.ColorMood != next.ColorMood {
		label := AdaptFullDashboard
		if next.ColorMood == state.MoodCalm {
			label = AdaptVoiceCalmed
		}
		return &label
	}
	return nil
}

// #endregion classify
