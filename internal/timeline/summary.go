package timeline

// #region summary

// Summary projects a recorded timeline into the handful of numbers the
// debrief screen cares about.
type Summary struct {
	Entries     int
	PeakStress  float64
	PeakStressT int64
	TopFocus    float64
	TopFocusT   int64
	Adaptations int
	ByLabel     map[string]int
}

// Summarize scans entries in order and aggregates debrief statistics.
// An empty timeline yields a zero Summary.
func Summarize(entries []Entry) Summary {
	s := Summary{Entries: len(entries), ByLabel: make(map[string]int)}
	for i, e := range entries {
		if i == 0 || e.Stress > s.PeakStress {
			s.PeakStress = e.Stress
			s.PeakStressT = e.T
		}
		if i == 0 || e.Focus > s.TopFocus {
			s.TopFocus = e.Focus
			s.TopFocusT = e.T
		}
		if e.Adaptation != nil {
			s.Adaptations++
			s.ByLabel[*e.Adaptation]++
		}
	}
	return s
}

// #endregion summary
