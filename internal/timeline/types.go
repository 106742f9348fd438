package timeline

import "github.com/spectra-hq/spectra/go-client/internal/state"

// #region entry

// Entry is one appended timeline sample: an emotion reading plus the
// adaptation label it triggered, if any. Entries are never mutated; order is
// arrival order, not sensor timestamp order.
type Entry struct {
	T          int64       `json:"t"`
	Phase      state.Phase `json:"phase"`
	Stress     float64     `json:"stress"`
	Focus      float64     `json:"focus"`
	Adaptation *string     `json:"adaptation"`
}

// #endregion entry

// #region store

// Store is the swappable ordered-log backing a session timeline.
// Implementations must preserve append order on read.
type Store interface {
	Append(sessionID string, entry Entry) error
	ReadAll(sessionID string) ([]Entry, error)
	Reset(sessionID string) error
}

// #endregion store
