package timeline

import "log"

// #region recorder

// Recorder binds a store to one session. Appends are best-effort: a storage
// fault is logged, never propagated to the reducer path.
type Recorder struct {
	store     Store
	sessionID string
}

// NewRecorder creates a recorder for the given session.
func NewRecorder(store Store, sessionID string) *Recorder {
	return &Recorder{store: store, sessionID: sessionID}
}

// SessionID returns the session this recorder is scoped to.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record appends one entry to the session timeline.
func (r *Recorder) Record(entry Entry) {
	if err := r.store.Append(r.sessionID, entry); err != nil {
		log.Printf("timeline: append failed for %s: %v", r.sessionID, err)
	}
}

// Entries returns the recorded timeline in arrival order. A storage fault
// yields an empty timeline.
func (r *Recorder) Entries() []Entry {
	entries, err := r.store.ReadAll(r.sessionID)
	if err != nil {
		log.Printf("timeline: read failed for %s: %v", r.sessionID, err)
		return nil
	}
	return entries
}

// Reset clears the session timeline.
func (r *Recorder) Reset() {
	if err := r.store.Reset(r.sessionID); err != nil {
		log.Printf("timeline: reset failed for %s: %v", r.sessionID, err)
	}
}

// #endregion recorder
