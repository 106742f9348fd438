package timeline

import "sync"

// #region memory-store

// MemoryStore keeps timelines in process memory, keyed by session id.
// This is the tab-scoped default; it survives reconnects but not restarts.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]Entry)}
}

// Append adds an entry to the end of the session's timeline.
func (s *MemoryStore) Append(sessionID string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], entry)
	return nil
}

// ReadAll returns the session's timeline in append order.
func (s *MemoryStore) ReadAll(sessionID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.sessions[sessionID]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Reset clears the session's timeline.
func (s *MemoryStore) Reset(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// #endregion memory-store
