package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded session log: the
// raw inbound messages in arrival order, plus optional expectations.
type Fixture struct {
	Description string            `json:"description"`
	SessionID   string            `json:"session_id"`
	Events      []json.RawMessage `json:"events"`
	Expected    []ExpectedEvent   `json:"expected,omitempty"`
}

// ExpectedEvent pins the outcome of one event by its position in the log.
type ExpectedEvent struct {
	Index      int     `json:"index"`
	Applied    bool    `json:"applied"`
	Adaptation *string `json:"adaptation,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.SessionID == "" {
		f.SessionID = "replay"
	}
	return &f, nil
}

// #endregion fixture-loader
