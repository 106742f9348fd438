package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// #region config

// Config holds the runtime knobs, all overridable from the environment.
type Config struct {
	// WSBaseURL is the websocket origin of the session backend.
	WSBaseURL string `env:"SPECTRA_WS_BASE_URL" envDefault:"ws://localhost:8000"`
	// APIBaseURL is the HTTP origin of the analytics API.
	APIBaseURL string `env:"SPECTRA_API_BASE_URL" envDefault:"http://localhost:8000"`
	// DBPath is the SQLite timeline database path.
	DBPath string `env:"SPECTRA_DB" envDefault:"spectra_timeline.db"`
	// LegacyWSPath selects the older /ws/<id> endpoint form.
	LegacyWSPath bool `env:"SPECTRA_LEGACY_WS" envDefault:"false"`
	// DemoMode runs without a backend: local clock, synthesized emotions.
	DemoMode bool `env:"SPECTRA_DEMO" envDefault:"false"`
	// DemoStress is the stress level demo mode synthesizes emotions from.
	DemoStress float64 `env:"SPECTRA_DEMO_STRESS" envDefault:"0.45"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// #endregion config
