// Package config holds the analysis settings shared by the driver and the
// CLI. Settings come from defaults, an optional TOML file, and flags, in
// that order.
package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/heshpdx/cppcheck/internal/dialect"
)

// Settings are the tunables of one analysis run.
type Settings struct {
	// Std names the language standard, e.g. "c11" or "c++20".
	Std string `toml:"std"`
	// MaxValues caps the number of value facts stored per token.
	MaxValues int `toml:"max-values"`
	// MaxDiagnostics caps the diagnostics collected per translation unit.
	MaxDiagnostics int `toml:"max-diagnostics"`
	// Jobs bounds how many translation units are analyzed concurrently.
	Jobs int `toml:"jobs"`
	// Debug enables driver debug logging.
	Debug bool `toml:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Std:            dialect.Default().Std.String(),
		MaxValues:      10,
		MaxDiagnostics: 100,
		Jobs:           runtime.NumCPU(),
	}
}

// Load reads settings from a TOML file on top of the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings no analysis run can honor.
func (s Settings) Validate() error {
	if _, ok := dialect.ParseStandard(s.Std); !ok {
		return fmt.Errorf("unknown standard %q", s.Std)
	}
	if s.MaxValues <= 0 {
		return fmt.Errorf("max-values must be positive, got %d", s.MaxValues)
	}
	if s.Jobs <= 0 {
		return fmt.Errorf("jobs must be positive, got %d", s.Jobs)
	}
	return nil
}

// Dialect resolves the configured standard into a dialect. Call Validate
// first; unknown standards fall back to the default here.
func (s Settings) Dialect() dialect.Dialect {
	if std, ok := dialect.ParseStandard(s.Std); ok {
		return dialect.Dialect{Std: std}
	}
	return dialect.Default()
}
