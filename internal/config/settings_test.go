package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heshpdx/cppcheck/internal/dialect"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.Dialect() != dialect.Default() {
		t.Errorf("default dialect: %v", s.Dialect())
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cppcheck.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "std = \"c11\"\njobs = 2\nmax-diagnostics = 5\n")
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Std != "c11" || s.Jobs != 2 || s.MaxDiagnostics != 5 {
		t.Errorf("loaded settings: %+v", s)
	}
	// untouched keys keep their defaults
	if s.MaxValues != Default().MaxValues {
		t.Errorf("MaxValues: %d", s.MaxValues)
	}
	if s.Dialect().IsCPP() {
		t.Error("c11 must resolve to a C dialect")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown standard", "std = \"c++99\"\n"},
		{"zero jobs", "jobs = 0\n"},
		{"negative max-values", "max-values = -1\n"},
		{"syntax error", "std = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load must fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatal("Load of a missing file must fail")
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Std = "klingon"
	if err := s.Validate(); err == nil {
		t.Error("unknown standard must not validate")
	}
	// Dialect falls back instead of failing
	if s.Dialect() != dialect.Default() {
		t.Errorf("fallback dialect: %v", s.Dialect())
	}
}
