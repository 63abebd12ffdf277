package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, DefaultConfig())
	}
	if cfg.Params() != core.DefaultParams() {
		t.Errorf("Params() = %+v, expected engine defaults", cfg.Params())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  speed: 4.5\ndoors:\n  speed: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Physics.Speed != 4.5 {
		t.Errorf("Physics.Speed = %v, expected 4.5", cfg.Physics.Speed)
	}
	if cfg.Doors.Speed != 3 {
		t.Errorf("Doors.Speed = %v, expected 3", cfg.Doors.Speed)
	}
	if cfg.Physics.Gravity != 0.3 {
		t.Errorf("unset Physics.Gravity = %v, expected default 0.3", cfg.Physics.Gravity)
	}
	if cfg.Params().Speed != 4.5 {
		t.Error("Params() should carry the overridden speed")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  jump_impulse: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for a downward jump impulse")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero speed", func(c *Config) { c.Physics.Speed = 0 }},
		{"negative door speed", func(c *Config) { c.Doors.Speed = -1 }},
		{"no jump buffer", func(c *Config) { c.Physics.JumpBuffer = 0 }},
		{"negative margin", func(c *Config) { c.Doors.DetectMargin = -2 }},
		{"no hold", func(c *Config) { c.Play.HoldTicks = 0 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
