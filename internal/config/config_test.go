package config

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/sorts"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Length != 8 {
		t.Errorf("expected length 8, got %d", cfg.Length)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := "algorithm: quick\ninput: \"87654321\"\nmax_shuffles: 500\ndelays:\n  quick: 20\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "quick" || cfg.Input != "87654321" || cfg.MaxShuffles != 500 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Theme != DefaultTheme || cfg.Length != 8 {
		t.Errorf("expected defaults for missing keys, got theme %q length %d", cfg.Theme, cfg.Length)
	}
	if got := cfg.Delay(sorts.Quick); got != 20*time.Millisecond {
		t.Errorf("expected 20ms quick delay, got %v", got)
	}
	if got := cfg.Delay(sorts.Wave); got != 50*time.Millisecond {
		t.Errorf("expected default wave delay, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "stalin"
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Algorithm != "stalin" || loaded.Seed != 42 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"unknown algorithm", func(c *Config) { c.Algorithm = "shell" }, sorts.ErrUnknownAlgorithm},
		{"bad input", func(c *Config) { c.Input = "12ab5678" }, input.ErrInvalidInput},
		{"short input", func(c *Config) { c.Input = "123" }, input.ErrInvalidInput},
		{"zero length", func(c *Config) { c.Length = 0 }, nil},
		{"length beyond distinct digits", func(c *Config) { c.Length = input.MaxLength + 1 }, nil},
		{"negative shuffles", func(c *Config) { c.MaxShuffles = -1 }, nil},
		{"unknown delay key", func(c *Config) { c.Delays = map[string]int{"heap": 10} }, sorts.ErrUnknownAlgorithm},
		{"negative delay", func(c *Config) { c.Delays = map[string]int{"bogo": -1} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

// Every accepted length must be fillable by a random input that passes
// the same length check.
func TestValidLengthsAcceptRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= input.MaxLength; n++ {
		cfg := DefaultConfig()
		cfg.Length = n
		if err := cfg.Validate(); err != nil {
			t.Fatalf("length %d rejected: %v", n, err)
		}
		if _, err := input.ParseN(input.RandomN(rng, n), n); err != nil {
			t.Errorf("length %d: random input rejected: %v", n, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	if got := GetPreset("pi"); got != "31415926" {
		t.Errorf("expected 31415926, got %q", got)
	}
	if got := GetPreset("nonexistent"); got != "" {
		t.Errorf("expected empty for nonexistent preset, got %q", got)
	}
}

func TestPresetsAreValidInputs(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if _, err := input.Parse(GetPreset(name)); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
