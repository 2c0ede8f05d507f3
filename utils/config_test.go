package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 80, "edge": "wrap", "rule": "B36/S23"}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	defaults := DefaultConfig()
	if config.Width != 80 || config.Edge != "wrap" || config.Rule != "B36/S23" {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.Height != defaults.Height || config.Speed != defaults.Speed || config.FrameRate != defaults.FrameRate {
		t.Fatalf("defaults not kept: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"width":`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	if _, err := LoadConfig(writeConfig(t, `{"height": 0}`)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"negative workers", func(c *Config) { c.SurveyWorkers = -2 }},
		{"zero stagnation threshold", func(c *Config) { c.StagnationThreshold = 0 }},
		{"negative stagnation threshold", func(c *Config) { c.StagnationThreshold = -3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must be valid: %v", err)
	}
}

func TestBindFlagsOverrideConfig(t *testing.T) {
	config := DefaultConfig()
	config.Width = 80

	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	config.Bind(fs)
	if err := fs.Parse([]string{"-h", "20", "-edge", "wrap", "-frame", "50ms", "-restart"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if config.Width != 80 || config.Height != 20 || config.Edge != "wrap" || config.FrameRate != 50*time.Millisecond || !config.AutoRestart {
		t.Fatalf("unexpected config after flags: %+v", config)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 4, 2, 100*time.Millisecond)
	s.Update(2, 20, 12, 2, 0)
	if s.TotalGenerations != 2 || s.Births != 16 || s.Deaths != 4 || s.PeakPopulation != 20 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("expected 10 gen/sec, got %v", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 11 {
		t.Fatalf("expected moving average 11, got %v", s.AveragePopulation)
	}
}
