package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Rows != 15 || cfg.Grid.Cols != 20 {
		t.Errorf("grid = %dx%d, expected 15x20", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Interval() != 100*time.Millisecond {
		t.Errorf("Interval() = %v, expected 100ms", cfg.Interval())
	}
	if cfg.Rain.SpawnChance != 0.3 {
		t.Errorf("spawn_chance = %g, expected 0.3", cfg.Rain.SpawnChance)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")
	data := "grid:\n  cols: 10\nrain:\n  palette: ember\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Cols != 10 {
		t.Errorf("cols = %d, expected 10", cfg.Grid.Cols)
	}
	if cfg.Grid.Rows != 15 {
		t.Errorf("rows = %d, expected default 15", cfg.Grid.Rows)
	}
	if cfg.Rain.Palette != "ember" {
		t.Errorf("palette = %q, expected ember", cfg.Rain.Palette)
	}
	if cfg.Timing.TickMS != 100 {
		t.Errorf("tick_ms = %d, expected default 100", cfg.Timing.TickMS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() error = %v, expected a parse error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"max dims", func(c *Config) { c.Grid.Rows, c.Grid.Cols = 40, 40 }, true},
		{"min dims", func(c *Config) { c.Grid.Rows, c.Grid.Cols = 1, 1 }, true},
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }, false},
		{"too many cols", func(c *Config) { c.Grid.Cols = 41 }, false},
		{"zero tick", func(c *Config) { c.Timing.TickMS = 0 }, false},
		{"spawn above one", func(c *Config) { c.Rain.SpawnChance = 1.5 }, false},
		{"negative spawn", func(c *Config) { c.Rain.SpawnChance = -0.1 }, false},
		{"inverted opacity", func(c *Config) { c.Rain.Opacity.Min, c.Rain.Opacity.Max = 0.9, 0.5 }, false},
		{"opacity above one", func(c *Config) { c.Rain.Opacity.Max = 1.5 }, false},
		{"opacity below half", func(c *Config) { c.Rain.Opacity.Min = 0.2 }, false},
		{"narrow opacity", func(c *Config) { c.Rain.Opacity.Min, c.Rain.Opacity.Max = 0.7, 0.8 }, true},
		{"empty palette", func(c *Config) { c.Rain.Palette = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}
