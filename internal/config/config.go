// Package config provides YAML-based configuration loading for the rain
// simulation and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neon-rain/internal/rain"
)

// Fresh cells always fade between these opacities.
const (
	MinOpacity = 0.5
	MaxOpacity = 1.0
)

// Config contains all configuration for a rain session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Rain   RainConfig   `yaml:"rain"`
}

// GridConfig defines the initial grid size.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the tick period and RNG seed.
type TimingConfig struct {
	TickMS int   `yaml:"tick_ms"`
	Seed   int64 `yaml:"seed"` // 0 means seed from the clock
}

// RainConfig defines how fresh cells are generated.
type RainConfig struct {
	SpawnChance float64    `yaml:"spawn_chance"`
	Palette     string     `yaml:"palette"`
	Opacity     rain.Range `yaml:"opacity"`
}

// Interval returns the tick period.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Params builds simulator parameters using the given resolved palette.
func (c Config) Params(p rain.Palette) rain.Params {
	return rain.Params{
		SpawnChance: c.Rain.SpawnChance,
		Opacity:     c.Rain.Opacity,
		Palette:     p,
	}
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.Grid.Rows < rain.MinDim || c.Grid.Rows > rain.MaxDim {
		return fmt.Errorf("config: grid.rows %d outside [%d, %d]", c.Grid.Rows, rain.MinDim, rain.MaxDim)
	}
	if c.Grid.Cols < rain.MinDim || c.Grid.Cols > rain.MaxDim {
		return fmt.Errorf("config: grid.cols %d outside [%d, %d]", c.Grid.Cols, rain.MinDim, rain.MaxDim)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Rain.SpawnChance < 0 || c.Rain.SpawnChance > 1 {
		return fmt.Errorf("config: rain.spawn_chance %g outside [0, 1]", c.Rain.SpawnChance)
	}
	if c.Rain.Opacity.Min < MinOpacity || c.Rain.Opacity.Max > MaxOpacity || c.Rain.Opacity.Min >= c.Rain.Opacity.Max {
		return fmt.Errorf("config: rain.opacity [%g, %g) is not a range inside [%g, %g]",
			c.Rain.Opacity.Min, c.Rain.Opacity.Max, MinOpacity, MaxOpacity)
	}
	if c.Rain.Palette == "" {
		return errors.New("config: rain.palette is empty")
	}
	return nil
}
