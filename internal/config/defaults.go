package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/neon-rain/internal/rain"
)

//go:embed defaults/rain.yaml
var defaultRainYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	params := rain.DefaultParams()
	return Config{
		Grid: GridConfig{
			Rows: 15,
			Cols: 20,
		},
		Timing: TimingConfig{
			TickMS: int(rain.DefaultInterval / time.Millisecond),
			Seed:   0,
		},
		Rain: RainConfig{
			SpawnChance: params.SpawnChance,
			Palette:     "neon",
			Opacity:     params.Opacity,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRainYAML
}
