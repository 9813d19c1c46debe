package core

import "time"

// RuntimeConfig contains configuration passed to a rain view at initialization.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	Interval time.Duration // Time between simulation ticks
	Seed     int64         // RNG seed for reproducible rain
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Interval: 100 * time.Millisecond,
		Seed:     0, // 0 means use current time in platform layer
	}
}
