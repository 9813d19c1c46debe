package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-rain/internal/config"
	"github.com/vovakirdan/neon-rain/internal/rain"
	"github.com/vovakirdan/neon-rain/internal/registry"
)

// settings is the resolved configuration shared by all commands.
type settings struct {
	Config  config.Config
	Palette rain.Palette
	Seed    int64
}

// Params returns simulator parameters for the resolved palette.
func (s settings) Params() rain.Params {
	return s.Config.Params(s.Palette)
}

// Simulator returns a simulator seeded with the resolved seed.
func (s settings) Simulator() *rain.Simulator {
	return rain.NewSeeded(s.Seed, s.Params())
}

// loadSettings loads the config file, applies flag overrides and validates
// the result. Out-of-range sizes are rejected here so they never reach the core.
func loadSettings() (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}

	if flagRows != 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagCols != 0 {
		cfg.Grid.Cols = flagCols
	}
	if flagSeed != 0 {
		cfg.Timing.Seed = flagSeed
	}
	if flagPalette != "" {
		cfg.Rain.Palette = flagPalette
	}

	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	if !registry.Exists(cfg.Rain.Palette) {
		return settings{}, fmt.Errorf("unknown palette %q (run 'rain palettes' to list them)", cfg.Rain.Palette)
	}
	palette, err := registry.Get(cfg.Rain.Palette)
	if err != nil {
		return settings{}, err
	}

	seed := cfg.Timing.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return settings{Config: cfg, Palette: palette, Seed: seed}, nil
}

// newLogger returns a stderr logger honouring --debug.
func newLogger(prefix string) *log.Logger {
	return newLoggerTo(os.Stderr, prefix)
}

func newLoggerTo(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
