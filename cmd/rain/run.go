package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-rain/internal/core"
	"github.com/vovakirdan/neon-rain/internal/platform/tui"
)

const debugLogFile = "rain-debug.log"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the rain interactively",
	Long: `Start the interactive rain view.

Controls:
  Space/P        - Pause/Play
  Arrows/hjkl    - Change rows and columns
  Tab            - Edit rows/columns, Enter to apply, Esc to cancel
  R              - Reseed the grid
  ?              - More keys
  Q/Ctrl+C       - Quit

With --debug, logs go to ` + debugLogFile + ` instead of the terminal.

Examples:
  rain run
  rain run --rows 30 --cols 40
  rain run --palette violet --seed 42
  rain run --config ./my-rain.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func runRun(_ *cobra.Command, _ []string) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	// The view owns the terminal, so logs never go to stderr here.
	logger := log.New(io.Discard)
	if flagDebug {
		f, openErr := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			fail("cannot open debug log: %v", openErr)
		}
		defer f.Close()
		logger = newLoggerTo(f, "rain")
	}

	// Get terminal size for centering before the first WindowSizeMsg
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Interval = s.Config.Interval()
	rt.Seed = s.Seed

	logger.Debug("starting view",
		"rows", s.Config.Grid.Rows,
		"cols", s.Config.Grid.Cols,
		"palette", s.Config.Rain.Palette,
		"seed", s.Seed,
	)

	err = tui.Run(tui.ModelConfig{
		Simulator: s.Simulator(),
		Runtime:   rt,
		Rows:      s.Config.Grid.Rows,
		Cols:      s.Config.Grid.Cols,
		Palette:   s.Config.Rain.Palette,
		Logger:    logger,
	})
	if err != nil {
		fail("%v", err)
	}
}
