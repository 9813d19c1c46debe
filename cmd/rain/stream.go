package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-rain/internal/core"
	"github.com/vovakirdan/neon-rain/internal/platform/tui"
	"github.com/vovakirdan/neon-rain/internal/rain"
)

// Moves the cursor home and clears the screen.
const ansiHomeClear = "\x1b[H\x1b[2J"

var flagTicks int

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Print rain frames to stdout",
	Long: `Run the simulation without an interactive UI and print every frame.

On a terminal each frame redraws the screen in colour. When stdout is a
pipe or file, frames are plain text separated by blank lines.

Examples:
  rain stream                       # Until Ctrl+C
  rain stream --ticks 20 --seed 1   # Reproducible 20 frames
  rain stream --ticks 5 > frames.txt`,
	Args: cobra.NoArgs,
	Run:  runStream,
}

func init() {
	streamCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until interrupted)")
}

func runStream(_ *cobra.Command, _ []string) {
	if flagTicks < 0 {
		fail("--ticks must not be negative, got %d", flagTicks)
	}

	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger := newLogger("rain")
	tty := term.IsTerminal(int(os.Stdout.Fd()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(os.Stdout)
	w := &frameWriter{
		out:      out,
		tty:      tty,
		renderer: lipgloss.NewRenderer(os.Stdout),
		screen:   core.NewScreen(1, 1),
		limit:    uint64(flagTicks),
		done:     make(chan struct{}),
	}

	session, err := rain.NewSession(rain.SessionConfig{
		Rows:      s.Config.Grid.Rows,
		Cols:      s.Config.Grid.Cols,
		Interval:  s.Config.Interval(),
		Simulator: s.Simulator(),
		Logger:    logger,
		OnFrame:   w.frame,
	})
	if err != nil {
		fail("%v", err)
	}

	logger.Debug("streaming",
		"rows", s.Config.Grid.Rows,
		"cols", s.Config.Grid.Cols,
		"interval", s.Config.Interval(),
		"seed", s.Seed,
		"tty", tty,
	)

	// The initial grid is frame zero.
	w.frame(session.Snapshot())
	session.Resume()

	select {
	case <-ctx.Done():
		logger.Debug("interrupted")
	case <-w.done:
	}
	session.Close()

	if err := w.finish(); err != nil {
		fail("%v", err)
	}
}

// frameWriter prints published frames until the tick limit is reached.
type frameWriter struct {
	out      *bufio.Writer
	tty      bool
	renderer *lipgloss.Renderer
	screen   *core.Screen
	limit    uint64 // 0 = unlimited

	mu       sync.Mutex
	frames   uint64 // frames after the initial one
	started  bool
	finished bool
	err      error
	done     chan struct{}
}

// frame is the session's OnFrame callback.
func (w *frameWriter) frame(st rain.State) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.finished {
		return
	}
	if w.started {
		w.frames++
	}
	w.started = true

	if err := w.write(st.Grid); err != nil {
		w.err = err
		w.stop()
		return
	}
	if w.limit > 0 && w.frames >= w.limit {
		w.stop()
	}
}

// write prints one grid. Must be called with mu held.
func (w *frameWriter) write(g rain.Grid) error {
	tui.DrawGrid(w.screen, g)

	if w.tty {
		if _, err := io.WriteString(w.out, ansiHomeClear); err != nil {
			return err
		}
		if _, err := io.WriteString(w.out, tui.RenderScreen(w.renderer, w.screen)); err != nil {
			return err
		}
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return err
		}
		return w.out.Flush()
	}

	if w.frames > 0 {
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w.out, w.screen.String()); err != nil {
		return err
	}
	return w.out.Flush()
}

// stop marks the stream finished. Must be called with mu held.
// The session is closed by the main goroutine since OnFrame may not close it.
func (w *frameWriter) stop() {
	if w.finished {
		return
	}
	w.finished = true
	close(w.done)
}

// finish flushes pending output and returns the first write error.
func (w *frameWriter) finish() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.finished = true
	if w.err != nil {
		return w.err
	}
	return w.out.Flush()
}
