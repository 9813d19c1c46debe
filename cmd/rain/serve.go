package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rain/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rain SSH server",
	Long: `Start an SSH server that shows the rain to every client.

Each SSH connection gets its own grid and can pause, resize and reseed it
independently.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rain/host_key

Examples:
  rain serve                           # Listen on :23234 with auto-generated key
  rain serve --ssh :2222               # Listen on port 2222
  rain serve --host-key ./my_host_key  # Use specific host key
  rain serve --seed 7                  # Every client sees the same rain

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Rows:        s.Config.Grid.Rows,
		Cols:        s.Config.Grid.Cols,
		Interval:    s.Config.Interval(),
		Params:      s.Params(),
		Palette:     s.Config.Rain.Palette,
		Seed:        s.Config.Timing.Seed, // 0 keeps per-session clock seeds
		Logger:      newLogger("rain-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting rain SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
