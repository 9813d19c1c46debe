// Package tui provides the Bubble Tea host for the rain simulation.
// It handles the terminal UI loop, input, rendering and the SSH front-end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// Tag identifies the tick loop that scheduled it; messages from a cancelled
// loop carry an old tag and are dropped.
type TickMsg struct {
	Tag  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tagged tick after interval.
func tickCmd(interval time.Duration, tag int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Tag: tag, Time: t}
	})
}
