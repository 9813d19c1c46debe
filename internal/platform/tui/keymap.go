package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the rain view.
type KeyMap struct {
	Toggle   key.Binding
	RowsUp   key.Binding
	RowsDown key.Binding
	ColsUp   key.Binding
	ColsDown key.Binding
	Reseed   key.Binding
	Focus    key.Binding
	Unfocus  key.Binding
	Apply    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Focus, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reseed},
		{k.RowsUp, k.RowsDown, k.ColsUp, k.ColsDown},
		{k.Focus, k.Apply, k.Unfocus},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause/play"),
		),
		RowsUp: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "more rows"),
		),
		RowsDown: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "fewer rows"),
		),
		ColsUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "more columns"),
		),
		ColsDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "fewer columns"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "edit rows/columns"),
		),
		Unfocus: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to grid"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
