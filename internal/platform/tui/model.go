package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-rain/internal/core"
	"github.com/vovakirdan/neon-rain/internal/rain"
)

// ModelConfig holds everything needed to build a Model.
type ModelConfig struct {
	Simulator *rain.Simulator    // Required
	Runtime   core.RuntimeConfig // Screen size and tick interval
	Rows      int
	Cols      int
	Palette   string             // Shown in the header
	Renderer  *lipgloss.Renderer // nil uses the default renderer
	Logger    *log.Logger        // nil discards
}

// Model is the Bubble Tea model for the rain view.
type Model struct {
	sim      *rain.Simulator
	state    rain.State
	config   core.RuntimeConfig
	palette  string
	screen   *core.Screen
	renderer *lipgloss.Renderer
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	rows     textinput.Model
	cols     textinput.Model
	focus    focusArea
	tag      int // current tick loop; see TickMsg
	quitting bool
}

// NewModel creates a running rain view.
// Rows and Cols must already be inside the grid bounds.
func NewModel(cfg ModelConfig) (Model, error) {
	if cfg.Simulator == nil {
		return Model{}, fmt.Errorf("tui: model needs a simulator")
	}
	if cfg.Runtime.Interval <= 0 {
		cfg.Runtime.Interval = rain.DefaultInterval
	}
	if cfg.Renderer == nil {
		cfg.Renderer = lipgloss.DefaultRenderer()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	st, err := cfg.Simulator.NewState(cfg.Rows, cfg.Cols)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		sim:      cfg.Simulator,
		state:    st,
		config:   cfg.Runtime,
		palette:  cfg.Palette,
		screen:   core.NewScreen(GridScreenSize(cfg.Rows, cfg.Cols)),
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
		keys:     DefaultKeyMap(),
		help:     h,
		rows:     newDimField("rows", cfg.Rows),
		cols:     newDimField("cols", cfg.Cols),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Interval, m.tag)
}

// State returns the current simulation state.
func (m Model) State() rain.State {
	return m.state
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focus != focusGrid {
			return m.handleFieldKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keys while the grid has focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()

	case key.Matches(msg, m.keys.RowsUp):
		return m.resize(m.state.Rows+1, m.state.Cols)

	case key.Matches(msg, m.keys.RowsDown):
		return m.resize(m.state.Rows-1, m.state.Cols)

	case key.Matches(msg, m.keys.ColsUp):
		return m.resize(m.state.Rows, m.state.Cols+1)

	case key.Matches(msg, m.keys.ColsDown):
		return m.resize(m.state.Rows, m.state.Cols-1)

	case key.Matches(msg, m.keys.Reseed):
		st, err := m.sim.Reseed(m.state)
		if err != nil {
			m.logger.Error("reseed failed", "error", err)
			return m, nil
		}
		m.state = st
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if msg.String() == "shift+tab" {
			return m.setFocus(m.focus.prev())
		}
		return m.setFocus(m.focus.next())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleFieldKey processes keys while a rows/cols field has focus.
// Printable keys go to the field, so only ctrl+c quits here.
func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Apply):
		next, cmd := m.applyFields()
		nm, focusCmd := next.(Model).setFocus(focusGrid)
		return nm, tea.Batch(cmd, focusCmd)

	case key.Matches(msg, m.keys.Unfocus):
		m.syncFields()
		return m.setFocus(focusGrid)

	case key.Matches(msg, m.keys.Focus):
		next, cmd := m.applyFields()
		nm := next.(Model)
		target := nm.focus.next()
		if msg.String() == "shift+tab" {
			target = nm.focus.prev()
		}
		nm, focusCmd := nm.setFocus(target)
		return nm, tea.Batch(cmd, focusCmd)
	}

	var cmd tea.Cmd
	if m.focus == focusRows {
		m.rows, cmd = m.rows.Update(msg)
	} else {
		m.cols, cmd = m.cols.Update(msg)
	}
	return m, cmd
}

// setFocus moves keyboard focus.
func (m Model) setFocus(f focusArea) (Model, tea.Cmd) {
	m.focus = f
	m.rows.Blur()
	m.cols.Blur()

	var cmd tea.Cmd
	switch f {
	case focusRows:
		cmd = m.rows.Focus()
	case focusCols:
		cmd = m.cols.Focus()
	}
	return m, cmd
}

// applyFields parses both fields, clamps them and resizes the grid.
func (m Model) applyFields() (tea.Model, tea.Cmd) {
	return m.resize(ParseDim(m.rows.Value()), ParseDim(m.cols.Value()))
}

// syncFields shows the current dimensions in both fields.
func (m *Model) syncFields() {
	m.rows.SetValue(strconv.Itoa(m.state.Rows))
	m.cols.SetValue(strconv.Itoa(m.state.Cols))
}

// resize clamps the requested size and reinitializes the grid if it changed.
// A running tick loop is restarted so the new grid gets a full interval.
func (m Model) resize(rows, cols int) (tea.Model, tea.Cmd) {
	rows = core.Clamp(rows, rain.MinDim, rain.MaxDim)
	cols = core.Clamp(cols, rain.MinDim, rain.MaxDim)

	if rows == m.state.Rows && cols == m.state.Cols {
		m.syncFields()
		return m, nil
	}

	st, err := m.sim.Resize(m.state, rows, cols)
	if err != nil {
		m.logger.Error("resize failed", "rows", rows, "cols", cols, "error", err)
		return m, nil
	}
	m.state = st
	m.syncFields()
	m.logger.Debug("grid resized", "rows", rows, "cols", cols)

	if !m.state.Running {
		return m, nil
	}
	m.tag++
	return m, tickCmd(m.config.Interval, m.tag)
}

// toggle pauses or resumes. Either way the old tick loop is abandoned.
func (m Model) toggle() (tea.Model, tea.Cmd) {
	m.state = rain.Toggle(m.state)
	m.tag++
	m.logger.Debug("run state changed", "running", m.state.Running, "tag", m.tag)

	if !m.state.Running {
		return m, nil
	}
	return m, tickCmd(m.config.Interval, m.tag)
}

// handleTick advances the simulation if the tick belongs to the live loop.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Tag != m.tag || !m.state.Running {
		return m, nil
	}

	st, err := m.sim.Advance(m.state)
	if err != nil {
		m.logger.Error("tick failed", "error", err)
		return m, nil
	}
	m.state = st

	return m, tickCmd(m.config.Interval, m.tag)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGrid(m.screen, m.state.Grid)
	if !m.state.Running {
		m.drawPausedLabel()
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.headerView(),
		m.fieldsView(),
		RenderScreen(m.renderer, m.screen),
		m.help.View(m.keys),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return m.renderer.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// drawPausedLabel writes a label into the top border when it fits.
func (m Model) drawPausedLabel() {
	const label = " paused "
	w := m.screen.Width()
	if w < len(label)+2 {
		return
	}
	m.screen.DrawText((w-len(label))/2, 0, label, core.ColorAccentSoft)
}

// headerView shows the title, run state and grid size.
func (m Model) headerView() string {
	title := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(core.ColorAccent))).
		Render("Neon Rain")

	badge := m.renderer.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#000000"))
	if m.state.Running {
		badge = badge.Background(lipgloss.Color("#ef4444")).SetString("Pause")
	} else {
		badge = badge.Background(lipgloss.Color("#22c55e")).SetString("Play")
	}

	info := m.renderer.NewStyle().
		Foreground(lipgloss.Color(string(core.ColorAccentSoft))).
		Render(fmt.Sprintf("%d×%d · %s", m.state.Rows, m.state.Cols, m.palette))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge.String(), "  ", info)
}

// fieldsView shows the rows and columns inputs.
func (m Model) fieldsView() string {
	label := m.renderer.NewStyle().Foreground(lipgloss.Color(string(core.ColorAccentSoft)))
	box := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(core.ColorFrame))).
		Padding(0, 1)
	focused := box.BorderForeground(lipgloss.Color(string(core.ColorAccent)))

	field := func(name string, in textinput.Model, area focusArea) string {
		style := box
		if m.focus == area {
			style = focused
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, label.Render(name+" "), style.Render(in.View()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		field("Rows", m.rows, focusRows),
		"   ",
		field("Columns", m.cols, focusCols),
	)
}

// Run starts the Bubble Tea program with a new rain model.
func Run(cfg ModelConfig) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
