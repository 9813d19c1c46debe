package rain

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultInterval is the time between ticks while running.
const DefaultInterval = 100 * time.Millisecond

// SessionConfig configures a Session.
type SessionConfig struct {
	Rows      int
	Cols      int
	Interval  time.Duration // Defaults to DefaultInterval
	Simulator *Simulator    // Required
	Scheduler Scheduler     // Defaults to a TickerScheduler
	Logger    *log.Logger   // Defaults to a discarding logger

	// OnFrame receives every published state: ticks, resizes and reseeds.
	// Calls are serialized and a frame never arrives after a newer one.
	// OnFrame must not call Pause or Close; both wait for in-flight ticks.
	OnFrame func(State)
}

// Session owns one rain state and drives it from a Scheduler.
// All methods are safe for concurrent use.
type Session struct {
	sim      *Simulator
	sched    Scheduler
	interval time.Duration
	logger   *log.Logger
	onFrame  func(State)

	ctl sync.Mutex // serializes Resume, Pause and Close

	mu    sync.Mutex // guards everything below and the simulator's source
	state State
	epoch uint64 // bumped by Resume and Pause; stale callbacks compare against it
	seq   uint64 // bumped per published frame
	ticks uint64

	emitMu    sync.Mutex
	delivered uint64
}

// NewSession initializes the grid. The session starts paused; call Resume.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Simulator == nil {
		return nil, errors.New("rain: session needs a simulator")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTickerScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	st, err := cfg.Simulator.NewState(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	st.Running = false

	return &Session{
		sim:      cfg.Simulator,
		sched:    cfg.Scheduler,
		interval: cfg.Interval,
		logger:   cfg.Logger,
		onFrame:  cfg.OnFrame,
		state:    st,
	}, nil
}

// Resume starts ticking with a fresh scheduler registration.
// Ticks missed while paused are not replayed.
func (s *Session) Resume() {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if s.state.Running {
		s.mu.Unlock()
		return
	}
	s.state.Running = true
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	s.logger.Debug("rain resumed", "epoch", epoch, "interval", s.interval)
	s.sched.Start(s.interval, func() { s.tick(epoch) })
}

// Pause cancels the scheduler. No tick is applied after Pause returns.
func (s *Session) Pause() {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if !s.state.Running {
		s.mu.Unlock()
		return
	}
	s.state.Running = false
	s.epoch++
	s.mu.Unlock()

	// Stop waits for an in-flight callback, which needs s.mu.
	s.sched.Stop()
	s.logger.Debug("rain paused")
}

// Toggle switches between running and paused and returns the new run flag.
func (s *Session) Toggle() bool {
	if s.Running() {
		s.Pause()
		return false
	}
	s.Resume()
	return true
}

// Running reports whether the session is ticking.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Running
}

// Resize replaces the grid with a fresh one of the new size.
// The replacement is published before any later tick reads the grid.
func (s *Session) Resize(rows, cols int) error {
	s.mu.Lock()
	st, err := s.sim.Resize(s.state, rows, cols)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	changed := st.Rows != s.state.Rows || st.Cols != s.state.Cols
	s.state = st
	var seq uint64
	if changed {
		seq = s.publish()
	}
	s.mu.Unlock()

	if changed {
		s.logger.Debug("rain resized", "rows", rows, "cols", cols)
		s.emit(st, seq)
	}
	return nil
}

// Reseed replaces the grid with a fresh one of the same size.
func (s *Session) Reseed() error {
	s.mu.Lock()
	st, err := s.sim.Reseed(s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = st
	seq := s.publish()
	s.mu.Unlock()

	s.emit(st, seq)
	return nil
}

// Snapshot returns the current state. The grid must not be modified.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks returns how many ticks have been applied.
func (s *Session) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Close pauses the session.
func (s *Session) Close() {
	s.Pause()
}

// tick is the scheduler callback registered by Resume at the given epoch.
func (s *Session) tick(epoch uint64) {
	s.mu.Lock()
	if epoch != s.epoch || !s.state.Running {
		s.mu.Unlock()
		return
	}
	st, err := s.sim.Advance(s.state)
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("tick failed", "error", err)
		return
	}
	s.state = st
	s.ticks++
	seq := s.publish()
	s.mu.Unlock()

	s.emit(st, seq)
}

// publish numbers a new frame. Caller holds s.mu.
func (s *Session) publish() uint64 {
	s.seq++
	return s.seq
}

// emit delivers a frame unless a newer one was already delivered.
func (s *Session) emit(st State, seq uint64) {
	if s.onFrame == nil {
		return
	}
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if seq <= s.delivered {
		return
	}
	s.delivered = seq
	s.onFrame(st)
}
