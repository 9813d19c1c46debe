package rain

import (
	"sync"
	"time"
)

// Scheduler invokes a callback periodically until stopped.
type Scheduler interface {
	// Start registers fn to run every period, replacing any earlier registration.
	Start(period time.Duration, fn func())

	// Stop cancels the registration. No callback starts after Stop returns.
	Stop()
}

// TickerScheduler runs callbacks from a time.Ticker goroutine.
// Ticks missed while a callback runs, or while stopped, are dropped.
// fn must not call Stop on the scheduler that runs it.
type TickerScheduler struct {
	ctl sync.Mutex // serializes Start and Stop

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTickerScheduler creates a stopped scheduler.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Start begins calling fn every period. A running registration is stopped first.
func (t *TickerScheduler) Start(period time.Duration, fn func()) {
	t.ctl.Lock()
	defer t.ctl.Unlock()

	t.stopLocked()

	stop := make(chan struct{})
	done := make(chan struct{})

	t.mu.Lock()
	t.stop, t.done = stop, done
	t.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// Stop may have raced with the tick.
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()
}

// Stop cancels the registration and waits for the ticker goroutine to exit.
func (t *TickerScheduler) Stop() {
	t.ctl.Lock()
	defer t.ctl.Unlock()

	t.stopLocked()
}

// stopLocked stops the current registration. Caller holds t.ctl.
func (t *TickerScheduler) stopLocked() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether a registration is active.
func (t *TickerScheduler) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}
