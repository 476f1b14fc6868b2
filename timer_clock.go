// timer_clock.go - Tick-driven session clock for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"sync"
	"time"
)

// SessionClock is the precision time base for all phase math. A
// free-running tick source advances a 64-bit microsecond counter at a
// fixed 100 microsecond period; readers copy the counter under the same
// mutex as the writer so a torn multi-word read is impossible. The
// counter never resets while the process lives - phase accuracy depends
// on this clock alone, never on frame cadence.
type SessionClock struct {
	mu     sync.Mutex
	micros uint64

	ticker  *time.Ticker
	done    chan struct{}
	started bool
}

// ClockError carries context for clock lifecycle failures.
type ClockError struct {
	Operation string
	Details   string
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("clock %s failed: %s", e.Operation, e.Details)
}

func NewSessionClock() *SessionClock {
	return &SessionClock{}
}

// Start launches the tick source. Failure here is fatal for the caller:
// the render loop must never run against an unstarted clock.
func (c *SessionClock) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return &ClockError{Operation: "start", Details: "tick source already running"}
	}
	if TICK_INTERVAL_US <= 0 {
		return &ClockError{Operation: "start", Details: "tick interval must be positive"}
	}

	c.ticker = time.NewTicker(TICK_INTERVAL_US * time.Microsecond)
	c.done = make(chan struct{})
	c.started = true

	// The tick handler is deliberately minimal: one locked increment,
	// no floating point, no allocation.
	go func(tick <-chan time.Time, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-tick:
				c.mu.Lock()
				c.micros += TICK_INTERVAL_US
				c.mu.Unlock()
			}
		}
	}(c.ticker.C, c.done)

	return nil
}

// Stop halts the tick source. The counter keeps its final value so late
// readers still observe a monotonic time.
func (c *SessionClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.started = false
}

// Now returns elapsed seconds since the clock started.
func (c *SessionClock) Now() float64 {
	c.mu.Lock()
	us := c.micros
	c.mu.Unlock()
	return float64(us) / MICROS_PER_SEC
}

func (c *SessionClock) IsStarted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}
