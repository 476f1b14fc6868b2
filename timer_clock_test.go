// timer_clock_test.go - Tests for the tick-driven session clock

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"sync"
	"testing"
	"time"
)

func TestSessionClock_AdvancesAndIsMonotonic(t *testing.T) {
	clock := NewSessionClock()
	if err := clock.Start(); err != nil {
		t.Fatalf("clock failed to start: %v", err)
	}
	defer clock.Stop()

	prev := clock.Now()
	for i := 0; i < 20; i++ {
		time.Sleep(5 * time.Millisecond)
		now := clock.Now()
		if now < prev {
			t.Fatalf("clock went backwards: %f -> %f", prev, now)
		}
		prev = now
	}
	if prev <= 0 {
		t.Fatal("clock did not advance at all")
	}
}

func TestSessionClock_DoubleStartRejected(t *testing.T) {
	clock := NewSessionClock()
	if err := clock.Start(); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	defer clock.Stop()

	if err := clock.Start(); err == nil {
		t.Fatal("second start should have been rejected")
	}
}

func TestSessionClock_ConcurrentReaders(t *testing.T) {
	clock := NewSessionClock()
	if err := clock.Start(); err != nil {
		t.Fatalf("clock failed to start: %v", err)
	}
	defer clock.Stop()

	// Hammer Now() from several goroutines against the tick writer.
	// Every read must be a whole number of tick periods - a torn read
	// would produce a wild value.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := 0.0
			for i := 0; i < 2000; i++ {
				now := clock.Now()
				if now < prev {
					t.Errorf("non-monotonic read: %f after %f", now, prev)
					return
				}
				if now > 3600 {
					t.Errorf("implausible clock reading: %f", now)
					return
				}
				prev = now
			}
		}()
	}
	wg.Wait()
}

func TestSessionClock_StopFreezesValue(t *testing.T) {
	clock := NewSessionClock()
	if err := clock.Start(); err != nil {
		t.Fatalf("clock failed to start: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	clock.Stop()

	// Give the tick goroutine a moment to observe the stop.
	time.Sleep(5 * time.Millisecond)
	frozen := clock.Now()
	time.Sleep(10 * time.Millisecond)
	if got := clock.Now(); got != frozen {
		t.Errorf("stopped clock still advancing: %f -> %f", frozen, got)
	}
	if clock.IsStarted() {
		t.Error("clock reports started after Stop")
	}
}
