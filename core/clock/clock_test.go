// File: clock_test.go
// Title: Monotonic Clock Tests
// Description: Tests for one-time calibration semantics, monotonic behavior,
//              and concurrent first use of the Clock type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with concurrency tests

package clock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeSource is a deterministic tick source that counts calibration calls.
type fakeSource struct {
	ticks        atomic.Uint64
	calibrations atomic.Int32
	cal          Calibration
}

func (s *fakeSource) Ticks() uint64 {
	return s.ticks.Load()
}

func (s *fakeSource) Calibrate() Calibration {
	s.calibrations.Add(1)
	return s.cal
}

func TestClockCalibratesOnce(t *testing.T) {
	source := &fakeSource{cal: Calibration{Numerator: 1, Denominator: 1}}
	c := New(source)

	const callers = 32
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			c.Now()
		}()
	}
	wg.Wait()

	if got := source.calibrations.Load(); got != 1 {
		t.Errorf("calibration count = %d, want 1", got)
	}
}

func TestClockConvertsTicksToSeconds(t *testing.T) {
	// 125/3 nanoseconds per tick, 24e9 ticks -> exactly 1000 seconds.
	source := &fakeSource{cal: Calibration{Numerator: 125, Denominator: 3}}
	c := New(source)

	if got := c.Now(); got != 0 {
		t.Fatalf("Now() at base = %v, want 0", got)
	}

	source.ticks.Store(24_000_000_000)
	got := c.Now()
	want := 1000.0
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestClockZeroDenominatorFallback(t *testing.T) {
	source := &fakeSource{cal: Calibration{Numerator: 0, Denominator: 0}}
	c := New(source)
	c.Now() // calibrates with base 0

	source.ticks.Store(2_000_000_000)
	got := c.Now()
	want := 2.0
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Now() with fallback calibration = %v, want %v", got, want)
	}
}

func TestClockMonotonic(t *testing.T) {
	source := &fakeSource{cal: Calibration{Numerator: 1, Denominator: 1}}
	c := New(source)

	prev := c.Now()
	for i := 0; i < 100; i++ {
		source.ticks.Add(uint64(i))
		now := c.Now()
		if now < prev {
			t.Fatalf("Now() decreased: %v after %v", now, prev)
		}
		prev = now
	}
}

func TestClockTickRegressionClamped(t *testing.T) {
	source := &fakeSource{cal: Calibration{Numerator: 1, Denominator: 1}}
	c := New(source)

	source.ticks.Store(100)
	c.Now() // calibrates with base 100

	source.ticks.Store(50)
	if got := c.Now(); got != 0 {
		t.Errorf("Now() after tick regression = %v, want 0", got)
	}
}

func TestClockStartAnchor(t *testing.T) {
	before := time.Now()
	c := New(nil)
	start := c.Start()
	after := time.Now()

	if start.Before(before) || start.After(after) {
		t.Errorf("Start() = %v, want within [%v, %v]", start, before, after)
	}

	if again := c.Start(); !again.Equal(start) {
		t.Errorf("Start() changed between calls: %v then %v", start, again)
	}
}

func TestProcessClockNow(t *testing.T) {
	first := Now()
	time.Sleep(2 * time.Millisecond)
	second := Now()

	if first < 0 {
		t.Errorf("Now() = %v, want >= 0", first)
	}
	if second < first {
		t.Errorf("Now() decreased: %v after %v", second, first)
	}
}
