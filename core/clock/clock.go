// File: clock.go
// Title: Calibrated Monotonic Clock Implementation
// Description: Implements the Clock type with lazy one-time tick-rate
//              calibration and a package-level process clock. Raw ticks are
//              converted to seconds through a cached numerator/denominator
//              factor that is computed at most once per Clock.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with sync.Once calibration

package clock

import (
	"sync"
	"time"
)

// Calibration describes the tick rate of a tick source as a rational
// number of nanoseconds per tick.
type Calibration struct {
	Numerator   uint64
	Denominator uint64
}

// TickSource abstracts the raw hardware counter behind the clock. Tests
// inject deterministic sources; production uses the Go runtime's monotonic
// reading.
type TickSource interface {
	// Ticks returns the current raw counter value. Must be monotonic.
	Ticks() uint64

	// Calibrate returns the tick rate. Called at most once per Clock.
	Calibrate() Calibration
}

// Clock converts raw ticks from a TickSource into seconds since the first
// use of the Clock. Safe for concurrent use.
type Clock struct {
	source TickSource

	once           sync.Once
	secondsPerTick float64
	base           uint64
	start          time.Time
}

// New creates a Clock backed by the given tick source. A nil source falls
// back to the runtime's monotonic reading.
func New(source TickSource) *Clock {
	if source == nil {
		source = newMonotonicSource()
	}
	return &Clock{source: source}
}

// calibrate computes the tick-to-second factor exactly once. Concurrent
// first calls block until a single calibration is published.
func (c *Clock) calibrate() {
	c.once.Do(func() {
		cal := c.source.Calibrate()
		if cal.Denominator == 0 {
			// Unusable calibration; fall back to treating ticks as
			// nanoseconds so the clock stays total.
			cal = Calibration{Numerator: 1, Denominator: 1}
		}
		c.secondsPerTick = float64(cal.Numerator) / float64(cal.Denominator) * 1e-9
		c.base = c.source.Ticks()
		c.start = time.Now()
	})
}

// Now returns the elapsed time in seconds since the Clock's first use.
// The value is monotonic for a fixed calibration and never negative.
func (c *Clock) Now() float64 {
	c.calibrate()
	ticks := c.source.Ticks()
	if ticks < c.base {
		return 0
	}
	return float64(ticks-c.base) * c.secondsPerTick
}

// Start returns the wall-clock instant captured when the Clock was first
// used. Adding Now() seconds to it yields an absolute timestamp.
func (c *Clock) Start() time.Time {
	c.calibrate()
	return c.start
}

// monotonicSource reads the Go runtime's monotonic clock. Go guarantees a
// monotonic reading on all supported platforms; when a platform lacks a
// monotonic timer the runtime itself substitutes the wall clock, which is
// the documented fallback for this package as well.
type monotonicSource struct {
	anchor time.Time
}

func newMonotonicSource() *monotonicSource {
	return &monotonicSource{anchor: time.Now()}
}

// Ticks returns nanoseconds elapsed since the source was created.
func (s *monotonicSource) Ticks() uint64 {
	d := time.Since(s.anchor)
	if d < 0 {
		return 0
	}
	return uint64(d)
}

// Calibrate reports one nanosecond per tick.
func (s *monotonicSource) Calibrate() Calibration {
	return Calibration{Numerator: 1, Denominator: 1}
}

// Process-wide clock shared by all loggers.
var processClock = New(nil)

// Now returns the elapsed seconds since process start on the shared clock.
func Now() float64 {
	return processClock.Now()
}

// Start returns the wall-clock anchor of the shared clock.
func Start() time.Time {
	return processClock.Start()
}
