// Package animation implements the persistent animation driver: a single
// vsync-aligned ticker source, error-returning AnimationController
// operations, Animation[T] composition wrappers, and the Simulation
// family (spring, friction, tween-sequence, interval) that can drive a
// controller in place of a fixed duration. spec.md §4.5.
package animation

import "time"

// Clock provides time for animations. The package-level clock defaults
// to system time; tests substitute a FakeClock via SetClock to drive
// tickers deterministically without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the package-level clock, returning the previous one
// so callers can restore it (typically via defer in a test).
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// FakeClock is a manually-advanced Clock for deterministic animation
// tests — spec.md §8 scenario S5 requires asserting a controller's value
// at exact elapsed offsets (t=50ms, t=100ms+ε) without depending on wall
// time or scheduler jitter.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a FakeClock starting at an arbitrary fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

func (f *FakeClock) Now() time.Time { return f.now }

// Advance moves the clock forward by d. Tickers are not stepped
// automatically; call StepTickers after advancing to deliver the tick.
func (f *FakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }
