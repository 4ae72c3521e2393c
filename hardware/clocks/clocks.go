// Package clocks implements the time keeping of a board. Time is measured as a
// duration since the board was powered on.
package clocks

import "time"

// Clock is the interface shared by all clock types.
type Clock interface {
	Now() time.Duration
	Delay(d time.Duration)
}

// the final part of a Delay() is spent spinning rather than sleeping. the
// scheduler can't be relied upon to wake us up accurately enough for short
// delays
const spin = 100 * time.Microsecond

// Wall is a clock that follows real time.
type Wall struct {
	epoch time.Time
}

// NewWall creates a new Wall clock. The epoch of the clock is the time of
// creation.
func NewWall() *Wall {
	return &Wall{epoch: time.Now()}
}

// Reset moves the epoch of the clock to the current time.
func (w *Wall) Reset() {
	w.epoch = time.Now()
}

// Now returns the time since the epoch.
func (w *Wall) Now() time.Duration {
	return time.Since(w.epoch)
}

// Delay blocks for the duration. The function busy waits for the final part of
// the delay.
func (w *Wall) Delay(d time.Duration) {
	deadline := time.Now().Add(d)
	if d > spin {
		time.Sleep(d - spin)
	}
	for time.Now().Before(deadline) {
	}
}

// Manual is a clock that only moves when told to. Delay() moves the clock
// forward by the requested duration and returns immediately.
type Manual struct {
	now time.Duration
}

// Reset sets the clock to zero.
func (m *Manual) Reset() {
	m.now = 0
}

// Now returns the current time of the clock.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Delay advances the clock by the duration.
func (m *Manual) Delay(d time.Duration) {
	m.Advance(d)
}

// Advance moves the clock forward by the duration. Negative durations are
// ignored.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.now += d
	}
}
