// Package sim is the reusable real-time simulation core shared by the games:
// countdown clocks, the entity store, kinematics, collision resolution, and
// the loop controller that orders a tick's phases.
package sim

import "time"

// Clock is a session countdown. Advance is called once per running tick.
type Clock interface {
	// Advance moves the countdown forward and returns the remaining seconds.
	Advance() float64
	// Remaining returns seconds left, never below zero.
	Remaining() float64
	// Expired reports whether the countdown reached zero.
	Expired() bool
	// Resume is called when the session leaves the paused state.
	Resume()
}

// TimeSource supplies wall-clock time to interval clocks.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real wall clock.
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time { return time.Now() }

// FrameClock subtracts a fixed amount on every tick, ignoring wall time.
type FrameClock struct {
	remaining float64
	perTick   float64
}

// NewFrameClock returns a clock of total seconds that loses perTick seconds each tick.
func NewFrameClock(total, perTick float64) *FrameClock {
	return &FrameClock{remaining: max(total, 0), perTick: perTick}
}

func (c *FrameClock) Advance() float64 {
	c.remaining = max(c.remaining-c.perTick, 0)
	return c.remaining
}

func (c *FrameClock) Remaining() float64 { return c.remaining }
func (c *FrameClock) Expired() bool      { return c.remaining <= 0 }
func (c *FrameClock) Resume()            {}

// IntervalClock subtracts step seconds for every full period of wall time,
// independent of how often ticks run.
type IntervalClock struct {
	remaining float64
	step      float64
	period    time.Duration
	src       TimeSource
	anchor    time.Time
}

// NewIntervalClock starts a countdown of total seconds anchored at src.Now().
func NewIntervalClock(total float64, period time.Duration, src TimeSource) *IntervalClock {
	if src == nil {
		src = SystemTime{}
	}
	if period <= 0 {
		period = time.Second
	}
	return &IntervalClock{
		remaining: max(total, 0),
		step:      period.Seconds(),
		period:    period,
		src:       src,
		anchor:    src.Now(),
	}
}

func (c *IntervalClock) Advance() float64 {
	now := c.src.Now()
	elapsed := now.Sub(c.anchor)
	if elapsed < c.period {
		return c.remaining
	}
	n := int64(elapsed / c.period)
	c.anchor = c.anchor.Add(time.Duration(n) * c.period)
	c.remaining = max(c.remaining-float64(n)*c.step, 0)
	return c.remaining
}

func (c *IntervalClock) Remaining() float64 { return c.remaining }
func (c *IntervalClock) Expired() bool      { return c.remaining <= 0 }

// Resume re-anchors the clock so time spent paused is not charged.
func (c *IntervalClock) Resume() {
	c.anchor = c.src.Now()
}
