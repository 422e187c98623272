package sim

import (
	"math"
	"time"
)

// Cooldown blocks an action for Period ticks after it fires.
// Call Tick once per tick before asking Fire.
type Cooldown struct {
	Period int
	left   int
}

// Tick counts the cooldown down by one tick.
func (c *Cooldown) Tick() {
	if c.left > 0 {
		c.left--
	}
}

// Ready reports whether Fire would succeed.
func (c *Cooldown) Ready() bool {
	return c.left == 0
}

// Fire consumes the cooldown if it is ready.
func (c *Cooldown) Fire() bool {
	if c.left > 0 {
		return false
	}
	c.left = c.Period
	return true
}

// Reset makes the cooldown ready immediately.
func (c *Cooldown) Reset() {
	c.left = 0
}

// Every reports whether tick falls on a multiple of n. Tick zero never fires.
func Every(tick, n int) bool {
	return n > 0 && tick > 0 && tick%n == 0
}

// SpawnTimer fires once every interval ticks where the interval may change
// between calls.
type SpawnTimer struct {
	elapsed int
}

// Step advances the timer and reports whether a spawn is due.
func (t *SpawnTimer) Step(interval int) bool {
	t.elapsed++
	if t.elapsed >= max(interval, 1) {
		t.elapsed = 0
		return true
	}
	return false
}

// Ticks converts a wall-clock duration to a whole number of ticks at the
// given rate, never less than one.
func Ticks(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(int(math.Round(d.Seconds()*float64(tickRate))), 1)
}
