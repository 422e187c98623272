package sim

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// World is the complete mutable state of one game session.
// Only the phases of a tick mutate it; renderers read it between ticks.
type World struct {
	Store  *Store
	Bounds core.Box
	Clock  Clock // nil for untimed games
	Rand   *rand.Rand

	Score     int
	Health    int
	MaxHealth int // 0 disables the health terminal condition
	Tick      int
	Message   string

	// Input is the snapshot taken at the start of the current tick.
	Input core.InputSnapshot

	ended bool
}

// NewWorld returns an empty world of the given size.
func NewWorld(w, h float64, seed int64) *World {
	return &World{
		Store:  NewStore(),
		Bounds: core.Box{W: w, H: h},
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// AddScore adds points. Negative amounts are ignored so the score never drops.
func (w *World) AddScore(points int) {
	if points > 0 {
		w.Score += points
	}
}

// Damage subtracts health, clamping at zero.
func (w *World) Damage(amount int) {
	if amount <= 0 {
		return
	}
	w.Health = max(w.Health-amount, 0)
}

// End requests the session to finish after the current phase.
func (w *World) End(message string) {
	w.ended = true
	if message != "" {
		w.Message = message
	}
}

// Finished reports whether any terminal condition holds.
func (w *World) Finished() bool {
	if w.ended {
		return true
	}
	if w.MaxHealth > 0 && w.Health <= 0 {
		return true
	}
	return w.Clock != nil && w.Clock.Expired()
}

// TimeRemaining returns seconds left on the session clock, 0 when untimed.
func (w *World) TimeRemaining() float64 {
	if w.Clock == nil {
		return 0
	}
	return w.Clock.Remaining()
}

// RandRange returns a uniform float in [lo, hi).
func (w *World) RandRange(lo, hi float64) float64 {
	return lo + w.Rand.Float64()*(hi-lo)
}
