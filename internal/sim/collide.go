package sim

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Test decides whether two entities are in contact.
type Test func(a, b *Entity) bool

// Overlap is the AABB test. Circles use their bounding box.
func Overlap(a, b *Entity) bool {
	return a.Box().Overlaps(b.Box())
}

// PointInside treats a as a point at its position and tests it against b's box.
func PointInside(a, b *Entity) bool {
	return b.Box().ContainsPoint(a.Pos)
}

// Handler applies the outcome of a contact.
type Handler func(w *World, a, b *Entity)

// Rule pairs two kinds with a test and an outcome.
type Rule struct {
	A, B Kind
	Test Test
	On   Handler
}

// Resolver evaluates its rules in declaration order. Within a rule, A entities
// are visited in store order and each is tested against the B entities in store
// order. An entity killed by a handler takes part in no later pair, so each
// live pair is handled at most once per Resolve.
type Resolver struct {
	rules []Rule
}

// NewResolver returns a resolver for the given rules.
func NewResolver(rules ...Rule) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve runs every rule once and returns the number of contacts handled.
func (r *Resolver) Resolve(w *World) int {
	n := 0
	for _, rule := range r.rules {
		test := rule.Test
		if test == nil {
			test = Overlap
		}
		w.Store.ForEach(rule.A, func(a *Entity) {
			w.Store.ForEach(rule.B, func(b *Entity) {
				if a.dead || b.dead || a == b {
					return
				}
				if rule.A == rule.B && b.ID < a.ID {
					return
				}
				if test(a, b) {
					if rule.On != nil {
						rule.On(w, a, b)
					}
					n++
				}
			})
		})
	}
	return n
}

// Particle defaults for bursts.
const (
	ParticleLife  = 30
	ParticleSpeed = 2.5
)

// Burst spawns n short-lived particles at p flying in random directions.
func Burst(w *World, p core.Vec, n int, c core.Color) {
	for i := 0; i < n; i++ {
		w.Store.Spawn(Entity{
			Kind:   KindParticle,
			Pos:    p,
			Vel:    core.Vec{X: w.RandRange(-ParticleSpeed, ParticleSpeed), Y: w.RandRange(-ParticleSpeed, ParticleSpeed)},
			Radius: w.RandRange(1, 4),
			Life:   ParticleLife,
			Color:  c,
		})
	}
}

// DestroyBoth removes both entities, awards points, and bursts at b.
func DestroyBoth(points, particles int, c core.Color) Handler {
	return func(w *World, a, b *Entity) {
		w.Store.Kill(a)
		w.Store.Kill(b)
		w.AddScore(points)
		Burst(w, b.Center(), particles, c)
	}
}

// DamageOnContact removes a and takes damage from the world's health.
func DamageOnContact(amount, particles int, c core.Color) Handler {
	return func(w *World, a, b *Entity) {
		w.Store.Kill(a)
		w.Damage(amount)
		Burst(w, a.Center(), particles, c)
	}
}

// KillA removes a and leaves b untouched.
func KillA(w *World, a, b *Entity) {
	w.Store.Kill(a)
}

// MaxBounceAngle is the steepest paddle deflection.
const MaxBounceAngle = math.Pi / 4

// Approaching reports whether ball is moving horizontally toward paddle.
func Approaching(ball, paddle *Entity) bool {
	dx := paddle.Center().X - ball.Center().X
	return ball.Vel.X*dx > 0
}

// Reflect sends ball away from paddle at speed. The angle grows linearly with
// the distance from the paddle center and is clamped to MaxBounceAngle.
// It returns speed plus increment for the next hit.
func Reflect(ball, paddle *Entity, speed, increment float64) float64 {
	bc, pc := ball.Center(), paddle.Center()
	rel := 0.0
	if paddle.H > 0 {
		rel = core.ClampF((bc.Y-pc.Y)/(paddle.H/2), -1, 1)
	}
	angle := MaxBounceAngle * rel

	dir := 1.0
	if bc.X < pc.X {
		dir = -1
	}
	ball.Vel = core.Vec{X: dir * speed * math.Cos(angle), Y: speed * math.Sin(angle)}
	return speed + increment
}
