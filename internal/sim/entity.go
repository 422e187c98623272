package sim

import "github.com/vovakirdan/neon-arcade/internal/core"

// Kind groups entities into the collections the store keeps.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindHostile
	KindProjectile
	KindParticle
	KindPaddle
	KindBall
	KindPlatform
	KindTarget
	KindDecor
	kindCount
)

var kindNames = [kindCount]string{
	"player", "hostile", "projectile", "particle", "paddle", "ball", "platform", "target", "decor",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Boundary selects what Integrate does when an entity leaves the world.
type Boundary uint8

const (
	BoundNone     Boundary = iota
	BoundClamp             // stay inside, zero the velocity component
	BoundReflectY          // bounce off top and bottom
	BoundReflectX          // bounce off left and right
	BoundReflect           // bounce off every edge
	BoundDespawn           // remove once Pos is beyond the bounds plus Margin
	BoundWrap              // re-enter from the opposite edge
)

// Forever is the Life value of entities that never expire.
const Forever = -1

// Entity is a simulated object. Rect entities are anchored at the top-left
// corner; entities with a positive Radius are circles anchored at the center.
type Entity struct {
	ID   uint64
	Kind Kind

	Pos, Prev core.Vec
	Vel, Acc  core.Vec

	W, H   float64
	Radius float64

	Life    int // ticks left, or Forever
	MaxLife int

	Boundary Boundary
	Margin   float64

	Color    core.Color
	Grounded bool
	Tag      int

	dead bool
}

// Alive reports whether the entity has not been marked for removal.
func (e *Entity) Alive() bool {
	return !e.dead
}

// IsCircle reports whether the entity uses circle geometry.
func (e *Entity) IsCircle() bool {
	return e.Radius > 0
}

// Box returns the entity's bounding box at its current position.
func (e *Entity) Box() core.Box {
	return e.boxAt(e.Pos)
}

// PrevBox returns the bounding box at the previous position.
func (e *Entity) PrevBox() core.Box {
	return e.boxAt(e.Prev)
}

func (e *Entity) boxAt(p core.Vec) core.Box {
	if e.IsCircle() {
		return core.CircleBox(p.X, p.Y, e.Radius)
	}
	return core.Box{X: p.X, Y: p.Y, W: e.W, H: e.H}
}

// Center returns the center of the entity.
func (e *Entity) Center() core.Vec {
	if e.IsCircle() {
		return e.Pos
	}
	return core.Vec{X: e.Pos.X + e.W/2, Y: e.Pos.Y + e.H/2}
}

// Fade returns remaining life as a fraction of MaxLife, 1 for immortal entities.
func (e *Entity) Fade() float64 {
	if e.Life == Forever || e.MaxLife <= 0 {
		return 1
	}
	return core.ClampF(float64(e.Life)/float64(e.MaxLife), 0, 1)
}

func (e *Entity) valid() bool {
	if !e.Pos.Finite() || !e.Vel.Finite() || !e.Acc.Finite() {
		return false
	}
	for _, f := range [...]float64{e.W, e.H, e.Radius, e.Margin} {
		if !core.IsFinite(f) || f < 0 {
			return false
		}
	}
	return e.Kind < kindCount
}
