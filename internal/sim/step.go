package sim

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Integrate advances every live entity of kind by one tick: velocity gains
// acceleration, position gains velocity, then the boundary policy and lifetime
// apply. Entities removed for leaving the world are returned in store order.
func Integrate(w *World, kind Kind) []*Entity {
	var exited []*Entity
	w.Store.ForEach(kind, func(e *Entity) {
		e.Prev = e.Pos
		e.Vel = e.Vel.Add(e.Acc)
		e.Pos = e.Pos.Add(e.Vel)

		if applyBoundary(w.Bounds, e) {
			e.dead = true
			exited = append(exited, e)
			return
		}
		if e.Life > 0 {
			e.Life--
			if e.Life == 0 {
				e.dead = true
			}
		}
	})
	return exited
}

// applyBoundary enforces e.Boundary and reports whether e left the world for good.
func applyBoundary(b core.Box, e *Entity) bool {
	box := e.Box()
	off := e.Pos.Sub(core.Vec{X: box.X, Y: box.Y})

	switch e.Boundary {
	case BoundClamp:
		if box.X < b.X || box.Right() > b.Right() {
			e.Vel.X = 0
		}
		if box.Y < b.Y || box.Bottom() > b.Bottom() {
			e.Vel.Y = 0
		}
		box.X = core.ClampF(box.X, b.X, b.Right()-box.W)
		box.Y = core.ClampF(box.Y, b.Y, b.Bottom()-box.H)

	case BoundReflectX, BoundReflectY, BoundReflect:
		if e.Boundary != BoundReflectY {
			switch {
			case box.X < b.X:
				box.X = b.X
				e.Vel.X = math.Abs(e.Vel.X)
			case box.Right() > b.Right():
				box.X = b.Right() - box.W
				e.Vel.X = -math.Abs(e.Vel.X)
			}
		}
		if e.Boundary != BoundReflectX {
			switch {
			case box.Y < b.Y:
				box.Y = b.Y
				e.Vel.Y = math.Abs(e.Vel.Y)
			case box.Bottom() > b.Bottom():
				box.Y = b.Bottom() - box.H
				e.Vel.Y = -math.Abs(e.Vel.Y)
			}
		}

	case BoundDespawn:
		// The anchor decides, so a circle leaves when its center crosses.
		m := e.Margin
		return e.Pos.X < b.X-m || e.Pos.X > b.Right()+m ||
			e.Pos.Y < b.Y-m || e.Pos.Y > b.Bottom()+m

	case BoundWrap:
		switch {
		case e.Pos.X < b.X:
			e.Pos.X += b.W
		case e.Pos.X >= b.Right():
			e.Pos.X -= b.W
		}
		switch {
		case e.Pos.Y < b.Y:
			e.Pos.Y += b.H
		case e.Pos.Y >= b.Bottom():
			e.Pos.Y -= b.H
		}
		return false

	default:
		return false
	}

	e.Pos = core.Vec{X: box.X, Y: box.Y}.Add(off)
	return false
}

// ApplyFriction scales horizontal velocity by factor.
func ApplyFriction(e *Entity, factor float64) {
	e.Vel.X *= factor
}

// Land re-derives e.Grounded against every live platform of kind. The entity
// lands only while descending and only if its previous bottom edge was at or
// above the platform top, so jumping up through a platform never snaps onto it.
func Land(w *World, e *Entity, platforms Kind) {
	e.Grounded = false
	if e.Vel.Y <= 0 {
		return
	}
	prevBottom := e.PrevBox().Bottom()
	w.Store.ForEach(platforms, func(p *Entity) {
		if e.Grounded {
			return
		}
		pb := p.Box()
		box := e.Box()
		if !box.Overlaps(pb) || prevBottom > pb.Y {
			return
		}
		e.Pos.Y += pb.Y - box.Bottom()
		e.Vel.Y = 0
		e.Grounded = true
	})
}

// Home points e's velocity at target with the given speed.
func Home(e *Entity, target core.Vec, speed float64) {
	e.Vel = Aim(e.Center(), target, speed)
}

// Aim returns a velocity of the given speed from `from` toward `to`.
func Aim(from, to core.Vec, speed float64) core.Vec {
	d := to.Sub(from)
	angle := math.Atan2(d.Y, d.X)
	return core.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}
