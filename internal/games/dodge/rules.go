package dodge

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

const (
	shipHealth     = 100
	crashParticles = 20
	thrusterSize   = 10
	starAlpha      = 0.3
)

type rules struct {
	cfg      config.DodgeConfig
	dm       *config.DifficultyManager
	tickRate int
	hits     *sim.Resolver

	ship  sim.Ref
	spawn sim.SpawnTimer
}

func newRules(cfg config.DodgeConfig, tickRate int) *rules {
	r := &rules{cfg: cfg, dm: config.NewDifficultyManager(cfg.Difficulty), tickRate: tickRate}
	r.hits = sim.NewResolver(sim.Rule{A: sim.KindHostile, B: sim.KindPlayer, On: r.crash})
	return r
}

func (r *rules) Setup(w *sim.World) {
	w.MaxHealth, w.Health = shipHealth, shipHealth
	r.spawn = sim.SpawnTimer{}

	s := r.cfg.Ship
	r.ship, _ = w.Store.Spawn(sim.Entity{
		Kind:     sim.KindPlayer,
		Pos:      core.Vec{X: (w.Bounds.W - s.Width) / 2, Y: w.Bounds.H - s.BottomOffset},
		W:        s.Width,
		H:        s.Height,
		Boundary: sim.BoundClamp,
		Color:    s.Color,
	})

	st := r.cfg.Stars
	for range st.Count {
		size := w.RandRange(0.5, 2)
		w.Store.Spawn(sim.Entity{
			Kind:     sim.KindDecor,
			Pos:      core.Vec{X: w.RandRange(0, w.Bounds.W), Y: w.RandRange(0, w.Bounds.H)},
			Vel:      core.Vec{Y: w.RandRange(st.MinSpeed, st.MaxSpeed)},
			W:        size,
			H:        size,
			Boundary: sim.BoundWrap,
			Color:    core.ColorWhite,
		})
	}
}

func (r *rules) Phases() []sim.Phase {
	return []sim.Phase{
		{Name: "ship", Run: r.steer},
		{Name: "stars", Run: func(w *sim.World) { sim.Integrate(w, sim.KindDecor) }},
		{Name: "spawn", Run: r.spawnMeteors},
		{Name: "meteors", Run: func(w *sim.World) {
			// Every meteor that falls past the ship is a point.
			w.AddScore(len(sim.Integrate(w, sim.KindHostile)))
		}},
		{Name: "collide", Run: func(w *sim.World) { r.hits.Resolve(w) }},
		{Name: "particles", Run: func(w *sim.World) { sim.Integrate(w, sim.KindParticle) }},
	}
}

func (r *rules) steer(w *sim.World) {
	ship, ok := w.Store.Get(r.ship)
	if !ok {
		return
	}
	dx := 0.0
	if w.Input.IsHeld(core.ActionLeft) {
		dx--
	}
	if w.Input.IsHeld(core.ActionRight) {
		dx++
	}
	ship.Vel.X = dx * r.cfg.Ship.Speed
	sim.Integrate(w, sim.KindPlayer)
}

// spawnInterval is the meteor interval in ticks for the current score.
func (r *rules) spawnInterval(w *sim.World) int {
	m := r.cfg.Meteors
	ms := max(m.MinIntervalMS, m.BaseIntervalMS-m.IntervalPerPointMS*w.Score)
	ticks := sim.Ticks(time.Duration(ms)*time.Millisecond, r.tickRate)
	minTicks := sim.Ticks(time.Duration(m.MinIntervalMS)*time.Millisecond, r.tickRate)
	return r.dm.Interval(ticks, minTicks, w.Score, w.Tick)
}

func (r *rules) spawnMeteors(w *sim.World) {
	if !r.spawn.Step(r.spawnInterval(w)) {
		return
	}
	m := r.cfg.Meteors
	speed := r.dm.Speed(m.BaseSpeed+m.SpeedPerPoint*float64(w.Score), w.Score, w.Tick)
	w.Store.Spawn(sim.Entity{
		Kind:     sim.KindHostile,
		Pos:      core.Vec{X: w.RandRange(m.EdgePadding, w.Bounds.W-m.EdgePadding), Y: m.SpawnY},
		Vel:      core.Vec{Y: speed},
		Radius:   w.RandRange(m.MinRadius, m.MaxRadius),
		Boundary: sim.BoundDespawn,
		Margin:   m.DespawnMargin,
		Color:    m.Color,
	})
}

func (r *rules) crash(w *sim.World, meteor, ship *sim.Entity) {
	w.Store.Kill(meteor)
	w.Damage(shipHealth)
	sim.Burst(w, ship.Center(), crashParticles, core.ColorOrange)
	if w.Health == 0 {
		w.End("SHIP DESTROYED")
	}
}

func (r *rules) Draw(w *sim.World, state core.RunState, out []core.DrawCommand) []core.DrawCommand {
	w.Store.ForEach(sim.KindDecor, func(e *sim.Entity) {
		star := core.RectCmd(e.Pos.X, e.Pos.Y, e.W, e.H, e.Color)
		star.Alpha = starAlpha
		out = append(out, star)
	})
	w.Store.ForEach(sim.KindHostile, func(e *sim.Entity) {
		out = append(out, core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color))
	})
	w.Store.ForEach(sim.KindParticle, func(e *sim.Entity) {
		p := core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color)
		p.Alpha = e.Fade()
		out = append(out, p)
	})
	if ship, ok := w.Store.Get(r.ship); ok && state != core.StateOver {
		c := ship.Center()
		out = append(out, core.TriangleCmd(c.X, c.Y, ship.W, ship.H, 0, ship.Color))
		if state == core.StateRunning && (w.Tick/4)%2 == 0 {
			out = append(out, core.TriangleCmd(c.X, ship.Box().Bottom()+thrusterSize/2, thrusterSize, thrusterSize, math.Pi, core.ColorOrange))
		}
	}
	return out
}
