package whack

import (
	"strconv"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Colors
const (
	colorHole  = core.ColorGray
	colorDroid = core.ColorBrightCyan
	colorHit   = core.ColorBrightGreen
	colorLabel = core.ColorWhite
)

const (
	hudHeight    = 40  // world units reserved above the grid
	holeFill     = 0.6 // fraction of a cell a hole covers
	flashTicks   = 12
	hitParticles = 8
	maxSlots     = 9
)

type rules struct {
	cfg      config.WhackConfig
	dm       *config.DifficultyManager
	tickRate int
	src      sim.TimeSource

	holes []sim.Ref
	last  int   // hole index of the previous droid, -1 before the first
	flash []int // ticks of hit feedback left per hole
}

func newRules(cfg config.WhackConfig, tickRate int, src sim.TimeSource) *rules {
	return &rules{
		cfg:      cfg,
		dm:       config.NewDifficultyManager(cfg.Difficulty),
		tickRate: tickRate,
		src:      src,
	}
}

func (r *rules) Setup(w *sim.World) {
	w.Clock = sim.NewIntervalClock(r.cfg.Session.Seconds, time.Second, r.src)
	r.last = -1

	rows, cols := max(r.cfg.Grid.Rows, 1), max(r.cfg.Grid.Cols, 1)
	cellW := w.Bounds.W / float64(cols)
	cellH := (w.Bounds.H - hudHeight) / float64(rows)
	holeW, holeH := cellW*holeFill, cellH*holeFill

	r.holes = r.holes[:0]
	for row := range rows {
		for col := range cols {
			ref, _ := w.Store.Spawn(sim.Entity{
				Kind: sim.KindTarget,
				Pos: core.Vec{
					X: float64(col)*cellW + (cellW-holeW)/2,
					Y: hudHeight + float64(row)*cellH + (cellH-holeH)/2,
				},
				W:     holeW,
				H:     holeH,
				Tag:   len(r.holes),
				Color: colorHole,
			})
			r.holes = append(r.holes, ref)
		}
	}
	r.flash = make([]int, len(r.holes))
}

func (r *rules) Phases() []sim.Phase {
	return []sim.Phase{
		{Name: "bonk", Run: r.bonk},
		{Name: "droid", Run: func(w *sim.World) { sim.Integrate(w, sim.KindHostile) }},
		{Name: "pop", Run: r.pop},
		{Name: "particles", Run: r.fade},
	}
}

// droid returns the droid that is up, if any.
func (r *rules) droid(w *sim.World) (*sim.Entity, bool) {
	return w.Store.First(sim.KindHostile)
}

func (r *rules) bonk(w *sim.World) {
	in := &w.Input
	for in.Pressed(core.ActionPointer) {
		p, ok := in.ConsumeClick()
		if d, up := r.droid(w); ok && up && d.Box().ContainsPoint(p) {
			r.hit(w, d)
		}
	}
	for n := 1; n <= min(len(r.holes), maxSlots); n++ {
		for in.ConsumePress(core.SlotAction(n)) {
			if d, up := r.droid(w); up && d.Tag == n-1 {
				r.hit(w, d)
			}
		}
	}
}

func (r *rules) hit(w *sim.World, d *sim.Entity) {
	w.Store.Kill(d)
	w.AddScore(r.cfg.Droid.Points)
	r.flash[d.Tag] = flashTicks
	sim.Burst(w, d.Center(), hitParticles, colorHit)
}

// pop raises a droid in a random hole other than the previous one as soon
// as no droid is up.
func (r *rules) pop(w *sim.World) {
	if _, up := r.droid(w); up || len(r.holes) == 0 {
		return
	}

	idx := 0
	switch n := len(r.holes); {
	case n == 1:
	case r.last < 0:
		idx = w.Rand.Intn(n)
	default:
		idx = w.Rand.Intn(n - 1)
		if idx >= r.last {
			idx++
		}
	}
	r.last = idx

	hole, ok := w.Store.Get(r.holes[idx])
	if !ok {
		return
	}
	d := r.cfg.Droid
	ms := d.MinUpMS + w.Rand.Intn(max(d.MaxUpMS-d.MinUpMS, 0)+1)
	up := sim.Ticks(time.Duration(ms)*time.Millisecond, r.tickRate)
	minUp := sim.Ticks(time.Duration(d.MinUpMS)*time.Millisecond/2, r.tickRate)
	up = r.dm.Interval(up, minUp, w.Score, w.Tick)

	w.Store.Spawn(sim.Entity{
		Kind:  sim.KindHostile,
		Pos:   hole.Pos,
		W:     hole.W,
		H:     hole.H,
		Life:  up,
		Tag:   idx,
		Color: colorDroid,
	})
}

func (r *rules) fade(w *sim.World) {
	for i := range r.flash {
		if r.flash[i] > 0 {
			r.flash[i]--
		}
	}
	sim.Integrate(w, sim.KindParticle)
}

func (r *rules) Draw(w *sim.World, _ core.RunState, out []core.DrawCommand) []core.DrawCommand {
	w.Store.ForEach(sim.KindTarget, func(e *sim.Entity) {
		c := e.Color
		if r.flash[e.Tag] > 0 {
			c = colorHit
		}
		hole := core.RectCmd(e.Pos.X, e.Pos.Y, e.W, e.H, c)
		hole.Glyph = '░'
		out = append(out, hole)
		if e.Tag < maxSlots {
			out = append(out, core.TextCmd(e.Pos.X, e.Box().Bottom(), strconv.Itoa(e.Tag+1), colorLabel))
		}
	})

	w.Store.ForEach(sim.KindHostile, func(e *sim.Entity) {
		// Body in the lower part of the hole, head on top.
		out = append(out, core.RectCmd(e.Pos.X+e.W/4, e.Pos.Y+e.H/3, e.W/2, e.H*2/3, e.Color))
		out = append(out, core.CircleCmd(e.Center().X, e.Pos.Y+e.H/4, e.W/6, e.Color))
	})

	w.Store.ForEach(sim.KindParticle, func(e *sim.Entity) {
		p := core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color)
		p.Alpha = e.Fade()
		out = append(out, p)
	})
	return out
}
