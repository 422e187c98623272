package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Colors
const (
	colorPlayer = core.ColorBrightCyan
	colorCPU    = core.ColorBrightMagenta
	colorBall   = core.ColorBrightWhite
	colorNet    = core.ColorGray
)

// Net geometry in world units.
const (
	netWidth  = 2
	netDash   = 10
	netSpacer = 15
)

// CPU skill gained at every ramp step.
const skillStep = 0.02

type rules struct {
	cfg  config.PongConfig
	dm   *config.DifficultyManager
	hits *sim.Resolver

	left, right, ball sim.Ref

	speed    float64 // ball speed for the next paddle hit
	cpuSkill float64
	p1, p2   int

	lastPointer core.Vec
	pointerSeen bool
}

func newRules(cfg config.PongConfig) *rules {
	r := &rules{cfg: cfg, dm: config.NewDifficultyManager(cfg.Difficulty)}
	r.hits = sim.NewResolver(sim.Rule{A: sim.KindBall, B: sim.KindPaddle, On: r.bounce})
	return r
}

func (r *rules) Setup(w *sim.World) {
	c := r.cfg
	r.speed = c.Ball.Speed
	r.cpuSkill = c.CPU.MinSkill
	r.p1, r.p2 = 0, 0

	y := (w.Bounds.H - c.Paddles.Height) / 2
	r.left, _ = w.Store.Spawn(sim.Entity{
		Kind:     sim.KindPaddle,
		Pos:      core.Vec{X: 0, Y: y},
		W:        c.Paddles.Width,
		H:        c.Paddles.Height,
		Boundary: sim.BoundClamp,
		Color:    colorPlayer,
	})
	r.right, _ = w.Store.Spawn(sim.Entity{
		Kind:     sim.KindPaddle,
		Pos:      core.Vec{X: w.Bounds.W - c.Paddles.Width, Y: y},
		W:        c.Paddles.Width,
		H:        c.Paddles.Height,
		Boundary: sim.BoundClamp,
		Color:    colorCPU,
	})
	r.ball, _ = w.Store.Spawn(sim.Entity{
		Kind:     sim.KindBall,
		Pos:      w.Bounds.Center(),
		Vel:      core.Vec{X: c.Ball.ServeVX, Y: c.Ball.ServeVY},
		Radius:   c.Ball.Radius,
		Boundary: sim.BoundReflectY,
		Color:    colorBall,
	})
}

func (r *rules) Phases() []sim.Phase {
	return []sim.Phase{
		{Name: "paddles", Run: r.movePaddles},
		{Name: "ball", Run: func(w *sim.World) { sim.Integrate(w, sim.KindBall) }},
		{Name: "collide", Run: func(w *sim.World) { r.hits.Resolve(w) }},
		{Name: "score", Run: r.checkScore},
	}
}

func (r *rules) movePaddles(w *sim.World) {
	speed := r.cfg.Paddles.Speed
	in := &w.Input

	if left, ok := w.Store.Get(r.left); ok {
		left.Vel.Y = axis(in, core.ActionUp, core.ActionDown) * speed
		if p, known := in.PointerPosition(); known && (!r.pointerSeen || p != r.lastPointer) {
			left.Pos.Y = p.Y - left.H/2
			left.Vel.Y = 0
			r.lastPointer, r.pointerSeen = p, true
		}
	}

	if right, ok := w.Store.Get(r.right); ok {
		if r.cfg.Gameplay.Players >= 2 {
			right.Vel.Y = axis(in, core.ActionP2Up, core.ActionP2Down) * speed
		} else {
			r.updateCPU(w, right)
		}
	}

	sim.Integrate(w, sim.KindPaddle)
}

// axis returns -1, 0 or 1 from a pair of held actions.
func axis(in *core.InputSnapshot, neg, pos core.Action) float64 {
	v := 0.0
	if in.IsHeld(neg) {
		v--
	}
	if in.IsHeld(pos) {
		v++
	}
	return v
}

// updateCPU moves the right paddle toward the ball while it approaches,
// at a fraction of full speed given by the CPU skill.
func (r *rules) updateCPU(w *sim.World, paddle *sim.Entity) {
	paddle.Vel.Y = 0

	if sim.Every(w.Tick, r.cfg.CPU.RampTicks) && r.cpuSkill < r.cfg.CPU.MaxSkill {
		r.cpuSkill = math.Min(r.cpuSkill+skillStep, r.cfg.CPU.MaxSkill)
	}

	ball, ok := w.Store.Get(r.ball)
	if !ok || ball.Vel.X <= 0 {
		return
	}

	diff := ball.Pos.Y - paddle.H/2 - paddle.Pos.Y
	moveSpeed := r.cfg.Paddles.Speed * r.cpuSkill
	if math.Abs(diff) > moveSpeed {
		paddle.Vel.Y = math.Copysign(moveSpeed, diff)
	}
}

func (r *rules) bounce(w *sim.World, ball, paddle *sim.Entity) {
	if !sim.Approaching(ball, paddle) {
		return
	}
	r.speed = sim.Reflect(ball, paddle, r.speed, r.cfg.Ball.SpeedIncrement)
}

func (r *rules) checkScore(w *sim.World) {
	ball, ok := w.Store.Get(r.ball)
	if !ok {
		return
	}

	box := ball.Box()
	switch {
	case box.X < w.Bounds.X:
		r.p2++
	case box.Right() > w.Bounds.Right():
		r.p1++
	default:
		return
	}
	w.Score = r.p1

	if win := r.cfg.Gameplay.WinScore; win > 0 && (r.p1 >= win || r.p2 >= win) {
		w.End(r.winner())
		return
	}
	r.serve(w, ball)
}

func (r *rules) winner() string {
	switch {
	case r.p1 > r.p2:
		return "YOU WIN!"
	case r.cfg.Gameplay.Players >= 2:
		return "PLAYER 2 WINS!"
	default:
		return "CPU WINS!"
	}
}

// serve recenters the ball, resets its speed and sends it back the other way
// with a random vertical direction.
func (r *rules) serve(w *sim.World, ball *sim.Entity) {
	c := r.cfg.Ball
	r.speed = r.dm.Speed(c.Speed, r.p1+r.p2, w.Tick)
	scale := r.speed / c.Speed

	vx := c.ServeVX * scale
	if ball.Vel.X > 0 {
		vx = -vx
	}
	vy := c.ServeVY * scale
	if w.Rand.Intn(2) == 0 {
		vy = -vy
	}

	ball.Pos = w.Bounds.Center()
	ball.Prev = ball.Pos
	ball.Vel = core.Vec{X: vx, Y: vy}
}

func (r *rules) Draw(w *sim.World, _ core.RunState, out []core.DrawCommand) []core.DrawCommand {
	netX := (w.Bounds.W - netWidth) / 2
	for y := 0.0; y <= w.Bounds.H; y += netSpacer {
		out = append(out, core.RectCmd(netX, y, netWidth, netDash, colorNet))
	}

	w.Store.ForEach(sim.KindPaddle, func(e *sim.Entity) {
		out = append(out, core.RectCmd(e.Pos.X, e.Pos.Y, e.W, e.H, e.Color))
	})
	w.Store.ForEach(sim.KindBall, func(e *sim.Entity) {
		out = append(out, core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color))
	})
	return out
}

// StatusLine shows both scores instead of the default HUD.
func (r *rules) StatusLine(w *sim.World) string {
	opponent := "CPU"
	if r.cfg.Gameplay.Players >= 2 {
		opponent = "P2"
	}
	line := fmt.Sprintf("P1 %d : %d %s", r.p1, r.p2, opponent)
	if win := r.cfg.Gameplay.WinScore; win > 0 {
		line += fmt.Sprintf("  (first to %d)", win)
	}
	return line
}
