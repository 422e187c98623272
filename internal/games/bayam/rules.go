package bayam

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Colors
const (
	colorSeed = core.ColorYellow
	colorStem = core.ColorGreen
	colorLeaf = core.ColorBrightGreen
	colorSoil = core.ColorOrange
)

const (
	seedRadius     = 10
	soilHeight     = 6
	minStem        = 10
	maxStem        = 30
	stemPerWidth   = 20 // growth per extra unit of stem width
	leafSize       = 20
	leafVariation  = 5
	splashParticle = 3
)

// Verdicts shown when the timer runs out.
const (
	verdictAmazing = "Amazing Harvest!"
	verdictWilted  = "Needs more water..."
	verdictDefault = "Time's Up!"
)

var growKeys = [...]core.Action{core.ActionJump, core.ActionConfirm, core.ActionPointer}

type rules struct {
	cfg    config.BayamConfig
	src    sim.TimeSource
	growth int
}

func newRules(cfg config.BayamConfig, src sim.TimeSource) *rules {
	return &rules{cfg: cfg, src: src}
}

func (r *rules) Setup(w *sim.World) {
	r.growth = 0
	w.Clock = sim.NewIntervalClock(r.cfg.Session.Seconds, time.Second, r.src)
}

func (r *rules) Phases() []sim.Phase {
	return []sim.Phase{
		{Name: "grow", Run: r.grow},
		{Name: "particles", Run: func(w *sim.World) { sim.Integrate(w, sim.KindParticle) }},
	}
}

func (r *rules) grow(w *sim.World) {
	for _, a := range growKeys {
		for w.Input.ConsumePress(a) {
			r.growth += r.cfg.Growth.PerPress
			sim.Burst(w, r.top(w), splashParticle, colorLeaf)
		}
	}
	w.Score = r.growth
}

// Finish sets the harvest verdict.
func (r *rules) Finish(w *sim.World) {
	g := r.cfg.Growth
	switch {
	case r.growth > g.Amazing:
		w.Message = verdictAmazing
	case r.growth < g.Wilted:
		w.Message = verdictWilted
	default:
		w.Message = verdictDefault
	}
}

// HeightCM converts growth to the displayed plant height.
func (r *rules) HeightCM() int {
	return int(math.Floor(float64(r.growth) * r.cfg.Growth.CmPerGrowth))
}

func (r *rules) stemHeight() float64 {
	return math.Min(float64(r.growth), r.cfg.Growth.MaxHeight)
}

func (r *rules) stemWidth() float64 {
	return math.Min(minStem+float64(r.growth)/stemPerWidth, maxStem)
}

// top is the tip of the stem, swaying slightly as the plant grows.
func (r *rules) top(w *sim.World) core.Vec {
	return core.Vec{
		X: w.Bounds.W/2 + math.Sin(float64(r.growth)*0.05)*10,
		Y: w.Bounds.H - r.stemHeight(),
	}
}

func (r *rules) Draw(w *sim.World, _ core.RunState, out []core.DrawCommand) []core.DrawCommand {
	cx, ground := w.Bounds.W/2, w.Bounds.H

	out = append(out, core.RectCmd(0, ground-soilHeight, w.Bounds.W, soilHeight, colorSoil))

	if r.growth <= 0 {
		out = append(out, core.CircleCmd(cx, ground-seedRadius, seedRadius, colorSeed))
	} else {
		stem := r.stemHeight()
		width := r.stemWidth()
		tip := r.top(w)
		out = append(out, core.RectCmd(cx-width/2, ground-stem, width, stem, colorStem))
		out = append(out, core.LineCmd(cx, ground-stem, tip.X, tip.Y, colorStem))

		every := max(r.cfg.Growth.LeafEvery, 1)
		for i := range r.growth / every {
			h := float64((i + 1) * every)
			if h > stem {
				break
			}
			side := 1.0
			if i%2 == 1 {
				side = -1
			}
			size := leafSize + math.Sin(float64(i)*99)*leafVariation
			lx := cx + (tip.X-cx)*h/stem + side*(width/2+size/2)
			out = append(out, core.CircleCmd(lx, ground-h, size/2, colorLeaf))
		}
	}

	w.Store.ForEach(sim.KindParticle, func(e *sim.Entity) {
		p := core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color)
		p.Alpha = e.Fade()
		out = append(out, p)
	})
	return out
}

// StatusLine shows the plant height and the countdown.
func (r *rules) StatusLine(w *sim.World) string {
	return fmt.Sprintf("Height: %dcm  Time: %ds", r.HeightCM(), int(math.Ceil(w.TimeRemaining())))
}

// Summary reports the final height on the game-over overlay.
func (r *rules) Summary(*sim.World) string {
	return fmt.Sprintf("You grew a %dcm Bayam!", r.HeightCM())
}
