// Package shell adapts a sim.Controller to the registry.Game interface:
// stepping, HUD state, and rasterizing the draw list with overlays.
package shell

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// StatusLiner is implemented by rules that replace the default HUD line.
type StatusLiner interface {
	StatusLine(w *sim.World) string
}

// Summarizer is implemented by rules that describe the result on the
// game-over overlay instead of the plain score.
type Summarizer interface {
	Summary(w *sim.World) string
}

// Base holds the controller of the current session. Games embed it and
// call Init from their Reset.
type Base struct {
	ctrl   *sim.Controller
	rules  sim.Rules
	width  float64
	height float64

	// StartHint is shown while idle.
	StartHint string
}

// Init discards any previous session and starts a new one.
func (b *Base) Init(rules sim.Rules, opts sim.Options) {
	if b.ctrl != nil {
		b.ctrl.Stop()
	}
	b.rules = rules
	b.width, b.height = opts.Width, opts.Height
	b.ctrl = sim.NewController(rules, opts)
}

// Controller exposes the session controller.
func (b *Base) Controller() *sim.Controller {
	return b.ctrl
}

// Bounds returns the world size.
func (b *Base) Bounds() (float64, float64) {
	return b.width, b.height
}

// Stop disposes the session; later steps change nothing.
func (b *Base) Stop() {
	if b.ctrl != nil {
		b.ctrl.Stop()
	}
}

// Step runs one tick.
func (b *Base) Step(in core.InputSnapshot) core.StepResult {
	if b.ctrl == nil {
		return core.StepResult{}
	}
	draw := b.ctrl.Tick(in)
	return core.StepResult{State: b.ctrl.HUD(), Draw: draw}
}

// State returns the HUD summary.
func (b *Base) State() core.GameState {
	if b.ctrl == nil {
		return core.GameState{}
	}
	return b.ctrl.HUD()
}

// Render rasterizes the world, then draws the HUD line and any state overlay.
func (b *Base) Render(dst *core.Screen) {
	if b.ctrl == nil {
		return
	}
	dst.Clear()
	dst.Rasterize(b.ctrl.DrawList(), b.width, b.height)

	st := b.ctrl.HUD()
	dst.DrawTextColored(1, 0, b.statusLine(st), core.ColorBrightWhite)

	switch st.Run {
	case core.StateIdle:
		hint := b.StartHint
		if hint == "" {
			hint = "Press Space to start"
		}
		DrawMessage(dst, "READY", hint)
	case core.StatePaused:
		DrawMessage(dst, "PAUSED", "Press P to resume")
	case core.StateOver:
		title := st.Message
		switch {
		case title != "":
		case st.Timed && st.TimeRemaining <= 0:
			title = "TIME UP"
		default:
			title = "GAME OVER"
		}
		summary := fmt.Sprintf("Score: %d", st.Score)
		if sm, ok := b.rules.(Summarizer); ok {
			summary = sm.Summary(b.ctrl.World())
		}
		DrawMessage(dst, title, summary+"  |  R restart  Q quit")
	}
}

func (b *Base) statusLine(st core.GameState) string {
	if sl, ok := b.rules.(StatusLiner); ok {
		return sl.StatusLine(b.ctrl.World())
	}
	return FormatHUD(st)
}

// FormatHUD renders the default score/time/health line.
func FormatHUD(st core.GameState) string {
	line := fmt.Sprintf("Score: %d", st.Score)
	if st.Timed {
		line += fmt.Sprintf("  Time: %d", int(math.Ceil(st.TimeRemaining)))
	}
	if st.MaxHealth > 0 {
		line += fmt.Sprintf("  HP: %d%%", st.Health*100/st.MaxHealth)
	}
	return line
}

// DrawMessage draws a boxed two-line message in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subLen) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightCyan)
	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+(boxW-subLen)/2, box.Y+3, subtitle, core.ColorWhite)
}
