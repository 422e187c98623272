package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Phase is one named step of a tick. Phases run in the order Rules returns them.
type Phase struct {
	Name string
	Run  func(w *World)
}

// Rules supplies a game's content to the controller.
type Rules interface {
	// Setup populates a freshly created world. Called on construction and on every restart.
	Setup(w *World)
	// Phases returns the ordered update steps of one tick.
	Phases() []Phase
	// Draw appends the render commands for the current world to out.
	Draw(w *World, state core.RunState, out []core.DrawCommand) []core.DrawCommand
}

// Finisher is implemented by rules that react to the end of a session,
// such as setting a closing message.
type Finisher interface {
	Finish(w *World)
}

// Options configures a Controller.
type Options struct {
	Width, Height float64
	Seed          int64
	AutoStart     bool // begin in running instead of idle
	Logger        *log.Logger
}

// Controller owns a session's world and drives its state machine:
// idle -> running <-> paused, running -> over, over -> running via Restart.
type Controller struct {
	rules  Rules
	opts   Options
	phases []Phase
	logger *log.Logger

	world    *World
	state    core.RunState
	restarts int64
	disposed bool
	draw     []core.DrawCommand
}

// NewController builds a controller and its first world.
func NewController(rules Rules, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{
		rules:  rules,
		opts:   opts,
		phases: rules.Phases(),
		logger: logger,
	}
	c.rebuild()
	if opts.AutoStart {
		c.state = core.StateRunning
	}
	c.redraw()
	return c
}

func (c *Controller) rebuild() {
	// Each restart gets a distinct but reproducible seed.
	c.world = NewWorld(c.opts.Width, c.opts.Height, c.opts.Seed+c.restarts)
	c.rules.Setup(c.world)
	c.state = core.StateIdle
}

func (c *Controller) redraw() {
	c.draw = c.rules.Draw(c.world, c.state, c.draw[:0])
}

// World returns the current world. Callers must not mutate it.
func (c *Controller) World() *World {
	return c.world
}

// State returns the run state.
func (c *Controller) State() core.RunState {
	return c.state
}

// DrawList returns the commands produced by the latest tick.
func (c *Controller) DrawList() []core.DrawCommand {
	return c.draw
}

// Start moves an idle session to running.
func (c *Controller) Start() {
	if c.disposed || c.state != core.StateIdle {
		return
	}
	c.state = core.StateRunning
	if c.world.Clock != nil {
		c.world.Clock.Resume()
	}
	c.logger.Debug("session started", "tick", c.world.Tick)
	c.redraw()
}

// TogglePause switches between running and paused.
func (c *Controller) TogglePause() {
	if c.disposed {
		return
	}
	switch c.state {
	case core.StateRunning:
		c.state = core.StatePaused
	case core.StatePaused:
		c.state = core.StateRunning
		if c.world.Clock != nil {
			c.world.Clock.Resume()
		}
	default:
		return
	}
	c.logger.Debug("pause toggled", "state", c.state)
	c.redraw()
}

// Restart discards the world and starts a fresh running session.
func (c *Controller) Restart() {
	if c.disposed {
		return
	}
	c.restarts++
	c.rebuild()
	c.state = core.StateRunning
	c.logger.Debug("session restarted", "restarts", c.restarts)
	c.redraw()
}

// Stop disposes the controller. Later calls to Tick do nothing.
func (c *Controller) Stop() {
	c.disposed = true
}

// HandleControls applies the session-level presses in the snapshot:
// start from idle, pause toggle, and restart once over.
func (c *Controller) HandleControls(in *core.InputSnapshot) {
	switch c.state {
	case core.StateIdle:
		if in.ConsumePress(core.ActionJump) || in.ConsumePress(core.ActionConfirm) || in.ConsumePress(core.ActionPointer) {
			c.Start()
		}
	case core.StateRunning, core.StatePaused:
		if in.ConsumePress(core.ActionPause) {
			c.TogglePause()
		}
	case core.StateOver:
		if in.ConsumePress(core.ActionRestart) {
			c.Restart()
		}
	}
}

// Tick runs one simulation step with the given input and returns the draw list.
// Only a running session changes: the clock advances, phases run in order with
// terminal conditions checked after each, and removed entities are compacted
// before the draw list is built.
func (c *Controller) Tick(in core.InputSnapshot) []core.DrawCommand {
	if c.disposed {
		return nil
	}
	c.HandleControls(&in)
	if c.state != core.StateRunning {
		return c.draw
	}

	w := c.world
	w.Input = in
	w.Tick++

	if w.Clock != nil {
		w.Clock.Advance()
	}
	if w.Finished() {
		c.finish()
	} else {
		for _, p := range c.phases {
			p.Run(w)
			if w.Finished() {
				c.finish()
				break
			}
		}
	}

	w.Store.Compact()
	c.redraw()
	return c.draw
}

func (c *Controller) finish() {
	w := c.world
	w.Health = max(w.Health, 0)
	if f, ok := c.rules.(Finisher); ok {
		f.Finish(w)
	}
	c.state = core.StateOver
	c.logger.Debug("session over", "score", w.Score, "tick", w.Tick, "message", w.Message)
}

// HUD returns the read-only session summary.
func (c *Controller) HUD() core.GameState {
	w := c.world
	return core.GameState{
		Score:         w.Score,
		Health:        w.Health,
		MaxHealth:     w.MaxHealth,
		TimeRemaining: w.TimeRemaining(),
		Timed:         w.Clock != nil,
		Ticks:         w.Tick,
		Run:           c.state,
		Message:       w.Message,
	}
}
