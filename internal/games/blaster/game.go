// Package blaster implements Neon Blaster, a one-minute platform shooter:
// run and jump between platforms, aim with the pointer and shoot the
// drones that home in on you.
package blaster

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/shell"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game is the registry entry for Neon Blaster.
type Game struct {
	shell.Base
	cfg   config.BlasterConfig
	rules *rules
}

// New creates a game with the built-in configuration.
func New() *Game {
	return &Game{cfg: config.DefaultBlasterConfig()}
}

func (g *Game) ID() string    { return "blaster" }
func (g *Game) Title() string { return "Neon Blaster" }

// Configure loads configuration and applies a difficulty preset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadBlaster(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset starts a new round immediately.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rules = newRules(g.cfg, rc.TickRate)
	g.Init(g.rules, sim.Options{
		Width:     g.cfg.World.Width,
		Height:    g.cfg.World.Height,
		Seed:      rc.Seed,
		AutoStart: true,
	})
}

func init() {
	registry.Register("blaster", func() registry.Game {
		return New()
	})
}
