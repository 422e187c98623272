// Package bayam implements Bayam, a thirty-second clicker: every press
// waters the spinach plant and makes it grow.
package bayam

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/shell"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game is the registry entry for Bayam.
type Game struct {
	shell.Base
	cfg   config.BayamConfig
	rules *rules
	clock sim.TimeSource
}

// New creates a game with the built-in configuration.
func New() *Game {
	return &Game{cfg: config.DefaultBayamConfig(), clock: sim.SystemTime{}}
}

func (g *Game) ID() string    { return "bayam" }
func (g *Game) Title() string { return "Bayam" }

// Configure loads configuration. Bayam has no difficulty curve, so the
// preset is ignored.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.LoadBayam(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset plants a new seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rules = newRules(g.cfg, g.clock)
	g.StartHint = "Space, Enter or click to start growing"
	g.Init(g.rules, sim.Options{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Seed:   rc.Seed,
	})
}

func init() {
	registry.Register("bayam", func() registry.Game {
		return New()
	})
}
