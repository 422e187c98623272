// Package dodge implements Cosmic Dodge: steer a ship left and right
// through a falling meteor shower. One hit ends the run.
package dodge

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/shell"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game is the registry entry for Cosmic Dodge.
type Game struct {
	shell.Base
	cfg   config.DodgeConfig
	rules *rules
}

// New creates a game with the built-in configuration.
func New() *Game {
	return &Game{cfg: config.DefaultDodgeConfig()}
}

func (g *Game) ID() string    { return "dodge" }
func (g *Game) Title() string { return "Cosmic Dodge" }

// Configure loads configuration and applies a difficulty preset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadDodge(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset builds a new session waiting for the launch press.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rules = newRules(g.cfg, rc.TickRate)
	g.StartHint = "Space to launch, A/D to steer"
	g.Init(g.rules, sim.Options{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Seed:   rc.Seed,
	})
}

func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
