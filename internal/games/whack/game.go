// Package whack implements Whack-a-Droid: droids pop out of holes for a
// moment and you bonk them with the pointer or the number keys.
package whack

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/shell"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game is the registry entry for Whack-a-Droid.
type Game struct {
	shell.Base
	cfg      config.WhackConfig
	rules    *rules
	clock    sim.TimeSource
	tickRate int
}

// New creates a game with the built-in configuration.
func New() *Game {
	return &Game{cfg: config.DefaultWhackConfig(), clock: sim.SystemTime{}}
}

func (g *Game) ID() string    { return "whack" }
func (g *Game) Title() string { return "Whack-a-Droid" }

// Configure loads configuration and applies a difficulty preset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadWhack(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset prepares a new round that waits for the start press.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rules = newRules(g.cfg, rc.TickRate, g.clock)
	g.StartHint = "Space to start, click or press 1-9 to bonk"
	g.Init(g.rules, sim.Options{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Seed:   rc.Seed,
	})
}

func init() {
	registry.Register("whack", func() registry.Game {
		return New()
	})
}
