// Package pong implements Cyber Pong. Player 1 controls the left paddle with
// the pointer or W/S; the right paddle is a CPU or a second local player.
package pong

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/shell"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game is the registry entry for Cyber Pong.
type Game struct {
	shell.Base
	cfg   config.PongConfig
	rules *rules
}

// New creates a Pong game with the built-in configuration.
func New() *Game {
	return &Game{cfg: config.DefaultPongConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cyber Pong"
}

// Configure loads configuration from path (or the default search paths)
// and applies a difficulty preset if one is given.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadPong(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset starts a new match. Pong serves immediately.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rules = newRules(g.cfg)
	g.Init(g.rules, sim.Options{
		Width:     g.cfg.World.Width,
		Height:    g.cfg.World.Height,
		Seed:      rc.Seed,
		AutoStart: true,
	})
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
