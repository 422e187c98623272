package config

import (
	"embed"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultYAML returns the embedded default YAML for a game, or nil if there is none.
func DefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// DefaultDodgeConfig returns the built-in Cosmic Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{Width: 800, Height: 600},
		Ship: DodgeShip{
			Width:        40,
			Height:       40,
			Speed:        5,
			BottomOffset: 80,
			Color:        core.ColorBrightBlue,
		},
		Meteors: DodgeMeteors{
			MinRadius:          10,
			MaxRadius:          25,
			SpawnY:             -20,
			EdgePadding:        10,
			BaseSpeed:          3,
			SpeedPerPoint:      0.1,
			BaseIntervalMS:     1000,
			IntervalPerPointMS: 10,
			MinIntervalMS:      200,
			DespawnMargin:      50,
			Color:              core.ColorGray,
		},
		Stars: DodgeStars{Count: 100, MinSpeed: 0.1, MaxSpeed: 0.6},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 80},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultPongConfig returns the built-in Cyber Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: WorldConfig{Width: 800, Height: 400},
		Ball: PongBall{
			Radius:         10,
			Speed:          7,
			ServeVX:        5,
			ServeVY:        5,
			SpeedIncrement: 0.2,
		},
		Paddles:  PongPaddles{Width: 15, Height: 100, Speed: 8},
		Gameplay: PongGameplay{Players: 1, WinScore: 7},
		CPU:      PongCPU{MinSkill: 0.6, MaxSkill: 0.9, RampTicks: 600},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "time", MaxAt: 36000},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.3},
		},
	}
}

// DefaultBlasterConfig returns the built-in Neon Blaster configuration.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		World:   WorldConfig{Width: 800, Height: 600},
		Session: SessionConfig{Seconds: 60, MaxHealth: 100},
		Physics: BlasterPhysics{Gravity: 0.5, Friction: 0.8, MoveSpeed: 5, JumpForce: -15},
		Player:  BoxConfig{X: 100, Y: 100, W: 30, H: 30},
		Weapon:  BlasterWeapon{BulletSpeed: 10, BulletLife: 50, BulletRadius: 4, Cooldown: 10},
		Enemies: BlasterEnemies{
			Size:             25,
			SpawnEvery:       60,
			HomingSpeed:      2,
			Damage:           10,
			Points:           10,
			ContactParticles: 10,
			KillParticles:    15,
		},
		Platforms: []BoxConfig{
			{X: 0, Y: 550, W: 800, H: 50},
			{X: 200, Y: 400, W: 100, H: 20},
			{X: 500, Y: 350, W: 100, H: 20},
			{X: 300, Y: 200, W: 200, H: 20},
			{X: 50, Y: 250, W: 100, H: 20},
			{X: 650, Y: 150, W: 100, H: 20},
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 500},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 30},
		},
	}
}

// DefaultBayamConfig returns the built-in Bayam configuration.
func DefaultBayamConfig() BayamConfig {
	return BayamConfig{
		World:   WorldConfig{Width: 400, Height: 840},
		Session: SessionConfig{Seconds: 30},
		Growth: BayamGrowth{
			PerPress:    2,
			MaxHeight:   800,
			LeafEvery:   15,
			CmPerGrowth: 0.5,
			Amazing:     200,
			Wilted:      50,
		},
	}
}

// DefaultWhackConfig returns the built-in Whack-a-Droid configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		World:   WorldConfig{Width: 600, Height: 400},
		Session: SessionConfig{Seconds: 30},
		Grid:    WhackGrid{Rows: 2, Cols: 3},
		Droid:   WhackDroid{MinUpMS: 500, MaxUpMS: 1000, Points: 1},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 40},
			Scaling:     ScalingConfig{IntervalReduction: 20},
		},
	}
}
