// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// WorldConfig is the logical canvas size a game simulates in.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// SessionConfig bounds a timed session.
type SessionConfig struct {
	Seconds   float64 `yaml:"seconds" toml:"seconds"`
	MaxHealth int     `yaml:"max_health" toml:"max_health"`
}

// DodgeConfig contains all configuration for Cosmic Dodge.
type DodgeConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ship       DodgeShip        `yaml:"ship" toml:"ship"`
	Meteors    DodgeMeteors     `yaml:"meteors" toml:"meteors"`
	Stars      DodgeStars       `yaml:"stars" toml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// DodgeShip defines the player ship.
type DodgeShip struct {
	Width        float64    `yaml:"width" toml:"width"`
	Height       float64    `yaml:"height" toml:"height"`
	Speed        float64    `yaml:"speed" toml:"speed"`
	BottomOffset float64    `yaml:"bottom_offset" toml:"bottom_offset"`
	Color        core.Color `yaml:"color" toml:"color"`
}

// DodgeMeteors defines meteor spawning and movement.
type DodgeMeteors struct {
	MinRadius          float64    `yaml:"min_radius" toml:"min_radius"`
	MaxRadius          float64    `yaml:"max_radius" toml:"max_radius"`
	SpawnY             float64    `yaml:"spawn_y" toml:"spawn_y"`
	EdgePadding        float64    `yaml:"edge_padding" toml:"edge_padding"`
	BaseSpeed          float64    `yaml:"base_speed" toml:"base_speed"`
	SpeedPerPoint      float64    `yaml:"speed_per_point" toml:"speed_per_point"`
	BaseIntervalMS     int        `yaml:"base_interval_ms" toml:"base_interval_ms"`
	IntervalPerPointMS int        `yaml:"interval_per_point_ms" toml:"interval_per_point_ms"`
	MinIntervalMS      int        `yaml:"min_interval_ms" toml:"min_interval_ms"`
	DespawnMargin      float64    `yaml:"despawn_margin" toml:"despawn_margin"`
	Color              core.Color `yaml:"color" toml:"color"`
}

// DodgeStars defines the scrolling background.
type DodgeStars struct {
	Count    int     `yaml:"count" toml:"count"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
}

// PongConfig contains all configuration for Cyber Pong.
type PongConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ball       PongBall         `yaml:"ball" toml:"ball"`
	Paddles    PongPaddles      `yaml:"paddles" toml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay" toml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu" toml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PongBall defines ball physics.
type PongBall struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	ServeVX        float64 `yaml:"serve_vx" toml:"serve_vx"`
	ServeVY        float64 `yaml:"serve_vy" toml:"serve_vy"`
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	Players  int `yaml:"players" toml:"players"`     // 1 = versus CPU, 2 = local versus
	WinScore int `yaml:"win_score" toml:"win_score"` // 0 = endless
}

// PongCPU defines the computer opponent.
type PongCPU struct {
	MinSkill  float64 `yaml:"min_skill" toml:"min_skill"`
	MaxSkill  float64 `yaml:"max_skill" toml:"max_skill"`
	RampTicks int     `yaml:"ramp_ticks" toml:"ramp_ticks"`
}

// BlasterConfig contains all configuration for Neon Blaster.
type BlasterConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Session    SessionConfig    `yaml:"session" toml:"session"`
	Physics    BlasterPhysics   `yaml:"physics" toml:"physics"`
	Player     BoxConfig        `yaml:"player" toml:"player"`
	Weapon     BlasterWeapon    `yaml:"weapon" toml:"weapon"`
	Enemies    BlasterEnemies   `yaml:"enemies" toml:"enemies"`
	Platforms  []BoxConfig      `yaml:"platforms" toml:"platforms"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// BoxConfig is a rectangle in world units.
type BoxConfig struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// BlasterPhysics defines platformer movement.
type BlasterPhysics struct {
	Gravity   float64 `yaml:"gravity" toml:"gravity"`
	Friction  float64 `yaml:"friction" toml:"friction"`
	MoveSpeed float64 `yaml:"move_speed" toml:"move_speed"`
	JumpForce float64 `yaml:"jump_force" toml:"jump_force"`
}

// BlasterWeapon defines shooting.
type BlasterWeapon struct {
	BulletSpeed  float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	BulletLife   int     `yaml:"bullet_life" toml:"bullet_life"`
	BulletRadius float64 `yaml:"bullet_radius" toml:"bullet_radius"`
	Cooldown     int     `yaml:"cooldown" toml:"cooldown"`
}

// BlasterEnemies defines enemy spawning and contact outcomes.
type BlasterEnemies struct {
	Size             float64 `yaml:"size" toml:"size"`
	SpawnEvery       int     `yaml:"spawn_every" toml:"spawn_every"`
	HomingSpeed      float64 `yaml:"homing_speed" toml:"homing_speed"`
	Damage           int     `yaml:"damage" toml:"damage"`
	Points           int     `yaml:"points" toml:"points"`
	ContactParticles int     `yaml:"contact_particles" toml:"contact_particles"`
	KillParticles    int     `yaml:"kill_particles" toml:"kill_particles"`
}

// BayamConfig contains all configuration for Bayam.
type BayamConfig struct {
	World   WorldConfig   `yaml:"world" toml:"world"`
	Session SessionConfig `yaml:"session" toml:"session"`
	Growth  BayamGrowth   `yaml:"growth" toml:"growth"`
}

// BayamGrowth defines how the plant responds to presses.
type BayamGrowth struct {
	PerPress    int     `yaml:"per_press" toml:"per_press"`
	MaxHeight   float64 `yaml:"max_height" toml:"max_height"`
	LeafEvery   int     `yaml:"leaf_every" toml:"leaf_every"`
	CmPerGrowth float64 `yaml:"cm_per_growth" toml:"cm_per_growth"`
	Amazing     int     `yaml:"amazing" toml:"amazing"` // growth above this is a great harvest
	Wilted      int     `yaml:"wilted" toml:"wilted"`   // growth below this needs water
}

// WhackConfig contains all configuration for Whack-a-Droid.
type WhackConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Session    SessionConfig    `yaml:"session" toml:"session"`
	Grid       WhackGrid        `yaml:"grid" toml:"grid"`
	Droid      WhackDroid       `yaml:"droid" toml:"droid"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WhackGrid defines the hole layout.
type WhackGrid struct {
	Rows int `yaml:"rows" toml:"rows"`
	Cols int `yaml:"cols" toml:"cols"`
}

// WhackDroid defines how long droids stay up.
type WhackDroid struct {
	MinUpMS int `yaml:"min_up_ms" toml:"min_up_ms"`
	MaxUpMS int `yaml:"max_up_ms" toml:"max_up_ms"`
	Points  int `yaml:"points" toml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`     // added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction" toml:"interval_reduction"` // ticks removed from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset rewrites a difficulty block for the preset.
// Fixed keeps the configured initial level and disables progression.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
