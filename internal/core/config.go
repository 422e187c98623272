package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// RunState is the lifecycle phase of a game session.
type RunState uint8

const (
	StateIdle RunState = iota
	StateRunning
	StatePaused
	StateOver
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState is the read-only session summary the platform displays and records.
type GameState struct {
	Score         int
	Health        int
	MaxHealth     int     // 0 when the game has no health
	TimeRemaining float64 // seconds; meaningful only when Timed
	Timed         bool
	Ticks         int
	Run           RunState
	Message       string // end-of-session verdict, if any
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Run == StateOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Run == StatePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Draw  []DrawCommand
}
