// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Game is the interface every arcade game implements. Games hold pure
// simulation logic; the platform owns input devices, timing and the terminal.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh session. Called once at start and whenever the
	// platform wants to discard the current session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the input sampled
	// for that tick, and returns the HUD state and draw list.
	Step(in core.InputSnapshot) core.StepResult

	// Render rasterizes the latest draw list and HUD into dst.
	Render(dst *core.Screen)

	// State returns the current session summary.
	State() core.GameState

	// Bounds returns the logical world size used to map pointer input.
	Bounds() (w, h float64)

	// Stop disposes the session when the player leaves the game.
	Stop()
}

// Configurable is implemented by games that read tuning from config files.
// Configure must be called before Reset to take effect.
type Configurable interface {
	Configure(path string, preset config.DifficultyPreset) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateConfigured instantiates a game and applies a config path and
// difficulty preset when the game supports them.
func CreateConfigured(id, path string, preset config.DifficultyPreset) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(path, preset); err != nil {
			return nil, fmt.Errorf("registry: configure %s: %w", id, err)
		}
	} else if path != "" {
		return nil, fmt.Errorf("registry: game %q does not take a config file", id)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
