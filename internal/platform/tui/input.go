package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// DefaultHoldTimeout is how long a key counts as held after its last press
// or auto-repeat. Terminals report no key releases, so holds are emulated.
const DefaultHoldTimeout = 150 * time.Millisecond

// inputBridge feeds terminal events into a core.InputState.
type inputBridge struct {
	state    *core.InputState
	hold     time.Duration
	lastSeen map[core.Action]time.Time

	screenW, screenH int
	worldW, worldH   float64
}

func newInputBridge(hold time.Duration) *inputBridge {
	if hold <= 0 {
		hold = DefaultHoldTimeout
	}
	return &inputBridge{
		state:    core.NewInputState(),
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Key records a key press. Movement keys stay held until Expire sees no
// repeat within the hold timeout; other actions are one-shot taps.
func (b *inputBridge) Key(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !Holdable(a) {
		b.state.Tap(a)
		return
	}
	if _, held := b.lastSeen[a]; held {
		// Auto-repeat of a key already down: extend the hold, and still
		// count the press for games that react to every repeat.
		b.state.Tap(a)
	} else {
		b.state.Press(a)
	}
	b.lastSeen[a] = now
}

// Expire releases held keys that have not repeated within the timeout.
func (b *inputBridge) Expire(now time.Time) {
	for a, t := range b.lastSeen {
		if now.Sub(t) >= b.hold {
			b.state.Release(a)
			delete(b.lastSeen, a)
		}
	}
}

// Mouse translates a mouse event into pointer input in world coordinates.
func (b *inputBridge) Mouse(msg tea.MouseMsg) {
	p, ok := b.toWorld(msg.X, msg.Y)
	if !ok {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			b.state.PointerDown(p)
		}
	case tea.MouseActionRelease:
		b.state.PointerMove(p)
		b.state.PointerUp()
	case tea.MouseActionMotion:
		b.state.PointerMove(p)
	}
}

// toWorld maps the center of a terminal cell into world units.
func (b *inputBridge) toWorld(x, y int) (core.Vec, bool) {
	if b.screenW <= 0 || b.screenH <= 0 || b.worldW <= 0 || b.worldH <= 0 {
		return core.Vec{}, false
	}
	return core.Vec{
		X: (float64(x) + 0.5) * b.worldW / float64(b.screenW),
		Y: (float64(y) + 0.5) * b.worldH / float64(b.screenH),
	}, true
}

func (b *inputBridge) SetScreen(w, h int) {
	b.screenW, b.screenH = w, h
}

func (b *inputBridge) SetWorld(w, h float64) {
	b.worldW, b.worldH = w, h
}

// Snapshot samples the input for one tick.
func (b *inputBridge) Snapshot() core.InputSnapshot {
	return b.state.Snapshot()
}

// Reset drops every held key and queued press.
func (b *inputBridge) Reset() {
	b.state.ReleaseAll()
	clear(b.lastSeen)
}
