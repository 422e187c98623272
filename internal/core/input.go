package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space - primary action (jump, grow, start)
	ActionFire           // F - shoot
	ActionConfirm        // Enter - confirm selection / start
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
	ActionP2Up           // I - second player up
	ActionP2Down         // K - second player down
	ActionPointer        // primary pointer button
	ActionSlot1          // 1..9 - grid slots, consecutive
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Jump", "Fire", "Confirm", "Back",
	"Restart", "Quit", "Pause", "P2Up", "P2Down", "Pointer",
	"Slot1", "Slot2", "Slot3", "Slot4", "Slot5", "Slot6", "Slot7", "Slot8", "Slot9",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= 0 && a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// SlotAction returns the action for grid slot n (1-9), or ActionNone.
func SlotAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionSlot1 + Action(n-1)
}

func validAction(a Action) bool {
	return a > ActionNone && a < actionCount
}

// InputState collects input events as they arrive from the platform.
// It is safe for concurrent use; games never read it directly, only
// through the snapshot taken at the start of each tick.
type InputState struct {
	mu           sync.Mutex
	held         [actionCount]bool
	pending      [actionCount]int
	pointer      Vec
	pointerKnown bool
	clicks       []Vec
}

// NewInputState returns an empty input state.
func NewInputState() *InputState {
	return &InputState{}
}

// Press marks an action as held and queues one edge press for it.
func (s *InputState) Press(a Action) {
	if !validAction(a) {
		return
	}
	s.mu.Lock()
	s.held[a] = true
	s.pending[a]++
	s.mu.Unlock()
}

// Release clears the held flag for an action. Queued presses are kept.
func (s *InputState) Release(a Action) {
	if !validAction(a) {
		return
	}
	s.mu.Lock()
	s.held[a] = false
	s.mu.Unlock()
}

// Tap queues an edge press without changing the held flag.
func (s *InputState) Tap(a Action) {
	if !validAction(a) {
		return
	}
	s.mu.Lock()
	s.pending[a]++
	s.mu.Unlock()
}

// PointerMove records the latest pointer position in world coordinates.
func (s *InputState) PointerMove(p Vec) {
	if !p.Finite() {
		return
	}
	s.mu.Lock()
	s.pointer = p
	s.pointerKnown = true
	s.mu.Unlock()
}

// PointerDown records a button press at p. Each press keeps its own
// position until a snapshot hands it out.
func (s *InputState) PointerDown(p Vec) {
	if !p.Finite() {
		return
	}
	s.mu.Lock()
	s.pointer = p
	s.pointerKnown = true
	s.held[ActionPointer] = true
	s.pending[ActionPointer]++
	s.clicks = append(s.clicks, p)
	s.mu.Unlock()
}

// PointerUp records a button release.
func (s *InputState) PointerUp() {
	s.Release(ActionPointer)
}

// ReleaseAll clears every held flag and drops queued presses.
func (s *InputState) ReleaseAll() {
	s.mu.Lock()
	s.held = [actionCount]bool{}
	s.pending = [actionCount]int{}
	s.clicks = nil
	s.mu.Unlock()
}

// Snapshot returns the current state and moves queued presses into it.
// Each queued press is delivered to exactly one snapshot.
func (s *InputState) Snapshot() InputSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := InputSnapshot{
		held:         s.held,
		pressed:      s.pending,
		pointer:      s.pointer,
		pointerKnown: s.pointerKnown,
		clicks:       s.clicks,
	}
	s.pending = [actionCount]int{}
	s.clicks = nil
	return snap
}

// InputSnapshot is the input seen by one simulation tick.
// The zero value is a valid snapshot with nothing held or pressed.
type InputSnapshot struct {
	held         [actionCount]bool
	pressed      [actionCount]int
	pointer      Vec
	pointerKnown bool
	clicks       []Vec
}

// IsHeld reports whether the action was held when the tick started.
func (s *InputSnapshot) IsHeld(a Action) bool {
	return validAction(a) && s.held[a]
}

// ConsumePress returns true once for each press of the action queued
// before the tick started. A consumed pointer press drops its position.
func (s *InputSnapshot) ConsumePress(a Action) bool {
	if !validAction(a) || s.pressed[a] == 0 {
		return false
	}
	s.pressed[a]--
	if a == ActionPointer && len(s.clicks) > 0 {
		s.clicks = s.clicks[1:]
	}
	return true
}

// Pressed reports whether an unconsumed press is queued, without consuming it.
func (s *InputSnapshot) Pressed(a Action) bool {
	return validAction(a) && s.pressed[a] > 0
}

// PointerPosition returns the last pointer position and whether one was ever reported.
func (s *InputSnapshot) PointerPosition() (Vec, bool) {
	return s.pointer, s.pointerKnown
}

// ConsumeClick consumes one pointer press and returns where it happened.
// Presses queued without a position report the latest pointer position.
func (s *InputSnapshot) ConsumeClick() (Vec, bool) {
	p, ok := s.pointer, s.pointerKnown
	if len(s.clicks) > 0 {
		p, ok = s.clicks[0], true
	}
	if !s.ConsumePress(ActionPointer) {
		return Vec{}, false
	}
	return p, ok
}

// IsPointerDown reports whether the primary pointer button is held.
func (s *InputSnapshot) IsPointerDown() bool {
	return s.held[ActionPointer]
}
