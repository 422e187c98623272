package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{runeKey('f'), core.ActionFire, false},
		{runeKey('i'), core.ActionP2Up, false},
		{runeKey('k'), core.ActionP2Down, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('3'), core.ActionSlot3, false},
		{runeKey('9'), core.ActionSlot9, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
		{runeKey('0'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestInputBridgeHoldExpires(t *testing.T) {
	b := newInputBridge(150 * time.Millisecond)
	t0 := time.Unix(100, 0)

	b.Key(core.ActionLeft, t0)
	snap := b.Snapshot()
	if !snap.IsHeld(core.ActionLeft) || !snap.ConsumePress(core.ActionLeft) {
		t.Fatal("first press should hold and queue a press")
	}

	b.Expire(t0.Add(100 * time.Millisecond))
	snap = b.Snapshot()
	if !snap.IsHeld(core.ActionLeft) {
		t.Error("key released before the hold timeout")
	}

	// Auto-repeat extends the hold.
	b.Key(core.ActionLeft, t0.Add(100*time.Millisecond))
	b.Expire(t0.Add(200 * time.Millisecond))
	snap = b.Snapshot()
	if !snap.IsHeld(core.ActionLeft) {
		t.Error("repeat should extend the hold")
	}

	b.Expire(t0.Add(260 * time.Millisecond))
	snap = b.Snapshot()
	if snap.IsHeld(core.ActionLeft) {
		t.Error("key still held after the timeout without repeats")
	}
}

func TestInputBridgeRepeatsCountAsPresses(t *testing.T) {
	b := newInputBridge(0)
	t0 := time.Unix(0, 0)

	b.Key(core.ActionJump, t0)
	b.Key(core.ActionJump, t0.Add(30*time.Millisecond))
	b.Key(core.ActionJump, t0.Add(60*time.Millisecond))

	snap := b.Snapshot()
	presses := 0
	for snap.ConsumePress(core.ActionJump) {
		presses++
	}
	if presses != 3 {
		t.Errorf("presses = %d, expected 3", presses)
	}
}

func TestInputBridgeCommandsAreTaps(t *testing.T) {
	b := newInputBridge(0)
	b.Key(core.ActionPause, time.Now())
	b.Key(core.ActionSlot2, time.Now())

	snap := b.Snapshot()
	if snap.IsHeld(core.ActionPause) {
		t.Error("pause must not be held")
	}
	if !snap.ConsumePress(core.ActionPause) || !snap.ConsumePress(core.ActionSlot2) {
		t.Error("command presses missing from snapshot")
	}

	next := b.Snapshot()
	if next.Pressed(core.ActionPause) {
		t.Error("press delivered to two snapshots")
	}
}

func TestInputBridgeMouseMapsToWorld(t *testing.T) {
	b := newInputBridge(0)

	// Without a world size, pointer events are dropped.
	b.Mouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	snap := b.Snapshot()
	if _, ok := snap.PointerPosition(); ok {
		t.Fatal("pointer recorded before the screen mapping was known")
	}

	b.SetScreen(80, 24)
	b.SetWorld(800, 600)

	b.Mouse(tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	snap = b.Snapshot()
	p, ok := snap.PointerPosition()
	if !ok || p != (core.Vec{X: 405, Y: 312.5}) {
		t.Errorf("PointerPosition() = %v, %v, expected (405, 312.5)", p, ok)
	}
	if !snap.IsPointerDown() || !snap.ConsumePress(core.ActionPointer) {
		t.Error("left press should hold and queue the pointer")
	}

	b.Mouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	b.Mouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	snap = b.Snapshot()
	if snap.IsPointerDown() {
		t.Error("pointer still down after release")
	}
	if p, _ := snap.PointerPosition(); p != (core.Vec{X: 5, Y: 12.5}) {
		t.Errorf("PointerPosition() = %v, expected (5, 12.5)", p)
	}
}

func TestInputBridgeReset(t *testing.T) {
	b := newInputBridge(0)
	b.Key(core.ActionRight, time.Now())
	b.Reset()

	snap := b.Snapshot()
	if snap.IsHeld(core.ActionRight) || snap.Pressed(core.ActionRight) {
		t.Error("Reset() should drop holds and presses")
	}
}
