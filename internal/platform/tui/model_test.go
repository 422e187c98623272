package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

type fakeGame struct {
	state   core.GameState
	steps   int
	last    core.InputSnapshot
	stopped bool
	resets  int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Step(in core.InputSnapshot) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.state}
}
func (g *fakeGame) Render(dst *core.Screen)    { dst.DrawText(0, 0, "FAKE") }
func (g *fakeGame) State() core.GameState      { return g.state }
func (g *fakeGame) Bounds() (float64, float64) { return 800, 600 }
func (g *fakeGame) Stop()                      { g.stopped = true }

var modelCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{Gen: m.gen, Time: time.Now()})
	return m
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.config.Seed == 0 || m.config.TickRate != 60 {
		t.Errorf("config = %+v, expected a seed and the default tick rate", m.config)
	}
}

func TestModelSavesScoreOncePerSession(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	m := NewModel(g, store, modelCfg)

	m = tick(t, m)
	g.state = core.GameState{Run: core.StateOver, Score: 5, Ticks: 120}
	m = tick(t, m)
	m = tick(t, m)

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 5 || scores[0].Ticks != 120 {
		t.Errorf("saved %+v", scores[0])
	}

	// Restart, then a second session ends.
	g.state = core.GameState{Run: core.StateRunning}
	m = tick(t, m)
	g.state = core.GameState{Run: core.StateOver, Score: 9}
	tick(t, m)

	scores, _ = store.TopScores("fake", 10)
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, expected 2", len(scores))
	}
	if scores[0].SessionID == scores[1].SessionID {
		t.Error("restarted session reused the session id")
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{Run: core.StateOver}}
	m := NewModel(g, store, modelCfg)
	tick(t, m)

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("HighScore() = %d, expected nothing saved", high)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, modelCfg)

	m, cmd := update(t, m, TickMsg{Gen: m.gen + 1})
	if g.steps != 0 || cmd != nil {
		t.Errorf("stale tick stepped the game (steps %d)", g.steps)
	}
	tick(t, m)
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
}

func TestModelForwardsKeys(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	m := NewModel(g, nil, modelCfg)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, runeKey('p'))
	tick(t, m)

	if !g.last.IsHeld(core.ActionJump) || !g.last.Pressed(core.ActionJump) {
		t.Error("space should reach the game held and pressed")
	}
	if !g.last.Pressed(core.ActionPause) || g.last.IsHeld(core.ActionPause) {
		t.Error("pause should reach the game as a tap")
	}
}

func TestModelBackOnlyOutsideRunning(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	m := NewModel(g, nil, modelCfg)
	m = tick(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Back while running should be ignored")
	}

	g.state.Run = core.StatePaused
	m = tick(t, m)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || !g.stopped {
		t.Error("Back while paused should leave and stop the game")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program on Back")
	}

	steps := g.steps
	tick(t, m)
	if g.steps != steps {
		t.Error("game stepped after leaving")
	}
}

func TestModelEmbeddedBackKeepsProgram(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateOver}}
	m := NewModel(g, nil, modelCfg)
	m.embedded = true
	m = tick(t, m)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd != nil {
		t.Errorf("embedded Back = %v with cmd %v", m.BackToMenu(), cmd)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	m := NewModel(g, nil, modelCfg)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil || !g.stopped {
		t.Error("q should stop the game and quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, modelCfg)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "FAKE") {
		t.Error("View() should render the game")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "NEON", core.ColorBrightCyan)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	if !strings.Contains(out, "NEON") || !strings.Contains(out, "ok") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}
