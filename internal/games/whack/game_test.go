package whack

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

var testCfg = core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 11}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) advance(d time.Duration) { f.now = f.now.Add(d) }

func newGame(t *testing.T) (*Game, *fakeTime) {
	t.Helper()
	src := &fakeTime{now: time.Unix(0, 0)}
	g := New()
	g.clock = src
	g.Reset(testCfg)
	return g, src
}

func started(t *testing.T) (*Game, *fakeTime) {
	t.Helper()
	g, src := newGame(t)
	g.Step(tap(core.ActionJump))
	if g.State().Run != core.StateRunning {
		t.Fatalf("Run = %v, expected running", g.State().Run)
	}
	return g, src
}

func tap(a core.Action) core.InputSnapshot {
	in := core.NewInputState()
	in.Tap(a)
	return in.Snapshot()
}

func (g *Game) droid(t *testing.T) *sim.Entity {
	t.Helper()
	d, ok := g.rules.droid(g.Controller().World())
	if !ok {
		t.Fatal("no droid up")
	}
	return d
}

func TestGridLayout(t *testing.T) {
	g, _ := newGame(t)
	w := g.Controller().World()

	if n := w.Store.Count(sim.KindTarget); n != 6 {
		t.Fatalf("holes = %d, expected 6 for a 2x3 grid", n)
	}
	first, _ := w.Store.Get(g.rules.holes[0])
	if first.Pos != (core.Vec{X: 40, Y: 76}) || first.W != 120 || first.H != 108 {
		t.Errorf("hole 0 = %v %vx%v", first.Pos, first.W, first.H)
	}
	last, _ := w.Store.Get(g.rules.holes[5])
	if last.Tag != 5 || last.Pos != (core.Vec{X: 440, Y: 256}) {
		t.Errorf("hole 5 = tag %d at %v", last.Tag, last.Pos)
	}
}

func TestNoDroidWhileIdle(t *testing.T) {
	g, _ := newGame(t)
	for range 30 {
		g.Step(core.InputSnapshot{})
	}
	if _, up := g.rules.droid(g.Controller().World()); up {
		t.Error("droid popped before start")
	}
}

func TestDroidUpTimeInRange(t *testing.T) {
	g, _ := started(t)
	d := g.droid(t)
	if d.Life < 30 || d.Life > 60 {
		t.Fatalf("Life = %d, expected 30..60 ticks", d.Life)
	}

	id, life := d.ID, d.Life
	for range life - 1 {
		g.Step(core.InputSnapshot{})
	}
	if g.droid(t).ID != id {
		t.Fatal("droid hid too early")
	}
	g.Step(core.InputSnapshot{})
	if next := g.droid(t); next.ID == id {
		t.Error("droid stayed up past its time")
	}
}

func TestNeverSameHoleTwice(t *testing.T) {
	g, _ := started(t)

	lastID := g.droid(t).ID
	lastTag := g.droid(t).Tag
	pops := 0
	for range 3000 {
		g.Step(core.InputSnapshot{})
		d := g.droid(t)
		if d.ID == lastID {
			continue
		}
		if d.Tag == lastTag {
			t.Fatalf("droid popped in hole %d twice in a row", d.Tag)
		}
		lastID, lastTag = d.ID, d.Tag
		pops++
	}
	if pops < 40 {
		t.Errorf("only %d pops in 3000 ticks", pops)
	}
}

func TestSlotKeyBonk(t *testing.T) {
	g, _ := started(t)
	d := g.droid(t)
	tag := d.Tag

	g.Step(tap(core.SlotAction(tag + 1)))

	if got := g.State().Score; got != 1 {
		t.Errorf("Score = %d, expected 1", got)
	}
	if g.rules.flash[tag] == 0 {
		t.Error("hit hole should flash")
	}
	if next := g.droid(t); next.ID == d.ID || next.Tag == tag {
		t.Errorf("expected a fresh droid in another hole, got tag %d", next.Tag)
	}
}

func TestWrongSlotMisses(t *testing.T) {
	g, _ := started(t)
	d := g.droid(t)
	other := (d.Tag+1)%6 + 1

	g.Step(tap(core.SlotAction(other)))

	if got := g.State().Score; got != 0 {
		t.Errorf("Score = %d, expected 0", got)
	}
	if g.droid(t).ID != d.ID {
		t.Error("a miss should not hide the droid")
	}
}

func TestPointerBonk(t *testing.T) {
	g, _ := started(t)
	d := g.droid(t)

	in := core.NewInputState()
	in.PointerDown(d.Center())
	g.Step(in.Snapshot())
	if got := g.State().Score; got != 1 {
		t.Errorf("Score = %d, expected 1 after clicking the droid", got)
	}

	// Clicking empty ground scores nothing.
	in.PointerUp()
	in.PointerDown(core.Vec{X: 5, Y: 5})
	g.Step(in.Snapshot())
	if got := g.State().Score; got != 1 {
		t.Errorf("Score = %d, expected a miss to score nothing", got)
	}
}

func TestQueuedClicksKeepPositions(t *testing.T) {
	g, _ := started(t)
	d := g.droid(t)

	w := g.Controller().World()
	empty, ok := w.Store.Get(g.rules.holes[(d.Tag+1)%len(g.rules.holes)])
	if !ok {
		t.Fatal("hole missing")
	}

	// Both clicks land in one tick: the droid first, then an empty hole.
	in := core.NewInputState()
	in.PointerDown(d.Center())
	in.PointerUp()
	in.PointerDown(empty.Center())
	g.Step(in.Snapshot())
	if got := g.State().Score; got != 1 {
		t.Errorf("Score = %d, expected 1 for the click on the droid", got)
	}
}

func TestRoundEndsAfterThirtySeconds(t *testing.T) {
	g, src := started(t)

	src.advance(29 * time.Second)
	g.Step(core.InputSnapshot{})
	if g.State().Run != core.StateRunning || g.State().TimeRemaining != 1 {
		t.Fatalf("State = %+v, expected running with 1s left", g.State())
	}

	src.advance(time.Second)
	g.Step(core.InputSnapshot{})
	if g.State().Run != core.StateOver {
		t.Fatalf("Run = %v, expected over", g.State().Run)
	}

	screen := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TIME UP") {
		t.Errorf("overlay missing:\n%s", screen.String())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []int {
		g, _ := started(t)
		var tags []int
		for i := range 600 {
			if i%25 == 0 {
				g.Step(tap(core.SlotAction(i%6 + 1)))
			} else {
				g.Step(core.InputSnapshot{})
			}
			tags = append(tags, g.droid(t).Tag)
		}
		return append(tags, g.State().Score)
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at %d: %d vs %d", i, a[i], b[i])
		}
	}
}
