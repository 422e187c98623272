package sim

import (
	"testing"
	"time"
)

func TestCooldownShotCount(t *testing.T) {
	// With period K, a held trigger fires floor(T/K)+1 times in ticks 0..T.
	tests := []struct {
		period, ticks, expected int
	}{
		{10, 0, 1},
		{10, 9, 1},
		{10, 10, 2},
		{10, 25, 3},
		{1, 5, 6},
		{0, 5, 6},
	}

	for _, tc := range tests {
		c := Cooldown{Period: tc.period}
		shots := 0
		for range tc.ticks + 1 {
			if c.Fire() {
				shots++
			}
			c.Tick()
		}
		if shots != tc.expected {
			t.Errorf("period %d over %d ticks: shots = %d, expected %d", tc.period, tc.ticks, shots, tc.expected)
		}
	}
}

func TestCooldownReadyAndReset(t *testing.T) {
	c := Cooldown{Period: 3}
	if !c.Ready() || !c.Fire() {
		t.Fatal("new cooldown should be ready")
	}
	if c.Ready() || c.Fire() {
		t.Error("cooldown ready right after firing")
	}
	c.Reset()
	if !c.Ready() {
		t.Error("Reset() should make the cooldown ready")
	}
}

func TestEvery(t *testing.T) {
	tests := []struct {
		tick, n  int
		expected bool
	}{
		{0, 5, false},
		{5, 5, true},
		{6, 5, false},
		{10, 5, true},
		{3, 0, false},
		{3, -1, false},
	}
	for _, tc := range tests {
		if got := Every(tc.tick, tc.n); got != tc.expected {
			t.Errorf("Every(%d, %d) = %v, expected %v", tc.tick, tc.n, got, tc.expected)
		}
	}
}

func TestSpawnTimerFollowsInterval(t *testing.T) {
	var st SpawnTimer
	var fired []int
	for tick := 1; tick <= 20; tick++ {
		interval := 5
		if tick > 10 {
			interval = 3
		}
		if st.Step(interval) {
			fired = append(fired, tick)
		}
	}

	expected := []int{5, 10, 13, 16, 19}
	if len(fired) != len(expected) {
		t.Fatalf("fired at %v, expected %v", fired, expected)
	}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Errorf("fired at %v, expected %v", fired, expected)
			break
		}
	}
}

func TestSpawnTimerZeroIntervalFiresEveryTick(t *testing.T) {
	var st SpawnTimer
	for i := range 3 {
		if !st.Step(0) {
			t.Errorf("Step(0) #%d = false, expected true", i)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected int
	}{
		{time.Second, 60, 60},
		{500 * time.Millisecond, 60, 30},
		{200 * time.Millisecond, 60, 12},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
		{time.Second, 0, 60},
	}
	for _, tc := range tests {
		if got := Ticks(tc.d, tc.rate); got != tc.expected {
			t.Errorf("Ticks(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}
