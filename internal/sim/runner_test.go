package sim

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerTicksUntilStopped(t *testing.T) {
	var count atomic.Int64
	r := NewRunner(200, func() { count.Add(1) }, nil)
	r.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if count.Load() < 3 {
		t.Fatalf("runner delivered %d ticks, expected at least 3", count.Load())
	}

	r.Stop()
	stopped := count.Load()
	if r.Running() {
		t.Error("Running() should be false after Stop")
	}
	if uint64(stopped) != r.Ticks() {
		t.Errorf("Ticks() = %d, expected %d", r.Ticks(), stopped)
	}

	time.Sleep(50 * time.Millisecond)
	if count.Load() != stopped {
		t.Errorf("step ran after Stop: %d -> %d", stopped, count.Load())
	}

	// Stop is idempotent.
	r.Stop()
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(200, func() {}, nil)
	r.Start(ctx)
	cancel()

	deadline := time.Now().Add(time.Second)
	for r.Running() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if r.Running() {
		t.Error("runner should stop when its context is cancelled")
	}
	r.Stop()
}

func TestRunnerDoExcludesSteps(t *testing.T) {
	var inStep atomic.Bool
	var overlap atomic.Bool
	r := NewRunner(500, func() {
		inStep.Store(true)
		time.Sleep(time.Millisecond)
		inStep.Store(false)
	}, nil)
	r.Start(context.Background())
	defer r.Stop()

	for i := 0; i < 20; i++ {
		r.Do(func() {
			if inStep.Load() {
				overlap.Store(true)
			}
		})
		time.Sleep(time.Millisecond)
	}
	if overlap.Load() {
		t.Error("Do ran while a step was executing")
	}
}
