package sim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Runner calls a step function on a fixed interval from its own goroutine.
// A tick that wakes after Stop has been called never runs the step.
type Runner struct {
	interval time.Duration
	step     func()
	logger   *log.Logger

	mu      sync.Mutex // held for the duration of every step
	running atomic.Bool
	ticks   atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner returns a runner that calls step tickRate times per second.
func NewRunner(tickRate int, step func(), logger *log.Logger) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		interval: time.Second / time.Duration(tickRate),
		step:     step,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the tick goroutine. It stops on Stop or when ctx is done.
func (r *Runner) Start(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	r.wg.Add(1)
	go r.loop(ctx)
	r.logger.Debug("runner started", "interval", r.interval)
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.running.Store(false)
			return
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.mu.Lock()
			if r.running.Load() {
				r.step()
				r.ticks.Add(1)
			}
			r.mu.Unlock()
		}
	}
}

// Stop halts the runner and waits for the goroutine to exit.
// When Stop returns no step is executing and none will start.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.running.Store(false)
		r.mu.Unlock()
		close(r.stopChan)
		r.wg.Wait()
		r.logger.Debug("runner stopped", "ticks", r.ticks.Load())
	})
}

// Running reports whether ticks are being delivered.
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Ticks returns the number of steps executed so far.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Do runs fn while holding the step lock, so it never overlaps a tick.
func (r *Runner) Do(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}
