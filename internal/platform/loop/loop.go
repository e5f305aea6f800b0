// Package loop runs a simulation at a fixed tick rate on its own goroutine.
// Each iteration drains pointer input, steps the simulation, renders into the
// host surface and sleeps out the rest of the period.
package loop

import (
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// ErrRunning is returned by Start when the loop is already active.
var ErrRunning = errors.New("loop: already running")

// Sim is the simulation driven by the loop.
type Sim interface {
	HandleEvent(ev core.PointerEvent)
	Step() core.StepResult
	Render(r arkanoid.Renderer)
}

// Surface is the host's drawing target. Lock returns ok=false when the
// surface cannot be drawn this iteration; the frame is then skipped.
type Surface interface {
	Lock() (arkanoid.Renderer, bool)
	Unlock()
}

// Config holds loop parameters.
type Config struct {
	// TickRate is iterations per second; 60 when unset.
	TickRate int
	Logger   *log.Logger

	// OnStep runs on the loop goroutine after each step.
	OnStep func(core.StepResult)
}

// Runner owns the simulation while started. Only the loop goroutine touches
// the Sim between Start and Stop.
type Runner struct {
	sim     Sim
	surface Surface
	input   *core.PointerLatch
	period  time.Duration
	onStep  func(core.StepResult)
	log     *log.Logger

	running atomic.Bool
	done    chan struct{}

	ticks   atomic.Uint64
	skipped atomic.Uint64
}

// New creates a stopped runner.
func New(sim Sim, surface Surface, input *core.PointerLatch, cfg Config) *Runner {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if input == nil {
		input = &core.PointerLatch{}
	}
	return &Runner{
		sim:     sim,
		surface: surface,
		input:   input,
		period:  time.Second / time.Duration(cfg.TickRate),
		onStep:  cfg.OnStep,
		log:     cfg.Logger,
	}
}

// Start launches the loop goroutine.
func (r *Runner) Start() error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	r.done = make(chan struct{})
	r.log.Debug("loop started", "period", r.period)
	go r.run(r.done)
	return nil
}

// Stop asks the loop to exit at the next iteration boundary and waits for
// it. After Stop returns the loop no longer touches the surface.
func (r *Runner) Stop() {
	if !r.running.CompareAndSwap(true, false) {
		return
	}
	<-r.done
	r.log.Debug("loop stopped", "ticks", r.ticks.Load(), "skipped", r.skipped.Load())
}

// Running reports whether the loop is active.
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Ticks returns the number of completed iterations.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Skipped returns the number of frames skipped because the surface was unavailable.
func (r *Runner) Skipped() uint64 {
	return r.skipped.Load()
}

func (r *Runner) run(done chan struct{}) {
	defer close(done)
	for r.running.Load() {
		start := time.Now()
		r.Iterate()
		if sleep := r.period - time.Since(start); sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

// Iterate performs one loop iteration synchronously. It must only be called
// by the goroutine that owns the Sim.
func (r *Runner) Iterate() {
	for _, ev := range r.input.Drain() {
		r.sim.HandleEvent(ev)
	}

	res := r.sim.Step()
	if r.onStep != nil {
		r.onStep(res)
	}

	if rd, ok := r.surface.Lock(); ok {
		r.sim.Render(rd)
		r.surface.Unlock()
	} else {
		r.skipped.Add(1)
	}
	r.ticks.Add(1)
}
