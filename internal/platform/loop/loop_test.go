package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

type fakeSim struct {
	trace  []string
	events []core.PointerEvent
	steps  int
	frames int
}

func (s *fakeSim) HandleEvent(ev core.PointerEvent) {
	s.trace = append(s.trace, "event:"+ev.Kind.String())
	s.events = append(s.events, ev)
}

func (s *fakeSim) Step() core.StepResult {
	s.trace = append(s.trace, "step")
	s.steps++
	return core.StepResult{State: core.GameState{Score: s.steps}}
}

func (s *fakeSim) Render(arkanoid.Renderer) {
	s.trace = append(s.trace, "render")
	s.frames++
}

type fakeSurface struct {
	unavailable bool
	locks       int
	unlocks     int
}

func (f *fakeSurface) Lock() (arkanoid.Renderer, bool) {
	if f.unavailable {
		return nil, false
	}
	f.locks++
	return nil, true
}

func (f *fakeSurface) Unlock() { f.unlocks++ }

func TestIterateOrder(t *testing.T) {
	sim := &fakeSim{}
	surface := &fakeSurface{}
	latch := &core.PointerLatch{}
	r := New(sim, surface, latch, Config{TickRate: 60})

	latch.Publish(core.Move(100, 5))
	latch.Publish(core.Down(120, 5))
	r.Iterate()

	assert.Equal(t, []string{"event:Move", "event:Down", "step", "render"}, sim.trace)
	assert.Equal(t, 120.0, sim.events[0].X, "move carries the latest X")
	assert.Equal(t, 1, surface.locks)
	assert.Equal(t, 1, surface.unlocks)
	assert.Equal(t, uint64(1), r.Ticks())
}

func TestIterateWithoutInput(t *testing.T) {
	sim := &fakeSim{}
	r := New(sim, &fakeSurface{}, nil, Config{})

	r.Iterate()
	r.Iterate()

	assert.Equal(t, []string{"step", "render", "step", "render"}, sim.trace)
}

func TestIterateSkipsFrameWhenSurfaceUnavailable(t *testing.T) {
	sim := &fakeSim{}
	surface := &fakeSurface{unavailable: true}
	r := New(sim, surface, nil, Config{})

	r.Iterate()

	assert.Equal(t, 1, sim.steps, "simulation still advances")
	assert.Equal(t, 0, sim.frames)
	assert.Equal(t, 0, surface.unlocks)
	assert.Equal(t, uint64(1), r.Skipped())

	surface.unavailable = false
	r.Iterate()
	assert.Equal(t, 1, sim.frames)
	assert.Equal(t, uint64(1), r.Skipped())
}

func TestOnStepHook(t *testing.T) {
	var scores []int
	r := New(&fakeSim{}, &fakeSurface{}, nil, Config{
		OnStep: func(res core.StepResult) { scores = append(scores, res.State.Score) },
	})

	r.Iterate()
	r.Iterate()
	r.Iterate()

	assert.Equal(t, []int{1, 2, 3}, scores)
}

func TestStartStop(t *testing.T) {
	sim := &fakeSim{}
	surface := &fakeSurface{}
	r := New(sim, surface, nil, Config{TickRate: 500})

	require.NoError(t, r.Start())
	assert.True(t, r.Running())
	assert.ErrorIs(t, r.Start(), ErrRunning)

	assert.Eventually(t, func() bool { return r.Ticks() >= 5 }, 2*time.Second, time.Millisecond)

	r.Stop()
	assert.False(t, r.Running())

	steps := sim.steps
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, steps, sim.steps, "no iterations after Stop returns")
	assert.Equal(t, surface.locks, surface.unlocks)

	// Stop on a stopped runner is a no-op.
	r.Stop()
}

func TestRestart(t *testing.T) {
	sim := &fakeSim{}
	r := New(sim, &fakeSurface{}, nil, Config{TickRate: 500})

	require.NoError(t, r.Start())
	assert.Eventually(t, func() bool { return r.Ticks() >= 2 }, 2*time.Second, time.Millisecond)
	r.Stop()

	first := r.Ticks()
	require.NoError(t, r.Start())
	assert.Eventually(t, func() bool { return r.Ticks() >= first+2 }, 2*time.Second, time.Millisecond)
	r.Stop()
}

func TestPacing(t *testing.T) {
	r := New(&fakeSim{}, &fakeSurface{}, nil, Config{TickRate: 100})

	require.NoError(t, r.Start())
	time.Sleep(100 * time.Millisecond)
	r.Stop()

	// 100 Hz for 100ms is ~10 iterations; allow for scheduler jitter.
	assert.LessOrEqual(t, r.Ticks(), uint64(15))
	assert.GreaterOrEqual(t, r.Ticks(), uint64(3))
}
