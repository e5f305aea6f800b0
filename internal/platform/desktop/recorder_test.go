package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/loop"
)

func newEngine() *arkanoid.Engine {
	rt := core.RuntimeConfig{FieldW: 1080, FieldH: 1920, TickRate: 60, Seed: 7}
	return arkanoid.New(config.DefaultArkanoidConfig(), rt, arkanoid.Options{})
}

func TestSurfaceSkipsUntilReady(t *testing.T) {
	s := NewSurface()
	_, ok := s.Lock()
	assert.False(t, ok, "no frames before the window is shown")

	s.SetReady(true)
	r, ok := s.Lock()
	require.True(t, ok)
	assert.NotNil(t, r)
	s.Unlock()
	assert.Equal(t, uint64(1), s.Frames())

	s.SetReady(false)
	_, ok = s.Lock()
	assert.False(t, ok, "minimized window skips frames")
}

func TestSurfaceRecordsEngineFrame(t *testing.T) {
	s := NewSurface()
	s.SetReady(true)
	e := newEngine()

	r, ok := s.Lock()
	require.True(t, ok)
	e.Render(r)
	assert.Equal(t, 0, s.frontLen(), "frame is not visible before Unlock")
	s.Unlock()

	n := s.frontLen()
	// Clear, 80 stars, bricks with strokes, paddle, ball, HUD, overlay.
	assert.Greater(t, n, 100)

	// Recording the next frame leaves the published one intact.
	r, ok = s.Lock()
	require.True(t, ok)
	r.Clear(core.ColorBlack)
	assert.Equal(t, n, s.frontLen())
	s.Unlock()
	assert.Equal(t, 1, s.frontLen())
}

func TestSurfaceWithLoop(t *testing.T) {
	s := NewSurface()
	e := newEngine()
	runner := loop.New(e, s, nil, loop.Config{})

	runner.Iterate()
	assert.Equal(t, uint64(1), runner.Skipped())

	s.SetReady(true)
	runner.Iterate()
	assert.Equal(t, uint64(1), s.Frames())
}

func TestWindowLayout(t *testing.T) {
	w := newWindow(NewSurface(), &core.PointerLatch{}, 1080, 1920)
	gotW, gotH := w.Layout(400, 300)
	assert.Equal(t, 1080, gotW)
	assert.Equal(t, 1920, gotH)
	assert.Equal(t, 540.0, w.pointerX)
}
