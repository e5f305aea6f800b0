package arkanoid

import (
	"errors"
	"image"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

type playedCue struct {
	cue    Cue
	volume float64
}

type fakeAudio struct {
	played []playedCue
}

func (f *fakeAudio) Play(cue Cue, volume float64) {
	f.played = append(f.played, playedCue{cue, volume})
}

func (f *fakeAudio) cues() []Cue {
	out := make([]Cue, len(f.played))
	for i, p := range f.played {
		out[i] = p.cue
	}
	return out
}

func (f *fakeAudio) reset() { f.played = nil }

type memStore struct {
	values  map[string]int
	failGet bool
	failPut bool
	puts    int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]int{}}
}

func (m *memStore) GetInt(key string, def int) (int, error) {
	if m.failGet {
		return def, errors.New("store offline")
	}
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *memStore) PutInt(key string, value int) error {
	if m.failPut {
		return errors.New("disk full")
	}
	m.puts++
	m.values[key] = value
	return nil
}

type recordRenderer struct {
	ops []string
}

func (r *recordRenderer) record(op string) { r.ops = append(r.ops, op) }

func (r *recordRenderer) Clear(core.Color) { r.record("clear") }

func (r *recordRenderer) FillCircle(_, _, _ float64, _ core.Color) { r.record("circle") }

func (r *recordRenderer) FillRoundRect(core.Rect, float64, core.Color) { r.record("fill") }

func (r *recordRenderer) StrokeRoundRect(core.Rect, float64, float64, core.Color) {
	r.record("stroke")
}

func (r *recordRenderer) Line(_, _, _, _, _ float64, _ core.Color) { r.record("line") }

func (r *recordRenderer) Point(_, _, _ float64, _ core.Color) { r.record("point") }

func (r *recordRenderer) Text(_, _ float64, _ string, _ float64, _ Align, _ core.Color) {
	r.record("text")
}

func (r *recordRenderer) Overlay(core.Rect, core.Color) { r.record("overlay") }

func (r *recordRenderer) Blit(image.Image, image.Rectangle, core.Rect) { r.record("blit") }

func (r *recordRenderer) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (r *recordRenderer) first(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func (r *recordRenderer) last(op string) int {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.ops[i] == op {
			return i
		}
	}
	return -1
}

type testRig struct {
	e     *Engine
	audio *fakeAudio
	store *memStore
}

func newRig(mutate ...func(*config.ArkanoidConfig)) testRig {
	cfg := config.DefaultArkanoidConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	rt := core.DefaultConfig()
	rt.Seed = 42

	audio := &fakeAudio{}
	store := newMemStore()
	e := New(cfg, rt, Options{Audio: audio, Store: store})
	return testRig{e: e, audio: audio, store: store}
}

// launch moves the engine from WAITING to PLAYING.
func (r testRig) launch() {
	r.e.HandleEvent(core.Down(0, 0))
}

// strike aims the ball straight up so that after one tick it sits on the
// center of brick (row, col), then steps once.
func (r testRig) strike(row, col int) core.StepResult {
	b := r.e.grid.At(row, col)
	cx, cy := b.Center()
	ball := r.e.ball
	ball.X, ball.Y = cx, cy+12
	ball.VX, ball.VY = 0, -12
	return r.e.Step()
}

// loadLevel jumps straight to a level with the current score and lives.
func (r testRig) loadLevel(index int) {
	r.e.catalog.Reset()
	for range index {
		r.e.catalog.Advance()
	}
	r.e.initLevel()
}

// killAllBut marks every destructible brick dead except (row, col).
func (r testRig) killAllBut(row, col int) {
	r.e.grid.Each(func(rr, cc int, b *Brick) {
		if b.Kind == BrickNormal && (rr != row || cc != col) {
			b.Alive = false
		}
	})
}
