// Package desktop hosts the game in a native window through ebiten. The
// simulation keeps running on the loop goroutine; it records each frame as
// a list of draw operations that ebiten replays on its own thread.
package desktop

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// drawOp paints one recorded call onto the window.
type drawOp func(dst *ebiten.Image, p *painter)

// Surface is a double-buffered display list. The loop goroutine records into
// the back buffer; Present hands the latest finished frame to ebiten.
type Surface struct {
	mu     sync.Mutex
	ready  bool // Set once the window has a size
	back   []drawOp
	front  []drawOp
	frames uint64
}

// NewSurface creates a surface that skips frames until SetReady(true).
func NewSurface() *Surface {
	return &Surface{}
}

// SetReady marks whether the window can currently show frames.
func (s *Surface) SetReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

// Lock implements loop.Surface.
func (s *Surface) Lock() (arkanoid.Renderer, bool) {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()
	if !ready {
		return nil, false
	}
	s.back = s.back[:0]
	return (*recorder)(s), true
}

// Unlock implements loop.Surface and publishes the recorded frame.
func (s *Surface) Unlock() {
	s.mu.Lock()
	s.back, s.front = s.front, s.back
	s.frames++
	s.mu.Unlock()
}

// Frames returns how many frames have been published.
func (s *Surface) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// present replays the latest frame. Called on the ebiten thread.
func (s *Surface) present(dst *ebiten.Image, p *painter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range s.front {
		op(dst, p)
	}
}

// frontLen reports the size of the published frame.
func (s *Surface) frontLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.front)
}

// recorder is the Renderer handed out by Lock. Its calls only append to the
// back buffer, which the loop goroutine owns between Lock and Unlock.
type recorder Surface

var _ arkanoid.Renderer = (*recorder)(nil)

func (r *recorder) add(op drawOp) { r.back = append(r.back, op) }

func (r *recorder) Clear(c core.Color) {
	r.add(func(dst *ebiten.Image, _ *painter) { dst.Fill(c) })
}

func (r *recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) { p.fillCircle(dst, cx, cy, radius, c) })
}

func (r *recorder) FillRoundRect(rect core.Rect, radius float64, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) { p.fillRoundRect(dst, rect, radius, c) })
}

func (r *recorder) StrokeRoundRect(rect core.Rect, radius, width float64, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) { p.strokeRect(dst, rect, width, c) })
}

func (r *recorder) Line(x0, y0, x1, y1, width float64, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) { p.line(dst, x0, y0, x1, y1, width, c) })
}

func (r *recorder) Point(x, y, size float64, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) {
		p.fillRect(dst, core.NewRect(x-size/2, y-size/2, size, size), c)
	})
}

func (r *recorder) Text(x, y float64, s string, size float64, align arkanoid.Align, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) { p.text(dst, x, y, s, size, align, c) })
}

func (r *recorder) Overlay(rect core.Rect, c core.Color) {
	r.add(func(dst *ebiten.Image, p *painter) { p.fillRect(dst, rect, c) })
}

func (r *recorder) Blit(img image.Image, src image.Rectangle, rect core.Rect) {
	r.add(func(dst *ebiten.Image, p *painter) { p.blit(dst, img, src, rect) })
}
