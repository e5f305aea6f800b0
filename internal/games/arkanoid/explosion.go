package arkanoid

import (
	"image"
	"image/color"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Explosion animation timing.
const (
	ExplosionFrames        = 3  // Animated frames, sheet frames 1..3
	ExplosionTicksPerFrame = 4  // ~15 fps at 60 ticks
	ExplosionDrawSize      = 80 // Destination square in field pixels
)

// Explosion is one active destruction effect.
type Explosion struct {
	X, Y     float64
	Frame    int // 0..ExplosionFrames-1
	counter  int
	Finished bool
}

// ExplosionAnimator tracks the short-lived effects at destruction sites.
type ExplosionAnimator struct {
	active []*Explosion
}

// NewExplosionAnimator creates an empty animator.
func NewExplosionAnimator() *ExplosionAnimator {
	return &ExplosionAnimator{}
}

// Start registers a new explosion centered at (x, y).
func (a *ExplosionAnimator) Start(x, y float64) {
	a.active = append(a.active, &Explosion{X: x, Y: y})
}

// Update advances every explosion by one tick and drops finished ones.
func (a *ExplosionAnimator) Update() {
	kept := a.active[:0]
	for _, e := range a.active {
		e.counter++
		if e.counter >= ExplosionTicksPerFrame {
			e.counter = 0
			e.Frame++
			if e.Frame >= ExplosionFrames {
				e.Finished = true
				continue
			}
		}
		kept = append(kept, e)
	}
	clear(a.active[len(kept):])
	a.active = kept
}

// Active returns copies of the live explosions.
func (a *ExplosionAnimator) Active() []Explosion {
	out := make([]Explosion, len(a.active))
	for i, e := range a.active {
		out[i] = *e
	}
	return out
}

// Len returns the number of live explosions.
func (a *ExplosionAnimator) Len() int {
	return len(a.active)
}

// Clear drops every explosion.
func (a *ExplosionAnimator) Clear() {
	a.active = nil
}

// Sprite sheet geometry: 4 frames of 64x64 in one row.
const (
	SheetFrames    = 4
	SheetFrameSize = 64
)

type disc struct {
	r float64
	c core.Color
}

// sheetDiscs lists the concentric discs of each frame, outermost first.
// Frame 0 is the ball; frames 1..3 are the explosion.
var sheetDiscs = [SheetFrames][]disc{
	{{20, core.ColorWhite}},
	{{24, core.RGB(0xFF, 0x66, 0x00)}, {14, core.ColorYellow}},
	{{30, core.RGB(0xFF, 0x44, 0x00)}, {18, core.RGB(0xFF, 0x88, 0x00)}},
	{{40, core.ARGB(0x44, 0xFF, 0x22, 0x00)}},
}

// SpriteSheet is a procedurally generated bitmap of animation frames.
type SpriteSheet struct {
	img *image.NRGBA
}

// NewSpriteSheet draws the sheet.
func NewSpriteSheet() *SpriteSheet {
	img := image.NewNRGBA(image.Rect(0, 0, SheetFrames*SheetFrameSize, SheetFrameSize))
	half := float64(SheetFrameSize) / 2
	for f, discs := range sheetDiscs {
		cx := float64(f*SheetFrameSize) + half
		for _, d := range discs {
			fill := color.NRGBA{R: d.c.R(), G: d.c.G(), B: d.c.B(), A: d.c.A()}
			paintDisc(img, cx, half, d.r, fill)
		}
	}
	return &SpriteSheet{img: img}
}

// paintDisc overwrites every pixel whose center lies within r of (cx, cy).
// Pixels outside the image are clipped.
func paintDisc(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// Image returns the whole sheet.
func (s *SpriteSheet) Image() image.Image {
	return s.img
}

// Frame returns the source rectangle of sheet frame i.
func (s *SpriteSheet) Frame(i int) image.Rectangle {
	return image.Rect(i*SheetFrameSize, 0, (i+1)*SheetFrameSize, SheetFrameSize)
}

// ExplosionFrame maps an explosion's animation frame to its sheet frame.
func (s *SpriteSheet) ExplosionFrame(e Explosion) image.Rectangle {
	return s.Frame(e.Frame + 1)
}

// Dest returns the destination square for an explosion.
func (e Explosion) Dest() core.Rect {
	half := float64(ExplosionDrawSize) / 2
	return core.NewRect(e.X-half, e.Y-half, ExplosionDrawSize, ExplosionDrawSize)
}
