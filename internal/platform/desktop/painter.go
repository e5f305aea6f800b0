package desktop

import (
	"bytes"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// painter executes draw operations with ebiten's vector and text packages.
// It lives on the ebiten thread.
type painter struct {
	face   *text.GoTextFaceSource
	images map[image.Image]*ebiten.Image
}

// newPainter loads the HUD font. Without it text falls back to the debug font.
func newPainter() *painter {
	p := &painter{images: make(map[image.Image]*ebiten.Image)}
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf)); err == nil {
		p.face = src
	}
	return p
}

func f32(v float64) float32 { return float32(v) }

func (p *painter) fillCircle(dst *ebiten.Image, cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(dst, f32(cx), f32(cy), f32(r), c, true)
}

func (p *painter) fillRect(dst *ebiten.Image, r core.Rect, c core.Color) {
	vector.DrawFilledRect(dst, f32(r.X), f32(r.Y), f32(r.W), f32(r.H), c, true)
}

// fillRoundRect composes a rounded rectangle from a cross of two rects and
// four corner discs. Only opaque colors blend cleanly.
func (p *painter) fillRoundRect(dst *ebiten.Image, r core.Rect, radius float64, c core.Color) {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		p.fillRect(dst, r, c)
		return
	}
	p.fillRect(dst, core.NewRect(r.X+radius, r.Y, r.W-2*radius, r.H), c)
	p.fillRect(dst, core.NewRect(r.X, r.Y+radius, r.W, r.H-2*radius), c)
	for _, corner := range [4][2]float64{
		{r.X + radius, r.Y + radius},
		{r.Right() - radius, r.Y + radius},
		{r.X + radius, r.Bottom() - radius},
		{r.Right() - radius, r.Bottom() - radius},
	} {
		p.fillCircle(dst, corner[0], corner[1], radius, c)
	}
}

func (p *painter) strokeRect(dst *ebiten.Image, r core.Rect, width float64, c core.Color) {
	vector.StrokeRect(dst, f32(r.X), f32(r.Y), f32(r.W), f32(r.H), f32(width), c, true)
}

func (p *painter) line(dst *ebiten.Image, x0, y0, x1, y1, width float64, c core.Color) {
	vector.StrokeLine(dst, f32(x0), f32(y0), f32(x1), f32(y1), f32(width), c, true)
}

// text draws s with its baseline at y.
func (p *painter) text(dst *ebiten.Image, x, y float64, s string, size float64, align arkanoid.Align, c core.Color) {
	if p.face == nil {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y-size))
		return
	}
	face := &text.GoTextFace{Source: p.face, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-size)
	op.ColorScale.ScaleWithColor(c)
	if align == arkanoid.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

// blit scales the src region of img onto r. Source images are uploaded once.
func (p *painter) blit(dst *ebiten.Image, img image.Image, src image.Rectangle, r core.Rect) {
	if src.Empty() {
		return
	}
	eimg, ok := p.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		p.images[img] = eimg
	}
	sub, ok := eimg.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(src.Dx()), r.H/float64(src.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}
