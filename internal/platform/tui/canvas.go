package tui

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// cellAspect is the height:width ratio of a terminal cell.
const cellAspect = 2.0

// viewport maps field pixels onto a block of terminal cells.
type viewport struct {
	ox, oy int     // Top-left cell of the field
	w, h   int     // Size in cells
	sx, sy float64 // Cells per field pixel
}

// fitViewport sizes the largest field-shaped block that fits in cols x rows,
// centered horizontally and vertically.
func fitViewport(fieldW, fieldH float64, cols, rows int) viewport {
	if cols <= 0 || rows <= 0 || fieldW <= 0 || fieldH <= 0 {
		return viewport{}
	}
	h := rows
	w := int(math.Round(float64(h) * fieldW / fieldH * cellAspect))
	if w > cols {
		w = cols
		h = min(rows, int(math.Round(float64(w)*fieldH/fieldW/cellAspect)))
	}
	if w <= 0 || h <= 0 {
		return viewport{}
	}
	return viewport{
		ox: (cols - w) / 2,
		oy: (rows - h) / 2,
		w:  w,
		h:  h,
		sx: float64(w) / fieldW,
		sy: float64(h) / fieldH,
	}
}

func (v viewport) valid() bool { return v.w > 0 && v.h > 0 }

func (v viewport) col(x float64) int { return v.ox + int(math.Floor(x*v.sx)) }

func (v viewport) row(y float64) int { return v.oy + int(math.Floor(y*v.sy)) }

func (v viewport) contains(col, row int) bool {
	return col >= v.ox && col < v.ox+v.w && row >= v.oy && row < v.oy+v.h
}

// center returns the field position of a cell's center.
func (v viewport) center(col, row int) (float64, float64) {
	return (float64(col-v.ox) + 0.5) / v.sx, (float64(row-v.oy) + 0.5) / v.sy
}

// span returns the inclusive cell range touched by r, clipped to the
// viewport. Empty when c0 > c1 or r0 > r1.
func (v viewport) span(r core.Rect) (c0, r0, c1, r1 int) {
	c0 = max(v.col(r.X), v.ox)
	r0 = max(v.row(r.Y), v.oy)
	c1 = min(v.ox+int(math.Ceil(r.Right()*v.sx))-1, v.ox+v.w-1)
	r1 = min(v.oy+int(math.Ceil(r.Bottom()*v.sy))-1, v.oy+v.h-1)
	return c0, r0, c1, r1
}

// Canvas is the terminal drawing surface. The simulation goroutine draws
// into it between Lock and Unlock; the UI goroutine reads the last finished
// frame with Frame.
type Canvas struct {
	mu     sync.Mutex
	fieldW float64
	fieldH float64
	cols   int
	rows   int
	view   viewport
	screen *core.Screen
	frame  string
	plain  string
}

// NewCanvas creates a canvas for a field of the given size. It has no cells
// until Resize is called, so frames are skipped until then.
func NewCanvas(fieldW, fieldH int) *Canvas {
	return &Canvas{
		fieldW: float64(fieldW),
		fieldH: float64(fieldH),
		screen: core.NewScreen(0, 0),
	}
}

// Resize sets the number of cells available to the field.
func (c *Canvas) Resize(cols, rows int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.view = fitViewport(c.fieldW, c.fieldH, c.cols, c.rows)
	c.screen.Resize(c.cols, c.rows)
	if !c.view.valid() {
		c.frame, c.plain = "", ""
	}
}

// Lock implements loop.Surface. It reports false while the terminal is too
// small to hold the field.
func (c *Canvas) Lock() (arkanoid.Renderer, bool) {
	c.mu.Lock()
	if !c.view.valid() {
		c.mu.Unlock()
		return nil, false
	}
	c.screen.Clear()
	return &cellRenderer{s: c.screen, v: c.view}, true
}

// Unlock implements loop.Surface and publishes the drawn frame.
func (c *Canvas) Unlock() {
	c.frame = RenderScreen(c.screen)
	c.plain = c.screen.String()
	c.mu.Unlock()
}

// Frame returns the last published frame with ANSI styling.
func (c *Canvas) Frame() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Plain returns the last published frame without styling.
func (c *Canvas) Plain() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plain
}

// ToField converts a terminal cell to field coordinates, clamped to the
// field. ok is false when the canvas has no viewport.
func (c *Canvas) ToField(col, row int) (x, y float64, ok bool) {
	c.mu.Lock()
	v := c.view
	c.mu.Unlock()
	if !v.valid() {
		return 0, 0, false
	}
	x, y = v.center(col, row)
	return core.ClampF(x, 0, c.fieldW), core.ClampF(y, 0, c.fieldH), true
}

// cellRenderer rasterizes draw calls onto screen cells by sampling each
// cell's center.
type cellRenderer struct {
	s *core.Screen
	v viewport
}

var _ arkanoid.Renderer = (*cellRenderer)(nil)

func (cr *cellRenderer) Clear(c core.Color) {
	bg := opaque(c)
	for row := cr.v.oy; row < cr.v.oy+cr.v.h; row++ {
		for col := cr.v.ox; col < cr.v.ox+cr.v.w; col++ {
			cr.s.Paint(col, row, bg)
		}
	}
}

func (cr *cellRenderer) FillCircle(cx, cy, r float64, c core.Color) {
	bounds := core.NewRect(cx-r, cy-r, 2*r, 2*r)
	cr.fill(bounds, cx, cy, c, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	})
}

func (cr *cellRenderer) FillRoundRect(r core.Rect, radius float64, c core.Color) {
	cx, cy := r.Center()
	cr.fill(r, cx, cy, c, func(x, y float64) bool {
		return insideRoundRect(x, y, r, radius)
	})
}

// StrokeRoundRect outlines r with rounded box glyphs. The stroke color is
// blended over the background at the center of r. Shapes narrower than three
// cells are left unstroked.
func (cr *cellRenderer) StrokeRoundRect(r core.Rect, _, _ float64, c core.Color) {
	c0, r0, c1, r1 := cr.v.span(r)
	if c1-c0 < 2 || r1-r0 < 2 {
		return
	}
	fg := blend(cr.s.GetCell((c0+c1)/2, (r0+r1)/2).BG, c)
	cr.s.DrawBox(c0, r0, c1-c0+1, r1-r0+1, core.BoxRounded, fg)
}

func (cr *cellRenderer) Line(x0, y0, x1, y1, _ float64, c core.Color) {
	ca, ra := cr.v.col(x0), cr.v.row(y0)
	cb, rb := cr.v.col(x1), cr.v.row(y1)
	g := lineGlyph(x1-x0, (y1-y0)/cellAspect)

	n := max(core.Abs(cb-ca), core.Abs(rb-ra))
	if n == 0 {
		cr.mergeGlyph(ca, ra, g, c)
		return
	}
	for i := 0; i <= n; i++ {
		col := ca + int(math.Round(float64(i*(cb-ca))/float64(n)))
		row := ra + int(math.Round(float64(i*(rb-ra))/float64(n)))
		cr.mergeGlyph(col, row, g, c)
	}
}

func (cr *cellRenderer) Point(x, y, _ float64, c core.Color) {
	col, row := cr.v.col(x), cr.v.row(y)
	if !cr.v.contains(col, row) || cr.s.Get(col, row) != ' ' {
		return
	}
	cr.glyph(col, row, '·', c)
}

// Text treats y as the baseline of text of the given pixel size.
func (cr *cellRenderer) Text(x, y float64, s string, size float64, align arkanoid.Align, c core.Color) {
	row := cr.v.row(y - size/2)
	col := cr.v.col(x)
	fg := opaque(c)
	if align == arkanoid.AlignCenter {
		cr.s.DrawTextCentered(col, row, s, fg)
		return
	}
	cr.s.DrawText(col, row, s, fg)
}

func (cr *cellRenderer) Overlay(r core.Rect, c core.Color) {
	c0, r0, c1, r1 := cr.v.span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := cr.s.GetCell(col, row)
			cell.BG = blend(cell.BG, c)
			if cell.FG != core.ColorTransparent {
				cell.FG = blend(cell.FG, c)
			}
			cr.s.SetCell(col, row, cell)
		}
	}
}

func (cr *cellRenderer) Blit(img image.Image, src image.Rectangle, dst core.Rect) {
	if src.Empty() || dst.W <= 0 || dst.H <= 0 {
		return
	}
	c0, r0, c1, r1 := cr.v.span(dst)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := cr.v.center(col, row)
			if !dst.Contains(x, y) {
				continue
			}
			px := src.Min.X + int((x-dst.X)/dst.W*float64(src.Dx()))
			py := src.Min.Y + int((y-dst.Y)/dst.H*float64(src.Dy()))
			n, _ := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			cr.blendCell(col, row, core.ARGB(n.A, n.R, n.G, n.B))
		}
	}
}

// fill blends c into every cell whose center passes inside. A shape too small
// to cover any cell center still marks the cell under (fx, fy).
func (cr *cellRenderer) fill(bounds core.Rect, fx, fy float64, c core.Color, inside func(x, y float64) bool) {
	c0, r0, c1, r1 := cr.v.span(bounds)
	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := cr.v.center(col, row)
			if inside(x, y) {
				cr.blendCell(col, row, c)
				hit = true
			}
		}
	}
	if !hit {
		cr.blendCell(cr.v.col(fx), cr.v.row(fy), c)
	}
}

func (cr *cellRenderer) blendCell(col, row int, c core.Color) {
	if !cr.v.contains(col, row) {
		return
	}
	cell := cr.s.GetCell(col, row)
	cell.BG = blend(cell.BG, c)
	cr.s.SetCell(col, row, cell)
}

func (cr *cellRenderer) glyph(col, row int, g rune, c core.Color) {
	if !cr.v.contains(col, row) {
		return
	}
	cell := cr.s.GetCell(col, row)
	cell.Rune = g
	cell.FG = blend(cell.BG, c)
	cr.s.SetCell(col, row, cell)
}

// mergeGlyph draws g, joining crossing horizontal and vertical strokes.
func (cr *cellRenderer) mergeGlyph(col, row int, g rune, c core.Color) {
	existing := cr.s.Get(col, row)
	if (existing == '─' && g == '│') || (existing == '│' && g == '─') {
		g = '┼'
	}
	cr.glyph(col, row, g, c)
}

// lineGlyph picks a glyph for a segment with direction (dx, dy) in cell units.
func lineGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay*2 < ax:
		return '─'
	case ax*2 < ay:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func insideRoundRect(x, y float64, r core.Rect, radius float64) bool {
	if !r.Contains(x, y) {
		return false
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		return true
	}
	ix := core.ClampF(x, r.X+radius, r.Right()-radius)
	iy := core.ClampF(y, r.Y+radius, r.Bottom()-radius)
	dx, dy := x-ix, y-iy
	return dx*dx+dy*dy <= radius*radius
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}

// opaque drops the alpha channel of c.
func opaque(c core.Color) core.Color {
	return c | 0xFF000000
}

// blend composites top over base using top's alpha. A transparent base is
// treated as black.
func blend(base, top core.Color) core.Color {
	switch top.A() {
	case 0:
		return base
	case 0xFF:
		return top
	}
	if base.A() == 0 {
		base = core.ColorBlack
	}
	return fromColorful(toColorful(base).BlendRgb(toColorful(top), float64(top.A())/255))
}
