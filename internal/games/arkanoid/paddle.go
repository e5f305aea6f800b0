package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// Paddle is the player's bat. Only X moves.
type Paddle struct {
	X, Y   float64
	W, H   float64
	fieldW float64
}

// NewPaddle creates a paddle at (x, y) confined to a fieldW-wide field.
func NewPaddle(x, y, w, h float64, fieldW int) *Paddle {
	p := &Paddle{Y: y, W: w, H: h, fieldW: float64(fieldW)}
	p.MoveTo(x)
	return p
}

// MoveTo places the left edge at x, clamped to [0, fieldW-W].
func (p *Paddle) MoveTo(x float64) {
	p.X = core.ClampF(x, 0, p.fieldW-p.W)
}

// Bounds returns the paddle's truncated bounding box.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H).Truncate()
}
