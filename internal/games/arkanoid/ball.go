package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Ball holds the ball's kinematic state in field pixels per tick.
type Ball struct {
	X, Y   float64 // Center
	VX, VY float64
	R      float64
	Speed  float64 // Target velocity magnitude

	base        float64 // Nominal speed used by SetAngle and Reset
	minVY       float64
	fieldW      float64
	bouncedWall bool
}

// NewBall creates a ball centered at (x, y) with the launch velocity.
func NewBall(x, y, radius, baseSpeed, minVY float64, fieldW int) *Ball {
	b := &Ball{
		R:      radius,
		Speed:  baseSpeed,
		base:   baseSpeed,
		minVY:  minVY,
		fieldW: float64(fieldW),
	}
	b.Reset(x, y)
	return b
}

// Update advances one tick and reflects off the side walls and ceiling.
// Each reflection clamps the position to the wall and forces the velocity
// component to point back into the field. The floor does not reflect.
func (b *Ball) Update() {
	b.bouncedWall = false
	b.X += b.VX
	b.Y += b.VY

	if b.X-b.R <= 0 {
		b.X = b.R
		b.VX = math.Abs(b.VX)
		b.bouncedWall = true
	}
	if b.X+b.R >= b.fieldW {
		b.X = b.fieldW - b.R
		b.VX = -math.Abs(b.VX)
		b.bouncedWall = true
	}
	if b.Y-b.R <= 0 {
		b.Y = b.R
		b.VY = math.Abs(b.VY)
		b.bouncedWall = true
	}
}

// SetAngle reshapes the trajectory after a paddle strike. hit is the
// normalized contact point, 0 at the paddle's left edge and 1 at its right.
// VX takes the nominal speed scaled by the offset while VY keeps its
// magnitude, so the resultant drifts away from Speed until IncreaseSpeed.
func (b *Ball) SetAngle(hit float64) {
	n := 2*hit - 1
	b.VX = n * b.base
	b.VY = -math.Abs(b.VY)
	if math.Abs(b.VY) < b.minVY {
		b.VY = -b.minVY
	}
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// IncreaseSpeed raises the target speed and rescales the velocity to it,
// keeping the direction. A stationary ball only records the new speed.
func (b *Ball) IncreaseSpeed(delta float64) {
	b.Speed += delta
	mag := b.Magnitude()
	if mag > 0 {
		b.VX = b.VX / mag * b.Speed
		b.VY = b.VY / mag * b.Speed
	}
}

// Reset moves the ball to (x, y) with the launch angle. Speed is kept.
func (b *Ball) Reset(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0.7 * b.base
	b.VY = -b.base
}

// JustBouncedWall reports whether the last Update reflected off a wall.
func (b *Ball) JustBouncedWall() bool {
	return b.bouncedWall
}

// Magnitude returns the current velocity magnitude.
func (b *Ball) Magnitude() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Bounds returns the ball's truncated bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.RectFromEdges(b.X-b.R, b.Y-b.R, b.X+b.R, b.Y+b.R).Truncate()
}
