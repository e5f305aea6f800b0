// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in field pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromEdges creates a rectangle from its left, top, right and bottom edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Truncate snaps every edge toward zero onto the integer pixel grid.
// Hit tests use truncated boxes so that sub-pixel drift never changes
// which bricks a ball overlaps.
func (r Rect) Truncate() Rect {
	left, top := float64(int(r.X)), float64(int(r.Y))
	right, bottom := float64(int(r.Right())), float64(int(r.Bottom()))
	return RectFromEdges(left, top, right, bottom)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
