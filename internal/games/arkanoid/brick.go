package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// BrickKind distinguishes the three brick variants.
type BrickKind int

const (
	BrickEmpty  BrickKind = iota // Invisible slot, never collides
	BrickNormal                  // Destroyed when HP reaches zero
	BrickSteel                   // Indestructible
)

// Brick is a single grid slot.
type Brick struct {
	Bounds core.Rect
	Kind   BrickKind
	Tile   Tile
	Color  core.Color // Current fill, darkened on damage
	Points int
	HP     int
	Alive  bool
}

func newBrick(bounds core.Rect, t Tile) Brick {
	spec, _ := t.Spec()
	b := Brick{
		Bounds: bounds,
		Tile:   t,
		Color:  spec.Color,
		Points: spec.Points,
		HP:     spec.HP,
	}
	switch {
	case t == TileEmpty:
		b.Kind = BrickEmpty
	case spec.Steel:
		b.Kind = BrickSteel
		b.Alive = true
	default:
		b.Kind = BrickNormal
		b.Alive = true
	}
	return b
}

// Hit applies one strike. Steel bricks ignore it; a surviving normal brick
// darkens to 60% per channel.
func (b *Brick) Hit() {
	if b.Kind != BrickNormal || !b.Alive {
		return
	}
	b.HP--
	if b.HP <= 0 {
		b.Alive = false
		return
	}
	b.Color = b.Color.Scale(6, 10)
}

// Steel reports whether the brick is indestructible.
func (b *Brick) Steel() bool { return b.Kind == BrickSteel }

// Invisible reports whether the brick is an empty slot.
func (b *Brick) Invisible() bool { return b.Kind == BrickEmpty }

// Center returns the brick's center point.
func (b *Brick) Center() (float64, float64) {
	return b.Bounds.Center()
}

// HitBox returns the bounds used for collision.
func (b *Brick) HitBox() core.Rect {
	return b.Bounds.Truncate()
}

// Grid is the materialized brick field of one level.
type Grid struct {
	rows, cols int
	bricks     []Brick // Row-major
}

// NewGrid lays out a level's bricks on a fieldW x fieldH field.
// All sizes use integer pixel arithmetic.
func NewGrid(layout Layout, fieldW, fieldH int) *Grid {
	rows, cols := layout.Rows(), layout.Cols()
	g := &Grid{rows: rows, cols: cols, bricks: make([]Brick, 0, rows*cols)}
	if rows == 0 || cols == 0 {
		return g
	}

	margin := fieldW / 40
	top := fieldH / 8
	bw := (fieldW-margin*2)/cols - margin/cols
	bh := fieldH / 20
	gapX := 0
	if cols > 1 {
		gapX = (fieldW - margin*2 - bw*cols) / (cols - 1)
	}
	gapY := bh / 3

	for r := range rows {
		for c := range cols {
			x := margin + c*(bw+gapX)
			y := top + r*(bh+gapY)
			bounds := core.NewRect(float64(x), float64(y), float64(bw), float64(bh))
			g.bricks = append(g.bricks, newBrick(bounds, layout.Tiles[r][c]))
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the brick at (row, col), or nil when out of range.
func (g *Grid) At(row, col int) *Brick {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return &g.bricks[row*g.cols+col]
}

// Each calls fn for every brick in row-major order.
func (g *Grid) Each(fn func(row, col int, b *Brick)) {
	for i := range g.bricks {
		fn(i/g.cols, i%g.cols, &g.bricks[i])
	}
}

// Remaining counts destructible bricks still alive.
func (g *Grid) Remaining() int {
	n := 0
	for i := range g.bricks {
		if g.bricks[i].Kind == BrickNormal && g.bricks[i].Alive {
			n++
		}
	}
	return n
}

// AllDestroyed reports whether every non-steel, non-invisible brick is dead.
func (g *Grid) AllDestroyed() bool {
	return g.Remaining() == 0
}
