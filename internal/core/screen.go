package core

import (
	"strings"
)

// Cell is one character cell of a Screen.
type Cell struct {
	Rune rune
	FG   Color // Foreground; ColorTransparent means terminal default
	BG   Color // Background; ColorTransparent means terminal default
}

// blankCell is the value every cell holds after Clear.
var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer for text-mode rendering.
// It decouples drawing from the terminal, allowing the canvas to draw with
// simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear resets every cell to a blank with default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// inBounds reports whether (x, y) addresses a cell.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell replaces a whole cell. Out-of-bounds coordinates are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Paint sets the background color of a cell and blanks its glyph.
func (s *Screen) Paint(x, y int, bg Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: ' ', BG: bg}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in the given
// foreground color, keeping existing backgrounds so text can sit on bricks.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			s.cells[y][x+i].Rune = r
			s.cells[y][x+i].FG = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered on column cx at row y.
func (s *Screen) DrawTextCentered(cx, y int, text string, fg Color) {
	x := cx - len([]rune(text))/2
	s.DrawText(x, y, text, fg)
}

// BoxStyle is the glyph set of a box outline.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	BoxSquare  = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}
	BoxRounded = BoxStyle{'╭', '╮', '╰', '╯', '─', '│'}
)

// DrawBox outlines the w x h area at (x0, y0) in the given style and color.
// Cell backgrounds are kept.
func (s *Screen) DrawBox(x0, y0, w, h int, style BoxStyle, fg Color) {
	right, bottom := x0+w-1, y0+h-1

	put := func(x, y int, r rune) {
		if s.inBounds(x, y) {
			s.cells[y][x].Rune = r
			s.cells[y][x].FG = fg
		}
	}

	put(x0, y0, style.TopLeft)
	put(right, y0, style.TopRight)
	put(x0, bottom, style.BottomLeft)
	put(right, bottom, style.BottomRight)

	for x := x0 + 1; x < right; x++ {
		put(x, y0, style.Horizontal)
		put(x, bottom, style.Horizontal)
	}
	for y := y0 + 1; y < bottom; y++ {
		put(x0, y, style.Vertical)
		put(right, y, style.Vertical)
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
