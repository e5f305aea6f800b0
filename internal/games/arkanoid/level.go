// Package arkanoid implements a single-screen brick breaker: five fixed
// layouts, progressive ball speed, steel bricks and a lives counter.
package arkanoid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Tile is a layout code for one grid slot.
type Tile uint8

const (
	TileEmpty  Tile = 0 // Invisible slot
	TileBlue   Tile = 1
	TileGreen  Tile = 2
	TileYellow Tile = 3
	TileOrange Tile = 4
	TileRed    Tile = 5
	TileSteel  Tile = 9 // Indestructible
)

// TileSpec describes the brick a tile code materializes into.
type TileSpec struct {
	Name   string
	Color  core.Color
	Points int
	HP     int
	Steel  bool
}

var tileSpecs = map[Tile]TileSpec{
	TileEmpty:  {Name: "empty", Color: core.ColorTransparent},
	TileBlue:   {Name: "blue", Color: core.RGB(0x44, 0x88, 0xFF), Points: 1, HP: 1},
	TileGreen:  {Name: "green", Color: core.RGB(0x44, 0xCC, 0x44), Points: 1, HP: 1},
	TileYellow: {Name: "yellow", Color: core.RGB(0xFF, 0xDD, 0x00), Points: 2, HP: 1},
	TileOrange: {Name: "orange", Color: core.RGB(0xFF, 0x88, 0x00), Points: 2, HP: 1},
	TileRed:    {Name: "red", Color: core.RGB(0xFF, 0x44, 0x44), Points: 3, HP: 2},
	TileSteel:  {Name: "steel", Color: core.RGB(0x88, 0x88, 0x88), Steel: true},
}

// Spec returns the brick description for a tile code.
func (t Tile) Spec() (TileSpec, bool) {
	s, ok := tileSpecs[t]
	return s, ok
}

// Layout is an immutable rows x cols matrix of tile codes.
type Layout struct {
	ID    string
	Name  string
	Tiles [][]Tile // [row][col]
}

// Rows returns the number of rows.
func (l Layout) Rows() int {
	return len(l.Tiles)
}

// Cols returns the number of columns.
func (l Layout) Cols() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Lines renders the layout back into its ASCII form, '.' for empty slots.
func (l Layout) Lines() []string {
	lines := make([]string, len(l.Tiles))
	for r, row := range l.Tiles {
		var sb strings.Builder
		for _, t := range row {
			if t == TileEmpty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + t))
		}
		lines[r] = sb.String()
	}
	return lines
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'0' or '.' = invisible slot
//	'1'-'5'    = colored brick (blue, green, yellow, orange, red)
//	'9'        = steel brick
//
// Every line must have the same length.
func ParseLayout(id, name string, lines []string) (Layout, error) {
	layout := Layout{ID: id, Name: name, Tiles: make([][]Tile, len(lines))}
	for r, line := range lines {
		if r > 0 && len(line) != len(lines[0]) {
			return Layout{}, fmt.Errorf("level %s: row %d has %d columns, want %d", id, r, len(line), len(lines[0]))
		}
		layout.Tiles[r] = make([]Tile, len(line))
		for c := range len(line) {
			ch := line[c]
			if ch == '.' {
				ch = '0'
			}
			t := Tile(ch - '0')
			if _, ok := t.Spec(); !ok || ch < '0' || ch > '9' {
				return Layout{}, fmt.Errorf("level %s: unknown tile %q at %d,%d", id, line[c], r, c)
			}
			layout.Tiles[r][c] = t
		}
	}
	return layout, nil
}

func mustParseLayout(id, name string, lines []string) Layout {
	l, err := ParseLayout(id, name, lines)
	if err != nil {
		panic(err)
	}
	return l
}

// BuiltinLayouts returns the five canonical 5x8 layouts in play order.
func BuiltinLayouts() []Layout {
	return []Layout{
		mustParseLayout("rainbow", "Rainbow", []string{
			"11111111",
			"22222222",
			"33333333",
			"44444444",
			"55555555",
		}),
		mustParseLayout("pyramid", "Pyramid", []string{
			"00055000",
			"00444400",
			"03333330",
			"22222222",
			"11111111",
		}),
		mustParseLayout("vault", "Vault", []string{
			"91111119",
			"19333391",
			"13955931",
			"13955931",
			"91111119",
		}),
		mustParseLayout("checker", "Checker", []string{
			"50505050",
			"04040404",
			"30909030",
			"02040402",
			"10101010",
		}),
		mustParseLayout("fortress", "Fortress", []string{
			"95959595",
			"54444449",
			"94933945",
			"54399349",
			"95959595",
		}),
	}
}

// LevelCatalog is an ordered, read-only sequence of layouts with a cursor.
type LevelCatalog struct {
	layouts []Layout
	cursor  int
}

// NewLevelCatalog creates a catalog over the given layouts, or the builtin
// ones when none are given.
func NewLevelCatalog(layouts ...Layout) *LevelCatalog {
	if len(layouts) == 0 {
		layouts = BuiltinLayouts()
	}
	return &LevelCatalog{layouts: layouts}
}

// Current returns the layout under the cursor.
func (c *LevelCatalog) Current() Layout {
	return c.layouts[c.cursor]
}

// Advance moves to the next layout, wrapping to the first past the last.
func (c *LevelCatalog) Advance() {
	c.cursor = (c.cursor + 1) % len(c.layouts)
}

// IsLast reports whether the cursor is on the final layout.
func (c *LevelCatalog) IsLast() bool {
	return c.cursor == len(c.layouts)-1
}

// Reset moves the cursor back to the first layout.
func (c *LevelCatalog) Reset() {
	c.cursor = 0
}

// Index returns the 0-based cursor.
func (c *LevelCatalog) Index() int {
	return c.cursor
}

// Number returns the 1-based level number.
func (c *LevelCatalog) Number() int {
	return c.cursor + 1
}

// Total returns the number of layouts.
func (c *LevelCatalog) Total() int {
	return len(c.layouts)
}

// Layouts returns a copy of the catalog's layouts.
func (c *LevelCatalog) Layouts() []Layout {
	out := make([]Layout, len(c.layouts))
	copy(out, c.layouts)
	return out
}
