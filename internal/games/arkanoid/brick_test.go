package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestGridGeometry(t *testing.T) {
	g := NewGrid(BuiltinLayouts()[0], 1080, 1920)

	if g.Rows() != 5 || g.Cols() != 8 {
		t.Fatalf("grid is %dx%d", g.Rows(), g.Cols())
	}

	tests := []struct {
		row, col int
		want     core.Rect
	}{
		{0, 0, core.NewRect(27, 240, 125, 96)},
		{0, 3, core.NewRect(411, 240, 125, 96)},
		{4, 7, core.NewRect(923, 752, 125, 96)},
	}

	for _, tt := range tests {
		if got := g.At(tt.row, tt.col).Bounds; got != tt.want {
			t.Errorf("brick (%d,%d) bounds = %+v, want %+v", tt.row, tt.col, got, tt.want)
		}
	}

	if g.At(5, 0) != nil || g.At(0, -1) != nil {
		t.Error("At out of range should return nil")
	}
}

func TestBrickHit(t *testing.T) {
	bounds := core.NewRect(0, 0, 10, 10)

	blue := newBrick(bounds, TileBlue)
	blue.Hit()
	if blue.Alive {
		t.Error("one hit should destroy a blue brick")
	}

	red := newBrick(bounds, TileRed)
	red.Hit()
	if !red.Alive {
		t.Fatal("red brick should survive the first hit")
	}
	if want := core.RGB(153, 40, 40); red.Color != want {
		t.Errorf("damaged red = %s, want %s", red.Color.Hex(), want.Hex())
	}
	red.Hit()
	if red.Alive {
		t.Error("second hit should destroy a red brick")
	}

	steel := newBrick(bounds, TileSteel)
	for range 100 {
		steel.Hit()
	}
	if !steel.Alive || steel.HP != 0 {
		t.Errorf("steel after hits: alive=%v hp=%d", steel.Alive, steel.HP)
	}
}

func TestInvisibleBrick(t *testing.T) {
	b := newBrick(core.NewRect(0, 0, 10, 10), TileEmpty)
	if b.Alive || !b.Invisible() {
		t.Errorf("empty slot: alive=%v invisible=%v", b.Alive, b.Invisible())
	}
	b.Hit()
	if b.Alive {
		t.Error("hit must not revive an empty slot")
	}
}

func TestGridAllDestroyed(t *testing.T) {
	layout, err := ParseLayout("t", "Test", []string{"190"})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGrid(layout, 1080, 1920)

	if g.AllDestroyed() {
		t.Fatal("grid with a blue brick should not be cleared")
	}
	if g.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", g.Remaining())
	}

	g.At(0, 0).Hit()
	if !g.AllDestroyed() {
		t.Error("steel and empty slots should not block clearance")
	}
}

func TestGridEachRowMajor(t *testing.T) {
	g := NewGrid(BuiltinLayouts()[0], 1080, 1920)
	idx := 0
	g.Each(func(row, col int, _ *Brick) {
		if row*8+col != idx {
			t.Fatalf("visit %d was (%d,%d)", idx, row, col)
		}
		idx++
	})
	if idx != 40 {
		t.Errorf("visited %d bricks, want 40", idx)
	}
}
