package arkanoid

import (
	"math"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestStarfieldBoundsAndDeterminism(t *testing.T) {
	a := NewStarfield(core.NewSimpleRNG(7), 150, 1080, 1920)
	b := NewStarfield(core.NewSimpleRNG(7), 150, 1080, 1920)

	if len(a.Stars) != 150 {
		t.Fatalf("len = %d, want 150", len(a.Stars))
	}
	for i, s := range a.Stars {
		if s.X < 0 || s.X >= 1080 || s.Y < 0 || s.Y >= 1920 {
			t.Errorf("star %d out of field: %+v", i, s)
		}
		if s.X != math.Trunc(s.X) || s.Y != math.Trunc(s.Y) {
			t.Errorf("star %d not on an integer pixel: %+v", i, s)
		}
		if s != b.Stars[i] {
			t.Errorf("star %d differs for the same seed: %+v vs %+v", i, s, b.Stars[i])
		}
	}
}
