package arkanoid

import (
	"image"
	"testing"
)

func TestExplosionLifecycle(t *testing.T) {
	a := NewExplosionAnimator()
	a.Start(100, 200)

	for tick := 1; tick <= 11; tick++ {
		a.Update()
		if a.Len() != 1 {
			t.Fatalf("tick %d: explosion removed early", tick)
		}
		wantFrame := tick / ExplosionTicksPerFrame
		if got := a.Active()[0].Frame; got != wantFrame {
			t.Errorf("tick %d: frame = %d, want %d", tick, got, wantFrame)
		}
	}

	a.Update()
	if a.Len() != 0 {
		t.Errorf("explosion should be removed after 12 ticks, %d left", a.Len())
	}
}

func TestExplosionsIndependent(t *testing.T) {
	a := NewExplosionAnimator()
	a.Start(0, 0)
	for range 6 {
		a.Update()
	}
	a.Start(50, 50)
	for range 6 {
		a.Update()
	}

	active := a.Active()
	if len(active) != 1 {
		t.Fatalf("expected the second explosion to survive, got %d", len(active))
	}
	if active[0].X != 50 || active[0].Frame != 1 {
		t.Errorf("survivor = %+v", active[0])
	}
}

func TestExplosionDest(t *testing.T) {
	e := Explosion{X: 473.5, Y: 288}
	d := e.Dest()
	if d.X != 433.5 || d.Y != 248 || d.W != 80 || d.H != 80 {
		t.Errorf("Dest() = %+v", d)
	}
}

func TestSpriteSheetFrames(t *testing.T) {
	s := NewSpriteSheet()

	if got := s.Image().Bounds(); got != image.Rect(0, 0, 256, 64) {
		t.Fatalf("sheet bounds = %v", got)
	}
	if got := s.ExplosionFrame(Explosion{Frame: 0}); got != image.Rect(64, 0, 128, 64) {
		t.Errorf("explosion frame 0 maps to %v, want sheet frame 1", got)
	}

	tests := []struct {
		name       string
		x, y       int
		r, g, b, a uint8
	}{
		{"ball center", 32, 32, 0xFF, 0xFF, 0xFF, 0xFF},
		{"ball corner empty", 1, 1, 0, 0, 0, 0},
		{"small explosion core", 96, 32, 0xFF, 0xFF, 0x00, 0xFF},
		{"small explosion ring", 96 + 20, 32, 0xFF, 0x66, 0x00, 0xFF},
		{"medium explosion core", 160, 32, 0xFF, 0x88, 0x00, 0xFF},
		{"fading explosion", 224, 32, 0xFF, 0x22, 0x00, 0x44},
	}

	img := s.Image().(*image.NRGBA)
	for _, tt := range tests {
		c := img.NRGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("%s: pixel (%d,%d) = %+v", tt.name, tt.x, tt.y, c)
		}
	}
}
