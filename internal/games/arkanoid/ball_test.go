package arkanoid

import (
	"math"
	"testing"
)

func newTestBall() *Ball {
	return NewBall(540, 1248, 36, 12, 4, 1080)
}

func TestBallLaunchVelocity(t *testing.T) {
	b := newTestBall()
	if math.Abs(b.VX-8.4) > 1e-9 || b.VY != -12 {
		t.Errorf("launch velocity = (%v,%v), want (8.4,-12)", b.VX, b.VY)
	}
	if b.Speed != 12 {
		t.Errorf("Speed = %v, want 12", b.Speed)
	}
}

func TestBallWallReflection(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"left", 40, 500, -10, 0, 36, 500, 10, 0},
		{"right", 1040, 500, 10, 0, 1044, 500, -10, 0},
		{"ceiling", 500, 40, 0, -10, 500, 36, 0, 10},
		{"exact escape margin", 48, 500, -12, 0, 36, 500, 12, 0},
		{"positive vx at left wall stays positive", 30, 500, 2, 0, 36, 500, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall()
			b.X, b.Y, b.VX, b.VY = tt.x, tt.y, tt.vx, tt.vy
			b.Update()

			if b.X != tt.wantX || b.Y != tt.wantY || b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("got pos (%v,%v) vel (%v,%v)", b.X, b.Y, b.VX, b.VY)
			}
			if !b.JustBouncedWall() {
				t.Error("expected wall bounce flag")
			}
		})
	}
}

func TestBallFloorDoesNotReflect(t *testing.T) {
	b := newTestBall()
	b.X, b.Y, b.VX, b.VY = 540, 1950, 0, 12
	b.Update()
	if b.VY != 12 || b.JustBouncedWall() {
		t.Errorf("floor reflected: vy=%v bounced=%v", b.VY, b.JustBouncedWall())
	}
}

func TestBallBounceFlagClearedOnUpdate(t *testing.T) {
	b := newTestBall()
	b.X, b.VX = 40, -10
	b.Update()
	b.Update()
	if b.JustBouncedWall() {
		t.Error("flag should clear on the next update")
	}
}

func TestBallSetAngle(t *testing.T) {
	tests := []struct {
		name   string
		hit    float64
		vy     float64
		wantVX float64
		wantVY float64
	}{
		{"left edge", 0, 12, -12, -12},
		{"right edge", 1, 12, 12, -12},
		{"center", 0.5, -9, 0, -9},
		{"shallow vy clamped", 0.25, 1.5, -6, -4},
		{"zero vy clamped", 0.75, 0, 6, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall()
			b.VY = tt.vy
			b.SetAngle(tt.hit)
			if b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("SetAngle(%v) = (%v,%v), want (%v,%v)", tt.hit, b.VX, b.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestBallSetAngleKeepsNominalVX(t *testing.T) {
	// VX tracks the base speed, not the progressed one.
	b := newTestBall()
	b.IncreaseSpeed(3)
	b.SetAngle(1)
	if b.VX != 12 {
		t.Errorf("VX = %v, want 12", b.VX)
	}
	if math.Abs(b.Magnitude()-b.Speed) < 1e-9 {
		t.Error("resultant should drift away from Speed after SetAngle")
	}
}

func TestBallIncreaseSpeed(t *testing.T) {
	b := newTestBall()
	b.VX, b.VY = 3, -4
	b.IncreaseSpeed(1.5)

	if b.Speed != 13.5 {
		t.Errorf("Speed = %v, want 13.5", b.Speed)
	}
	if math.Abs(b.Magnitude()-13.5) > 1e-9 {
		t.Errorf("magnitude = %v, want 13.5", b.Magnitude())
	}
	if math.Abs(b.VX/b.VY-(-0.75)) > 1e-9 {
		t.Error("direction not preserved")
	}
}

func TestBallIncreaseSpeedStationary(t *testing.T) {
	b := newTestBall()
	b.VX, b.VY = 0, 0
	b.IncreaseSpeed(1.5)
	if b.VX != 0 || b.VY != 0 || b.Speed != 13.5 {
		t.Errorf("stationary ball: vel (%v,%v) speed %v", b.VX, b.VY, b.Speed)
	}
}

func TestBallResetKeepsSpeed(t *testing.T) {
	b := newTestBall()
	b.IncreaseSpeed(1.5)
	b.X, b.Y = 10, 10
	b.Reset(540, 1248)
	if b.X != 540 || b.Y != 1248 || b.VY != -12 || b.Speed != 13.5 {
		t.Errorf("after reset: pos (%v,%v) vy %v speed %v", b.X, b.Y, b.VY, b.Speed)
	}
}

func TestBallBoundsTruncated(t *testing.T) {
	b := newTestBall()
	b.X, b.Y = 473.5, 288
	got := b.Bounds()
	if got.X != 437 || got.Y != 252 || got.Right() != 509 || got.Bottom() != 324 {
		t.Errorf("bounds = %+v", got)
	}
}

func TestPaddleMoveToClamps(t *testing.T) {
	p := NewPaddle(432, 1632, 216, 54, 1080)

	tests := []struct {
		target, want float64
	}{
		{-500, 0},
		{100, 100},
		{864, 864},
		{5000, 864},
	}

	for _, tt := range tests {
		p.MoveTo(tt.target)
		if p.X != tt.want {
			t.Errorf("MoveTo(%v) = %v, want %v", tt.target, p.X, tt.want)
		}
	}
}
