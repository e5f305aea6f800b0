package arkanoid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Palette for elements without a per-brick color.
var (
	colorBrickBorder = core.ARGB(0x44, 0xFF, 0xFF, 0xFF)
	colorSteelBorder = core.RGB(0xAA, 0xAA, 0xAA)
	colorSteelCross  = core.RGB(0xCC, 0xCC, 0xCC)
	colorPaddle      = core.RGB(0x11, 0x44, 0xFF)
	colorPaddleShine = core.RGB(0x00, 0xCC, 0xFF)
)

// HUD typography, in field pixels.
const (
	hudTextSize     = 40
	messageTextSize = 60
	messageLeading  = 75
	brickCorner     = 6
	starSize        = 2
	glowScale       = 2.5
)

// Render paints the current frame. Draw order is fixed: background, bricks,
// paddle, ball, explosions, HUD, overlay.
func (e *Engine) Render(r Renderer) {
	e.drawBackground(r)
	e.drawBricks(r)
	e.drawPaddle(r)
	e.drawBall(r)
	e.drawExplosions(r)
	e.drawHUD(r)
	e.drawOverlay(r)
}

func (e *Engine) drawBackground(r Renderer) {
	r.Clear(core.ColorBackground)
	for _, s := range e.stars.Stars {
		r.Point(s.X, s.Y, starSize, core.ColorStar)
	}
}

func (e *Engine) drawBricks(r Renderer) {
	e.grid.Each(func(_, _ int, b *Brick) {
		if !b.Alive {
			return
		}
		r.FillRoundRect(b.Bounds, brickCorner, b.Color)
		if !b.Steel() {
			r.StrokeRoundRect(b.Bounds, brickCorner, 2, colorBrickBorder)
			return
		}
		r.StrokeRoundRect(b.Bounds, brickCorner, 4, colorSteelBorder)
		cx, cy := b.Center()
		r.Line(cx-10, cy, cx+10, cy, 3, colorSteelCross)
		r.Line(cx, cy-10, cx, cy+10, 3, colorSteelCross)
	})
}

func (e *Engine) drawPaddle(r Renderer) {
	p := e.paddle
	body := core.NewRect(p.X, p.Y, p.W, p.H)
	r.FillRoundRect(body, p.H/2, colorPaddle)
	shine := core.NewRect(p.X+p.W/4, p.Y+p.H/4, p.W/2, p.H/2)
	r.FillRoundRect(shine, p.H/4, colorPaddleShine)
}

func (e *Engine) drawBall(r Renderer) {
	b := e.ball
	r.FillCircle(b.X, b.Y, b.R*glowScale, core.ColorGlow)
	r.FillCircle(b.X, b.Y, b.R, core.ColorWhite)
}

func (e *Engine) drawExplosions(r Renderer) {
	for _, ex := range e.explosions.Active() {
		r.Blit(e.sheet.Image(), e.sheet.ExplosionFrame(ex), ex.Dest())
	}
}

func (e *Engine) drawHUD(r Renderer) {
	w := float64(e.w)
	r.Text(20, 90, fmt.Sprintf("Score: %d", e.score), hudTextSize, AlignLeft, core.ColorYellow)
	r.Text(20, 135, fmt.Sprintf("Record: %d", e.highScore), hudTextSize, AlignLeft, core.ColorYellow)
	r.Text(w/2, 90, fmt.Sprintf("Level: %d/%d", e.catalog.Number(), e.catalog.Total()), hudTextSize, AlignCenter, core.ColorYellow)
	r.Text(w-200, 90, fmt.Sprintf("Lives: %d", e.lives), hudTextSize, AlignLeft, core.ColorYellow)
}

// Message returns the overlay text for the current state, or "" when none.
func (e *Engine) Message() string {
	switch e.state {
	case StateWaiting:
		return "Tap to launch"
	case StateGameOver:
		return "GAME OVER\nTap to restart"
	case StateWin:
		return "YOU WIN!\nTap to restart"
	default:
		return ""
	}
}

func (e *Engine) drawOverlay(r Renderer) {
	msg := e.Message()
	if msg == "" {
		return
	}
	w, h := float64(e.w), float64(e.h)
	r.Overlay(core.RectFromEdges(0, h*0.35, w, h*0.65), core.ColorOverlay)

	lines := strings.Split(msg, "\n")
	y := h/2 - float64(len(lines)-1)*35
	for _, line := range lines {
		r.Text(w/2, y, line, messageTextSize, AlignCenter, core.ColorWhite)
		y += messageLeading
	}
}
