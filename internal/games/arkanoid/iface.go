package arkanoid

import (
	"image"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Align selects text anchoring.
type Align int

const (
	AlignLeft   Align = iota // x is the left edge
	AlignCenter              // x is the horizontal center
)

// Renderer is the drawing surface the engine paints one frame onto.
// Coordinates are field pixels; colors are ARGB.
type Renderer interface {
	Clear(c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
	FillRoundRect(r core.Rect, radius float64, c core.Color)
	StrokeRoundRect(r core.Rect, radius, width float64, c core.Color)
	Line(x0, y0, x1, y1, width float64, c core.Color)
	Point(x, y, size float64, c core.Color)
	// Text draws s with its baseline at y.
	Text(x, y float64, s string, size float64, align Align, c core.Color)
	// Overlay fills r with a translucent color blended over what is drawn.
	Overlay(r core.Rect, c core.Color)
	// Blit copies src from img scaled into dst.
	Blit(img image.Image, src image.Rectangle, dst core.Rect)
}

// Cue names a fire-and-forget sound effect.
type Cue int

const (
	CueBouncePaddle Cue = iota
	CueBounceWall
	CueBlockHit
	CueBlockBreak
	CueSteelHit
)

// Cues lists every cue in declaration order.
var Cues = []Cue{CueBouncePaddle, CueBounceWall, CueBlockHit, CueBlockBreak, CueSteelHit}

// String returns the cue's config key.
func (c Cue) String() string {
	switch c {
	case CueBouncePaddle:
		return "bounce_paddle"
	case CueBounceWall:
		return "bounce_wall"
	case CueBlockHit:
		return "block_hit"
	case CueBlockBreak:
		return "block_break"
	case CueSteelHit:
		return "steel_hit"
	default:
		return "unknown"
	}
}

// Volume returns the cue's default playback volume.
func (c Cue) Volume() float64 {
	switch c {
	case CueBounceWall:
		return 0.8
	case CueBlockHit:
		return 0.9
	default:
		return 1.0
	}
}

// AudioSink plays cues. Play must not block; dropped cues are acceptable.
type AudioSink interface {
	Play(cue Cue, volume float64)
}

// KeyValueStore persists small integers.
type KeyValueStore interface {
	GetInt(key string, def int) (int, error)
	PutInt(key string, value int) error
}

// Keys used by the engine in its store.
const (
	PrefsNamespace = "arkanoid_prefs"
	HighScoreKey   = "high_score"
)

type nopAudio struct{}

func (nopAudio) Play(Cue, float64) {}
