package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// Star is one background point.
type Star struct {
	X, Y float64
}

// Starfield is the decorative background, sampled once per level.
type Starfield struct {
	Stars []Star
}

// NewStarfield samples n points uniformly on integer pixels of the field.
func NewStarfield(rng *core.SimpleRNG, n, fieldW, fieldH int) *Starfield {
	sf := &Starfield{Stars: make([]Star, n)}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X: float64(rng.Intn(fieldW)),
			Y: float64(rng.Intn(fieldH)),
		}
	}
	return sf
}
