package arkanoid

import "math"

// Snapshot contains the engine state for determinism checks and debugging.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	LevelIndex int
	Destroyed  int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	Speed   float64

	Explosions int

	// Brick states (flattened: row*cols + col = index)
	// Each brick is 2 ints: Alive, HP
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	brickData := make([]int, 0, len(e.grid.bricks)*2)
	for _, b := range e.grid.bricks {
		alive := 0
		if b.Alive {
			alive = 1
		}
		brickData = append(brickData, alive, b.HP)
	}

	return Snapshot{
		Tick:       e.tick,
		State:      e.state.String(),
		Score:      e.score,
		Lives:      e.lives,
		LevelIndex: e.catalog.Index(),
		Destroyed:  e.destroyed,
		PaddleX:    e.paddle.X,
		BallX:      e.ball.X,
		BallY:      e.ball.Y,
		BallVX:     e.ball.VX,
		BallVY:     e.ball.VY,
		Speed:      e.ball.Speed,
		Explosions: e.explosions.Len(),
		BrickData:  brickData,
		RNGState:   e.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range []byte(snap.State) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Explosions) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Speed} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
