package arkanoid

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// State is the engine's session state.
type State int

const (
	StateWaiting  State = iota // Ball held at the reset point
	StatePlaying               // Simulation running
	StateGameOver              // Out of lives
	StateWin                   // Final level cleared
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Options carries the engine's optional collaborators.
type Options struct {
	Audio   AudioSink     // nil plays nothing
	Store   KeyValueStore // nil disables the high score
	Logger  *log.Logger   // nil discards
	Catalog *LevelCatalog // nil uses the builtin layouts
}

// Engine runs the game: collisions, scoring, lives and level progression.
// It is not safe for concurrent use; a single loop goroutine owns it.
type Engine struct {
	cfg     config.ArkanoidConfig
	runtime core.RuntimeConfig
	prog    config.Progression
	w, h    int

	audio AudioSink
	store KeyValueStore
	log   *log.Logger

	catalog    *LevelCatalog
	grid       *Grid
	ball       *Ball
	paddle     *Paddle
	explosions *ExplosionAnimator
	sheet      *SpriteSheet
	stars      *Starfield
	rng        *core.SimpleRNG

	state     State
	score     int
	lives     int
	destroyed int // Per level
	highScore int // Cached copy of the stored record
	tick      uint64
}

// New creates an engine and starts a fresh game. The field size comes from
// runtime when set, otherwise from cfg.
func New(cfg config.ArkanoidConfig, runtime core.RuntimeConfig, opts Options) *Engine {
	if runtime.FieldW <= 0 || runtime.FieldH <= 0 {
		runtime.FieldW, runtime.FieldH = cfg.Field.Width, cfg.Field.Height
	}
	e := &Engine{
		cfg:        cfg,
		runtime:    runtime,
		prog:       cfg.Progression(),
		w:          runtime.FieldW,
		h:          runtime.FieldH,
		audio:      opts.Audio,
		store:      opts.Store,
		log:        opts.Logger,
		catalog:    opts.Catalog,
		sheet:      NewSpriteSheet(),
		explosions: NewExplosionAnimator(),
		rng:        core.NewSimpleRNG(runtime.Seed),
	}
	if e.audio == nil {
		e.audio = nopAudio{}
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.catalog == nil {
		e.catalog = NewLevelCatalog()
	}
	e.Reset()
	return e
}

// Reset starts a new game from the first level.
func (e *Engine) Reset() {
	e.catalog.Reset()
	e.score = 0
	e.lives = e.cfg.Gameplay.Lives
	e.tick = 0
	e.initLevel()
	e.highScore = e.loadHighScore()
	e.state = StateWaiting
}

// initLevel rebuilds everything that lives for one level.
func (e *Engine) initLevel() {
	e.destroyed = 0
	e.grid = NewGrid(e.catalog.Current(), e.w, e.h)

	radius := float64(e.w / 30)
	e.ball = NewBall(float64(e.w)/2, float64(e.h)*0.65, radius,
		e.cfg.Physics.BaseSpeed, e.cfg.Physics.MinVerticalSpeed, e.w)

	pw, ph := float64(e.w/5), float64(e.h/35)
	e.paddle = NewPaddle(float64(e.w)/2-pw/2, float64(e.h)*0.85, pw, ph, e.w)

	e.explosions.Clear()
	e.stars = NewStarfield(e.rng, e.cfg.Gameplay.Stars, e.w, e.h)
}

// HandleEvent applies one pointer event. Pointer-move steers the paddle in
// every state; pointer-down launches from WAITING and restarts after the game
// has ended.
func (e *Engine) HandleEvent(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerMove:
		e.paddle.MoveTo(ev.X - e.paddle.W/2)
	case core.PointerDown:
		switch e.state {
		case StateWaiting:
			e.state = StatePlaying
		case StateGameOver, StateWin:
			e.Reset()
		}
	}
}

// Step advances the simulation by one tick. Outside PLAYING nothing moves.
func (e *Engine) Step() core.StepResult {
	if e.state != StatePlaying {
		return core.StepResult{State: e.State()}
	}
	e.tick++

	e.ball.Update()
	e.collidePaddle()
	if e.ball.JustBouncedWall() {
		e.play(CueBounceWall)
	}
	e.sweepBricks()
	e.checkFloor()
	if e.state != StateGameOver {
		e.checkClearance()
	}
	e.explosions.Update()

	return core.StepResult{State: e.State()}
}

func (e *Engine) collidePaddle() {
	if !e.ball.Bounds().Intersects(e.paddle.Bounds()) {
		return
	}
	e.ball.BounceY()
	e.ball.SetAngle((e.ball.X - e.paddle.X) / e.paddle.W)
	e.play(CueBouncePaddle)
}

// sweepBricks strikes every live brick the ball overlaps, in row-major order.
// Each strike flips VY unless single-flip mode is configured.
func (e *Engine) sweepBricks() {
	box := e.ball.Bounds()
	flipped := false
	for i := range e.grid.bricks {
		b := &e.grid.bricks[i]
		if !b.Alive || !box.Intersects(b.HitBox()) {
			continue
		}

		b.Hit()
		if !e.cfg.Physics.SingleFlip || !flipped {
			e.ball.BounceY()
			flipped = true
		}

		switch {
		case b.Steel():
			e.play(CueSteelHit)
		case !b.Alive:
			e.destroyed++
			e.score += b.Points
			e.play(CueBlockBreak)
			e.explosions.Start(b.Center())
			if e.prog.Triggers(e.destroyed) {
				e.ball.IncreaseSpeed(e.prog.Step)
			}
		default:
			e.play(CueBlockHit)
		}
	}
}

func (e *Engine) checkFloor() {
	if e.ball.Y <= float64(e.h)+e.cfg.Physics.FloorMargin {
		return
	}
	e.lives--
	if e.lives <= 0 {
		e.lives = 0
		e.saveHighScore()
		e.state = StateGameOver
		e.log.Info("game over", "score", e.score, "level", e.catalog.Number())
		return
	}
	e.ball.Reset(float64(e.w)/2, float64(e.h)*0.65)
	e.state = StateWaiting
}

func (e *Engine) checkClearance() {
	if !e.grid.AllDestroyed() {
		return
	}
	e.saveHighScore()
	if e.catalog.IsLast() {
		e.state = StateWin
		e.log.Info("all levels cleared", "score", e.score)
		return
	}
	e.log.Info("level cleared", "level", e.catalog.Number(), "score", e.score)
	e.catalog.Advance()
	e.initLevel()
	e.state = StateWaiting
}

func (e *Engine) play(cue Cue) {
	vol := cue.Volume()
	if v, ok := e.cfg.Audio.Volumes[cue.String()]; ok {
		vol = v
	}
	e.audio.Play(cue, vol)
}

func (e *Engine) loadHighScore() int {
	if e.store == nil {
		return 0
	}
	v, err := e.store.GetInt(HighScoreKey, 0)
	if err != nil {
		e.log.Debug("high score unavailable", "err", err)
		return 0
	}
	return v
}

// saveHighScore writes the score only when it beats the stored record.
// Failures leave the record unchanged and are never surfaced.
func (e *Engine) saveHighScore() {
	if e.store == nil {
		return
	}
	stored, err := e.store.GetInt(HighScoreKey, 0)
	if err != nil {
		e.log.Debug("high score read failed", "err", err)
		return
	}
	if e.score <= stored {
		e.highScore = stored
		return
	}
	if err := e.store.PutInt(HighScoreKey, e.score); err != nil {
		e.log.Debug("high score write failed", "err", err)
		return
	}
	e.highScore = e.score
	e.log.Info("new high score", "score", e.score)
}

// State returns the session summary.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		Lives:    e.lives,
		Level:    e.catalog.Number(),
		GameOver: e.state == StateGameOver || e.state == StateWin,
		Won:      e.state == StateWin,
	}
}

// Phase returns the state machine position.
func (e *Engine) Phase() State { return e.state }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// HighScore returns the record shown in the HUD.
func (e *Engine) HighScore() int { return e.highScore }

// Destroyed returns the bricks destroyed on the current level.
func (e *Engine) Destroyed() int { return e.destroyed }

// LevelIndex returns the 0-based level.
func (e *Engine) LevelIndex() int { return e.catalog.Index() }

// Catalog exposes the level sequence.
func (e *Engine) Catalog() *LevelCatalog { return e.catalog }

// Grid exposes the current bricks.
func (e *Engine) Grid() *Grid { return e.grid }

// Ball exposes the ball.
func (e *Engine) Ball() *Ball { return e.ball }

// Paddle exposes the paddle.
func (e *Engine) Paddle() *Paddle { return e.paddle }

// Explosions exposes the active effects.
func (e *Engine) Explosions() *ExplosionAnimator { return e.explosions }

// FieldSize returns the field dimensions in pixels.
func (e *Engine) FieldSize() (int, int) { return e.w, e.h }

// Title returns the window title for the current level.
func (e *Engine) Title() string {
	return fmt.Sprintf("Arkanoid - %s", e.catalog.Current().Name)
}
