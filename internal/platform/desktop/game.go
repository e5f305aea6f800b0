package desktop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/platform/loop"
)

// windowScale sizes the initial window relative to the field.
const windowScale = 0.45

// keyboardSteps is how many key presses cross the whole field.
const keyboardSteps = 18

// Game is what the desktop host runs.
type Game interface {
	loop.Sim
	FieldSize() (int, int)
	Title() string
}

// Options configures Run.
type Options struct {
	TickRate int
	Logger   *log.Logger
	OnStep   func(core.StepResult)
}

// window implements ebiten.Game. Update only forwards input; the simulation
// advances on the loop goroutine.
type window struct {
	surface *Surface
	input   *core.PointerLatch
	painter *painter
	fieldW  int
	fieldH  int

	lastX, lastY int
	pointerX     float64
	touches      []ebiten.TouchID
}

func newWindow(surface *Surface, input *core.PointerLatch, fieldW, fieldH int) *window {
	return &window{
		surface:  surface,
		input:    input,
		fieldW:   fieldW,
		fieldH:   fieldH,
		lastX:    -1,
		lastY:    -1,
		pointerX: float64(fieldW) / 2,
	}
}

// Update polls mouse, touch and keyboard input.
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.surface.SetReady(!ebiten.IsWindowMinimized())
	h := float64(w.fieldH) / 2

	if x, y := ebiten.CursorPosition(); x != w.lastX || y != w.lastY {
		w.lastX, w.lastY = x, y
		w.pointerX = float64(x)
		w.input.Publish(core.Move(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.input.Publish(core.Down(float64(w.lastX), float64(w.lastY)))
	}

	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	for _, id := range w.touches {
		x, y := ebiten.TouchPosition(id)
		w.pointerX = float64(x)
		w.input.Publish(core.Move(float64(x), float64(y)))
		w.input.Publish(core.Down(float64(x), float64(y)))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.TouchPressDuration(id) > 0 {
			x, y := ebiten.TouchPosition(id)
			w.pointerX = float64(x)
			w.input.Publish(core.Move(float64(x), float64(y)))
		}
	}

	step := float64(w.fieldW) / keyboardSteps / 4
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		w.pointerX = core.ClampF(w.pointerX-step, 0, float64(w.fieldW))
		w.input.Publish(core.Move(w.pointerX, h))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		w.pointerX = core.ClampF(w.pointerX+step, 0, float64(w.fieldW))
		w.input.Publish(core.Move(w.pointerX, h))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.input.Publish(core.Down(w.pointerX, h))
	}
	return nil
}

// Draw replays the latest frame recorded by the loop.
func (w *window) Draw(screen *ebiten.Image) {
	if w.painter == nil {
		w.painter = newPainter()
	}
	w.surface.present(screen, w.painter)
}

// Layout keeps the logical screen at field size; ebiten scales it to the window.
func (w *window) Layout(_, _ int) (int, int) {
	return w.fieldW, w.fieldH
}

// Run opens the window and plays until it is closed. The simulation loop is
// stopped before Run returns.
func Run(game Game, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	fw, fh := game.FieldSize()
	input := &core.PointerLatch{}
	surface := NewSurface()

	runner := loop.New(game, surface, input, loop.Config{
		TickRate: opts.TickRate,
		Logger:   opts.Logger,
		OnStep:   opts.OnStep,
	})
	if err := runner.Start(); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	defer runner.Stop()

	ebiten.SetWindowSize(int(float64(fw)*windowScale), int(float64(fh)*windowScale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(newWindow(surface, input, fw, fh))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: run game: %w", err)
	}
	return nil
}
