package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/platform/loop"
)

// keyboardSteps is how many key presses cross the whole field.
const keyboardSteps = 18

// Game is what the terminal host runs.
type Game interface {
	loop.Sim
	FieldSize() (int, int)
}

// Options configures Run.
type Options struct {
	TickRate      int    // Simulation ticks per second
	FrameRate     int    // Terminal repaints per second
	ScreenshotDir string // Defaults to ~/.arkanoid/screenshots
	Logger        *log.Logger
	OnStep        func(core.StepResult)
}

// Model is the Bubble Tea model for the in-game screen. It never touches
// the simulation; input goes through the pointer latch and output comes
// from the canvas.
type Model struct {
	canvas    *Canvas
	input     *core.PointerLatch
	keys      KeyMap
	help      help.Model
	fieldW    float64
	fieldH    float64
	pointerX  float64
	frameRate int
	shotDir   string
	log       *log.Logger
	width     int
	height    int
	quitting  bool
}

// NewModel creates the in-game model over a canvas and pointer latch.
func NewModel(canvas *Canvas, input *core.PointerLatch, fieldW, fieldH int, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".arkanoid", "screenshots")
	}
	return Model{
		canvas:    canvas,
		input:     input,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fieldW:    float64(fieldW),
		fieldH:    float64(fieldH),
		pointerX:  float64(fieldW) / 2,
		frameRate: opts.FrameRate,
		shotDir:   opts.ScreenshotDir,
		log:       opts.Logger,
	}
}

// Init starts the repaint ticker.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m, frameCmd(m.frameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.fieldW / keyboardSteps

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Launch):
		m.input.Publish(core.Down(m.pointerX, m.fieldH/2))

	case key.Matches(msg, m.keys.Left):
		m.movePointer(m.pointerX - step)

	case key.Matches(msg, m.keys.Right):
		m.movePointer(m.pointerX + step)
	}

	return m, nil
}

// handleMouse maps terminal mouse events onto the field.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, ok := m.canvas.ToField(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.pointerX = x
		m.input.Publish(core.Move(x, y))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pointerX = x
		m.input.Publish(core.Move(x, y))
		m.input.Publish(core.Down(x, y))
	}
	return m, nil
}

func (m *Model) movePointer(x float64) {
	m.pointerX = core.ClampF(x, 0, m.fieldW)
	m.input.Publish(core.Move(m.pointerX, m.fieldH/2))
}

// handleResize gives the canvas every row except the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.canvas.Resize(msg.Width, msg.Height-1)
	return m, nil
}

// saveScreenshot writes the last frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("arkanoid_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.canvas.Plain()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the latest frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.canvas.Frame()
	if frame == "" {
		frame = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("Terminal too small")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return frame + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays the game in the terminal until the user quits. The simulation
// loop is stopped before Run returns, so the caller may use the game again.
func Run(game Game, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	w, h := game.FieldSize()
	input := &core.PointerLatch{}
	canvas := NewCanvas(w, h)
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		canvas.Resize(cols, rows-1)
	}

	runner := loop.New(game, canvas, input, loop.Config{
		TickRate: opts.TickRate,
		Logger:   opts.Logger,
		OnStep:   opts.OnStep,
	})
	if err := runner.Start(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer runner.Stop()

	p := tea.NewProgram(
		NewModel(canvas, input, w, h, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run program: %w", err)
	}
	return nil
}
