package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/audio"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/desktop"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var flagNoSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The mouse steers the paddle; clicking
launches the ball or restarts after the game ends.

Controls:
  Mouse        - Move paddle / click to launch
  Left/Right   - Move paddle
  Space/Enter  - Launch / restart
  Ctrl+S       - Save a text screenshot
  Q/Esc        - Quit

Difficulty options:
  easy   - 5 lives, slower ball, gentle speed-up
  normal - Defaults
  hard   - 2 lives, faster ball, steep speed-up

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(hostTerminal)
	},
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a native window. Requires a graphical display.

Controls:
  Mouse/Touch  - Move paddle / click or tap to launch
  Left/Right   - Move paddle
  Space/Enter  - Launch / restart
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(hostWindow)
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSound, "mute", false, "Disable sound")
	windowCmd.Flags().BoolVar(&flagNoSound, "mute", false, "Disable sound")
}

type host int

const (
	hostTerminal host = iota
	hostWindow
)

// runSession plays one session on the chosen host and records its results.
func runSession(h host) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(h == hostTerminal)
	if err != nil {
		return err
	}
	defer closeLog()

	sessionID := uuid.NewString()
	logger = logger.With("session", sessionID[:8])

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Play without persistence
		logger.Warn("scores database unavailable", "err", err)
		if h == hostTerminal {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		}
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagNoSound {
		cfg.Audio.Enabled = false
	}
	sink, closeAudio := audio.Open(cfg.Audio, logger)
	defer closeAudio()

	opts := arkanoid.Options{Audio: sink, Logger: logger}
	if store != nil {
		opts.Store = store.Prefs(arkanoid.PrefsNamespace)
	}
	rt := core.RuntimeConfig{
		FieldW:   cfg.Field.Width,
		FieldH:   cfg.Field.Height,
		TickRate: cfg.Loop.TickRate,
		Seed:     seed(),
	}
	engine := arkanoid.New(cfg, rt, opts)
	tracker := newSessionTracker(sessionID)

	logger.Info("session started", "host", h, "seed", rt.Seed, "tick_rate", rt.TickRate)
	switch h {
	case hostWindow:
		err = desktop.Run(engine, desktop.Options{
			TickRate: rt.TickRate,
			Logger:   logger,
			OnStep:   tracker.Observe,
		})
	default:
		err = tui.Run(engine, tui.Options{
			TickRate:  rt.TickRate,
			FrameRate: 30,
			Logger:    logger,
			OnStep:    tracker.Observe,
		})
	}

	// The loop has stopped; the engine and tracker are ours again.
	results := tracker.Finish(engine.State())
	saveResults(store, results, logger)
	logger.Info("session ended", "games", len(results), "high_score", engine.HighScore())
	return err
}

func (h host) String() string {
	if h == hostWindow {
		return "window"
	}
	return "terminal"
}

// saveResults writes finished games to the history. Failures are logged only.
func saveResults(store *storage.Store, results []storage.GameResult, logger *log.Logger) {
	if store == nil {
		return
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			logger.Warn("could not save result", "score", r.Score, "err", err)
		}
	}
}
