// arkanoid is a brick breaker that runs in the terminal or in a window.
//
// Usage:
//
//	arkanoid play            - Play in the terminal
//	arkanoid window          - Play in a desktop window
//	arkanoid scores          - Show past results
//	arkanoid levels          - Print the level layouts
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible starfields
//	--db <path>           - Set database path (default: ~/.arkanoid/arkanoid.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - Log verbosity: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal or a window",
	Long: `Arkanoid is a brick breaker with five levels, steel bricks and a
persistent record.

Available commands:
  play     - Play in the terminal (mouse or keyboard)
  window   - Play in a desktop window
  scores   - View past results
  levels   - Print the built-in level layouts

Examples:
  arkanoid play
  arkanoid play --difficulty hard
  arkanoid window --seed 42
  arkanoid scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config loop.tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/arkanoid.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig resolves the config search path and applies the difficulty preset.
func loadConfig() (config.ArkanoidConfig, error) {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the session logger. When toFile is set, output goes to
// ~/.arkanoid/arkanoid.log so it never lands on the alt screen.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		path := filepath.Join(os.Getenv("HOME"), ".arkanoid", "arkanoid.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- fixed path under HOME
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "arkanoid",
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}
