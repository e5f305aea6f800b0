package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The engine uses this to size the field and for deterministic simulation.
type RuntimeConfig struct {
	FieldW   int   // Field width in pixels
	FieldH   int   // Field height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the starfield
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   1080,
		FieldH:   1920,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // 1-based level number
	GameOver bool // Whether the game has ended (lost or won)
	Won      bool // Whether the final level was cleared
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
