// Package config provides YAML-based game configuration loading and
// difficulty presets for the Arkanoid game.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains all configuration for the game.
type ArkanoidConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Loop     LoopConfig     `yaml:"loop"`
}

// FieldConfig defines the play field size in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines ball kinematics and collision parameters.
type PhysicsConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`         // Pixels per tick
	MinVerticalSpeed float64 `yaml:"min_vertical_speed"` // Floor for |vy| after a paddle strike
	SpeedStep        float64 `yaml:"speed_step"`         // Added on every progression step
	SpeedEvery       int     `yaml:"speed_every"`        // Destructions per progression step
	FloorMargin      float64 `yaml:"floor_margin"`       // Distance below the field that costs a life
	SingleFlip       bool    `yaml:"single_flip_per_tick"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
	Stars int `yaml:"stars"`
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"` // Per-cue override keyed by cue name
}

// LoopConfig defines the simulation loop.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate checks that the config describes a playable game.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.base_speed must be positive, got %v", c.Physics.BaseSpeed))
	}
	if c.Physics.SpeedEvery <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed_every must be positive, got %d", c.Physics.SpeedEvery))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume must be in [0, 1], got %v", c.Audio.MasterVolume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Progression returns the speed progression rule described by the physics section.
func (c ArkanoidConfig) Progression() Progression {
	return Progression{Every: c.Physics.SpeedEvery, Step: c.Physics.SpeedStep}
}
