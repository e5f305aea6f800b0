package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Field: FieldConfig{
			Width:  1080,
			Height: 1920,
		},
		Physics: PhysicsConfig{
			BaseSpeed:        12,
			MinVerticalSpeed: 4,
			SpeedStep:        1.5,
			SpeedEvery:       10,
			FloorMargin:      50,
			SingleFlip:       false,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
			Stars: 100,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
			SampleRate:   44100,
			Volumes:      map[string]float64{},
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
