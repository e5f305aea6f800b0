package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.BaseSpeed = 10
		cfg.Physics.SpeedStep = 1
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.BaseSpeed = 14
		cfg.Physics.SpeedStep = 2
	}
}

// Progression is the progressive-speed rule: every Every destroyed bricks
// the ball gains Step pixels per tick.
type Progression struct {
	Every int
	Step  float64
}

// Triggers reports whether reaching destroyed bricks crosses a step.
func (p Progression) Triggers(destroyed int) bool {
	if p.Every <= 0 || destroyed <= 0 {
		return false
	}
	return destroyed%p.Every == 0
}
