package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		speed  float64
	}{
		{DifficultyEasy, 5, 10},
		{DifficultyNormal, 3, 12},
		{DifficultyHard, 2, 14},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives || cfg.Physics.BaseSpeed != tt.speed {
				t.Errorf("lives=%d speed=%v, want %d %v", cfg.Gameplay.Lives, cfg.Physics.BaseSpeed, tt.lives, tt.speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestProgressionTriggers(t *testing.T) {
	p := DefaultArkanoidConfig().Progression()

	for destroyed := 0; destroyed <= 35; destroyed++ {
		want := destroyed == 10 || destroyed == 20 || destroyed == 30
		if got := p.Triggers(destroyed); got != want {
			t.Errorf("Triggers(%d) = %v, want %v", destroyed, got, want)
		}
	}

	if (Progression{}).Triggers(10) {
		t.Error("zero progression should never trigger")
	}
}
