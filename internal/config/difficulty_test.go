package config

import "testing"

func TestDifficultyDisabledLeavesTuningUnchanged(t *testing.T) {
	d := NewDifficultyManager(DefaultEscapeConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("defaults should have scaling disabled")
	}
	for level := 0; level < 3; level++ {
		if got := d.Speed(2, 500, level); got != 2 {
			t.Errorf("Speed at level %d = %v, expected 2", level, got)
		}
		if got := d.ShooterInterval(90, 500, level); got != 90 {
			t.Errorf("ShooterInterval at level %d = %d, expected 90", level, got)
		}
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultEscapeConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	tests := []struct {
		levelIndex int
		level      float64
		speed      float64
		interval   int
	}{
		{0, 0.0, 2.0, 90},
		{1, 0.5, 2.5, 75},
		{2, 1.0, 3.0, 60},
		{5, 1.0, 3.0, 60}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(0, tc.levelIndex); got != tc.level {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.levelIndex, got, tc.level)
		}
		if got := d.Speed(2, 0, tc.levelIndex); got != tc.speed {
			t.Errorf("Speed(2, 0, %d) = %v, expected %v", tc.levelIndex, got, tc.speed)
		}
		if got := d.ShooterInterval(90, 0, tc.levelIndex); got != tc.interval {
			t.Errorf("ShooterInterval(90, 0, %d) = %d, expected %d", tc.levelIndex, got, tc.interval)
		}
	}
}

func TestDifficultyScoreProgressionAndFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1, IntervalReduction: 200},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50, 0) = %v, expected 0.5", got)
	}
	if got := d.ShooterInterval(90, 100, 0); got != minShooterInterval {
		t.Errorf("ShooterInterval should floor at %d, got %d", minShooterInterval, got)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}}
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(1.5)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %v", got)
	}
	d.SetEnabled(false)
	if got := d.Level(0, 0); got != 0 {
		t.Errorf("disabled manager should report 0, got %v", got)
	}
}
