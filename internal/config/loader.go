package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownGame is returned for a game ID without embedded defaults.
var ErrUnknownGame = errors.New("config: unknown game")

// LoadEscape loads the tuning for an escape game.
// Search order: customPath -> ~/.escape/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadEscape(gameID, customPath string) (EscapeConfig, error) {
	embedded := embeddedDefaults(gameID)
	if embedded == nil {
		return DefaultEscapeConfig(), fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}

	base := DefaultEscapeConfig()
	if err := yaml.Unmarshal(embedded, &base); err != nil {
		base = DefaultEscapeConfig() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	return base, nil
}

// tryLoad decodes path over base. Unreadable, malformed or invalid files are skipped.
func tryLoad(path string, base EscapeConfig) (EscapeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".escape", "configs", filename)
}

// ApplyEscapePreset modifies the config based on a difficulty preset.
func ApplyEscapePreset(cfg *EscapeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	case DifficultyNormal:
		return
	}

	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.ShooterInterval = 120
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.ShooterInterval = 60
		cfg.Difficulty.Enabled = true
	}
}

// Validate reports tuning that would break the simulation.
func (c EscapeConfig) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.walk_speed", c.Player.WalkSpeed},
		{"player.boost_speed", c.Player.BoostSpeed},
		{"power_ups.size", c.PowerUps.Size},
		{"scoring.data_point_size", c.Scoring.DataPointSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}
	if c.Physics.SuperJumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.super_jump_impulse must be negative, got %v", c.Physics.SuperJumpImpulse))
	}
	if c.Physics.LandingBand < 0 {
		errs = append(errs, fmt.Errorf("physics.landing_band must not be negative, got %v", c.Physics.LandingBand))
	}
	if c.Player.Lives < 1 {
		errs = append(errs, fmt.Errorf("player.lives must be at least 1, got %d", c.Player.Lives))
	}
	if c.Exit.Bottom <= c.Exit.Top {
		errs = append(errs, fmt.Errorf("exit band is empty: top %v, bottom %v", c.Exit.Top, c.Exit.Bottom))
	}
	if c.Enemies.ShooterInterval < 1 {
		errs = append(errs, fmt.Errorf("enemies.shooter_interval must be at least 1, got %d", c.Enemies.ShooterInterval))
	}
	if c.Audio.MelodyEvery < 1 {
		errs = append(errs, fmt.Errorf("audio.melody_every must be at least 1, got %d", c.Audio.MelodyEvery))
	}
	return errors.Join(errs...)
}
