package config

import (
	_ "embed"
)

//go:embed defaults/aiescape.yaml
var defaultAIEscapeYAML []byte

//go:embed defaults/tvescape.yaml
var defaultTVEscapeYAML []byte

// Game identifiers with embedded defaults.
const (
	GameAIEscape = "aiescape"
	GameTVEscape = "tvescape"
)

// embeddedDefaults returns the embedded YAML for a game, or nil.
func embeddedDefaults(gameID string) []byte {
	switch gameID {
	case GameAIEscape:
		return defaultAIEscapeYAML
	case GameTVEscape:
		return defaultTVEscapeYAML
	default:
		return nil
	}
}

// DefaultEscapeConfig returns the hardcoded AI Escape tuning.
// Used when the embedded YAML cannot be parsed and as the base every load starts from.
func DefaultEscapeConfig() EscapeConfig {
	return EscapeConfig{
		Physics: EscapePhysics{
			Gravity:          0.5,
			MaxFallSpeed:     12,
			JumpImpulse:      -12,
			SuperJumpImpulse: -18,
			LandingBand:      10,
		},
		Player: EscapePlayer{
			SpawnX:     100,
			SpawnY:     500,
			Width:      30,
			Height:     40,
			Lives:      3,
			WalkSpeed:  5,
			BoostSpeed: 8,
		},
		PowerUps: EscapePowerUps{
			Size:         25,
			ShieldFrames: 600,
			SpeedFrames:  300,
			JumpFrames:   300,
			ShieldBounce: -5,
		},
		Scoring: EscapeScoring{
			DataPoint:     10,
			PowerUp:       25,
			DataPointSize: 15,
		},
		Exit: EscapeExit{
			X:      700,
			Top:    500,
			Bottom: 550,
		},
		Enemies: EscapeEnemies{
			PatrolSpeed:     2,
			PatrolMargin:    10,
			WavySpeed:       3,
			WavyAmplitude:   2,
			ShooterInterval: 90,
			ProjectileSpeed: -5,
		},
		Audio: EscapeAudio{
			MelodyEvery: 30,
			MelodyAmp:   0.1,
			Volume:      0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 2,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 30,
			},
		},
	}
}
