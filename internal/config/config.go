// Package config provides YAML-based tuning for the escape games and
// difficulty management.
package config

// EscapeConfig contains all tuning for one escape game.
// Lengths are world units (800x600 world), durations are frames at 60 FPS.
type EscapeConfig struct {
	Physics    EscapePhysics    `yaml:"physics"`
	Player     EscapePlayer     `yaml:"player"`
	PowerUps   EscapePowerUps   `yaml:"power_ups"`
	Scoring    EscapeScoring    `yaml:"scoring"`
	Exit       EscapeExit       `yaml:"exit"`
	Enemies    EscapeEnemies    `yaml:"enemies"`
	Audio      EscapeAudio      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EscapePhysics defines gravity and jump parameters.
type EscapePhysics struct {
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`       // negative = up
	SuperJumpImpulse float64 `yaml:"super_jump_impulse"` // applied while the jump power-up is active
	LandingBand      float64 `yaml:"landing_band"`       // band-law tolerance below a platform top
}

// EscapePlayer defines the player body and movement.
type EscapePlayer struct {
	SpawnX     float64 `yaml:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Lives      int     `yaml:"lives"`
	WalkSpeed  float64 `yaml:"walk_speed"`
	BoostSpeed float64 `yaml:"boost_speed"`
}

// EscapePowerUps defines power-up sizes and durations.
type EscapePowerUps struct {
	Size         float64 `yaml:"size"`
	ShieldFrames int     `yaml:"shield_frames"`
	SpeedFrames  int     `yaml:"speed_frames"`
	JumpFrames   int     `yaml:"jump_frames"`
	ShieldBounce float64 `yaml:"shield_bounce"` // vy after a shield absorbs a hit
}

// EscapeScoring defines score awards.
type EscapeScoring struct {
	DataPoint     int     `yaml:"data_point"`
	PowerUp       int     `yaml:"power_up"`
	DataPointSize float64 `yaml:"data_point_size"`
}

// EscapeExit defines the exit zone: right edge past X inside the open band (Top, Bottom).
type EscapeExit struct {
	X      float64 `yaml:"x"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// EscapeEnemies defines enemy behaviour.
type EscapeEnemies struct {
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	PatrolMargin    float64 `yaml:"patrol_margin"`
	WavySpeed       float64 `yaml:"wavy_speed"`
	WavyAmplitude   float64 `yaml:"wavy_amplitude"`
	ShooterInterval int     `yaml:"shooter_interval"` // fires when the counter exceeds this
	ProjectileSpeed float64 `yaml:"projectile_speed"` // negative = leftwards
}

// EscapeAudio defines the ambient melody.
type EscapeAudio struct {
	MelodyEvery int     `yaml:"melody_every"` // frames between melody notes
	MelodyAmp   float64 `yaml:"melody_amp"`
	Volume      float64 `yaml:"volume"` // host master volume, 0..1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Shooter interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
