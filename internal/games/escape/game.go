// Package escape implements AI Escape and TV Escape, two single-screen
// platformers sharing one physics, collision and game-state core.
package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// levelsPath stores a custom level file set via CLI
var levelsPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsPath sets a level file to use instead of the embedded stages.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a World to the registry interface.
type Game struct {
	rules    Rules
	runtime  core.RuntimeConfig
	world    *World
	warnings []error
}

// New creates a game for the given variant.
func New(rules Rules) *Game {
	return &Game{rules: rules}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.rules.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.rules.Title
}

// Reset loads tuning and levels and puts a fresh session on the start screen.
// The session high score survives a Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.warnings = g.warnings[:0]

	cfg, err := config.LoadEscape(g.rules.ID, configPath)
	if err != nil {
		g.warnings = append(g.warnings, err)
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyEscapePreset(&cfg, difficultyPreset)
	}

	levels := MustEmbeddedLevels(g.rules.ID)
	if levelsPath != "" {
		custom, err := LoadLevels(levelsPath)
		if err != nil {
			g.warnings = append(g.warnings, err)
		} else {
			levels = custom
		}
	}

	high := 0
	if g.world != nil {
		high = g.world.HighScore
	}
	g.world = NewWorld(g.rules, cfg, levels, runtime.Seed)
	g.world.HighScore = high
}

// Warnings returns the load problems from the last Reset. Defaults were used in their place.
func (g *Game) Warnings() []error {
	return g.warnings
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.world.Step(in)
}

// Draw renders the current frame.
func (g *Game) Draw(dst *core.DrawList) {
	g.world.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// World exposes the session for inspection by tools and tests.
func (g *Game) World() *World {
	return g.world
}

// Register the games with the registry
func init() {
	registry.Register(AIEscape.ID, func() registry.Game {
		return New(AIEscape)
	})
	registry.Register(TVEscape.ID, func() registry.Game {
		return New(TVEscape)
	})
}
