package escape

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var levelFiles embed.FS

// Theme selects a level's background.
type Theme string

const (
	ThemeTraining Theme = "training"
	ThemeNeural   Theme = "neural"
	ThemeRobotics Theme = "robotics"
	ThemeStatic   Theme = "static"
	ThemeNews     Theme = "news"
	ThemeCartoon  Theme = "cartoon"
)

// RectSpec is a rectangle in level data.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PointSpec is a position in level data.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemySpec places one enemy.
type EnemySpec struct {
	Kind EnemyKind `yaml:"kind"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

// PowerUpSpec places one power-up.
type PowerUpSpec struct {
	Kind PowerUpKind `yaml:"kind"`
	X    float64     `yaml:"x"`
	Y    float64     `yaml:"y"`
}

// LevelSpec is the immutable description of one stage.
// Levels are built from it on every load, so collected items come back.
type LevelSpec struct {
	Name       string        `yaml:"name"`
	Theme      Theme         `yaml:"theme"`
	Melody     []int         `yaml:"melody"` // MIDI notes of the ambient arpeggio
	ExitX      float64       `yaml:"exit_x,omitempty"`
	Platforms  []RectSpec    `yaml:"platforms"`
	Enemies    []EnemySpec   `yaml:"enemies"`
	DataPoints []PointSpec   `yaml:"data_points"`
	PowerUps   []PowerUpSpec `yaml:"power_ups"`
}

// LevelSet is the ordered list of stages for one game.
type LevelSet struct {
	Levels []LevelSpec `yaml:"levels"`
}

// ParseLevels decodes and validates level data.
func ParseLevels(data []byte) (LevelSet, error) {
	var set LevelSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return LevelSet{}, fmt.Errorf("levels: parse: %w", err)
	}
	if err := set.Validate(); err != nil {
		return LevelSet{}, err
	}
	return set, nil
}

// LoadLevels reads level data from a file.
func LoadLevels(path string) (LevelSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelSet{}, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return ParseLevels(data)
}

// EmbeddedLevels returns the shipped stages for a game.
func EmbeddedLevels(gameID string) (LevelSet, error) {
	data, err := levelFiles.ReadFile("levels/" + gameID + ".yaml")
	if err != nil {
		return LevelSet{}, fmt.Errorf("levels: no embedded data for %q: %w", gameID, err)
	}
	return ParseLevels(data)
}

// MustEmbeddedLevels is EmbeddedLevels for shipped data, which is a build-time contract.
func MustEmbeddedLevels(gameID string) LevelSet {
	set, err := EmbeddedLevels(gameID)
	if err != nil {
		panic(err)
	}
	return set
}

// Validate checks the construction-time contract of the level data.
func (s LevelSet) Validate() error {
	if len(s.Levels) == 0 {
		return errors.New("levels: no levels defined")
	}
	var errs []error
	for i, lv := range s.Levels {
		if err := lv.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("levels: level %d (%s): %w", i+1, lv.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks a single stage.
func (l LevelSpec) Validate() error {
	var errs []error
	if len(l.Platforms) == 0 {
		errs = append(errs, errors.New("no platforms"))
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("platform %d has non-positive size %vx%v", i, p.W, p.H))
		}
	}
	for i, e := range l.Enemies {
		if !e.Kind.Valid() {
			errs = append(errs, fmt.Errorf("enemy %d has unknown kind %q", i, e.Kind))
		}
	}
	for i, p := range l.PowerUps {
		if !p.Kind.Valid() {
			errs = append(errs, fmt.Errorf("power-up %d has unknown kind %q", i, p.Kind))
		}
	}
	if len(l.Melody) == 0 {
		errs = append(errs, errors.New("empty melody"))
	}
	return errors.Join(errs...)
}
