package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// groundOnly is a stage with just the floor.
func groundOnly(name string) LevelSpec {
	return LevelSpec{
		Name:      name,
		Theme:     ThemeTraining,
		Melody:    []int{60, 64, 67, 72},
		Platforms: []RectSpec{{X: 0, Y: 550, W: 800, H: 50}},
	}
}

// newTestWorld builds a world over the given stages, already PLAYING.
func newTestWorld(rules Rules, specs ...LevelSpec) *World {
	if len(specs) == 0 {
		specs = []LevelSpec{groundOnly("a")}
	}
	w := NewWorld(rules, config.DefaultEscapeConfig(), LevelSet{Levels: specs}, 1)
	w.Phase = core.PhasePlaying
	return w
}

func press(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func release(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Release(k)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
