package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Level is the live state of one stage.
// It owns its platforms, enemies, projectiles, data points and power-ups.
type Level struct {
	Index  int
	Name   string
	Theme  Theme
	Melody []int
	ExitX  float64

	Platforms   []Platform
	Enemies     []Enemy
	Projectiles []Projectile
	DataPoints  []DataPoint
	PowerUps    []PowerUp

	tune enemyTuning
}

// buildLevel creates a fresh stage from its spec. Called on every level load.
func buildLevel(index int, spec LevelSpec, cfg config.EscapeConfig, diff *config.DifficultyManager, score int) *Level {
	tune := enemyTuning{
		patrolSpeed:     diff.Speed(cfg.Enemies.PatrolSpeed, score, index),
		patrolMargin:    cfg.Enemies.PatrolMargin,
		wavySpeed:       diff.Speed(cfg.Enemies.WavySpeed, score, index),
		wavyAmplitude:   cfg.Enemies.WavyAmplitude,
		shooterInterval: diff.ShooterInterval(cfg.Enemies.ShooterInterval, score, index),
		projectileSpeed: cfg.Enemies.ProjectileSpeed,
	}

	lv := &Level{
		Index:  index,
		Name:   spec.Name,
		Theme:  spec.Theme,
		Melody: spec.Melody,
		ExitX:  cfg.Exit.X,
		tune:   tune,
	}
	if spec.ExitX > 0 {
		lv.ExitX = spec.ExitX
	}

	lv.Platforms = make([]Platform, len(spec.Platforms))
	for i, p := range spec.Platforms {
		lv.Platforms[i] = Platform{Rect: core.NewRect(p.X, p.Y, p.W, p.H)}
	}

	lv.Enemies = make([]Enemy, len(spec.Enemies))
	for i, e := range spec.Enemies {
		lv.Enemies[i] = newEnemy(e, tune)
	}

	size := cfg.Scoring.DataPointSize
	lv.DataPoints = make([]DataPoint, len(spec.DataPoints))
	for i, d := range spec.DataPoints {
		lv.DataPoints[i] = DataPoint{Rect: core.NewRect(d.X, d.Y, size, size)}
	}

	size = cfg.PowerUps.Size
	lv.PowerUps = make([]PowerUp, len(spec.PowerUps))
	for i, p := range spec.PowerUps {
		lv.PowerUps[i] = PowerUp{Rect: core.NewRect(p.X, p.Y, size, size), Kind: p.Kind}
	}

	return lv
}

// Remaining returns how many data points are still uncollected.
func (lv *Level) Remaining() int {
	n := 0
	for i := range lv.DataPoints {
		if !lv.DataPoints[i].Collected {
			n++
		}
	}
	return n
}

// inExit reports whether r reaches the exit zone.
func (lv *Level) inExit(r core.Rect, exit config.EscapeExit) bool {
	return r.Right() > lv.ExitX && r.Bottom() > exit.Top && r.Y < exit.Bottom
}

// updateLevel advances the active stage: enemies, projectiles, data points, power-ups.
// A projectile that ends the run stops the update.
func (w *World) updateLevel() {
	lv := w.Level()

	for i := range lv.Enemies {
		lv.Enemies[i].update(lv)
	}

	// Iterate backwards so removal keeps indices valid.
	for i := len(lv.Projectiles) - 1; i >= 0; i-- {
		p := &lv.Projectiles[i]
		p.update()
		switch {
		case p.Overlaps(w.Player.Rect):
			lv.Projectiles = append(lv.Projectiles[:i], lv.Projectiles[i+1:]...)
			w.loseLife(true)
			if w.Phase != core.PhasePlaying {
				return
			}
		case p.offscreen():
			lv.Projectiles = append(lv.Projectiles[:i], lv.Projectiles[i+1:]...)
		}
	}

	for i := range lv.DataPoints {
		d := &lv.DataPoints[i]
		d.update(w.Frame)
		if !d.Collected && d.Overlaps(w.Player.Rect) {
			d.Collected = true
			w.Score += w.cfg.Scoring.DataPoint
			w.emitTone(toneCollect)
			w.emit(core.EventCollect, "")
		}
	}

	for i := range lv.PowerUps {
		lv.PowerUps[i].update(w.Frame)
	}
}
