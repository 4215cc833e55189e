package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Effect is a timed power-up modifier.
type Effect struct {
	Active bool
	Frames int // remaining
}

// tick counts the effect down and reports whether it expired this frame.
func (e *Effect) tick() bool {
	if !e.Active {
		return false
	}
	e.Frames--
	if e.Frames <= 0 {
		e.Active = false
		return true
	}
	return false
}

func (e *Effect) arm(frames int) {
	e.Active = true
	e.Frames = frames
}

func (e *Effect) clear() {
	e.Active = false
	e.Frames = 0
}

// Seconds returns the remaining time rounded up, at 60 frames per second.
func (e Effect) Seconds() int {
	return (e.Frames + 59) / 60
}

// Player is the controllable body.
type Player struct {
	core.Rect
	VX, VY    float64
	Lives     int
	OnGround  bool
	Jumping   bool
	JumpPower float64

	Shield    Effect
	Boost     Effect
	SuperJump Effect

	Blink int // cosmetic frame counter for the eye blink
}

func newPlayer(cfg config.EscapeConfig) Player {
	p := Player{
		Rect:  core.NewRect(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height),
		Lives: cfg.Player.Lives,
	}
	p.resetPosition(cfg)
	return p
}

// resetPosition returns the player to spawn with no motion and no power-ups.
// Lives are untouched.
func (p *Player) resetPosition(cfg config.EscapeConfig) {
	p.X, p.Y = cfg.Player.SpawnX, cfg.Player.SpawnY
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.Jumping = false
	p.Shield.clear()
	p.Boost.clear()
	p.SuperJump.clear()
	p.JumpPower = cfg.Physics.JumpImpulse
}

func (p *Player) speed(cfg config.EscapeConfig) float64 {
	if p.Boost.Active {
		return cfg.Player.BoostSpeed
	}
	return cfg.Player.WalkSpeed
}

// MoveLeft sets leftward velocity, boosted while the speed power-up is active.
func (p *Player) MoveLeft(cfg config.EscapeConfig) {
	p.VX = -p.speed(cfg)
}

// MoveRight sets rightward velocity.
func (p *Player) MoveRight(cfg config.EscapeConfig) {
	p.VX = p.speed(cfg)
}

// StopMoving zeroes horizontal velocity.
func (p *Player) StopMoving() {
	p.VX = 0
}

// Jump applies the current jump impulse if the guard allows it.
// It reports whether the jump happened.
func (p *Player) Jump(guard JumpGuard) bool {
	switch guard {
	case GuardOnGround:
		if !p.OnGround {
			return false
		}
	case GuardNotJumping:
		if p.Jumping {
			return false
		}
	}
	p.VY = p.JumpPower
	p.Jumping = true
	p.OnGround = false
	return true
}

// tickEffects counts down power-up timers. An expired super jump restores
// the normal impulse.
func (p *Player) tickEffects(cfg config.EscapeConfig) {
	p.Shield.tick()
	p.Boost.tick()
	if p.SuperJump.tick() {
		p.JumpPower = cfg.Physics.JumpImpulse
	}
}

// integrate applies gravity and velocity, clamps x to the world and
// returns the bounds before the move.
func (p *Player) integrate(phys config.EscapePhysics) core.Rect {
	p.VY += phys.Gravity
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}

	prev := p.Rect
	p.Y += p.VY
	p.X += p.VX
	p.X = core.ClampF(p.X, 0, core.WorldW-p.W)
	return prev
}

// land snaps the player onto a platform top.
func (p *Player) land(top float64) {
	p.Y = top - p.H
	p.VY = 0
	p.OnGround = true
	p.Jumping = false
}

// resolveFourSided classifies each platform hit by where the player was
// before the move and resolves exactly one axis per platform.
func (p *Player) resolveFourSided(prev core.Rect, platforms []Platform) {
	p.OnGround = false
	for i := range platforms {
		pl := platforms[i].Rect
		if !p.Overlaps(pl) {
			// Feet exactly on the top after a fall still count as landing.
			if p.VY > 0 && p.Bottom() == pl.Y && prev.Bottom() <= pl.Y && p.OverlapsX(pl) {
				p.land(pl.Y)
			}
			continue
		}
		switch {
		case prev.Bottom() <= pl.Y:
			p.land(pl.Y)
		case prev.Y >= pl.Bottom():
			p.Y = pl.Bottom()
			p.VY = 0
		case prev.Right() <= pl.X:
			p.X = pl.X - p.W
			p.VX = 0
		case prev.X >= pl.Right():
			p.X = pl.Right()
			p.VX = 0
		}
	}
}

// resolveBand lands a falling player whose feet end within band below a
// platform top, or who crossed that top during this frame.
func (p *Player) resolveBand(prev core.Rect, platforms []Platform, band float64) {
	p.OnGround = false
	if p.VY <= 0 {
		return
	}
	for i := range platforms {
		pl := platforms[i].Rect
		if !p.OverlapsX(pl) || p.Bottom() < pl.Y {
			continue
		}
		if p.Bottom() <= pl.Y+band || prev.Bottom() <= pl.Y {
			p.land(pl.Y)
			return
		}
	}
}

// activate arms the effect for a power-up kind.
func (p *Player) activate(kind PowerUpKind, cfg config.EscapeConfig) {
	switch kind {
	case PowerSpeed:
		p.Boost.arm(cfg.PowerUps.SpeedFrames)
	case PowerShield:
		p.Shield.arm(cfg.PowerUps.ShieldFrames)
	case PowerJump:
		p.SuperJump.arm(cfg.PowerUps.JumpFrames)
		p.JumpPower = cfg.Physics.SuperJumpImpulse
	}
}

// updatePlayer runs the player's frame: timers, gravity, movement, platforms,
// enemy contact, exit zone, falling off screen and power-up pickup, in that
// order. A transition out of PLAYING stops the frame.
func (w *World) updatePlayer() {
	p := &w.Player
	p.Blink++

	p.tickEffects(w.cfg)
	prev := p.integrate(w.cfg.Physics)

	lv := w.Level()
	switch w.rules.Landing {
	case LandBand:
		p.resolveBand(prev, lv.Platforms, w.cfg.Physics.LandingBand)
	default:
		p.resolveFourSided(prev, lv.Platforms)
	}

	for i := 0; i < len(lv.Enemies); i++ {
		if !p.Overlaps(lv.Enemies[i].Rect) {
			continue
		}
		if p.Shield.Active {
			p.Shield.clear()
			p.VY = w.cfg.PowerUps.ShieldBounce
			w.emitTone(toneShieldBreak)
			w.emit(core.EventShieldBreak, string(lv.Enemies[i].Kind))
			continue
		}
		if w.rules.ConsumeEnemies {
			lv.Enemies = append(lv.Enemies[:i], lv.Enemies[i+1:]...)
		}
		w.loseLife(true)
		if w.Phase != core.PhasePlaying {
			return
		}
		// The player is back at spawn; later enemies no longer touch the old position.
		break
	}

	if lv.inExit(p.Rect, w.cfg.Exit) {
		w.advanceLevel()
		if w.Phase != core.PhasePlaying {
			return
		}
		lv = w.Level()
	}

	if p.Y > core.WorldH {
		w.loseLife(false)
		if w.Phase != core.PhasePlaying {
			return
		}
	}

	for i := range lv.PowerUps {
		pu := &lv.PowerUps[i]
		if pu.Collected || !p.Overlaps(pu.Rect) {
			continue
		}
		pu.Collected = true
		p.activate(pu.Kind, w.cfg)
		w.Score += w.cfg.Scoring.PowerUp
		w.emitTone(powerUpTone(pu.Kind))
		w.emit(core.EventPowerUp, string(pu.Kind))
	}
}
