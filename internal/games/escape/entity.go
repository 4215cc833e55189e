package escape

import (
	"math"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Platform is static level geometry.
type Platform struct {
	core.Rect
}

// DataPoint is a collectible worth a fixed score.
// Its collision box has its top-left at the drawn centre.
type DataPoint struct {
	core.Rect
	Collected bool
	Pulse     float64 // cosmetic size wobble
}

// update advances the cosmetic pulse.
func (d *DataPoint) update(frame int) {
	d.Pulse = math.Sin(float64(frame)*0.1) * 3
}

// PowerUpKind names the effect a power-up grants.
type PowerUpKind string

const (
	PowerSpeed  PowerUpKind = "speed"
	PowerShield PowerUpKind = "shield"
	PowerJump   PowerUpKind = "jump"
)

// Valid reports whether k is a known power-up.
func (k PowerUpKind) Valid() bool {
	switch k {
	case PowerSpeed, PowerShield, PowerJump:
		return true
	default:
		return false
	}
}

// PowerUp grants a timed effect on first contact.
type PowerUp struct {
	core.Rect
	Kind      PowerUpKind
	Collected bool
	Float     float64 // cosmetic vertical bob
	Angle     float64 // cosmetic rotation
}

// update advances the cosmetic animation.
func (p *PowerUp) update(frame int) {
	p.Float = math.Sin(float64(frame)*0.05) * 5
	p.Angle += 0.02
}

// Projectile moves at constant velocity until it hits the player or leaves the screen.
type Projectile struct {
	core.Rect
	VX, VY float64
}

// Projectile size.
const (
	ProjectileW = 15
	ProjectileH = 5
)

func newProjectile(x, y, vx, vy float64) Projectile {
	return Projectile{Rect: core.NewRect(x, y, ProjectileW, ProjectileH), VX: vx, VY: vy}
}

func (p *Projectile) update() {
	p.X += p.VX
	p.Y += p.VY
}

// offscreen reports whether the projectile left the horizontal bounds.
func (p *Projectile) offscreen() bool {
	return p.X > core.WorldW || p.X < 0
}
