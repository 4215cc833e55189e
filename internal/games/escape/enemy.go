package escape

import (
	"math"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// EnemyKind tags an enemy variant. Behaviour is looked up in the enemy table.
type EnemyKind string

const (
	KindBug      EnemyKind = "bug"      // patrols left and right
	KindFirewall EnemyKind = "firewall" // stands still and shoots left
	KindRobot    EnemyKind = "robot"    // patrols with a vertical sine drift
)

// Valid reports whether k has an entry in the enemy table.
func (k EnemyKind) Valid() bool {
	_, ok := enemyTable[k]
	return ok
}

// Enemy is a hazard body. Contact costs the player a life unless shielded.
type Enemy struct {
	core.Rect
	Kind     EnemyKind
	VX       float64
	Phase    float64 // wiggle, pulse or wave phase depending on kind
	Timer    int     // shooter frame counter
	Interval int     // shooter fires when Timer exceeds this
}

// enemyTuning is the per-level enemy parameters after difficulty scaling.
type enemyTuning struct {
	patrolSpeed     float64
	patrolMargin    float64
	wavySpeed       float64
	wavyAmplitude   float64
	shooterInterval int
	projectileSpeed float64
}

// enemyBehavior is one row of the enemy dispatch table.
type enemyBehavior struct {
	w, h   float64
	speed  func(t enemyTuning) float64
	update func(e *Enemy, lv *Level)
	draw   func(e *Enemy, dst *core.DrawList)
}

var enemyTable = map[EnemyKind]enemyBehavior{
	KindBug: {
		w: 30, h: 20,
		speed:  func(t enemyTuning) float64 { return t.patrolSpeed },
		update: updateBug,
		draw:   drawBug,
	},
	KindFirewall: {
		w: 20, h: 40,
		speed:  func(enemyTuning) float64 { return 0 },
		update: updateFirewall,
		draw:   drawFirewall,
	},
	KindRobot: {
		w: 30, h: 30,
		speed:  func(t enemyTuning) float64 { return t.wavySpeed },
		update: updateRobot,
		draw:   drawRobot,
	},
}

// newEnemy builds an enemy from level data. Unknown kinds are rejected by
// level validation before this is reached.
func newEnemy(spec EnemySpec, t enemyTuning) Enemy {
	b := enemyTable[spec.Kind]
	return Enemy{
		Rect:     core.NewRect(spec.X, spec.Y, b.w, b.h),
		Kind:     spec.Kind,
		VX:       b.speed(t),
		Interval: t.shooterInterval,
	}
}

func (e *Enemy) update(lv *Level) {
	enemyTable[e.Kind].update(e, lv)
}

func (e *Enemy) draw(dst *core.DrawList) {
	enemyTable[e.Kind].draw(e, dst)
}

func updateBug(e *Enemy, lv *Level) {
	e.X += e.VX
	e.Phase += 0.2
	if e.X < 0 || e.X > core.WorldW-e.W-lv.tune.patrolMargin {
		e.VX = -e.VX
	}
}

func updateFirewall(e *Enemy, lv *Level) {
	e.Timer++
	e.Phase += 0.1
	if e.Timer > e.Interval {
		lv.Projectiles = append(lv.Projectiles, newProjectile(e.X, e.Y+20, lv.tune.projectileSpeed, 0))
		e.Timer = 0
	}
}

func updateRobot(e *Enemy, lv *Level) {
	e.X += e.VX
	e.Phase += 0.1
	e.Y += math.Sin(e.Phase) * lv.tune.wavyAmplitude
	if e.X < 0 || e.X > core.WorldW-e.W {
		e.VX = -e.VX
	}
}

func drawBug(e *Enemy, dst *core.DrawList) {
	dst.FillEllipse(e.X+15, e.Y+10, 30, 20, core.ColorRed)

	wiggle := math.Sin(e.Phase) * 3
	legs := [][4]float64{
		{e.X + 5, e.Y + 10, e.X - 5, e.Y + 15 + wiggle},
		{e.X + 10, e.Y + 10, e.X, e.Y + 15 - wiggle},
		{e.X + 20, e.Y + 10, e.X + 30, e.Y + 15 + wiggle},
		{e.X + 25, e.Y + 10, e.X + 35, e.Y + 15 - wiggle},
		// antennae
		{e.X + 5, e.Y + 5, e.X, e.Y - 5},
		{e.X + 25, e.Y + 5, e.X + 30, e.Y - 5},
	}
	for _, l := range legs {
		dst.Line(l[0], l[1], l[2], l[3], 2, core.ColorRed)
	}

	dst.FillEllipse(e.X+10, e.Y+5, 5, 5, core.ColorBlack)
	dst.FillEllipse(e.X+20, e.Y+5, 5, 5, core.ColorBlack)
}

func drawFirewall(e *Enemy, dst *core.DrawList) {
	pulse := math.Sin(e.Phase) * 5

	dst.FillRect(e.X, e.Y, e.W, e.H, core.ColorOrange)
	for i := 0; i < 4; i++ {
		y := e.Y + 10*float64(i) + 5
		dst.Line(e.X, y, e.X+e.W, y, 2, core.ColorRed)
	}
	dst.FillRect(e.X-5, e.Y-5, e.W+10, e.H+10, core.ColorEmber).WithAlpha(uint8(100 + pulse*10))
}

func drawRobot(e *Enemy, dst *core.DrawList) {
	dst.FillRect(e.X, e.Y, e.W, e.H, core.ColorPurple).Radius = 5
	dst.FillRect(e.X+5, e.Y+5, e.W-10, 10, core.ColorBlack).Radius = 2

	dst.FillEllipse(e.X+10, e.Y+10, 5, 5, core.ColorRed)
	dst.FillEllipse(e.X+e.W-10, e.Y+10, 5, 5, core.ColorRed)

	dst.Line(e.X, e.Y+15, e.X-10, e.Y+20+math.Sin(e.Phase)*5, 3, core.ColorPurple)
	dst.Line(e.X+e.W, e.Y+15, e.X+e.W+10, e.Y+20+math.Sin(e.Phase+math.Pi)*5, 3, core.ColorPurple)
}
