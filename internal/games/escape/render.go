package escape

import (
	"fmt"
	"math"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Portal size and vertical anchor.
const (
	portalY    = 500
	portalSize = 50
)

// Draw renders the current frame into dst in painter's order.
func (w *World) Draw(dst *core.DrawList) {
	dst.Reset()
	switch w.Phase {
	case core.PhaseStart:
		w.drawStart(dst)
	case core.PhasePlaying:
		w.drawLevel(dst)
		w.drawPlayer(dst)
		drawScanLines(dst)
		w.drawHUD(dst)
	case core.PhaseGameOver:
		if w.Cleared {
			w.drawCleared(dst)
		} else {
			w.drawGameOver(dst)
		}
	case core.PhaseWin:
		w.drawWin(dst)
	}
}

// blink alternates between two colours every half second.
func (w *World) blink(a, b core.Color) core.Color {
	if w.Frame%60 < 30 {
		return a
	}
	return b
}

func (w *World) drawStart(dst *core.DrawList) {
	dst.Background(core.ColorMidnight)

	for i := 0; i < 10; i++ {
		y := float64(i * 60)
		dst.Line(0, y, core.WorldW, y+math.Sin(float64(w.Frame)*0.02+float64(i))*50, 2, core.ColorCyan).WithAlpha(100)
	}

	t := w.rules.Text
	cx, cy := float64(core.WorldW/2), float64(core.WorldH/2)
	dst.Text(cx, cy-80, 50, core.AlignCenter, core.ColorCyan, t.Title)
	dst.Text(cx, cy-30, 20, core.AlignCenter, core.ColorWhite, t.Subtitle)
	for i, hint := range t.Hints {
		dst.Text(cx, cy+20+float64(i*30), 16, core.AlignCenter, core.ColorWhite, hint)
	}
	dst.Text(cx, cy+100, 18, core.AlignCenter, w.blink(core.ColorNeonGreen, core.ColorWhite), t.StartPrompt)
}

// drawHighScore shows either the new record banner or the standing record.
func (w *World) drawHighScore(dst *core.DrawList, y float64) {
	cx := float64(core.WorldW / 2)
	if w.NewHigh {
		dst.Text(cx, y, 24, core.AlignCenter, core.ColorYellow, "NEW HIGH SCORE!")
		return
	}
	dst.Text(cx, y, 24, core.AlignCenter, core.ColorWhite, fmt.Sprintf("High Score: %d", w.HighScore))
}

// endRNG gives the end screens a per-frame deterministic scatter.
func (w *World) endRNG() *core.RNG {
	return core.NewRNG(w.seed ^ int64(w.Frame)*2654435761)
}

func (w *World) drawGameOver(dst *core.DrawList) {
	dst.Background(core.ColorBloodRed)

	t := w.rules.Text
	cx, cy := float64(core.WorldW/2), float64(core.WorldH/2)
	dst.Text(cx, cy-80, 50, core.AlignCenter, core.ColorRed, t.FailTitle)
	dst.Text(cx, cy-20, 24, core.AlignCenter, core.ColorWhite, fmt.Sprintf("Score: %d", w.Score))
	w.drawHighScore(dst, cy+20)
	dst.Text(cx, cy+80, 18, core.AlignCenter, w.blink(core.ColorNeonGreen, core.ColorWhite), t.RestartPrompt)

	rng := w.endRNG()
	for i := 0; i < 10; i++ {
		dst.FillRect(0, rng.Range(0, core.WorldH), core.WorldW, rng.Range(5, 15), core.ColorRed).WithAlpha(50)
	}
}

// drawCleared is the end screen of a variant without a WIN phase
// when the last level was completed.
func (w *World) drawCleared(dst *core.DrawList) {
	dst.Background(core.ColorForest)

	t := w.rules.Text
	cx, cy := float64(core.WorldW/2), float64(core.WorldH/2)
	dst.Text(cx, cy-80, 50, core.AlignCenter, core.ColorNeonGreen, t.WinTitle)
	dst.Text(cx, cy-30, 24, core.AlignCenter, core.ColorWhite, t.WinSubtitle)
	dst.Text(cx, cy+20, 24, core.AlignCenter, core.ColorWhite, fmt.Sprintf("Score: %d", w.Score))
	w.drawHighScore(dst, cy+60)
	dst.Text(cx, cy+100, 18, core.AlignCenter, w.blink(core.ColorNeonGreen, core.ColorWhite), t.RestartPrompt)
}

func (w *World) drawWin(dst *core.DrawList) {
	dst.Background(core.ColorForest)

	t := w.rules.Text
	cx, cy := float64(core.WorldW/2), float64(core.WorldH/2)
	dst.Text(cx, cy-80, 50, core.AlignCenter, core.ColorNeonGreen, t.WinTitle)
	dst.Text(cx, cy-30, 24, core.AlignCenter, core.ColorWhite, t.WinSubtitle)
	dst.Text(cx, cy+20, 24, core.AlignCenter, core.ColorWhite, fmt.Sprintf("Final Score: %d", w.Score))
	w.drawHighScore(dst, cy+60)
	dst.Text(cx, cy+100, 18, core.AlignCenter, w.blink(core.ColorCyan, core.ColorWhite), t.AgainPrompt)

	rng := w.endRNG()
	for i := 0; i < 20; i++ {
		x, y := rng.Range(0, core.WorldW), rng.Range(0, core.WorldH)
		dst.FillEllipse(x, y, rng.Range(5, 10), rng.Range(5, 10), core.ColorNeonGreen).WithAlpha(150)
	}
}

func (w *World) drawBackground(dst *core.DrawList) {
	lv := w.Level()
	switch lv.Theme {
	case ThemeTraining:
		dst.Background(core.ColorNavy)
		for i := 0; i < core.WorldW; i += 50 {
			dst.Line(float64(i), 0, float64(i), core.WorldH, 1, core.ColorGridBlue)
		}
		for i := 0; i < core.WorldH; i += 50 {
			dst.Line(0, float64(i), core.WorldW, float64(i), 1, core.ColorGridBlue)
		}
	case ThemeNeural:
		dst.Background(core.ColorDeepTeal)
		for i := 0; i < 10; i++ {
			x := float64(i * 100)
			dst.FillEllipse(x, 100, 30, 30, core.ColorNodeTeal).WithAlpha(20)
			dst.FillEllipse(x+50, 200, 30, 30, core.ColorNodeTeal).WithAlpha(20)
			dst.FillEllipse(x, 300, 30, 30, core.ColorNodeTeal).WithAlpha(20)
		}
	case ThemeRobotics:
		dst.Background(core.ColorPlum)
		for i := 0; i < core.WorldW; i += 100 {
			x := float64(i)
			dst.Line(x, 0, x, core.WorldH, 1, core.ColorCircuit)
			for j := 0; j < core.WorldH; j += 100 {
				dst.Line(x, float64(j), x+50, float64(j), 1, core.ColorCircuit)
			}
		}
	case ThemeStatic:
		dst.Background(core.ColorStatic)
		rng := core.NewRNG(int64(w.Frame / 4))
		for i := 0; i < 40; i++ {
			dst.FillRect(rng.Range(0, core.WorldW), rng.Range(40, 540), rng.Range(4, 30), 2, core.ColorGray).WithAlpha(120)
		}
	case ThemeNews:
		dst.Background(core.ColorNewsBlue)
		dst.FillRect(0, 500, core.WorldW, 24, core.ColorRed).WithAlpha(140)
		x := core.WorldW - float64((w.Frame*2)%(core.WorldW*2))
		dst.Text(x, 512, 14, core.AlignLeft, core.ColorWhite, "BREAKING: HOUSEHOLD TV ATTEMPTS ESCAPE FROM STUDIO")
	case ThemeCartoon:
		dst.Background(core.ColorCartoon)
		dst.FillEllipse(680, 110, 90, 90, core.ColorYellow).WithAlpha(110)
		for i := 0; i < 4; i++ {
			x := math.Mod(float64(i*220)+float64(w.Frame)*0.5, core.WorldW+120) - 60
			dst.FillEllipse(x, 80+float64(i%2)*40, 100, 36, core.ColorWhite).WithAlpha(60)
		}
	default:
		dst.Background(core.ColorBlack)
	}
}

func (w *World) drawLevel(dst *core.DrawList) {
	w.drawBackground(dst)
	lv := w.Level()

	for i := range lv.Platforms {
		p := lv.Platforms[i]
		dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorGreen)
	}

	for i := range lv.DataPoints {
		d := lv.DataPoints[i]
		if d.Collected {
			continue
		}
		dst.FillEllipse(d.X, d.Y, d.W+d.Pulse, d.H+d.Pulse, core.ColorNeonGreen)
		dst.Text(d.X, d.Y, 10, core.AlignCenter, core.ColorWhite, "01")
	}

	for i := range lv.Enemies {
		lv.Enemies[i].draw(dst)
	}

	for i := range lv.Projectiles {
		p := lv.Projectiles[i]
		dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorRed).Radius = 5
		dst.FillRect(p.X+2, p.Y+1, p.W-4, p.H-2, core.ColorOrange).Radius = 3
	}

	w.drawExit(dst, lv.ExitX, portalY)

	for i := range lv.PowerUps {
		if !lv.PowerUps[i].Collected {
			drawPowerUp(dst, &lv.PowerUps[i])
		}
	}
}

func (w *World) drawExit(dst *core.DrawList, x, y float64) {
	cx, cy := x+portalSize/2, y+portalSize/2
	for i := 5; i > 0; i-- {
		d := float64(portalSize + i*5)
		dst.FillEllipse(cx, cy, d, d, core.ColorCyan).WithAlpha(uint8(150 - i*20))
	}
	dst.FillEllipse(cx, cy, 30, 30, core.ColorWhite)

	a := float64(w.Frame) * 0.05
	dst.Arc(cx, cy, 20, 20, a, a+math.Pi, 2, core.ColorCyan)
	dst.Arc(cx, cy, 15, 15, a+math.Pi, a+2*math.Pi, 2, core.ColorCyan)
}

// Power-up glyphs around their own centre.
var (
	boltShape = []core.Point{{X: -5, Y: -12}, {X: 3, Y: -5}, {X: 0, Y: 0}, {X: 8, Y: 12}, {X: 0, Y: 0}, {X: -3, Y: 5}}
	arrowHead = []core.Point{{X: -10, Y: 5}, {X: 0, Y: -10}, {X: 10, Y: 5}}
	arrowStem = []core.Point{{X: -5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 10}, {X: -5, Y: 10}}
)

func drawPowerUp(dst *core.DrawList, p *PowerUp) {
	cx, cy := p.X+p.W/2, p.Y+p.H/2+p.Float
	switch p.Kind {
	case PowerSpeed:
		dst.Polygon(core.Rotate(boltShape, cx, cy, p.Angle), core.ColorYellow)
	case PowerShield:
		dst.FillEllipse(cx, cy, 20, 20, core.ColorCyan)
		start := math.Pi + math.Pi/4 + p.Angle
		dst.Arc(cx, cy, 15, 15, start, start+math.Pi, 2, core.ColorWhite)
	case PowerJump:
		dst.Polygon(core.Rotate(arrowHead, cx, cy, p.Angle), core.ColorNeonGreen)
		dst.Polygon(core.Rotate(arrowStem, cx, cy, p.Angle), core.ColorNeonGreen)
	}
}

func (w *World) drawPlayer(dst *core.DrawList) {
	p := w.Player
	cx, cy := p.X+p.W/2, p.Y+p.H/2

	if p.Shield.Active {
		dst.FillEllipse(cx, cy, 50, 50, core.ColorCyan).WithAlpha(100)
	}
	if p.Boost.Active {
		for i := 1; i <= 3; i++ {
			dst.FillEllipse(p.X-float64(i*8), cy, float64(10-i*2), 20, core.ColorYellow).WithAlpha(150)
		}
	}
	if p.SuperJump.Active {
		dst.Polygon([]core.Point{{X: cx, Y: p.Y - 10}, {X: cx - 10, Y: p.Y}, {X: cx + 10, Y: p.Y}}, core.ColorNeonGreen).WithAlpha(150)
	}

	dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorCyan).Radius = 5
	dst.FillRect(p.X+5, p.Y+5, p.W-10, 15, core.ColorBlack).Radius = 2

	eyeH := 5.0
	if p.Blink%60 < 5 {
		eyeH = 1
	}
	dst.FillRect(p.X+8, p.Y+10, 5, eyeH, core.ColorNeonGreen)
	dst.FillRect(p.X+p.W-13, p.Y+10, 5, eyeH, core.ColorNeonGreen)

	dst.Line(cx, p.Y, cx, p.Y-10, 1, core.ColorWhite)
	dst.FillEllipse(cx, p.Y-10, 5, 5, core.ColorRed)
}

// drawScanLines overlays faint horizontal lines every 4 units.
func drawScanLines(dst *core.DrawList) {
	for y := 0; y < core.WorldH; y += 4 {
		dst.Line(0, float64(y), core.WorldW, float64(y), 1, core.ColorWhite).WithAlpha(30)
	}
}

// HUD layout. Text Y is the line's vertical centre.
const (
	hudHeight = 40
	hudTextY  = 20
	hudEffect = 55 // power-up timers sit just under the bar
)

func (w *World) drawHUD(dst *core.DrawList) {
	p := w.Player
	dst.FillRect(0, 0, core.WorldW, hudHeight, core.ColorBlack).WithAlpha(150)

	dst.Text(10, hudTextY, 16, core.AlignLeft, core.ColorWhite, fmt.Sprintf("Lives: %d", p.Lives))
	for i := 0; i < p.Lives; i++ {
		dst.Polygon(heart(float64(60+i*25), hudTextY, 10), core.ColorRed)
	}

	dst.Text(core.WorldW/2, hudTextY, 16, core.AlignCenter, core.ColorNeonGreen, fmt.Sprintf("Score: %d", w.Score))
	dst.Text(core.WorldW-10, hudTextY, 16, core.AlignRight, core.ColorCyan,
		fmt.Sprintf("Level: %d/%d", w.current+1, w.LevelCount()))

	if p.Shield.Active {
		dst.Text(core.WorldW/2-120, hudEffect, 16, core.AlignCenter, core.ColorCyan, fmt.Sprintf("Shield: %ds", p.Shield.Seconds()))
	}
	if p.Boost.Active {
		dst.Text(core.WorldW/2, hudEffect, 16, core.AlignCenter, core.ColorYellow, fmt.Sprintf("Speed: %ds", p.Boost.Seconds()))
	}
	if p.SuperJump.Active {
		dst.Text(core.WorldW/2+120, hudEffect, 16, core.AlignCenter, core.ColorNeonGreen, fmt.Sprintf("Jump+: %ds", p.SuperJump.Seconds()))
	}
}

// heart returns a heart outline with its top notch at (x, y), traced from two cubic curves.
func heart(x, y, size float64) []core.Point {
	const steps = 8
	left := [4]core.Point{{X: x, Y: y}, {X: x - size/2, Y: y - size/2}, {X: x - size, Y: y + size/3}, {X: x, Y: y + size}}
	right := [4]core.Point{{X: x, Y: y + size}, {X: x + size, Y: y + size/3}, {X: x + size/2, Y: y - size/2}, {X: x, Y: y}}
	pts := make([]core.Point, 0, 2*steps)
	for _, c := range [][4]core.Point{left, right} {
		for i := 0; i < steps; i++ {
			pts = append(pts, bezier(c, float64(i)/steps))
		}
	}
	return pts
}

func bezier(c [4]core.Point, t float64) core.Point {
	u := 1 - t
	a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return core.Point{
		X: a*c[0].X + b*c[1].X + cc*c[2].X + d*c[3].X,
		Y: a*c[0].Y + b*c[1].Y + cc*c[2].Y + d*c[3].Y,
	}
}
