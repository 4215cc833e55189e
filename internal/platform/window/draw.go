package window

import (
	"bytes"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// curveSegments is how many segments approximate a full ellipse.
const curveSegments = 48

// painter draws a DrawList onto an ebiten image. Faces are cached per size.
type painter struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	path   vector.Path
}

func newPainter() (*painter, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &painter{source: s, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (p *painter) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = 16
	}
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: p.source, Size: size}
	p.faces[size] = f
	return f
}

// paint draws every command in submission order.
func (p *painter) paint(dst *ebiten.Image, list *core.DrawList) {
	cmds := list.Cmds()
	for i := range cmds {
		p.draw(dst, &cmds[i])
	}
}

func (p *painter) draw(dst *ebiten.Image, c *core.DrawCmd) {
	clr := colorOf(c)
	switch c.Shape {
	case core.ShapeBackground:
		dst.Fill(clr)

	case core.ShapeRect:
		x, y, w, h := float32(c.X), float32(c.Y), float32(c.W), float32(c.H)
		switch {
		case c.Radius > 0:
			p.path = vector.Path{}
			roundedRect(&p.path, x, y, w, h, float32(c.Radius))
			p.finish(dst, c, clr)
		case c.Filled:
			vector.FillRect(dst, x, y, w, h, clr, true)
		default:
			vector.StrokeRect(dst, x, y, w, h, strokeWidth(c), clr, true)
		}

	case core.ShapeEllipse:
		p.path = vector.Path{}
		tracePoints(&p.path, ellipsePoints(c.X, c.Y, c.W/2, c.H/2, 0, 2*math.Pi), true)
		p.finish(dst, c, clr)

	case core.ShapeLine:
		vector.StrokeLine(dst, float32(c.X), float32(c.Y), float32(c.X2), float32(c.Y2), strokeWidth(c), clr, true)

	case core.ShapePolygon:
		if len(c.Points) < 3 {
			return
		}
		p.path = vector.Path{}
		tracePoints(&p.path, c.Points, true)
		p.finish(dst, c, clr)

	case core.ShapeArc:
		p.path = vector.Path{}
		tracePoints(&p.path, ellipsePoints(c.X, c.Y, c.W/2, c.H/2, c.Start, c.End), false)
		p.stroke(dst, c, clr)

	case core.ShapeText:
		op := &text.DrawOptions{}
		op.GeoM.Translate(c.X, c.Y)
		op.ColorScale.ScaleWithColor(clr)
		op.PrimaryAlign = textAlign(c.Align)
		op.SecondaryAlign = text.AlignCenter // Y is the line centre
		text.Draw(dst, c.Text, p.face(c.TextSize), op)
	}
}

// finish fills or strokes the current path depending on the command.
func (p *painter) finish(dst *ebiten.Image, c *core.DrawCmd, clr color.Color) {
	if !c.Filled {
		p.stroke(dst, c, clr)
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &p.path, &vector.FillOptions{}, op)
}

func (p *painter) stroke(dst *ebiten.Image, c *core.DrawCmd, clr color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, &p.path, &vector.StrokeOptions{Width: strokeWidth(c), LineJoin: vector.LineJoinRound}, op)
}

// colorOf resolves the palette entry with the command's alpha.
func colorOf(c *core.DrawCmd) color.NRGBA {
	v := c.Color.RGBA()
	a := c.Alpha
	if a == 0 {
		a = core.Opaque
	}
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: a}
}

func strokeWidth(c *core.DrawCmd) float32 {
	if c.Stroke <= 0 {
		return 1
	}
	return float32(c.Stroke)
}

func textAlign(a core.Align) text.Align {
	switch a {
	case core.AlignCenter:
		return text.AlignCenter
	case core.AlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

// ellipsePoints samples the ellipse centred on (cx, cy) from start to end
// radians. A full turn yields curveSegments points; shorter arcs get a
// proportional share, never fewer than two.
func ellipsePoints(cx, cy, rx, ry, start, end float64) []core.Point {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	span := end - start
	full := math.Abs(span) >= 2*math.Pi
	n := int(math.Ceil(math.Abs(span)/(2*math.Pi)*curveSegments - 1e-9))
	if full {
		n = curveSegments
	}
	n = max(n, 2)

	pts := make([]core.Point, 0, n+1)
	last := n
	if full {
		last = n - 1
	}
	for i := 0; i <= last; i++ {
		a := start + span*float64(i)/float64(n)
		s, c := math.Sincos(a)
		pts = append(pts, core.Point{X: cx + c*rx, Y: cy + s*ry})
	}
	return pts
}

func tracePoints(path *vector.Path, pts []core.Point, closed bool) {
	for i, pt := range pts {
		if i == 0 {
			path.MoveTo(float32(pt.X), float32(pt.Y))
			continue
		}
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	if closed && len(pts) > 0 {
		path.Close()
	}
}

func roundedRect(path *vector.Path, x, y, w, h, r float32) {
	r = min(r, w/2, h/2)
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.ArcTo(x+w, y, x+w, y+r, r)
	path.LineTo(x+w, y+h-r)
	path.ArcTo(x+w, y+h, x+w-r, y+h, r)
	path.LineTo(x+r, y+h)
	path.ArcTo(x, y+h, x, y+h-r, r)
	path.LineTo(x, y+r)
	path.ArcTo(x, y, x+r, y, r)
	path.Close()
}
