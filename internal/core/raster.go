package core

import "math"

// MinCellAlpha is the faintest alpha a terminal cell shows.
// Translucent overlays such as scan lines vanish at cell resolution.
const MinCellAlpha uint8 = 96

// Rasterize paints list onto s, scaling a worldW x worldH surface to the screen.
func (s *Screen) Rasterize(list *DrawList, worldW, worldH float64) {
	if s.width == 0 || s.height == 0 || worldW <= 0 || worldH <= 0 {
		return
	}
	r := rasterizer{
		s:  s,
		sx: scale{cells: float64(s.width), world: worldW},
		sy: scale{cells: float64(s.height), world: worldH},
	}
	for i := range list.Cmds() {
		cmd := &list.Cmds()[i]
		if cmd.Alpha < MinCellAlpha {
			continue
		}
		r.draw(cmd)
	}
}

// scale maps world units onto cells along one axis.
// Multiplying before dividing keeps cell edges exact for whole-unit inputs.
type scale struct {
	cells, world float64
}

func (s scale) toCell(v float64) float64 { return v * s.cells / s.world }
func (s scale) centre(c int) float64    { return (float64(c) + 0.5) * s.world / s.cells }

// span returns the cells covered by [lo, lo+size), never fewer than one.
func (s scale) span(lo, size float64) (int, int) {
	a := int(math.Floor(s.toCell(lo)))
	b := int(math.Ceil(s.toCell(lo + size)))
	if b <= a {
		b = a + 1
	}
	return a, b
}

type rasterizer struct {
	s      *Screen
	sx, sy scale
}

func (r rasterizer) cellX(x float64) int { return int(math.Floor(r.sx.toCell(x))) }
func (r rasterizer) cellY(y float64) int { return int(math.Floor(r.sy.toCell(y))) }

func (r rasterizer) draw(c *DrawCmd) {
	switch c.Shape {
	case ShapeBackground:
		r.s.Fill(Cell{Rune: ' ', Bg: c.Color})
	case ShapeRect:
		r.rect(c)
	case ShapeEllipse:
		r.ellipse(c)
	case ShapeLine:
		r.line(c.X, c.Y, c.X2, c.Y2, c.Color)
	case ShapePolygon:
		r.polygon(c)
	case ShapeArc:
		r.arc(c)
	case ShapeText:
		r.text(c)
	}
}

func (r rasterizer) rect(c *DrawCmd) {
	x0, x1 := r.sx.span(c.X, c.W)
	y0, y1 := r.sy.span(c.Y, c.H)
	if c.Filled {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.s.Paint(x, y, c.Color)
			}
		}
		return
	}
	for x := x0; x < x1; x++ {
		r.s.Ink(x, y0, '─', c.Color)
		r.s.Ink(x, y1-1, '─', c.Color)
	}
	for y := y0; y < y1; y++ {
		r.s.Ink(x0, y, '│', c.Color)
		r.s.Ink(x1-1, y, '│', c.Color)
	}
}

func (r rasterizer) ellipse(c *DrawCmd) {
	rx, ry := c.W/2, c.H/2
	if rx <= 0 || ry <= 0 {
		return
	}
	x0, x1 := r.sx.span(c.X-rx, c.W)
	y0, y1 := r.sy.span(c.Y-ry, c.H)
	hit := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			wx := r.sx.centre(x)
			wy := r.sy.centre(y)
			dx, dy := (wx-c.X)/rx, (wy-c.Y)/ry
			d := dx*dx + dy*dy
			if d > 1 {
				continue
			}
			hit = true
			if c.Filled {
				r.s.Paint(x, y, c.Color)
			} else if d > 0.45 {
				r.s.Ink(x, y, '·', c.Color)
			}
		}
	}
	if !hit {
		r.dot(c.X, c.Y, c.Color, c.Filled)
	}
}

func (r rasterizer) dot(x, y float64, col Color, filled bool) {
	if filled {
		r.s.Paint(r.cellX(x), r.cellY(y), col)
		return
	}
	r.s.Ink(r.cellX(x), r.cellY(y), '·', col)
}

func (r rasterizer) line(x1, y1, x2, y2 float64, col Color) {
	cx0, cy0 := r.cellX(x1), r.cellY(y1)
	cx1, cy1 := r.cellX(x2), r.cellY(y2)
	ch := lineRune(cx1-cx0, cy1-cy0)

	// Bresenham in cell space.
	dx := Abs(cx1 - cx0)
	dy := -Abs(cy1 - cy0)
	stepX, stepY := 1, 1
	if cx0 > cx1 {
		stepX = -1
	}
	if cy0 > cy1 {
		stepY = -1
	}
	e := dx + dy
	x, y := cx0, cy0
	for {
		r.s.Ink(x, y, ch, col)
		if x == cx1 && y == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += stepX
		}
		if e2 <= dx {
			e += dx
			y += stepY
		}
	}
}

func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (r rasterizer) polygon(c *DrawCmd) {
	if len(c.Points) < 3 {
		return
	}
	minX, minY := c.Points[0].X, c.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range c.Points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0, x1 := r.sx.span(minX, maxX-minX)
	y0, y1 := r.sy.span(minY, maxY-minY)
	hit := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			wx := r.sx.centre(x)
			wy := r.sy.centre(y)
			if insidePolygon(c.Points, wx, wy) {
				hit = true
				r.s.Paint(x, y, c.Color)
			}
		}
	}
	if !hit {
		r.dot((minX+maxX)/2, (minY+maxY)/2, c.Color, true)
	}
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(pts []Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

func (r rasterizer) arc(c *DrawCmd) {
	rx, ry := c.W/2, c.H/2
	steps := int(math.Max(4, (c.End-c.Start)*math.Max(r.sx.toCell(rx), r.sy.toCell(ry))))
	for i := 0; i <= steps; i++ {
		a := c.Start + (c.End-c.Start)*float64(i)/float64(steps)
		r.s.Ink(r.cellX(c.X+math.Cos(a)*rx), r.cellY(c.Y+math.Sin(a)*ry), '·', c.Color)
	}
}

func (r rasterizer) text(c *DrawCmd) {
	n := len([]rune(c.Text))
	x := r.cellX(c.X)
	switch c.Align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	r.s.DrawText(x, r.cellY(c.Y), c.Text, c.Color)
}
