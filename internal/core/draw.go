package core

import "math"

// Shape identifies what a DrawCmd paints.
type Shape uint8

const (
	ShapeBackground Shape = iota // fill the whole surface
	ShapeRect                    // X, Y, W, H; Radius rounds the corners
	ShapeEllipse                 // centre X, Y; diameters W, H
	ShapeLine                    // X, Y to X2, Y2 with Stroke width
	ShapePolygon                 // Points, already rotated and translated
	ShapeArc                     // centre X, Y; diameters W, H; Start..End radians
	ShapeText                    // Text at X, Y with TextSize and Align
)

// Align is the horizontal anchor of a text command.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Point is a vertex in world units.
type Point struct {
	X, Y float64
}

// DrawCmd is one entry of the render boundary.
// Fields outside the shape's documented set are ignored by hosts.
type DrawCmd struct {
	Shape    Shape
	X, Y     float64
	W, H     float64
	X2, Y2   float64
	Points   []Point
	Radius   float64
	Stroke   float64
	Start    float64
	End      float64
	Filled   bool
	Color    Color
	Alpha    uint8
	Text     string
	TextSize float64
	Align    Align
}

// DrawList is an ordered list of draw commands.
// Hosts paint commands in submission order, later ones on top.
type DrawList struct {
	cmds []DrawCmd
}

// NewDrawList creates a list with room for n commands.
func NewDrawList(n int) *DrawList {
	return &DrawList{cmds: make([]DrawCmd, 0, n)}
}

// Reset empties the list, keeping its storage.
func (l *DrawList) Reset() {
	l.cmds = l.cmds[:0]
}

// Len returns the number of queued commands.
func (l *DrawList) Len() int {
	return len(l.cmds)
}

// Cmds returns the queued commands. The slice is only valid until the next Reset.
func (l *DrawList) Cmds() []DrawCmd {
	return l.cmds
}

// Push appends a command and returns a pointer to it for further tweaks.
func (l *DrawList) Push(c DrawCmd) *DrawCmd {
	if c.Alpha == 0 {
		c.Alpha = Opaque
	}
	l.cmds = append(l.cmds, c)
	return &l.cmds[len(l.cmds)-1]
}

// Background fills the whole surface.
func (l *DrawList) Background(c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeBackground, Color: c, Filled: true})
}

// FillRect queues a filled rectangle.
func (l *DrawList) FillRect(x, y, w, h float64, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c, Filled: true})
}

// StrokeRect queues a rectangle outline.
func (l *DrawList) StrokeRect(x, y, w, h, stroke float64, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Stroke: stroke, Color: c})
}

// FillEllipse queues a filled ellipse centred on (cx, cy).
func (l *DrawList) FillEllipse(cx, cy, w, h float64, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeEllipse, X: cx, Y: cy, W: w, H: h, Color: c, Filled: true})
}

// StrokeEllipse queues an ellipse outline centred on (cx, cy).
func (l *DrawList) StrokeEllipse(cx, cy, w, h, stroke float64, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeEllipse, X: cx, Y: cy, W: w, H: h, Stroke: stroke, Color: c})
}

// Line queues a line segment.
func (l *DrawList) Line(x1, y1, x2, y2, stroke float64, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: stroke, Color: c})
}

// Polygon queues a filled polygon. The points slice is retained.
func (l *DrawList) Polygon(pts []Point, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapePolygon, Points: pts, Color: c, Filled: true})
}

// Arc queues an arc outline between start and end angles (radians, clockwise from +x).
func (l *DrawList) Arc(cx, cy, w, h, start, end, stroke float64, c Color) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeArc, X: cx, Y: cy, W: w, H: h, Start: start, End: end, Stroke: stroke, Color: c})
}

// Text queues a string anchored at (x, y) by align.
func (l *DrawList) Text(x, y float64, size float64, align Align, c Color, text string) *DrawCmd {
	return l.Push(DrawCmd{Shape: ShapeText, X: x, Y: y, TextSize: size, Align: align, Color: c, Text: text, Filled: true})
}

// WithAlpha sets the command's alpha and returns it.
func (c *DrawCmd) WithAlpha(a uint8) *DrawCmd {
	c.Alpha = a
	return c
}

// Rotate returns pts rotated by angle radians around the origin and moved to (cx, cy).
func Rotate(pts []Point, cx, cy, angle float64) []Point {
	s, co := math.Sincos(angle)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: cx + p.X*co - p.Y*s,
			Y: cy + p.X*s + p.Y*co,
		}
	}
	return out
}
