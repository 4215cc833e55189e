package core

import "testing"

// A 80x60 screen over the 800x600 world gives 10 world units per cell.
func newRasterScreen() *Screen {
	return NewScreen(80, 60)
}

func TestRasterizeBackground(t *testing.T) {
	s := newRasterScreen()
	l := NewDrawList(4)
	l.Background(ColorNavy)
	s.Rasterize(l, WorldW, WorldH)

	for _, p := range [][2]int{{0, 0}, {79, 59}, {40, 30}} {
		if c := s.GetCell(p[0], p[1]); c.Bg != ColorNavy {
			t.Errorf("cell %v background = %v, expected navy", p, c.Bg)
		}
	}
}

func TestRasterizeFilledRect(t *testing.T) {
	s := newRasterScreen()
	l := NewDrawList(4)
	l.FillRect(0, 550, 800, 50, ColorGreen)
	s.Rasterize(l, WorldW, WorldH)

	if s.GetCell(0, 55).Bg != ColorGreen || s.GetCell(79, 59).Bg != ColorGreen {
		t.Error("ground platform should cover rows 55..59")
	}
	if s.GetCell(0, 54).Bg == ColorGreen {
		t.Error("row 54 should not be painted")
	}
}

func TestRasterizeTinyShapeStillVisible(t *testing.T) {
	s := newRasterScreen()
	l := NewDrawList(4)
	l.FillEllipse(255, 355, 4, 4, ColorCyan)
	s.Rasterize(l, WorldW, WorldH)

	if s.GetCell(25, 35).Bg != ColorCyan {
		t.Errorf("sub-cell ellipse should paint its centre cell, got %+v", s.GetCell(25, 35))
	}
}

func TestRasterizeSkipsFaintCommands(t *testing.T) {
	s := newRasterScreen()
	l := NewDrawList(4)
	l.FillRect(0, 0, 800, 1, ColorBlack).WithAlpha(30)
	s.Rasterize(l, WorldW, WorldH)

	if s.GetCell(10, 0).Bg != ColorDefault {
		t.Error("alpha-30 overlay should not reach the cell grid")
	}
}

func TestRasterizeTextAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		x     int
	}{
		{"left", AlignLeft, 40},
		{"center", AlignCenter, 38},
		{"right", AlignRight, 36},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newRasterScreen()
			l := NewDrawList(1)
			l.Text(400, 100, 16, tc.align, ColorWhite, "GAME")
			s.Rasterize(l, WorldW, WorldH)

			if s.Get(tc.x, 10) != 'G' {
				t.Errorf("expected 'G' at (%d, 10), row = %q", tc.x, s.Row(10))
			}
		})
	}
}

func TestRasterizePolygon(t *testing.T) {
	s := newRasterScreen()
	l := NewDrawList(1)
	l.Polygon([]Point{{100, 100}, {200, 100}, {150, 200}}, ColorRed)
	s.Rasterize(l, WorldW, WorldH)

	if s.GetCell(15, 12).Bg != ColorRed {
		t.Error("triangle interior should be painted")
	}
	if s.GetCell(10, 19).Bg == ColorRed {
		t.Error("cell outside the triangle should not be painted")
	}
}

func TestRasterizeLine(t *testing.T) {
	s := newRasterScreen()
	l := NewDrawList(1)
	l.Line(0, 105, 800, 105, 1, ColorGridBlue)
	s.Rasterize(l, WorldW, WorldH)

	for x := 0; x < 80; x++ {
		c := s.GetCell(x, 10)
		if c.Rune != '─' || c.Fg != ColorGridBlue {
			t.Fatalf("cell (%d, 10) = %+v, expected horizontal grid rune", x, c)
		}
	}
}

func TestInsidePolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !insidePolygon(square, 5, 5) {
		t.Error("centre should be inside")
	}
	if insidePolygon(square, 15, 5) {
		t.Error("point right of square should be outside")
	}
}
