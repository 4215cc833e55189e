package core

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color names an entry in the shared palette.
// Hosts resolve it to RGBA (window) or to a terminal colour (TUI).
type Color uint8

// Palette entries used by the games.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorNeonGreen
	ColorGray
	ColorEmber     // Firewall glow
	ColorNavy      // Training ground background
	ColorGridBlue  // Training ground grid
	ColorDeepTeal  // Neural network background
	ColorNodeTeal  // Neural network nodes
	ColorPlum      // Robotics lab background
	ColorCircuit   // Robotics lab traces
	ColorMidnight  // Start screen background
	ColorBloodRed  // Game over background
	ColorForest    // Win screen background
	ColorStatic    // TV static background
	ColorNewsBlue  // TV news background
	ColorCartoon   // TV cartoon background
	ColorMagenta   // TV accents
	colorCount
)

var palette = [colorCount]color.RGBA{
	ColorDefault:   colornames.Black,
	ColorBlack:     colornames.Black,
	ColorWhite:     colornames.White,
	ColorRed:       colornames.Red,
	ColorGreen:     colornames.Lime,
	ColorBlue:      colornames.Blue,
	ColorYellow:    colornames.Yellow,
	ColorPurple:    colornames.Purple,
	ColorOrange:    colornames.Orange,
	ColorCyan:      colornames.Cyan,
	ColorNeonGreen: {R: 57, G: 255, B: 20, A: 255},
	ColorGray:      colornames.Gray,
	ColorEmber:     {R: 255, G: 100, B: 0, A: 255},
	ColorNavy:      {R: 20, G: 20, B: 50, A: 255},
	ColorGridBlue:  {R: 40, G: 40, B: 80, A: 255},
	ColorDeepTeal:  {R: 10, G: 40, B: 40, A: 255},
	ColorNodeTeal:  {R: 0, G: 100, B: 100, A: 255},
	ColorPlum:      {R: 50, G: 20, B: 50, A: 255},
	ColorCircuit:   {R: 80, G: 40, B: 80, A: 255},
	ColorMidnight:  {R: 0, G: 20, B: 40, A: 255},
	ColorBloodRed:  {R: 40, G: 0, B: 0, A: 255},
	ColorForest:    {R: 0, G: 40, B: 20, A: 255},
	ColorStatic:    {R: 30, G: 30, B: 30, A: 255},
	ColorNewsBlue:  {R: 10, G: 20, B: 60, A: 255},
	ColorCartoon:   {R: 60, G: 30, B: 0, A: 255},
	ColorMagenta:   colornames.Magenta,
}

// RGBA returns the opaque palette value for the colour.
func (c Color) RGBA() color.RGBA {
	if c >= colorCount {
		return palette[ColorDefault]
	}
	return palette[c]
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	v := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// Opaque is the alpha value for fully opaque draws.
const Opaque uint8 = 255
