// Package core provides fundamental types and utilities for the escape games.
// It contains no host dependencies (no Bubble Tea, no Ebiten, no audio) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Bounds are half-open: [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Valid reports whether the rectangle has positive area.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Bounds returns the rectangle itself. Types embedding Rect use it to satisfy Body.
func (r Rect) Bounds() Rect {
	return r
}

// Overlaps returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// OverlapsX reports whether the horizontal spans of both rectangles overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Body is anything with axis-aligned bounds.
type Body interface {
	Bounds() Rect
}

// Overlaps is the collision primitive shared by every contact test.
func Overlaps(a, b Body) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
