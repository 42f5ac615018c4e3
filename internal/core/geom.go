// Package core provides fundamental types and utilities for the game platform.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

// Rect represents an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// PointF is a position in world units.
type PointF struct {
	X, Y float64
}

// RectF is an axis-aligned bounding box in world units, used for collision.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredSquare returns a square box of side size centered at (cx, cy).
func CenteredSquare(cx, cy, size float64) RectF {
	return RectF{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap.
// Edges compare with strict inequality: boxes that only touch do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
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
