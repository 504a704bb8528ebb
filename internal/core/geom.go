// Package core provides fundamental types and utilities for the maze platform.
// It has no terminal dependencies so game logic stays pure and testable.
package core

// Point is a grid coordinate addressed as (row, column).
type Point struct {
	Row, Col int
}

// Add returns the point shifted by the given row and column deltas.
func (p Point) Add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// InSquare reports whether the point lies inside a size x size grid.
func (p Point) InSquare(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
