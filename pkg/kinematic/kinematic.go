package kinematic

// This package includes the geometry used by the simulation: positions,
// axis-aligned boxes and straight-line motion.

import (
	"math"
)

// Vector is a 2D position or displacement in playfield units.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a rect anchored at position.
func NewRect(position Vector, w, h float64) Rect {
	return Rect{X: position.X, Y: position.Y, W: w, H: h}
}

// Overlaps reports whether r and o overlap on both axes. Boxes that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the midpoint of the box.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
