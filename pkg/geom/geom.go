// Package geom holds the small amount of 2D math the simulation needs:
// points, velocities and axis-aligned rectangles in play-area pixels.
package geom

// Vec is a position or a per-frame velocity
type Vec struct {
	X, Y float64
}

// Add returns v moved by d
func (v Vec) Add(d Vec) Vec {
	return Vec{X: v.X + d.X, Y: v.Y + d.Y}
}

// Rect is an axis-aligned box with its origin at the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect builds a rect from a position and a size
func NewRect(pos Vec, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the middle point of the rect
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether a and b intersect. Edges are inclusive, so two
// rects that only touch count as colliding.
func Overlaps(a, b Rect) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
