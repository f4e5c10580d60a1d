package gamemap

import "codeberg.org/anaseto/gruid"

// Rect is an axis-aligned rectangle used for rooms. Both corners are
// inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect returns the w×h rectangle whose top-left corner is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() gruid.Point {
	return gruid.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p gruid.Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Each calls fn for every point of r, row by row.
func (r Rect) Each(fn func(p gruid.Point)) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			fn(gruid.Point{X: x, Y: y})
		}
	}
}
