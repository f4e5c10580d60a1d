package gamemap

import "codeberg.org/anaseto/gruid"

// Camera is the viewport onto the grid. LeftX/TopY are inclusive,
// RightX/BottomY exclusive.
type Camera struct {
	LeftX, RightX, TopY, BottomY int

	viewW, viewH int
	mapW, mapH   int
}

// NewCamera creates a viewW×viewH camera over a mapW×mapH grid centered on p.
func NewCamera(viewW, viewH, mapW, mapH int, p gruid.Point) *Camera {
	c := &Camera{viewW: viewW, viewH: viewH, mapW: mapW, mapH: mapH}
	c.OnPlayerMove(p)
	return c
}

// OnPlayerMove recenters the viewport on p and clamps it to the grid.
func (c *Camera) OnPlayerMove(p gruid.Point) {
	c.LeftX, c.RightX = clampSpan(p.X-c.viewW/2, c.viewW, c.mapW)
	c.TopY, c.BottomY = clampSpan(p.Y-c.viewH/2, c.viewH, c.mapH)
}

func clampSpan(start, size, limit int) (int, int) {
	if size >= limit {
		return 0, limit
	}
	if start+size > limit {
		start = limit - size
	}
	if start < 0 {
		start = 0
	}
	return start, start + size
}

// Offset returns the grid position shown at the top-left screen cell.
func (c *Camera) Offset() gruid.Point {
	return gruid.Point{X: c.LeftX, Y: c.TopY}
}

// Contains reports whether p is inside the viewport.
func (c *Camera) Contains(p gruid.Point) bool {
	return p.X >= c.LeftX && p.X < c.RightX && p.Y >= c.TopY && p.Y < c.BottomY
}

// ToGrid converts a screen cell to grid coordinates.
func (c *Camera) ToGrid(screen gruid.Point) gruid.Point {
	return screen.Add(c.Offset())
}
