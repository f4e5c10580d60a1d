package gamemap

import (
	"codeberg.org/anaseto/gruid"
	"github.com/bits-and-blooms/bitset"
)

// Grid is the tile map of one dungeon level. Cells are stored row-first:
// index = y*Width + x.
type Grid struct {
	Width, Height int
	Tiles         []Tile

	// Revealed remembers every cell the player has seen. Only the renderer
	// reads it.
	Revealed *bitset.BitSet
}

// Exit is one step out of a cell.
type Exit struct {
	P    gruid.Point
	Cost float32
}

// exitOrder is the fixed order in which neighbors are reported: west, east,
// north, south.
var exitOrder = [4]gruid.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		Tiles:    make([]Tile, width*height),
		Revealed: bitset.New(uint(width * height)),
	}
}

// Range returns the grid extent.
func (g *Grid) Range() gruid.Range {
	return gruid.NewRange(0, 0, g.Width, g.Height)
}

// InBounds reports whether p is within the map boundaries.
func (g *Grid) InBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to its cell index. p must be in bounds.
func (g *Grid) Index(p gruid.Point) int {
	return p.Y*g.Width + p.X
}

// Point maps a cell index back to its coordinates.
func (g *Grid) Point(idx int) gruid.Point {
	return gruid.Point{X: idx % g.Width, Y: idx / g.Width}
}

// At returns the tile at p. Out of bounds reads as Wall.
func (g *Grid) At(p gruid.Point) Tile {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Tiles[g.Index(p)]
}

// Set replaces the tile at p. Out of bounds writes are ignored.
func (g *Grid) Set(p gruid.Point, t Tile) {
	if g.InBounds(p) {
		g.Tiles[g.Index(p)] = t
	}
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.Tiles {
		g.Tiles[i] = t
	}
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.Tiles {
		if c == t {
			n++
		}
	}
	return n
}

// CanEnter reports whether p is in bounds and walkable.
func (g *Grid) CanEnter(p gruid.Point) bool {
	return g.At(p) == Floor
}

// IsOpaque reports whether p blocks sight. Out of bounds is opaque.
func (g *Grid) IsOpaque(p gruid.Point) bool {
	return g.At(p) == Wall
}

// Exits returns the enterable axis-adjacent cells of p, each at cost 1.
func (g *Grid) Exits(p gruid.Point) []Exit {
	exits := make([]Exit, 0, len(exitOrder))
	for _, d := range exitOrder {
		q := p.Add(d)
		if g.CanEnter(q) {
			exits = append(exits, Exit{P: q, Cost: 1})
		}
	}
	return exits
}

// Reveal marks p as seen by the player.
func (g *Grid) Reveal(p gruid.Point) {
	if g.InBounds(p) {
		g.Revealed.Set(uint(g.Index(p)))
	}
}

// IsRevealed reports whether the player has seen p.
func (g *Grid) IsRevealed(p gruid.Point) bool {
	return g.InBounds(p) && g.Revealed.Test(uint(g.Index(p)))
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:    g.Width,
		Height:   g.Height,
		Tiles:    make([]Tile, len(g.Tiles)),
		Revealed: g.Revealed.Clone(),
	}
	copy(c.Tiles, g.Tiles)
	return c
}
