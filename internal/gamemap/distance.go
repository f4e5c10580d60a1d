package gamemap

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Unreachable marks cells the relaxation never reached.
const Unreachable float32 = math.MaxFloat32

// DefaultMaxDistance bounds the relaxation when callers have no tighter
// limit.
const DefaultMaxDistance float32 = 1024

// DistanceField holds, for every cell, the shortest-path cost from the
// nearest source over 4-connected walkable cells.
type DistanceField struct {
	grid   *Grid
	Values []float32
}

// floorPather feeds walkable cardinal neighbors to the path range.
type floorPather struct {
	grid *Grid
	nbs  paths.Neighbors
}

func (fp *floorPather) Neighbors(p gruid.Point) []gruid.Point {
	return fp.nbs.Cardinal(p, fp.grid.CanEnter)
}

// NewDistanceField relaxes outward from the source cell indices up to
// maxDistance. Sources have value 0; out-of-range indices are ignored.
func NewDistanceField(g *Grid, sources []int, maxDistance float32) *DistanceField {
	df := &DistanceField{grid: g, Values: make([]float32, len(g.Tiles))}
	for i := range df.Values {
		df.Values[i] = Unreachable
	}

	pts := make([]gruid.Point, 0, len(sources))
	for _, idx := range sources {
		if idx >= 0 && idx < len(g.Tiles) {
			pts = append(pts, g.Point(idx))
		}
	}
	if len(pts) == 0 {
		return df
	}

	pr := paths.NewPathRange(g.Range())
	nodes := pr.BreadthFirstMap(&floorPather{grid: g}, pts, int(maxDistance))
	for _, n := range nodes {
		df.Values[g.Index(n.P)] = float32(n.Cost)
	}
	for _, p := range pts {
		df.Values[g.Index(p)] = 0
	}
	return df
}

// DistanceFrom is NewDistanceField with a single source point and the
// default bound.
func DistanceFrom(g *Grid, p gruid.Point) *DistanceField {
	if !g.InBounds(p) {
		return NewDistanceField(g, nil, DefaultMaxDistance)
	}
	return NewDistanceField(g, []int{g.Index(p)}, DefaultMaxDistance)
}

// AtIndex returns the value of cell idx.
func (d *DistanceField) AtIndex(idx int) float32 {
	if idx < 0 || idx >= len(d.Values) {
		return Unreachable
	}
	return d.Values[idx]
}

// At returns the value at p, Unreachable when p is out of bounds.
func (d *DistanceField) At(p gruid.Point) float32 {
	if !d.grid.InBounds(p) {
		return Unreachable
	}
	return d.Values[d.grid.Index(p)]
}

// Reachable reports whether p has a finite value.
func (d *DistanceField) Reachable(p gruid.Point) bool {
	return d.At(p) < Unreachable
}

// CheapestNeighbor returns the in-bounds neighbor of from with the lowest
// finite value. Neighbors are scanned west, east, north, south and a later
// neighbor only wins when strictly lower, so ties go to the earliest
// direction in that order.
func (d *DistanceField) CheapestNeighbor(from int) (int, bool) {
	if from < 0 || from >= len(d.Values) {
		return 0, false
	}
	p := d.grid.Point(from)
	best, bestVal := -1, Unreachable
	for _, dir := range exitOrder {
		q := p.Add(dir)
		if !d.grid.InBounds(q) {
			continue
		}
		idx := d.grid.Index(q)
		if v := d.Values[idx]; v < bestVal {
			best, bestVal = idx, v
		}
	}
	return best, best >= 0
}

// Farthest returns the cell with the highest finite value. Among equal
// values the highest index wins. ok is false when nothing was reached.
func (d *DistanceField) Farthest() (idx int, ok bool) {
	best := float32(-1)
	for i, v := range d.Values {
		if v < Unreachable && v >= best {
			idx, best, ok = i, v, true
		}
	}
	return idx, ok
}

// Between returns the indices of reached cells whose value lies strictly
// between lo and hi.
func (d *DistanceField) Between(lo, hi float32) []int {
	var out []int
	for i, v := range d.Values {
		if v < Unreachable && v > lo && v < hi {
			out = append(out, i)
		}
	}
	return out
}
