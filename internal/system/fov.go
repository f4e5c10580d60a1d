package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView recomputes the visible set of every dirty FieldOfView and
// clears the flag. Cells the player sees are added to the map's revealed
// memory.
func FieldOfView(ctx *Context, cmds *ecs.CommandBuffer) {
	for _, id := range ctx.World.Query(component.CFieldOfView, component.CPosition) {
		fov, _ := ecs.Get[component.FieldOfView](ctx.World, id)
		if !fov.Dirty {
			continue
		}
		pos, _ := ecs.Get[component.Position](ctx.World, id)
		fov.Visible = VisibleFrom(ctx.Map, pos.Point(), fov.Radius)
		fov.Dirty = false
		cmds.Add(id, fov)

		if ctx.World.Has(id, component.CTagPlayer) {
			fov.Visible.Each(ctx.Map.Reveal)
		}
	}
}

// VisibleFrom runs recursive shadowcasting from origin and returns every
// cell within radius (Euclidean, inclusive) that is not hidden behind a
// wall. Walls that bound the view are included.
func VisibleFrom(g *gamemap.Grid, origin gruid.Point, radius int) mapset.Set[gruid.Point] {
	visible := mapset.New[gruid.Point]()
	if !g.InBounds(origin) {
		return visible
	}
	visible.Put(origin)
	for _, m := range octants {
		castLight(g, visible, origin, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
	return visible
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(g *gamemap.Grid, visible mapset.Set[gruid.Point], origin gruid.Point, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			p := gruid.Point{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && g.InBounds(p) {
				visible.Put(p)
			}

			opaque := g.IsOpaque(p)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(g, visible, origin, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
