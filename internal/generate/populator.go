package generate

import (
	"dungeon-crawler/internal/gamemap"
	"math/rand"

	"codeberg.org/anaseto/gruid"
)

// spawnRule decides which cells may hold a monster at level start.
type spawnRule struct {
	grid  *gamemap.Grid
	dist  *gamemap.DistanceField
	start gruid.Point
	goal  gruid.Point
	// minDist is exclusive: spawns sit strictly farther than this from
	// start, both along paths and in a straight line.
	minDist int
}

func (r spawnRule) allows(p gruid.Point) bool {
	if !r.grid.CanEnter(p) || p == r.start || p == r.goal {
		return false
	}
	if d := r.dist.At(p); d == gamemap.Unreachable || d <= float32(r.minDist) {
		return false
	}
	d := p.Sub(r.start)
	return d.X*d.X+d.Y*d.Y > r.minDist*r.minDist
}

// pickSpawns draws up to n distinct allowed cells uniformly at random.
func pickSpawns(rng *rand.Rand, r spawnRule, n int) []gruid.Point {
	var candidates []gruid.Point
	for i := range r.grid.Tiles {
		if p := r.grid.Point(i); r.allows(p) {
			candidates = append(candidates, p)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:min(n, len(candidates))]
}

// filterSpawns keeps the first occurrence of every allowed cell.
func filterSpawns(r spawnRule, spawns []gruid.Point) []gruid.Point {
	seen := make(map[gruid.Point]bool, len(spawns))
	out := spawns[:0]
	for _, p := range spawns {
		if seen[p] || !r.allows(p) {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
