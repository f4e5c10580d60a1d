package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/logger"
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

const (
	// automataRetries caps reseeding when the cave around the start is too
	// small.
	automataRetries = 8
	// automataMinOpen is the share of the grid the start cave must cover.
	automataMinOpen = 0.2
)

func buildAutomata(rng *rand.Rand, opts config.Options) layout {
	var best layout
	bestOpen := -1
	for try := 0; try < automataRetries; try++ {
		g := gamemap.New(opts.Width, opts.Height)
		randomNoise(g, rng, opts.AutomataOpenPercent)
		smooth(g, opts.AutomataWallThreshold)
		start := nearestFloor(g, center(g))
		wallOffUnreachable(g, start)

		open := g.Count(gamemap.Floor)
		if open > bestOpen {
			best, bestOpen = layout{grid: g, start: start}, open
		}
		if float64(open) >= automataMinOpen*float64(len(g.Tiles)) {
			break
		}
	}
	logger.Log.WithFields(logrus.Fields{"open": bestOpen}).Debug("cellular automata cave ready")
	return best
}

// randomNoise sets each cell to floor with probability openPercent/100.
func randomNoise(g *gamemap.Grid, rng *rand.Rand, openPercent int) {
	for i := range g.Tiles {
		if rng.Intn(100) < openPercent {
			g.Tiles[i] = gamemap.Floor
		} else {
			g.Tiles[i] = gamemap.Wall
		}
	}
}

// smooth runs one automaton step over interior cells. A cell walls off
// when none or more than threshold of its eight neighbors are walls. The
// outer ring is always wall.
func smooth(g *gamemap.Grid, threshold int) {
	next := make([]gamemap.Tile, len(g.Tiles))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gruid.Point{X: x, Y: y}
			idx := g.Index(p)
			if x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1 {
				next[idx] = gamemap.Wall
				continue
			}
			n := wallNeighbors(g, p)
			if n == 0 || n > threshold {
				next[idx] = gamemap.Wall
			} else {
				next[idx] = gamemap.Floor
			}
		}
	}
	g.Tiles = next
}

func wallNeighbors(g *gamemap.Grid, p gruid.Point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(p.Add(gruid.Point{X: dx, Y: dy})) == gamemap.Wall {
				n++
			}
		}
	}
	return n
}

// nearestFloor returns the floor cell closest to p by straight-line
// distance, lowest index on ties. An all-wall grid gets p carved open.
func nearestFloor(g *gamemap.Grid, p gruid.Point) gruid.Point {
	best, bestDist := -1, 0
	for i, t := range g.Tiles {
		if t != gamemap.Floor {
			continue
		}
		d := g.Point(i).Sub(p)
		dist := d.X*d.X + d.Y*d.Y
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		g.Set(p, gamemap.Floor)
		return p
	}
	return g.Point(best)
}
