package generate

import (
	"dungeon-crawler/internal/gamemap"
	"math/rand"

	"codeberg.org/anaseto/gruid"
)

// carveCorridor digs an L-shaped tunnel between a and b. Which leg is dug
// first is a coin flip.
func carveCorridor(g *gamemap.Grid, a, b gruid.Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(g, a.X, b.X, a.Y)
		carveV(g, a.Y, b.Y, b.X)
	} else {
		carveV(g, a.Y, b.Y, a.X)
		carveH(g, a.X, b.X, b.Y)
	}
}

func carveH(g *gamemap.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.Set(gruid.Point{X: x, Y: y}, gamemap.Floor)
	}
}

func carveV(g *gamemap.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.Set(gruid.Point{X: x, Y: y}, gamemap.Floor)
	}
}
