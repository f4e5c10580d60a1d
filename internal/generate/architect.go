package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"math/rand"

	"codeberg.org/anaseto/gruid"
)

// Architect selects the level-generation algorithm.
type Architect uint8

const (
	ArchitectRooms Architect = iota
	ArchitectAutomata
	ArchitectDrunkard
	ArchitectEmpty
	numArchitects
)

func (a Architect) String() string {
	switch a {
	case ArchitectRooms:
		return config.ArchitectRooms
	case ArchitectAutomata:
		return config.ArchitectAutomata
	case ArchitectDrunkard:
		return config.ArchitectDrunkard
	case ArchitectEmpty:
		return config.ArchitectEmpty
	}
	return "unknown"
}

// ChooseArchitect resolves a configured architect name. "random" (or an
// empty name) picks one of the four uniformly.
func ChooseArchitect(name string, rng *rand.Rand) (Architect, bool) {
	switch name {
	case config.ArchitectRooms:
		return ArchitectRooms, true
	case config.ArchitectAutomata:
		return ArchitectAutomata, true
	case config.ArchitectDrunkard:
		return ArchitectDrunkard, true
	case config.ArchitectEmpty:
		return ArchitectEmpty, true
	case config.ArchitectRandom, "":
		return Architect(rng.Intn(int(numArchitects))), true
	}
	return 0, false
}

// layout is what an architect hands back to the builder.
type layout struct {
	grid  *gamemap.Grid
	rooms []gamemap.Rect
	start gruid.Point
}

func (a Architect) run(rng *rand.Rand, opts config.Options) layout {
	switch a {
	case ArchitectRooms:
		return buildRooms(rng, opts)
	case ArchitectAutomata:
		return buildAutomata(rng, opts)
	case ArchitectDrunkard:
		return buildDrunkard(rng, opts)
	default:
		return buildEmpty(opts)
	}
}

func center(g *gamemap.Grid) gruid.Point {
	return gruid.Point{X: g.Width / 2, Y: g.Height / 2}
}

// wallOffUnreachable turns every floor cell with no path to from back into
// wall and returns the field it used.
func wallOffUnreachable(g *gamemap.Grid, from gruid.Point) *gamemap.DistanceField {
	df := gamemap.DistanceFrom(g, from)
	for i, v := range df.Values {
		if v == gamemap.Unreachable && g.Tiles[i] == gamemap.Floor {
			g.Tiles[i] = gamemap.Wall
		}
	}
	return df
}
