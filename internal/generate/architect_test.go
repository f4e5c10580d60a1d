package generate

import (
	"math/rand"
	"testing"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

func allFloorReachable(t *testing.T, g *gamemap.Grid, from gruid.Point) {
	t.Helper()
	df := gamemap.DistanceFrom(g, from)
	for i, tile := range g.Tiles {
		if tile == gamemap.Floor && df.Values[i] == gamemap.Unreachable {
			t.Fatalf("floor %v unreachable from %v", g.Point(i), from)
		}
	}
}

func TestRoomsDoNotOverlap(t *testing.T) {
	opts := config.Default()
	for seed := int64(0); seed < 20; seed++ {
		lay := buildRooms(rand.New(rand.NewSource(seed)), opts)
		if len(lay.rooms) != opts.MaxRooms {
			t.Fatalf("seed %d: %d rooms, want %d", seed, len(lay.rooms), opts.MaxRooms)
		}
		for i, a := range lay.rooms {
			for _, b := range lay.rooms[i+1:] {
				if a.Intersects(b) {
					t.Fatalf("seed %d: rooms %+v and %+v overlap", seed, a, b)
				}
			}
			a.Each(func(p gruid.Point) {
				if !lay.grid.CanEnter(p) {
					t.Fatalf("seed %d: room cell %v not carved", seed, p)
				}
			})
		}
		df := gamemap.DistanceFrom(lay.grid, lay.start)
		for _, r := range lay.rooms {
			if !df.Reachable(r.Center()) {
				t.Fatalf("seed %d: room at %v not connected", seed, r.Center())
			}
		}
	}
}

func TestCarveCorridorConnects(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := gamemap.New(20, 20)
		a, b := gruid.Point{X: 2, Y: 3}, gruid.Point{X: 15, Y: 12}
		carveCorridor(g, a, b, rand.New(rand.NewSource(seed)))
		if !gamemap.DistanceFrom(g, a).Reachable(b) {
			t.Fatalf("seed %d: corridor does not join %v and %v", seed, a, b)
		}
		if got := g.Count(gamemap.Floor); got != 13+9+1 {
			t.Fatalf("seed %d: corridor has %d cells, want 23", seed, got)
		}
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	g := gamemap.New(20, 20)
	carveH(g, 8, 3, 5)
	for x := 3; x <= 8; x++ {
		if !g.CanEnter(gruid.Point{X: x, Y: 5}) {
			t.Fatalf("x=%d not carved", x)
		}
	}
	if g.CanEnter(gruid.Point{X: 2, Y: 5}) || g.CanEnter(gruid.Point{X: 9, Y: 5}) {
		t.Error("carveH must stay inside its segment")
	}
}

func TestAutomataCave(t *testing.T) {
	opts := config.Default()
	for seed := int64(0); seed < 10; seed++ {
		lay := buildAutomata(rand.New(rand.NewSource(seed)), opts)
		g := lay.grid
		for x := 0; x < g.Width; x++ {
			if g.CanEnter(gruid.Point{X: x, Y: 0}) || g.CanEnter(gruid.Point{X: x, Y: g.Height - 1}) {
				t.Fatalf("seed %d: border column %d open", seed, x)
			}
		}
		if !g.CanEnter(lay.start) {
			t.Fatalf("seed %d: start %v not floor", seed, lay.start)
		}
		allFloorReachable(t, g, lay.start)
	}
}

func TestSmooth(t *testing.T) {
	t.Run("open field walls off", func(t *testing.T) {
		g := gamemap.New(5, 5)
		g.Fill(gamemap.Floor)
		smooth(g, 4)
		if g.Count(gamemap.Floor) != 0 {
			t.Errorf("cells with no wall neighbors should become wall, %d floors left", g.Count(gamemap.Floor))
		}
	})
	t.Run("isolated floor walls off", func(t *testing.T) {
		g := gamemap.New(5, 5)
		g.Set(gruid.Point{X: 2, Y: 2}, gamemap.Floor)
		smooth(g, 4)
		if g.CanEnter(gruid.Point{X: 2, Y: 2}) {
			t.Error("floor with eight wall neighbors should become wall")
		}
	})
	t.Run("few walls become floor", func(t *testing.T) {
		g := gamemap.New(7, 7)
		g.Fill(gamemap.Floor)
		g.Set(gruid.Point{X: 3, Y: 2}, gamemap.Wall)
		smooth(g, 4)
		if !g.CanEnter(gruid.Point{X: 3, Y: 3}) {
			t.Error("cell with one wall neighbor should become floor")
		}
	})
}

func TestNearestFloor(t *testing.T) {
	g := gamemap.New(9, 9)
	g.Set(gruid.Point{X: 7, Y: 4}, gamemap.Floor)
	g.Set(gruid.Point{X: 1, Y: 1}, gamemap.Floor)
	if got := nearestFloor(g, gruid.Point{X: 4, Y: 4}); got != (gruid.Point{X: 7, Y: 4}) {
		t.Errorf("nearestFloor = %v, want (7,4)", got)
	}
	empty := gamemap.New(3, 3)
	if got := nearestFloor(empty, gruid.Point{X: 1, Y: 1}); got != (gruid.Point{X: 1, Y: 1}) || !empty.CanEnter(got) {
		t.Errorf("all-wall grid should carve the target, got %v", got)
	}
}

func TestDrunkardReachesTarget(t *testing.T) {
	opts := config.Default()
	for seed := int64(0); seed < 5; seed++ {
		lay := buildDrunkard(rand.New(rand.NewSource(seed)), opts)
		if p := openPercent(lay.grid); p < opts.DrunkardOpenPercent {
			t.Fatalf("seed %d: open %.2f%%, want at least %.2f%%", seed, p, opts.DrunkardOpenPercent)
		}
		if lay.start != center(lay.grid) {
			t.Fatalf("seed %d: start %v, want center", seed, lay.start)
		}
		allFloorReachable(t, lay.grid, lay.start)
	}
}

func TestStaggerStopsAtBudget(t *testing.T) {
	g := gamemap.New(101, 101)
	stagger(g, gruid.Point{X: 50, Y: 50}, rand.New(rand.NewSource(3)), 10)
	if n := g.Count(gamemap.Floor); n < 1 || n > 11 {
		t.Errorf("walk of 10 steps carved %d cells", n)
	}
}

func TestEmptyArchitect(t *testing.T) {
	lay := buildEmpty(config.Default())
	if lay.grid.Count(gamemap.Wall) != 0 {
		t.Error("empty level should have no walls")
	}
	if lay.start != (gruid.Point{X: 40, Y: 25}) {
		t.Errorf("start = %v, want (40,25)", lay.start)
	}
	if len(lay.rooms) != 0 {
		t.Error("empty level has no rooms")
	}
}
