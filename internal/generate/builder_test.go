package generate

import (
	"errors"
	"math/rand"
	"testing"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

var allArchitects = []string{
	config.ArchitectRooms,
	config.ArchitectAutomata,
	config.ArchitectDrunkard,
	config.ArchitectEmpty,
}

func buildWith(t *testing.T, seed int64, arch string) (*MapBuildResult, config.Options) {
	t.Helper()
	opts := config.Default()
	opts.Architect = arch
	res, err := Build(rand.New(rand.NewSource(seed)), opts)
	if err != nil {
		t.Fatalf("Build(%s, seed %d): %v", arch, seed, err)
	}
	return res, opts
}

func TestBuildStartAndGoal(t *testing.T) {
	for _, arch := range allArchitects {
		t.Run(arch, func(t *testing.T) {
			for seed := int64(0); seed < 15; seed++ {
				res, _ := buildWith(t, seed, arch)
				g := res.Grid
				if !g.CanEnter(res.PlayerStart) {
					t.Fatalf("seed %d: player start %v is not floor", seed, res.PlayerStart)
				}
				if !g.CanEnter(res.GoalStart) {
					t.Fatalf("seed %d: goal %v is not floor", seed, res.GoalStart)
				}
				df := gamemap.DistanceFrom(g, res.PlayerStart)
				goal := df.At(res.GoalStart)
				if goal == gamemap.Unreachable {
					t.Fatalf("seed %d: goal unreachable", seed)
				}
				for i, v := range df.Values {
					if v != gamemap.Unreachable && v > goal {
						t.Fatalf("seed %d: cell %v at %v is farther than goal at %v", seed, g.Point(i), v, goal)
					}
				}
			}
		})
	}
}

func TestBuildMonsterSpawns(t *testing.T) {
	for _, arch := range allArchitects {
		t.Run(arch, func(t *testing.T) {
			for seed := int64(0); seed < 15; seed++ {
				res, opts := buildWith(t, seed, arch)
				df := gamemap.DistanceFrom(res.Grid, res.PlayerStart)
				seen := map[gruid.Point]bool{}
				for _, p := range res.MonsterSpawns {
					if !res.Grid.CanEnter(p) {
						t.Fatalf("seed %d: spawn %v not on floor", seed, p)
					}
					if seen[p] {
						t.Fatalf("seed %d: duplicate spawn %v", seed, p)
					}
					seen[p] = true
					if d := df.At(p); d == gamemap.Unreachable || d <= float32(opts.PlayerFOV+2) {
						t.Fatalf("seed %d: spawn %v at distance %v is too close", seed, p, d)
					}
					if p == res.GoalStart {
						t.Fatalf("seed %d: spawn on the goal", seed)
					}
				}
			}
		})
	}
}

func TestBuildSpawnCount(t *testing.T) {
	opts := config.Default()
	opts.Architect = config.ArchitectEmpty
	opts.Vaults = nil
	res, err := Build(rand.New(rand.NewSource(3)), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.MonsterSpawns) != opts.NumMonsters {
		t.Errorf("spawned %d monsters, want %d", len(res.MonsterSpawns), opts.NumMonsters)
	}
	if len(res.Vaults) != 0 {
		t.Error("no vaults configured")
	}
}

func TestPickSpawnsCapsAtCandidates(t *testing.T) {
	g := gamemap.New(30, 3)
	carveH(g, 1, 28, 1)
	start := gruid.Point{X: 1, Y: 1}
	r := spawnRule{grid: g, dist: gamemap.DistanceFrom(g, start), start: start, goal: gruid.Point{X: 28, Y: 1}, minDist: 20}
	// Cells 22..27 qualify; 28 is the goal.
	got := pickSpawns(rand.New(rand.NewSource(1)), r, 50)
	if len(got) != 6 {
		t.Errorf("got %d spawns, want 6: %v", len(got), got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, _ := buildWith(t, 42, config.ArchitectRandom)
	b, _ := buildWith(t, 42, config.ArchitectRandom)
	if a.Architect != b.Architect || a.PlayerStart != b.PlayerStart || a.GoalStart != b.GoalStart {
		t.Fatal("same seed should build the same level")
	}
	for i := range a.Grid.Tiles {
		if a.Grid.Tiles[i] != b.Grid.Tiles[i] {
			t.Fatalf("tile %d differs", i)
		}
	}
}

func TestBuildFourRooms(t *testing.T) {
	opts := config.Default()
	opts.Architect = config.ArchitectRooms
	opts.MaxRooms = 4
	res, err := Build(rand.New(rand.NewSource(7)), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rooms) != 4 {
		t.Fatalf("got %d rooms, want 4", len(res.Rooms))
	}
	if res.PlayerStart != res.Rooms[0].Center() {
		t.Errorf("player start %v, want first room center %v", res.PlayerStart, res.Rooms[0].Center())
	}
}

func TestBuildRejectsUnknownNames(t *testing.T) {
	opts := config.Default()
	opts.Architect = "maze"
	if _, err := Build(rand.New(rand.NewSource(1)), opts); !errors.Is(err, config.ErrInvalidOptions) {
		t.Errorf("unknown architect: err = %v", err)
	}
	opts = config.Default()
	opts.Vaults = []string{"castle"}
	if _, err := Build(rand.New(rand.NewSource(1)), opts); !errors.Is(err, config.ErrInvalidOptions) {
		t.Errorf("unknown vault: err = %v", err)
	}
}

func TestChooseArchitect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range allArchitects {
		a, ok := ChooseArchitect(name, rng)
		if !ok || a.String() != name {
			t.Errorf("ChooseArchitect(%q) = %v,%v", name, a, ok)
		}
	}
	seen := map[Architect]bool{}
	for i := 0; i < 200; i++ {
		a, ok := ChooseArchitect(config.ArchitectRandom, rng)
		if !ok || a >= numArchitects {
			t.Fatalf("random pick out of range: %v", a)
		}
		seen[a] = true
	}
	if len(seen) != int(numArchitects) {
		t.Errorf("random picks covered %d architects, want %d", len(seen), numArchitects)
	}
}

func TestThemeGlyphs(t *testing.T) {
	cases := []struct {
		theme Theme
		tile  gamemap.Tile
		want  rune
	}{
		{ThemeDungeon, gamemap.Wall, '#'},
		{ThemeDungeon, gamemap.Floor, '.'},
		{ThemeForest, gamemap.Wall, '"'},
		{ThemeForest, gamemap.Floor, ';'},
	}
	for _, c := range cases {
		if got := c.theme.Glyph(c.tile); got != c.want {
			t.Errorf("%v.Glyph(%v) = %q, want %q", c.theme, c.tile, got, c.want)
		}
	}
}

func TestSpawnRuleNeedsStraightLineDistance(t *testing.T) {
	// Two corridors joined at the far east end: (1,3) is a long walk from
	// the start but only two cells away through the wall.
	g := gamemap.New(30, 5)
	for x := 1; x < 29; x++ {
		g.Set(gruid.Point{X: x, Y: 1}, gamemap.Floor)
		g.Set(gruid.Point{X: x, Y: 3}, gamemap.Floor)
	}
	g.Set(gruid.Point{X: 28, Y: 2}, gamemap.Floor)
	start := gruid.Point{X: 1, Y: 1}
	r := spawnRule{
		grid:    g,
		dist:    gamemap.DistanceFrom(g, start),
		start:   start,
		goal:    gruid.Point{X: 28, Y: 2},
		minDist: 5,
	}

	behindWall := gruid.Point{X: 1, Y: 3}
	if d := r.dist.At(behindWall); d <= 5 {
		t.Fatalf("path distance = %v, want a long detour", d)
	}
	if r.allows(behindWall) {
		t.Error("cell within the straight-line radius must not be a spawn")
	}
	if !r.allows(gruid.Point{X: 12, Y: 3}) {
		t.Error("cell far by path and line should be a spawn")
	}
	if r.allows(gruid.Point{X: 4, Y: 1}) {
		t.Error("cell close along the path must not be a spawn")
	}
}
