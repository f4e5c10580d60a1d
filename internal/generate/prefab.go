package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/logger"
	"math/rand"
	"slices"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// prefabMaxDistance is the far bound for an entrance: anything reachable.
const prefabMaxDistance float32 = 2000

// Template characters.
const (
	vaultFloor    = '-'
	vaultWall     = '#'
	vaultMonster  = 'M'
	vaultEntrance = 'E'
)

// Vault is a hand-drawn map fragment stamped over a generated level.
type Vault struct {
	Name string
	Rows []string
}

var (
	Fortress = Vault{Name: config.VaultFortress, Rows: []string{
		"-----E------",
		"---######---",
		"---#----#---",
		"---#-M--#---",
		"-###----###-",
		"E-M------M-E",
		"-###----###-",
		"---#----#---",
		"---#----#---",
		"---######---",
		"-----E------",
	}}
	Spiral = Vault{Name: config.VaultSpiral, Rows: []string{
		"-############----E",
		"-#-----M--#-------",
		"-#-######-#-------",
		"-#-#--MM#-#-------",
		"-#-#-####-#-------",
		"-#-#---M--#-------",
		"-#-#############--",
		"-#---------------E",
		"-################-",
	}}
)

// VaultByName looks up a built-in vault.
func VaultByName(name string) (Vault, bool) {
	switch name {
	case config.VaultFortress:
		return Fortress, true
	case config.VaultSpiral:
		return Spiral, true
	}
	return Vault{}, false
}

func (v Vault) Width() int  { return len(v.Rows[0]) }
func (v Vault) Height() int { return len(v.Rows) }

// cells calls fn for every template cell with its offset from the
// top-left corner.
func (v Vault) cells(fn func(off gruid.Point, c byte)) {
	for y, row := range v.Rows {
		for x := 0; x < len(row); x++ {
			fn(gruid.Point{X: x, Y: y}, row[x])
		}
	}
}

// PrefabStamper places vaults on a level under construction.
type PrefabStamper struct {
	MinDistance float32
	MaxDistance float32
	Attempts    int
}

func newStamper(opts config.Options) PrefabStamper {
	return PrefabStamper{
		MinDistance: opts.PrefabMinDistance,
		MaxDistance: prefabMaxDistance,
		Attempts:    opts.PrefabAttempts,
	}
}

// Stamp tries up to s.Attempts random positions for v. A position is
// valid when the footprint holds neither start nor goal and at least one
// entrance lands on a cell whose distance from start lies strictly
// between the stamper bounds. On success the grid is overwritten, spawns
// inside the footprint are dropped and the vault's monster markers are
// appended. On failure nothing changes and ok is false.
func (s PrefabStamper) Stamp(rng *rand.Rand, g *gamemap.Grid, start, goal gruid.Point, spawns []gruid.Point, v Vault) (area gamemap.Rect, out []gruid.Point, ok bool) {
	if v.Width() > g.Width || v.Height() > g.Height {
		return gamemap.Rect{}, spawns, false
	}
	df := gamemap.DistanceFrom(g, start)
	for attempt := 0; attempt < s.Attempts; attempt++ {
		area = gamemap.NewRect(rng.Intn(g.Width-v.Width()+1), rng.Intn(g.Height-v.Height()+1), v.Width(), v.Height())
		if s.canPlace(df, area, start, goal, v) {
			return area, s.apply(g, area, spawns, v), true
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"vault":    v.Name,
		"attempts": s.Attempts,
	}).Debug("no valid vault position, skipping")
	return gamemap.Rect{}, spawns, false
}

func (s PrefabStamper) canPlace(df *gamemap.DistanceField, area gamemap.Rect, start, goal gruid.Point, v Vault) bool {
	if area.Contains(start) || area.Contains(goal) {
		return false
	}
	entrance := false
	v.cells(func(off gruid.Point, c byte) {
		if c != vaultEntrance || entrance {
			return
		}
		d := df.At(gruid.Point{X: area.X1, Y: area.Y1}.Add(off))
		entrance = d > s.MinDistance && d < s.MaxDistance
	})
	return entrance
}

func (s PrefabStamper) apply(g *gamemap.Grid, area gamemap.Rect, spawns []gruid.Point, v Vault) []gruid.Point {
	spawns = slices.DeleteFunc(spawns, area.Contains)
	origin := gruid.Point{X: area.X1, Y: area.Y1}
	v.cells(func(off gruid.Point, c byte) {
		p := origin.Add(off)
		switch c {
		case vaultWall:
			g.Set(p, gamemap.Wall)
		case vaultMonster:
			g.Set(p, gamemap.Floor)
			spawns = append(spawns, p)
		default:
			g.Set(p, gamemap.Floor)
		}
	})
	logger.Log.WithFields(logrus.Fields{
		"vault": v.Name,
		"x":     area.X1,
		"y":     area.Y1,
	}).Debug("vault placed")
	return spawns
}
