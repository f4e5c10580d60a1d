package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/logger"
	"fmt"
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// MapBuildResult is a finished level. Builders never touch it again.
type MapBuildResult struct {
	Grid          *gamemap.Grid
	Rooms         []gamemap.Rect
	PlayerStart   gruid.Point
	GoalStart     gruid.Point
	MonsterSpawns []gruid.Point
	Vaults        []gamemap.Rect
	Architect     Architect
	Theme         Theme
}

// Build generates a level: architect, goal, monster spawns, vaults, a
// final consistency pass and a theme.
func Build(rng *rand.Rand, opts config.Options) (*MapBuildResult, error) {
	arch, ok := ChooseArchitect(opts.Architect, rng)
	if !ok {
		return nil, fmt.Errorf("%w: unknown architect %q", config.ErrInvalidOptions, opts.Architect)
	}
	vaults := make([]Vault, 0, len(opts.Vaults))
	for _, name := range opts.Vaults {
		v, ok := VaultByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown vault %q", config.ErrInvalidOptions, name)
		}
		vaults = append(vaults, v)
	}

	lay := arch.run(rng, opts)
	res := &MapBuildResult{
		Grid:        lay.grid,
		Rooms:       lay.rooms,
		PlayerStart: lay.start,
		Architect:   arch,
	}
	res.Grid.Set(res.PlayerStart, gamemap.Floor)

	df := res.placeGoal()
	res.MonsterSpawns = pickSpawns(rng, res.spawnRule(df, opts), opts.NumMonsters)

	stamper := newStamper(opts)
	for _, v := range vaults {
		area, spawns, ok := stamper.Stamp(rng, res.Grid, res.PlayerStart, res.GoalStart, res.MonsterSpawns, v)
		if ok {
			res.Vaults = append(res.Vaults, area)
			res.MonsterSpawns = spawns
		}
	}

	// Vaults may reshape the reachable area, so placement is rechecked.
	if len(res.Vaults) > 0 {
		df = res.placeGoal()
		res.MonsterSpawns = filterSpawns(res.spawnRule(df, opts), res.MonsterSpawns)
	}

	res.Theme = randomTheme(rng)

	logger.Log.WithFields(logrus.Fields{
		"architect": arch,
		"rooms":     len(res.Rooms),
		"vaults":    len(res.Vaults),
		"monsters":  len(res.MonsterSpawns),
		"theme":     res.Theme,
	}).Debug("level built")
	return res, nil
}

// placeGoal puts the goal on the farthest cell reachable from the player
// start and returns the field it measured.
func (r *MapBuildResult) placeGoal() *gamemap.DistanceField {
	df := gamemap.DistanceFrom(r.Grid, r.PlayerStart)
	r.GoalStart = r.PlayerStart
	if idx, ok := df.Farthest(); ok {
		r.GoalStart = r.Grid.Point(idx)
	}
	return df
}

func (r *MapBuildResult) spawnRule(df *gamemap.DistanceField, opts config.Options) spawnRule {
	return spawnRule{
		grid:    r.Grid,
		dist:    df,
		start:   r.PlayerStart,
		goal:    r.GoalStart,
		minDist: opts.PlayerFOV + 2,
	}
}
