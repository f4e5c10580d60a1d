package game

import (
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/logger"
	"dungeon-crawler/internal/system"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// loadLevel builds and populates a level from seed and replaces the
// current one wholesale. The mouse position survives the swap.
func (g *Game) loadLevel(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	res, err := generate.Build(rng, g.opts)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}

	w := ecs.NewWorld()
	factory.Populate(w, rng, res, g.opts)

	ctx := &system.Context{
		World:  w,
		Map:    res.Grid,
		Camera: gamemap.NewCamera(g.opts.DisplayWidth, g.opts.DisplayHeight, res.Grid.Width, res.Grid.Height, res.PlayerStart),
		State:  system.AwaitingInput,
		Rand:   rng,
	}
	if g.ctx != nil {
		ctx.Mouse = g.ctx.Mouse
	}
	g.sched.RefreshFOV(ctx)

	g.ctx = ctx
	g.level = res
	g.seed = seed

	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"architect": res.Architect,
		"theme":     res.Theme,
		"monsters":  len(res.MonsterSpawns),
	}).Info("level loaded")
	return nil
}
