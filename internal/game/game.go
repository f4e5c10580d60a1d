package game

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/logger"
	"dungeon-crawler/internal/render"
	"dungeon-crawler/internal/system"
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// Game owns one running simulation: the current level, its world and the
// scheduler that advances it.
type Game struct {
	opts  config.Options
	rng   *rand.Rand
	sched *system.Scheduler
	ctx   *system.Context
	level *generate.MapBuildResult
	seed  int64
}

// New validates opts and builds the first level from seed. Restarts draw
// their seeds from the same source, so a seed replays a whole session.
func New(opts config.Options, seed int64) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		opts:  opts,
		rng:   rand.New(rand.NewSource(seed)),
		sched: system.NewScheduler(),
	}
	if err := g.loadLevel(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart discards the world and builds a new level with a fresh seed.
func (g *Game) Restart() error {
	seed := g.rng.Int63()
	logger.Log.WithFields(logrus.Fields{
		"seed":  seed,
		"state": g.ctx.State,
	}).Info("restart")
	return g.loadLevel(seed)
}

// Advance feeds one key to the simulation and runs turns until it waits
// for input again or ends. KeyNone only refreshes the state.
func (g *Game) Advance(key system.Key) {
	if g.ctx.State.Terminal() {
		return
	}
	g.Tick(key)
	for g.ctx.State == system.PlayerTurn || g.ctx.State == system.MonsterTurn {
		g.Tick(system.KeyNone)
	}
}

// Tick runs exactly one pipeline with key as the input of the tick.
func (g *Game) Tick(key system.Key) {
	before := g.ctx.State
	g.ctx.Key = key
	g.sched.Tick(g.ctx)
	g.ctx.Key = system.KeyNone

	if after := g.ctx.State; after != before && after.Terminal() {
		_, p := g.ctx.PlayerPos()
		logger.Log.WithFields(logrus.Fields{
			"seed":   g.seed,
			"player": p,
		}).Infof("simulation ended: %s", after)
	}
}

// SetMouse records the hovered screen cell for tooltips.
func (g *Game) SetMouse(p gruid.Point) { g.ctx.Mouse = p }

// Tooltips describes what the player sees under the mouse.
func (g *Game) Tooltips() []string { return system.Tooltips(g.ctx) }

// State returns the current turn state.
func (g *Game) State() system.TurnState { return g.ctx.State }

// World returns the entity store of the current level.
func (g *Game) World() *ecs.World { return g.ctx.World }

// Level returns the build result of the current level.
func (g *Game) Level() *generate.MapBuildResult { return g.level }

// Seed returns the seed the current level was built from.
func (g *Game) Seed() int64 { return g.seed }

// Player returns the player entity and its position.
func (g *Game) Player() (ecs.EntityID, gruid.Point) { return g.ctx.PlayerPos() }

// Frame collects what the renderer needs for one draw.
func (g *Game) Frame() render.Frame {
	return render.Frame{
		World:    g.ctx.World,
		Map:      g.ctx.Map,
		Camera:   g.ctx.Camera,
		Theme:    g.level.Theme,
		Player:   g.ctx.Player(),
		State:    g.ctx.State,
		Tooltips: g.Tooltips(),
	}
}
