package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/logger"
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// maxDrunkards bounds the number of walks for one level.
const maxDrunkards = 2000

var drunkSteps = [4]gruid.Point{{Y: 1}, {Y: -1}, {X: 1}, {X: -1}}

func buildDrunkard(rng *rand.Rand, opts config.Options) layout {
	g := gamemap.New(opts.Width, opts.Height)
	start := center(g)
	stagger(g, start, rng, opts.DrunkardStagger)

	walks := 1
	for ; walks < maxDrunkards; walks++ {
		stagger(g, gruid.Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}, rng, opts.DrunkardStagger)
		wallOffUnreachable(g, start)
		if openPercent(g) >= opts.DrunkardOpenPercent {
			break
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"walks": walks,
		"open":  openPercent(g),
	}).Debug("drunkard finished carving")
	return layout{grid: g, start: start}
}

// stagger carves a random walk from p until it would leave the grid or
// has taken maxSteps steps.
func stagger(g *gamemap.Grid, p gruid.Point, rng *rand.Rand, maxSteps int) {
	for steps := 0; ; steps++ {
		g.Set(p, gamemap.Floor)
		next := p.Add(drunkSteps[rng.Intn(len(drunkSteps))])
		if !g.InBounds(next) || steps >= maxSteps {
			return
		}
		p = next
	}
}

func openPercent(g *gamemap.Grid) float64 {
	return float64(g.Count(gamemap.Floor)) / float64(len(g.Tiles)) * 100
}
