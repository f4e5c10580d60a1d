package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"math"

	"codeberg.org/anaseto/gruid"
)

// meleeRange is the straight-line distance under which a chaser attacks
// instead of stepping. It admits orthogonal neighbors only: a diagonal
// neighbor is about 1.414 away.
const meleeRange = 1.4

var wanderSteps = [4]gruid.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// RandomMove makes every MovesRandomly entity pick a cardinal direction
// uniformly. Stepping onto the player attacks it.
func RandomMove(ctx *Context, cmds *ecs.CommandBuffer) {
	movers := ctx.World.Query(component.CTagMovesRandomly, component.CPosition)
	if len(movers) == 0 {
		return
	}
	player, ppos := ctx.PlayerPos()
	for _, id := range movers {
		pos, _ := ecs.Get[component.Position](ctx.World, id)
		dest := pos.Point().Add(wanderSteps[ctx.Rand.Intn(len(wanderSteps))])
		bump(cmds, id, dest, player, ppos)
	}
}

// Chasing steps every ChasesPlayer entity that can see the player one cell
// down the player's distance field. A chaser within meleeRange attacks;
// one with no finite way forward waits.
func Chasing(ctx *Context, cmds *ecs.CommandBuffer) {
	chasers := ctx.World.Query(component.CTagChasesPlayer, component.CPosition)
	if len(chasers) == 0 {
		return
	}
	player, ppos := ctx.PlayerPos()
	var df *gamemap.DistanceField

	for _, id := range chasers {
		fov, ok := ecs.Get[component.FieldOfView](ctx.World, id)
		if !ok || !fov.Sees(ppos) {
			continue
		}
		pos, _ := ecs.Get[component.Position](ctx.World, id)
		if distance(pos.Point(), ppos) < meleeRange {
			bump(cmds, id, ppos, player, ppos)
			continue
		}
		if df == nil {
			df = gamemap.NewDistanceField(ctx.Map, []int{ctx.Map.Index(ppos)}, gamemap.DefaultMaxDistance)
		}
		next, ok := df.CheapestNeighbor(ctx.Map.Index(pos.Point()))
		if !ok {
			continue
		}
		bump(cmds, id, ctx.Map.Point(next), player, ppos)
	}
}

// bump queues an attack when dest holds the player, a move otherwise.
func bump(cmds *ecs.CommandBuffer, id ecs.EntityID, dest gruid.Point, player ecs.EntityID, ppos gruid.Point) {
	if dest == ppos {
		cmds.Spawn(component.WantsToAttack{Attacker: id, Victim: player})
		return
	}
	cmds.Spawn(component.WantsToMove{Mover: id, Destination: dest})
}

func distance(a, b gruid.Point) float64 {
	d := a.Sub(b)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
}
