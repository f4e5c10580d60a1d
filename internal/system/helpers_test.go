package system

import (
	"math/rand"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

func pt(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }

// openMap creates a map whose border is wall and interior is floor.
func openMap(width, height int) *gamemap.Grid {
	g := gamemap.New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			g.Set(pt(x, y), gamemap.Floor)
		}
	}
	return g
}

func newTestContext(g *gamemap.Grid) *Context {
	return &Context{
		World:  ecs.NewWorld(),
		Map:    g,
		Camera: gamemap.NewCamera(10, 10, g.Width, g.Height, pt(0, 0)),
		State:  AwaitingInput,
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func addPlayer(ctx *Context, p gruid.Point, hp int) ecs.EntityID {
	return ctx.World.Spawn(
		component.Position(p),
		component.Health{Current: hp, Max: 10},
		component.Name("Player"),
		component.NewFieldOfView(8),
		component.TagPlayer{},
	)
}

func addMonster(ctx *Context, p gruid.Point, hp int, tag ecs.Component) ecs.EntityID {
	return ctx.World.Spawn(
		component.Position(p),
		component.Health{Current: hp, Max: hp},
		component.Name("Orc"),
		component.NewFieldOfView(6),
		component.TagEnemy{},
		tag,
	)
}

// run executes one system and applies its commands.
func run(ctx *Context, sys System) {
	cmds := &ecs.CommandBuffer{}
	sys(ctx, cmds)
	cmds.Apply(ctx.World)
}

func posOf(ctx *Context, id ecs.EntityID) gruid.Point {
	p, _ := ecs.Get[component.Position](ctx.World, id)
	return p.Point()
}

func hpOf(ctx *Context, id ecs.EntityID) int {
	h, _ := ecs.Get[component.Health](ctx.World, id)
	return h.Current
}

func intentCount(ctx *Context) int {
	return len(ctx.World.Query(component.CWantsToMove)) +
		len(ctx.World.Query(component.CWantsToAttack)) +
		len(ctx.World.Query(component.CWantsToReceiveItem))
}
