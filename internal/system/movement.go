package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
)

// Movement resolves every WantsToMove. A destination that cannot be
// entered drops the intent and the mover stays put. A successful move
// marks the mover's field of view dirty; the player's move also scrolls
// the camera and records the cells currently in sight.
func Movement(ctx *Context, cmds *ecs.CommandBuffer) {
	for _, msg := range ctx.World.Query(component.CWantsToMove) {
		want, _ := ecs.Get[component.WantsToMove](ctx.World, msg)
		cmds.Destroy(msg)

		if !ctx.World.Alive(want.Mover) || !ctx.World.Has(want.Mover, component.CPosition) {
			continue
		}
		if !ctx.Map.CanEnter(want.Destination) {
			continue
		}
		cmds.Add(want.Mover, component.Position(want.Destination))

		fov, ok := ecs.Get[component.FieldOfView](ctx.World, want.Mover)
		if ok {
			fov.Dirty = true
			cmds.Add(want.Mover, fov)
		}
		if ctx.World.Has(want.Mover, component.CTagPlayer) {
			if ctx.Camera != nil {
				ctx.Camera.OnPlayerMove(want.Destination)
			}
			if ok && fov.Visible.Size() > 0 {
				fov.Visible.Each(ctx.Map.Reveal)
			}
			ctx.Map.Reveal(want.Destination)
		}
	}
}
