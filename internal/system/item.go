package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/logger"
)

// ReceiveItem resolves every WantsToReceiveItem. The item leaves the map;
// if it is the goal item the game is won.
func ReceiveItem(ctx *Context, cmds *ecs.CommandBuffer) {
	for _, msg := range ctx.World.Query(component.CWantsToReceiveItem) {
		want, _ := ecs.Get[component.WantsToReceiveItem](ctx.World, msg)
		cmds.Destroy(msg)

		if !ctx.World.Alive(want.Item) || !ctx.World.Has(want.Item, component.CTagItem) {
			continue
		}
		if ctx.World.Has(want.Item, component.CTagGoal) && ctx.World.Has(want.Receiver, component.CTagPlayer) {
			ctx.State = Victory
			logger.Log.WithField("item", want.Item).Info("goal item recovered")
		}
		cmds.Destroy(want.Item)
	}
}
