package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/logger"
)

// restHeal is how much health a turn without action restores.
const restHeal = 1

// PlayerInput turns ctx.Key into an intent for the player. A step onto an
// enemy attacks it, a step onto an item picks it up, a step onto floor
// moves. A blocked step or KeyWait rests instead. Any key except KeyNone
// hands the turn to the player pipeline.
func PlayerInput(ctx *Context, cmds *ecs.CommandBuffer) {
	if ctx.Key == KeyNone {
		return
	}
	player, pos := ctx.PlayerPos()
	acted := false

	if d := ctx.Key.Delta(); d.X != 0 || d.Y != 0 {
		dest := pos.Add(d)
		if enemies := entitiesAt(ctx.World, dest, component.CTagEnemy); len(enemies) > 0 {
			for _, victim := range enemies {
				cmds.Spawn(component.WantsToAttack{Attacker: player, Victim: victim})
			}
			acted = true
		} else if items := entitiesAt(ctx.World, dest, component.CTagItem); len(items) > 0 {
			for _, item := range items {
				cmds.Spawn(component.WantsToReceiveItem{Receiver: player, Item: item})
			}
			acted = true
		} else if ctx.Map.CanEnter(dest) {
			cmds.Spawn(component.WantsToMove{Mover: player, Destination: dest})
			acted = true
		}
	}

	if !acted {
		if hp, ok := ecs.Get[component.Health](ctx.World, player); ok {
			cmds.Add(player, hp.Heal(restHeal))
		}
		logger.Log.WithField("key", ctx.Key).Debug("player rests")
	}
	ctx.State = PlayerTurn
}
