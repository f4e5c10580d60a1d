package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/logger"
)

// EndTurn advances the turn state: player turn to monster turn, monster
// turn back to awaiting input, either to game over once the player has no
// health left. Terminal states are kept.
func EndTurn(ctx *Context, _ *ecs.CommandBuffer) {
	if ctx.State.Terminal() {
		return
	}
	player := ctx.Player()
	if hp, ok := ecs.Get[component.Health](ctx.World, player); ok && hp.Dead() {
		ctx.State = GameOver
		logger.Log.Info("player died")
		return
	}
	switch ctx.State {
	case PlayerTurn:
		ctx.State = MonsterTurn
	case MonsterTurn:
		ctx.State = AwaitingInput
	}
}
