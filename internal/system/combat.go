package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/logger"

	"github.com/sirupsen/logrus"
)

// attackDamage is the health one attack removes.
const attackDamage = 1

// Combat resolves every WantsToAttack. Each one takes attackDamage from
// the victim, never below 0. A non-player victim below 1 health is destroyed; the
// player is left for EndTurn to judge.
func Combat(ctx *Context, cmds *ecs.CommandBuffer) {
	hp := map[ecs.EntityID]component.Health{}
	killed := map[ecs.EntityID]bool{}

	for _, msg := range ctx.World.Query(component.CWantsToAttack) {
		attack, _ := ecs.Get[component.WantsToAttack](ctx.World, msg)
		cmds.Destroy(msg)

		victim := attack.Victim
		if killed[victim] {
			continue
		}
		h, ok := hp[victim]
		if !ok {
			if h, ok = ecs.Get[component.Health](ctx.World, victim); !ok {
				continue
			}
		}
		h.Current = max(0, h.Current-attackDamage)
		hp[victim] = h
		cmds.Add(victim, h)

		fields := logrus.Fields{"attacker": attack.Attacker, "victim": victim, "hp": h.Current}
		if h.Dead() && !ctx.World.Has(victim, component.CTagPlayer) {
			killed[victim] = true
			cmds.Destroy(victim)
			logger.Log.WithFields(fields).Debug("victim killed")
			continue
		}
		logger.Log.WithFields(fields).Debug("attack hits")
	}
}
