package component

import (
	"dungeon-crawler/internal/ecs"

	"codeberg.org/anaseto/gruid"
)

const (
	CWantsToMove        ecs.ComponentType = 20
	CWantsToAttack      ecs.ComponentType = 21
	CWantsToReceiveItem ecs.ComponentType = 22
)

// Intents are one-shot message entities. A system spawns one, a later
// stage consumes and destroys it.

// WantsToMove asks the movement system to place Mover on Destination.
type WantsToMove struct {
	Mover       ecs.EntityID
	Destination gruid.Point
}

func (WantsToMove) Type() ecs.ComponentType { return CWantsToMove }

// WantsToAttack asks the combat system to damage Victim.
type WantsToAttack struct {
	Attacker ecs.EntityID
	Victim   ecs.EntityID
}

func (WantsToAttack) Type() ecs.ComponentType { return CWantsToAttack }

// WantsToReceiveItem asks the item system to hand Item to Receiver.
type WantsToReceiveItem struct {
	Receiver ecs.EntityID
	Item     ecs.EntityID
}

func (WantsToReceiveItem) Type() ecs.ComponentType { return CWantsToReceiveItem }
