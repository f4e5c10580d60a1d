package component

import "dungeon-crawler/internal/ecs"

const (
	CTagPlayer        ecs.ComponentType = 8
	CTagEnemy         ecs.ComponentType = 9
	CTagItem          ecs.ComponentType = 10
	CTagGoal          ecs.ComponentType = 11
	CTagMovesRandomly ecs.ComponentType = 12
	CTagChasesPlayer  ecs.ComponentType = 13
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEnemy marks hostile creatures the player bumps to attack.
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }

// TagItem marks a pickup item on the map.
type TagItem struct{}

func (TagItem) Type() ecs.ComponentType { return CTagItem }

// TagGoal marks the item that wins the game when picked up.
type TagGoal struct{}

func (TagGoal) Type() ecs.ComponentType { return CTagGoal }

// TagMovesRandomly makes a monster wander one step per turn.
type TagMovesRandomly struct{}

func (TagMovesRandomly) Type() ecs.ComponentType { return CTagMovesRandomly }

// TagChasesPlayer makes a monster hunt the player once it sees them.
type TagChasesPlayer struct{}

func (TagChasesPlayer) Type() ecs.ComponentType { return CTagChasesPlayer }
