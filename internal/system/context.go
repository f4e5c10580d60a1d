package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/logger"
	"math/rand"

	"codeberg.org/anaseto/gruid"
)

// TurnState is the phase of the turn state machine.
type TurnState uint8

const (
	AwaitingInput TurnState = iota
	PlayerTurn
	MonsterTurn
	GameOver
	Victory
)

func (s TurnState) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case PlayerTurn:
		return "player-turn"
	case MonsterTurn:
		return "monster-turn"
	case GameOver:
		return "game-over"
	case Victory:
		return "victory"
	}
	return "unknown"
}

// Terminal reports whether the simulation has ended.
func (s TurnState) Terminal() bool {
	return s == GameOver || s == Victory
}

// Key is one decoded input for a tick.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyWait
)

// Delta returns the step a directional key asks for.
func (k Key) Delta() gruid.Point {
	switch k {
	case KeyUp:
		return gruid.Point{Y: -1}
	case KeyDown:
		return gruid.Point{Y: 1}
	case KeyLeft:
		return gruid.Point{X: -1}
	case KeyRight:
		return gruid.Point{X: 1}
	}
	return gruid.Point{}
}

// Context carries the shared resources every system reads and writes.
// Only the running pipeline touches it.
type Context struct {
	World  *ecs.World
	Map    *gamemap.Grid
	Camera *gamemap.Camera
	State  TurnState
	Key    Key
	// Mouse is the hovered screen cell, for tooltips.
	Mouse gruid.Point
	Rand  *rand.Rand
}

// Player returns the player entity. A level without one is corrupt and
// the call panics.
func (ctx *Context) Player() ecs.EntityID {
	id, ok := ctx.World.Single(component.CTagPlayer)
	if !ok {
		logger.Log.Panic("no player entity in world")
	}
	return id
}

// PlayerPos returns the player's position.
func (ctx *Context) PlayerPos() (ecs.EntityID, gruid.Point) {
	id := ctx.Player()
	pos, ok := ecs.Get[component.Position](ctx.World, id)
	if !ok {
		logger.Log.WithField("entity", id).Panic("player has no position")
	}
	return id, pos.Point()
}

// entitiesAt returns the entities at p carrying all of types.
func entitiesAt(w *ecs.World, p gruid.Point, types ...ecs.ComponentType) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(append([]ecs.ComponentType{component.CPosition}, types...)...) {
		if pos, _ := ecs.Get[component.Position](w, id); pos.Point() == p {
			out = append(out, id)
		}
	}
	return out
}
