package factory

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/generate"
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

// Draw order: items under monsters under the player.
const (
	orderItem    = 1
	orderMonster = 5
	orderPlayer  = 10
)

// NewPlayer creates the player entity at p.
func NewPlayer(w *ecs.World, p gruid.Point, hp, fov int) ecs.EntityID {
	return w.Spawn(
		component.Position(p),
		component.Health{Current: hp, Max: hp},
		component.Name("Player"),
		component.Renderable{Glyph: assets.GlyphPlayer, Color: tcell.ColorYellow, Order: orderPlayer},
		component.NewFieldOfView(fov),
		component.TagPlayer{},
	)
}

// NewMonster creates a monster of the given kind at p.
func NewMonster(w *ecs.World, def assets.MonsterDef, p gruid.Point, fov int) ecs.EntityID {
	id := w.Spawn(
		component.Position(p),
		component.Health{Current: def.MaxHP, Max: def.MaxHP},
		component.Name(def.Name),
		component.Renderable{Glyph: def.Glyph, Color: def.Color, Order: orderMonster},
		component.NewFieldOfView(fov),
		component.TagEnemy{},
	)
	switch def.Behavior {
	case assets.BehaviorChase:
		w.Add(id, component.TagChasesPlayer{})
	default:
		w.Add(id, component.TagMovesRandomly{})
	}
	return id
}

// RandomMonster picks a roster entry uniformly.
func RandomMonster(rng *rand.Rand) assets.MonsterDef {
	return assets.Monsters[rng.Intn(len(assets.Monsters))]
}

// NewItem creates an item entity at p.
func NewItem(w *ecs.World, def assets.ItemDef, p gruid.Point) ecs.EntityID {
	id := w.Spawn(
		component.Position(p),
		component.Name(def.Name),
		component.Renderable{Glyph: def.Glyph, Color: def.Color, Order: orderItem},
		component.TagItem{},
	)
	if def.Goal {
		w.Add(id, component.TagGoal{})
	}
	return id
}

// Populate fills w with the player, the amulet and one monster per spawn
// point of res. It returns the player.
func Populate(w *ecs.World, rng *rand.Rand, res *generate.MapBuildResult, opts config.Options) ecs.EntityID {
	player := NewPlayer(w, res.PlayerStart, opts.PlayerHP, opts.PlayerFOV)
	NewItem(w, assets.Amulet, res.GoalStart)
	for _, p := range res.MonsterSpawns {
		NewMonster(w, RandomMonster(rng), p, opts.MonsterFOV)
	}
	return player
}
