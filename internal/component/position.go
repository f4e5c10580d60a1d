package component

import (
	"dungeon-crawler/internal/ecs"

	"codeberg.org/anaseto/gruid"
)

const CPosition ecs.ComponentType = 1

// Position is the grid cell an entity stands on.
type Position gruid.Point

func (Position) Type() ecs.ComponentType { return CPosition }

// Point returns p as a gruid.Point.
func (p Position) Point() gruid.Point { return gruid.Point(p) }

// At returns the Position of cell (x, y).
func At(x, y int) Position { return Position{X: x, Y: y} }
