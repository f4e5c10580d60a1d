package component

import (
	"dungeon-crawler/internal/ecs"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
)

const CFieldOfView ecs.ComponentType = 5

// FieldOfView is the set of cells an entity can currently see. Dirty asks
// the fov system to recompute Visible before it is next read.
type FieldOfView struct {
	Radius  int
	Visible mapset.Set[gruid.Point]
	Dirty   bool
}

func (FieldOfView) Type() ecs.ComponentType { return CFieldOfView }

// NewFieldOfView returns a dirty, empty view of the given radius.
func NewFieldOfView(radius int) FieldOfView {
	return FieldOfView{Radius: radius, Visible: mapset.New[gruid.Point](), Dirty: true}
}

// Sees reports whether p is in the visible set.
func (f FieldOfView) Sees(p gruid.Point) bool {
	return f.Visible.Has(p)
}
