package component

import (
	"dungeon-crawler/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const (
	CRenderable ecs.ComponentType = 3
	CName       ecs.ComponentType = 4
)

// Renderable is how an entity is drawn. Higher Order draws on top.
type Renderable struct {
	Glyph string
	Color tcell.Color
	Order int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// Name is the display name used in tooltips.
type Name string

func (Name) Type() ecs.ComponentType { return CName }
