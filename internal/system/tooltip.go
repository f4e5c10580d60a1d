package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"fmt"
)

// Tooltips returns one line per named entity under the mouse that the
// player can see: "name" or "name : N hp".
func Tooltips(ctx *Context) []string {
	if ctx.Camera == nil {
		return nil
	}
	cell := ctx.Camera.ToGrid(ctx.Mouse)
	if !ctx.Camera.Contains(cell) {
		return nil
	}
	player := ctx.Player()
	fov, ok := ecs.Get[component.FieldOfView](ctx.World, player)
	if !ok || !fov.Sees(cell) {
		return nil
	}

	var lines []string
	for _, id := range entitiesAt(ctx.World, cell, component.CName) {
		name, _ := ecs.Get[component.Name](ctx.World, id)
		if hp, ok := ecs.Get[component.Health](ctx.World, id); ok {
			lines = append(lines, fmt.Sprintf("%s : %d hp", name, hp.Current))
			continue
		}
		lines = append(lines, string(name))
	}
	return lines
}
