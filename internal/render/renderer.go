package render

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/system"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Frame is everything the renderer reads from the simulation for one draw.
type Frame struct {
	World    *ecs.World
	Map      *gamemap.Grid
	Camera   *gamemap.Camera
	Theme    generate.Theme
	Player   ecs.EntityID
	State    system.TurnState
	Tooltips []string
}

// Renderer draws frames onto a tcell screen. The map occupies the top-left
// corner of the screen with one column per cell; the HUD sits below it.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders tiles, entities, the HUD and, on a terminal state, the end
// screen, then shows the result.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	fov, _ := ecs.Get[component.FieldOfView](f.World, f.Player)
	r.drawMap(f, fov)
	r.drawEntities(f, fov)
	r.drawHUD(f)
	if f.State.Terminal() {
		r.drawEndScreen(f.State)
	}
	r.screen.Show()
}

// drawMap renders the cells inside the camera: seen cells in the theme
// colors, remembered cells dimmed, unknown cells blank.
func (r *Renderer) drawMap(f Frame, fov component.FieldOfView) {
	pal := paletteStyles(f.Theme)
	cam := f.Camera
	for y := cam.TopY; y < cam.BottomY; y++ {
		for x := cam.LeftX; x < cam.RightX; x++ {
			p := gridPoint(x, y)
			tile := f.Map.At(p)
			var style tcell.Style
			switch {
			case fov.Sees(p):
				style = pal.visible(tile)
			case f.Map.IsRevealed(p):
				style = pal.remembered
			default:
				continue
			}
			s, _ := toScreen(cam, p)
			r.putGlyph(s.X, s.Y, string(f.Theme.Glyph(tile)), style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	id   ecs.EntityID
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders entities the player can see, lowest Order first.
func (r *Renderer) drawEntities(f Frame, fov component.FieldOfView) {
	ids := f.World.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.Get[component.Position](f.World, id)
		rend, _ := ecs.Get[component.Renderable](f.World, id)
		if id != f.Player && !fov.Sees(pos.Point()) {
			continue
		}
		entities = append(entities, renderableEntity{id: id, pos: pos, rend: rend})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.Order < entities[j].rend.Order
	})

	for _, e := range entities {
		s, onScreen := toScreen(f.Camera, e.pos.Point())
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.Color).Background(tcell.ColorBlack)
		r.putGlyph(s.X, s.Y, e.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
