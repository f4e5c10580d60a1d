package game

import (
	"dungeon-crawler/internal/render"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

// Run draws the game on screen and handles events until the player quits
// or the screen is finalized. The caller owns screen.
func (g *Game) Run(screen tcell.Screen) error {
	r := render.NewRenderer(screen)
	r.Draw(g.Frame())

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventMouse:
			x, y := ev.Position()
			g.SetMouse(gruid.Point{X: x, Y: y})
		case *tcell.EventKey:
			switch a := keyToAction(ev); a {
			case ActionQuit:
				return nil
			case ActionRestart:
				if err := g.Restart(); err != nil {
					return err
				}
			case ActionNone:
				continue
			default:
				g.Advance(simKey(a))
			}
		default:
			continue
		}
		r.Draw(g.Frame())
	}
}
