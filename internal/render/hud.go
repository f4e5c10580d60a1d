package render

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/system"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// HelpLine lists the keys the terminal front end understands.
const HelpLine = "arrows/hjkl move  . wait  r restart  q quit"

// drawHUD renders the status line, the help line and the tooltip lines
// below the map.
func (r *Renderer) drawHUD(f Frame) {
	_, viewH := viewSize(f.Camera)
	hudY := viewH

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: ?"
	if hp, ok := ecs.Get[component.Health](f.World, f.Player); ok {
		hpText = fmt.Sprintf("HP: %d/%d", hp.Current, hp.Max)
	}
	r.drawText(0, hudY+1, hpText+"  "+f.State.String(), styleStatus)
	r.drawText(0, hudY+2, HelpLine, styleHelp)

	for i, line := range f.Tooltips {
		r.drawText(0, hudY+3+i, line, styleTooltip)
	}
}

// drawEndScreen overlays the game over or victory banner in the middle
// of the screen.
func (r *Renderer) drawEndScreen(state system.TurnState) {
	w, h := r.screen.Size()
	title, style := "YOU DIED", styleDeath
	if state == system.Victory {
		title, style = "YOU FOUND THE AMULET OF YALA", styleVictory
	}
	lines := []string{title, "", "[R] Restart    [Q] Quit"}
	top := h/2 - len(lines)/2
	for i, line := range lines {
		s := style
		if i > 0 {
			s = styleStatus
		}
		r.drawText((w-len(line))/2, top+i, line, s)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
