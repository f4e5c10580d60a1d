package render

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// styles holds the terrain styles of one theme.
type styles struct {
	wall, floor tcell.Style
	remembered  tcell.Style
}

func paletteStyles(t generate.Theme) styles {
	pal := assets.PaletteFor(t)
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return styles{
		wall:       base.Foreground(pal.Wall),
		floor:      base.Foreground(pal.Floor),
		remembered: base.Foreground(pal.Remembered),
	}
}

func (s styles) visible(tile gamemap.Tile) tcell.Style {
	if tile == gamemap.Wall {
		return s.wall
	}
	return s.floor
}

var (
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTooltip = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleDeath   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleVictory = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
)
