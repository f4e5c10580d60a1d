package assets

import (
	"dungeon-crawler/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used for entities.
const (
	GlyphPlayer = "@"
	GlyphAmulet = "|"
)

// Palette is the set of colors a theme draws terrain with.
type Palette struct {
	Wall, Floor tcell.Color
	// Remembered tints revealed cells that are out of sight.
	Remembered tcell.Color
}

var palettes = map[generate.Theme]Palette{
	generate.ThemeDungeon: {Wall: tcell.ColorSilver, Floor: tcell.ColorGray, Remembered: tcell.ColorDarkSlateGray},
	generate.ThemeForest:  {Wall: tcell.ColorForestGreen, Floor: tcell.ColorOliveDrab, Remembered: tcell.ColorDarkOliveGreen},
}

// PaletteFor returns the colors of t, falling back to the dungeon palette.
func PaletteFor(t generate.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[generate.ThemeDungeon]
}
