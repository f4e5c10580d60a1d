package assets

import "github.com/gdamore/tcell/v2"

// ItemDef describes an item placed on the map.
type ItemDef struct {
	Glyph string
	Name  string
	Color tcell.Color
	Goal  bool
}

// Amulet is the goal item. Picking it up wins the game.
var Amulet = ItemDef{Glyph: GlyphAmulet, Name: "Amulet of Yala", Color: tcell.ColorGold, Goal: true}
