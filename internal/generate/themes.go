package generate

import (
	"dungeon-crawler/internal/gamemap"
	"math/rand"
)

// Theme only changes how tiles are drawn.
type Theme uint8

const (
	ThemeDungeon Theme = iota
	ThemeForest
	numThemes
)

func (t Theme) String() string {
	switch t {
	case ThemeDungeon:
		return "dungeon"
	case ThemeForest:
		return "forest"
	}
	return "unknown"
}

// Glyph returns the character that represents tile under this theme.
func (t Theme) Glyph(tile gamemap.Tile) rune {
	switch t {
	case ThemeForest:
		if tile == gamemap.Wall {
			return '"'
		}
		return ';'
	default:
		if tile == gamemap.Wall {
			return '#'
		}
		return '.'
	}
}

func randomTheme(rng *rand.Rand) Theme {
	return Theme(rng.Intn(int(numThemes)))
}
