package assets

import (
	"testing"

	"dungeon-crawler/internal/generate"
)

func TestMonsterRoster(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Monsters {
		if m.MaxHP < 1 {
			t.Errorf("%s has %d hp", m.Name, m.MaxHP)
		}
		if seen[m.Glyph] {
			t.Errorf("glyph %q used twice", m.Glyph)
		}
		seen[m.Glyph] = true
	}
	if len(Monsters) != 4 {
		t.Errorf("roster has %d monsters, want 4", len(Monsters))
	}
}

func TestPaletteFallback(t *testing.T) {
	if PaletteFor(generate.Theme(99)) != PaletteFor(generate.ThemeDungeon) {
		t.Error("unknown theme should use the dungeon palette")
	}
	if PaletteFor(generate.ThemeForest) == PaletteFor(generate.ThemeDungeon) {
		t.Error("forest and dungeon palettes should differ")
	}
}
