package assets

import "github.com/gdamore/tcell/v2"

// Behavior is how a monster picks its move.
type Behavior uint8

const (
	BehaviorWander Behavior = iota // random cardinal step
	BehaviorChase                  // hunts the player once seen
)

// MonsterDef describes one kind of monster.
type MonsterDef struct {
	Glyph    string
	Name     string
	MaxHP    int
	Color    tcell.Color
	Behavior Behavior
}

// Monsters is the spawn roster. Every spawn picks one entry uniformly.
var Monsters = []MonsterDef{
	{Glyph: "E", Name: "Ettin", MaxHP: 4, Color: tcell.ColorPurple, Behavior: BehaviorChase},
	{Glyph: "O", Name: "Ogre", MaxHP: 3, Color: tcell.ColorOrange, Behavior: BehaviorChase},
	{Glyph: "o", Name: "Orc", MaxHP: 2, Color: tcell.ColorRed, Behavior: BehaviorChase},
	{Glyph: "g", Name: "Goblin", MaxHP: 1, Color: tcell.ColorGreen, Behavior: BehaviorWander},
}
