package gamemap

// Tile is the terrain kind of one map cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
)

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	}
	return "unknown"
}
