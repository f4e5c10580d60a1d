package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is wrapped by every validation failure.
var ErrInvalidOptions = errors.New("invalid options")

// Architect names accepted in Options.Architect.
const (
	ArchitectRandom   = "random"
	ArchitectRooms    = "rooms"
	ArchitectAutomata = "automata"
	ArchitectDrunkard = "drunkard"
	ArchitectEmpty    = "empty"
)

// Vault names accepted in Options.Vaults.
const (
	VaultFortress = "fortress"
	VaultSpiral   = "spiral"
)

// Options drives level generation and the simulation.
type Options struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	DisplayWidth  int `yaml:"display_width"`
	DisplayHeight int `yaml:"display_height"`

	MaxRooms   int    `yaml:"max_rooms"`
	RoomSize   int    `yaml:"room_size"`
	Architect  string `yaml:"architect"`
	PlayerFOV  int    `yaml:"player_fov"`
	MonsterFOV int    `yaml:"monster_fov"`
	PlayerHP   int    `yaml:"player_hp"`

	NumMonsters int `yaml:"num_monsters"`

	Vaults            []string `yaml:"vaults"`
	PrefabMinDistance float32  `yaml:"prefab_min_distance"`
	PrefabAttempts    int      `yaml:"prefab_attempts"`

	DrunkardOpenPercent float64 `yaml:"drunkard_open_percent"`
	DrunkardStagger     int     `yaml:"drunkard_stagger"`

	AutomataOpenPercent   int `yaml:"automata_open_percent"`
	AutomataWallThreshold int `yaml:"automata_wall_threshold"`
}

// Default returns the stock options.
func Default() Options {
	return Options{
		Width:                 80,
		Height:                50,
		DisplayWidth:          40,
		DisplayHeight:         25,
		MaxRooms:              10,
		RoomSize:              10,
		Architect:             ArchitectRandom,
		PlayerFOV:             8,
		MonsterFOV:            6,
		PlayerHP:              10,
		NumMonsters:           30,
		Vaults:                []string{VaultFortress, VaultSpiral},
		PrefabMinDistance:     20,
		PrefabAttempts:        10,
		DrunkardOpenPercent:   33.33,
		DrunkardStagger:       400,
		AutomataOpenPercent:   45,
		AutomataWallThreshold: 4,
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default value.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Validate reports the first problem found in o.
func (o Options) Validate() error {
	switch {
	case o.Width < 12 || o.Height < 12:
		return fmt.Errorf("%w: map %dx%d is smaller than 12x12", ErrInvalidOptions, o.Width, o.Height)
	case o.DisplayWidth < 1 || o.DisplayHeight < 1:
		return fmt.Errorf("%w: display %dx%d", ErrInvalidOptions, o.DisplayWidth, o.DisplayHeight)
	case o.MaxRooms < 1:
		return fmt.Errorf("%w: max_rooms %d", ErrInvalidOptions, o.MaxRooms)
	case o.RoomSize < 4 || o.RoomSize > o.Width-10 || o.RoomSize > o.Height-10:
		return fmt.Errorf("%w: room_size %d", ErrInvalidOptions, o.RoomSize)
	case o.PlayerFOV < 1 || o.MonsterFOV < 1:
		return fmt.Errorf("%w: fov radius must be positive", ErrInvalidOptions)
	case o.PlayerHP < 1:
		return fmt.Errorf("%w: player_hp %d", ErrInvalidOptions, o.PlayerHP)
	case o.NumMonsters < 0:
		return fmt.Errorf("%w: num_monsters %d", ErrInvalidOptions, o.NumMonsters)
	case o.PrefabAttempts < 0:
		return fmt.Errorf("%w: prefab_attempts %d", ErrInvalidOptions, o.PrefabAttempts)
	case o.DrunkardOpenPercent <= 0 || o.DrunkardOpenPercent > 90:
		return fmt.Errorf("%w: drunkard_open_percent %.2f", ErrInvalidOptions, o.DrunkardOpenPercent)
	case o.DrunkardStagger < 1:
		return fmt.Errorf("%w: drunkard_stagger %d", ErrInvalidOptions, o.DrunkardStagger)
	case o.AutomataOpenPercent < 1 || o.AutomataOpenPercent > 99:
		return fmt.Errorf("%w: automata_open_percent %d", ErrInvalidOptions, o.AutomataOpenPercent)
	case o.AutomataWallThreshold < 1 || o.AutomataWallThreshold > 8:
		return fmt.Errorf("%w: automata_wall_threshold %d", ErrInvalidOptions, o.AutomataWallThreshold)
	}
	switch o.Architect {
	case ArchitectRandom, ArchitectRooms, ArchitectAutomata, ArchitectDrunkard, ArchitectEmpty:
	default:
		return fmt.Errorf("%w: unknown architect %q", ErrInvalidOptions, o.Architect)
	}
	for _, v := range o.Vaults {
		if v != VaultFortress && v != VaultSpiral {
			return fmt.Errorf("%w: unknown vault %q", ErrInvalidOptions, v)
		}
	}
	return nil
}
