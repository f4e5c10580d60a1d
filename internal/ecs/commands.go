package ecs

// CommandKind tags one deferred mutation.
type CommandKind uint8

const (
	CmdSpawn   CommandKind = iota // create an entity with Components
	CmdAdd                        // attach or replace Components on Entity
	CmdRemove                     // detach component Kind from Entity
	CmdDestroy                    // delete Entity
)

func (k CommandKind) String() string {
	switch k {
	case CmdSpawn:
		return "spawn"
	case CmdAdd:
		return "add"
	case CmdRemove:
		return "remove"
	case CmdDestroy:
		return "destroy"
	}
	return "unknown"
}

// Command is one recorded mutation.
type Command struct {
	Kind       CommandKind
	Entity     EntityID
	Components []Component
	Component  ComponentType
}

// CommandBuffer records mutations while systems read the world, and commits
// them in recording order when Apply is called.
type CommandBuffer struct {
	cmds []Command
}

// Spawn records the creation of an entity carrying cs.
func (b *CommandBuffer) Spawn(cs ...Component) {
	b.cmds = append(b.cmds, Command{Kind: CmdSpawn, Components: cs})
}

// Add records attaching (or replacing) cs on id.
func (b *CommandBuffer) Add(id EntityID, cs ...Component) {
	b.cmds = append(b.cmds, Command{Kind: CmdAdd, Entity: id, Components: cs})
}

// Remove records detaching component type t from id.
func (b *CommandBuffer) Remove(id EntityID, t ComponentType) {
	b.cmds = append(b.cmds, Command{Kind: CmdRemove, Entity: id, Component: t})
}

// Destroy records the deletion of id.
func (b *CommandBuffer) Destroy(id EntityID) {
	b.cmds = append(b.cmds, Command{Kind: CmdDestroy, Entity: id})
}

// Len returns the number of pending commands.
func (b *CommandBuffer) Len() int { return len(b.cmds) }

// Commands returns the pending commands without draining them.
func (b *CommandBuffer) Commands() []Command { return b.cmds }

// Apply commits every pending command to w and empties the buffer. Commands
// aimed at entities that died earlier in the log are dropped. The IDs of
// spawned entities are returned in recording order.
func (b *CommandBuffer) Apply(w *World) []EntityID {
	var spawned []EntityID
	for _, c := range b.cmds {
		switch c.Kind {
		case CmdSpawn:
			spawned = append(spawned, w.Spawn(c.Components...))
		case CmdAdd:
			for _, comp := range c.Components {
				w.Add(c.Entity, comp)
			}
		case CmdRemove:
			w.Remove(c.Entity, c.Component)
		case CmdDestroy:
			w.DestroyEntity(c.Entity)
		}
	}
	clear(b.cmds)
	b.cmds = b.cmds[:0]
	return spawned
}
