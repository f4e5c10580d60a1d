package component

import "dungeon-crawler/internal/ecs"

const CHealth ecs.ComponentType = 2

type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Heal adds n hit points without exceeding Max.
func (h Health) Heal(n int) Health {
	h.Current = min(h.Current+n, h.Max)
	return h
}

// Dead reports whether the entity has run out of hit points.
func (h Health) Dead() bool { return h.Current < 1 }
