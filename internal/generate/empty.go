package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
)

func buildEmpty(opts config.Options) layout {
	g := gamemap.New(opts.Width, opts.Height)
	g.Fill(gamemap.Floor)
	return layout{grid: g, start: center(g)}
}
