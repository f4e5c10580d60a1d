package generate

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/logger"
	"math/rand"
	"slices"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// roomAttemptsPerRoom bounds rejection sampling so a crowded map cannot
// spin forever.
const roomAttemptsPerRoom = 200

// minRoomSide is the smallest room edge.
const minRoomSide = 3

func buildRooms(rng *rand.Rand, opts config.Options) layout {
	g := gamemap.New(opts.Width, opts.Height)
	rooms := placeRooms(g, rng, opts.MaxRooms, opts.RoomSize)
	connectRooms(g, rooms, rng)

	lay := layout{grid: g, rooms: rooms, start: center(g)}
	if len(rooms) > 0 {
		lay.start = rooms[0].Center()
	}
	return lay
}

// placeRooms samples random rectangles until n non-overlapping rooms are
// carved or the attempt budget runs out.
func placeRooms(g *gamemap.Grid, rng *rand.Rand, n, roomSize int) []gamemap.Rect {
	var rooms []gamemap.Rect
	for attempt := 0; len(rooms) < n && attempt < n*roomAttemptsPerRoom; attempt++ {
		w := minRoomSide + rng.Intn(max(1, roomSize-minRoomSide))
		h := minRoomSide + rng.Intn(max(1, roomSize-minRoomSide))
		if w+2 > g.Width || h+2 > g.Height {
			continue
		}
		room := gamemap.NewRect(1+rng.Intn(g.Width-w-1), 1+rng.Intn(g.Height-h-1), w, h)
		if slices.ContainsFunc(rooms, room.Intersects) {
			continue
		}
		room.Each(func(p gruid.Point) { g.Set(p, gamemap.Floor) })
		rooms = append(rooms, room)
	}
	if len(rooms) < n {
		logger.Log.WithFields(logrus.Fields{
			"wanted": n,
			"placed": len(rooms),
		}).Debug("room placement budget exhausted")
	}
	return rooms
}

// connectRooms joins consecutive room centers, ordered by x.
func connectRooms(g *gamemap.Grid, rooms []gamemap.Rect, rng *rand.Rand) {
	sorted := slices.Clone(rooms)
	slices.SortStableFunc(sorted, func(a, b gamemap.Rect) int {
		return a.Center().X - b.Center().X
	})
	for i := 1; i < len(sorted); i++ {
		carveCorridor(g, sorted[i-1].Center(), sorted[i].Center(), rng)
	}
}
