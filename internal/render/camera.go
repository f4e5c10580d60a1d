package render

import (
	"dungeon-crawler/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

func gridPoint(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }

// toScreen converts grid p to a screen cell. onScreen is false when p is
// outside the camera.
func toScreen(cam *gamemap.Camera, p gruid.Point) (s gruid.Point, onScreen bool) {
	return p.Sub(cam.Offset()), cam.Contains(p)
}

// viewSize returns the number of columns and rows the map takes on screen.
func viewSize(cam *gamemap.Camera) (int, int) {
	return cam.RightX - cam.LeftX, cam.BottomY - cam.TopY
}
