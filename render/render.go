// Package render draws the active scene onto a terminal canvas.
package render

import (
	"fmt"

	"github.com/TheBitDrifter/signet"
	"github.com/TheBitDrifter/signet/components"
)

// Origin is the world coordinate shown in the canvas' top-left cell.
type Origin struct {
	X, Y int
}

// Pan moves the origin by (dx, dy).
func (o Origin) Pan(dx, dy int) Origin {
	return Origin{X: o.X + dx, Y: o.Y + dy}
}

// Centered returns the origin that puts world (0, 0) in the middle of a
// width x height canvas.
func Centered(width, height int) Origin {
	return Origin{X: -width / 2, Y: -height / 2}
}

// Update draws every entity that has both a position and a drawable
// renderable, translating world coordinates by origin. Entities outside the
// canvas are skipped. It returns how many entities were drawn.
func Update(scene *signet.Scene, kinds components.Kinds, canvas components.Canvas, origin Origin) (int, error) {
	width, height := canvas.Size()
	drawn := 0
	var failed error

	err := scene.Each(func(e *signet.Entity) {
		if failed != nil {
			return
		}
		pos, err := signet.ComponentOf[*components.Position](e, kinds.Position.Signature)
		if err != nil {
			failed = err
			return
		}
		c, err := e.Get(kinds.Renderable.Signature)
		if err != nil {
			failed = err
			return
		}
		drawable, ok := c.(components.Drawable)
		if !ok {
			failed = fmt.Errorf("entity %d: %T is not drawable", e.ID(), c)
			return
		}

		x, y := pos.X-origin.X, pos.Y-origin.Y
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		drawable.Draw(canvas, x, y)
		drawn++
	}, kinds.Position.Mask(), kinds.Renderable.Mask())
	if failed != nil {
		return drawn, failed
	}
	return drawn, err
}
