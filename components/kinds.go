// Package components holds the component kinds shared by the game: where an
// entity is and how it is drawn.
package components

import (
	"fmt"

	"github.com/TheBitDrifter/signet"
)

const (
	PositionName   = "position"
	RenderableName = "renderable"
)

// Kinds are the registered kinds of this package, in registration order.
type Kinds struct {
	Position   signet.Kind
	Renderable signet.Kind
}

// Register registers every kind of this package against w. Registration order
// is fixed so that a fresh world always hands out the same signatures.
func Register(w *signet.World) (Kinds, error) {
	var kinds Kinds
	var err error
	if kinds.Position, err = w.RegisterKind(PositionName); err != nil {
		return Kinds{}, fmt.Errorf("register %s: %w", PositionName, err)
	}
	if kinds.Renderable, err = w.RegisterKind(RenderableName); err != nil {
		return Kinds{}, fmt.Errorf("register %s: %w", RenderableName, err)
	}
	return kinds, nil
}

// Drawable is implemented by components that know how to put themselves on a
// canvas at a cell.
type Drawable interface {
	Draw(c Canvas, x, y int)
}
