package components

import (
	"fmt"

	"github.com/TheBitDrifter/signet"
)

// Bound limits both coordinates of a Position to [-Bound, Bound].
const Bound = 4096

type PositionBoundsError struct {
	X, Y int
}

func (e PositionBoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) outside [-%d, %d]", e.X, e.Y, Bound, Bound)
}

// Position places an entity on the world grid.
type Position struct {
	signet.Tag `yaml:"-"`
	X          int `yaml:"x"`
	Y          int `yaml:"y"`
}

func NewPosition(kind signet.Kind, x, y int) (*Position, error) {
	if !inBounds(x) || !inBounds(y) {
		return nil, PositionBoundsError{X: x, Y: y}
	}
	return &Position{Tag: signet.NewTag(kind), X: x, Y: y}, nil
}

// Move shifts p by (dx, dy), refusing to leave the grid.
func (p *Position) Move(dx, dy int) error {
	x, y := p.X+dx, p.Y+dy
	if !inBounds(x) || !inBounds(y) {
		return PositionBoundsError{X: x, Y: y}
	}
	p.X, p.Y = x, y
	return nil
}

// Key maps p to a unique integer on the grid.
func (p *Position) Key() int {
	return (2*Bound+1)*(Bound+p.Y) + (Bound + p.X)
}

// Equal compares coordinates only.
func (p *Position) Equal(other *Position) bool {
	return other != nil && p.X == other.X && p.Y == other.Y
}

func inBounds(v int) bool {
	return v >= -Bound && v <= Bound
}
