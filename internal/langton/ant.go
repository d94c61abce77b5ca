package langton

import "turmites/internal/core"

// Ant is a single turmite. Ants are plain values; the engine stores copies.
type Ant struct {
	X, Y      int
	Direction Direction
}

// NewAnt places an ant at p facing dir.
func NewAnt(p core.Point, dir Direction) Ant {
	return Ant{X: p.X, Y: p.Y, Direction: dir}
}

// Pos returns the cell the ant occupies.
func (a Ant) Pos() core.Point { return core.Point{X: a.X, Y: a.Y} }

// advance moves the ant one cell along its heading.
func (a *Ant) advance() {
	dx, dy := a.Direction.Delta()
	a.X += dx
	a.Y += dy
}
