package component

import (
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/spatial"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y  int
	Floor int
}

func (*Position) Type() ecs.ComponentType { return CPosition }

// Point returns the grid cell of the position.
func (p *Position) Point() spatial.Point { return spatial.Point{X: p.X, Y: p.Y} }

// MoveTo places the entity on p, keeping the floor.
func (p *Position) MoveTo(pt spatial.Point) {
	p.X, p.Y = pt.X, pt.Y
}
