package component

import (
	"aether-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

type Renderable struct {
	Glyph   string
	FGColor tcell.Color
	BGColor tcell.Color
	Order   int
}

func (*Renderable) Type() ecs.ComponentType { return CRenderable }
