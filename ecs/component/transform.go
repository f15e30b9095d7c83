package component

import "github.com/milk9111/worldsaround/ecs"

// Position is measured in tiles from the top-left corner of the map.
type Position struct {
	X float64
	Y float64
}

func (*Position) Kind() ecs.Kind { return ecs.KindPosition }

// Velocity is measured in tiles per second.
type Velocity struct {
	X float64
	Y float64
}

func (*Velocity) Kind() ecs.Kind { return ecs.KindVelocity }

// Size is the sprite size in pixels.
type Size struct {
	W int
	H int
}

func (*Size) Kind() ecs.Kind { return ecs.KindSize }
