package component

import "github.com/milk9111/worldsaround/ecs"

// Collider overrides Size as the collision footprint, in pixels.
type Collider struct {
	W int
	H int
}

func (*Collider) Kind() ecs.Kind { return ecs.KindCollider }
