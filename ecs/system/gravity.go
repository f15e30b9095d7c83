package system

import (
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
)

// DefaultGravity is added to every vertical velocity once per frame.
const DefaultGravity = 3.0

func Gravity(list *ecs.EntityList, g float64) {
	ecs.ForEach(list, func(_ *ecs.Entity, vel *component.Velocity) {
		vel.Y += g
	})
}
