package system

import (
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
)

// Enemies walks patrolling enemies back and forth. A patrol with a zero
// duration stands still.
func Enemies(list *ecs.EntityList, dt int) {
	ecs.ForEach3(list, func(_ *ecs.Entity, _ *component.Enemy, pos *component.Position, patrol *component.PatrolRange) {
		if patrol.Duration <= 0 {
			return
		}
		patrol.Elapsed += dt
		speed := float64(patrol.Length) / float64(patrol.Duration)
		dir := 1.0
		if patrol.Left {
			dir = -1
		}
		pos.X += float64(dt) * speed * dir
	})

	ecs.ForEach4(list, func(_ *ecs.Entity, _ *component.Enemy, patrol *component.PatrolRange, _ *component.Sprite, anim *component.Animator) {
		if patrol.Duration <= 0 || patrol.Elapsed < patrol.Duration {
			return
		}
		patrol.Elapsed = 0
		patrol.Left = !patrol.Left
		if patrol.Left {
			anim.Transition("idle_left")
		} else {
			anim.Transition("idle_right")
		}
	})
}
