package system

import (
	"image"

	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
)

// Animation advances every animator and points sprites at the current frame.
func Animation(list *ecs.EntityList, dt int) {
	ecs.ForEach(list, func(_ *ecs.Entity, anim *component.Animator) {
		anim.Elapsed += dt
		if clip, ok := anim.Clip(); ok && clip.Loop && anim.Elapsed >= clip.Duration {
			anim.Elapsed = 0
		}
	})

	ecs.ForEach3(list, func(_ *ecs.Entity, size *component.Size, anim *component.Animator, sprite *component.Sprite) {
		clip, ok := anim.Clip()
		if !ok {
			return
		}
		x := (clip.StartX + Frame(clip, anim.Elapsed)) * size.W
		y := clip.StartY * size.H
		sprite.Rect = image.Rect(x, y, x+size.W, y+size.H)
	})
}

// Frame returns the frame index of clip after elapsed ms. Frames past the end
// of a non-looping clip hold on the last one; zero-length clips show frame 0.
func Frame(clip component.Animation, elapsed int) int {
	if clip.Duration <= 0 || clip.Frames <= 0 || elapsed <= 0 {
		return 0
	}
	return min(clip.Frames*elapsed/clip.Duration, clip.Frames-1)
}
