package component

import "github.com/milk9111/worldsaround/ecs"

// Animation is a clip laid out horizontally on a sprite sheet, starting at
// cell (StartX, StartY). Duration is in milliseconds.
type Animation struct {
	StartX   int
	StartY   int
	Frames   int
	Duration int
	Loop     bool
}

type Animator struct {
	Animations map[string]Animation
	Active     string
	Elapsed    int
}

func (*Animator) Kind() ecs.Kind { return ecs.KindAnimator }

// Clip returns the active clip.
func (a *Animator) Clip() (Animation, bool) {
	clip, ok := a.Animations[a.Active]
	return clip, ok
}

// Transition switches to the named clip and restarts it. Switching to the
// clip that is already playing, or to an unknown clip, does nothing.
func (a *Animator) Transition(name string) {
	if a.Active == name {
		return
	}
	if _, ok := a.Animations[name]; !ok {
		return
	}
	a.Active = name
	a.Elapsed = 0
}
