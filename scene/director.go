package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"go.uber.org/zap"
)

// ErrEmptyStack is returned when popping a director with no scenes.
var ErrEmptyStack = errors.New("scene: pop on empty stack")

// Director owns the scene stack and forwards the frame to its top.
type Director struct {
	ctx    *Context
	scenes []Scene
}

func NewDirector(ctx *Context) *Director {
	return &Director{ctx: ctx}
}

func (d *Director) log() *zap.Logger {
	if d.ctx == nil || d.ctx.Log == nil {
		return zap.NewNop()
	}
	return d.ctx.Log
}

// Current returns the top scene, or nil when the stack is empty.
func (d *Director) Current() Scene {
	if len(d.scenes) == 0 {
		return nil
	}
	return d.scenes[len(d.scenes)-1]
}

func (d *Director) Len() int { return len(d.scenes) }

// Done reports whether the stack is empty.
func (d *Director) Done() bool { return len(d.scenes) == 0 }

// Push exits the current scene and enters s on top of it.
func (d *Director) Push(s Scene) {
	if s == nil {
		return
	}
	if cur := d.Current(); cur != nil {
		cur.Exit()
	}
	d.scenes = append(d.scenes, s)
	d.log().Debug("scene push", zap.String("scene", fmt.Sprintf("%T", s)), zap.Int("depth", len(d.scenes)))
	s.Enter(d.ctx)
}

// Pop exits and removes the current scene, then enters the one below it.
func (d *Director) Pop() (Scene, error) {
	cur := d.Current()
	if cur == nil {
		return nil, ErrEmptyStack
	}
	cur.Exit()
	d.scenes[len(d.scenes)-1] = nil
	d.scenes = d.scenes[:len(d.scenes)-1]
	d.log().Debug("scene pop", zap.String("scene", fmt.Sprintf("%T", cur)), zap.Int("depth", len(d.scenes)))
	if next := d.Current(); next != nil {
		next.Enter(d.ctx)
	}
	return cur, nil
}

// PopAll exits the current scene and clears the stack. Covered scenes have
// already been exited.
func (d *Director) PopAll() {
	if cur := d.Current(); cur != nil {
		cur.Exit()
	}
	clear(d.scenes)
	d.scenes = d.scenes[:0]
	d.log().Debug("scene pop all")
}

// Execute applies cmd to the stack.
func (d *Director) Execute(cmd Command) error {
	switch cmd.Kind() {
	case KindContinue:
	case KindPush:
		d.Push(cmd.Scene())
	case KindPop:
		_, err := d.Pop()
		return err
	case KindPopAll:
		d.PopAll()
	default:
		return fmt.Errorf("scene: unknown command %d", cmd.Kind())
	}
	return nil
}

// Input hands ev to the current scene and executes the command it returns.
func (d *Director) Input(ev input.Event) error {
	cur := d.Current()
	if cur == nil {
		return nil
	}
	return d.Execute(cur.Input(ev))
}

func (d *Director) Update(dt int) {
	if cur := d.Current(); cur != nil {
		cur.Update(dt)
	}
}

func (d *Director) Draw(screen *ebiten.Image) {
	if cur := d.Current(); cur != nil {
		cur.Draw(screen)
	}
}
