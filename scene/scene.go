package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
)

// Scene is one game state on the director's stack. Enter runs when the scene
// becomes the top of the stack and Exit when it stops being the top, so the
// two calls always alternate.
type Scene interface {
	Enter(ctx *Context)
	Exit()
	Input(ev input.Event) Command
	Update(dt int)
	Draw(screen *ebiten.Image)
}

// Base provides no-op Enter, Exit and Input.
type Base struct{}

func (Base) Enter(*Context)            {}
func (Base) Exit()                     {}
func (Base) Input(input.Event) Command { return Continue() }
