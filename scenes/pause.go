package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/scene"
)

// PauseMenu covers a running level.
type PauseMenu struct {
	menu
}

func NewPauseMenu() *PauseMenu {
	return &PauseMenu{}
}

func (p *PauseMenu) Enter(ctx *scene.Context) {
	p.ctx = ctx
	p.pending = scene.Continue()
	p.build(menuSpec{
		title: "Paused",
		items: []menuItem{
			{"Resume", func() { p.choose(scene.Pop()) }},
			{"Restart", func() {
				ctx.NewRun()
				p.choose(scene.Pop())
			}},
			{"Settings", func() { p.choose(scene.Push(NewSettings())) }},
			{"Quit", func() { p.choose(scene.PopAll()) }},
		},
	})
}

func (p *PauseMenu) Input(ev input.Event) scene.Command {
	if cmd := p.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	if ev.IsKeyDown(ebiten.KeyEscape) || ev.IsKeyDown(ebiten.KeyP) {
		return scene.Pop()
	}
	return scene.Continue()
}
