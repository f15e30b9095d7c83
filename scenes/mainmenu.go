package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/scene"
)

// MainMenu is the bottom of the scene stack. Popping it ends the game.
type MainMenu struct {
	menu
}

func NewMainMenu() *MainMenu {
	return &MainMenu{}
}

func (m *MainMenu) Enter(ctx *scene.Context) {
	m.ctx = ctx
	m.pending = scene.Continue()
	ctx.Music.SetVolume(ctx.Profile.Music)
	ctx.Music.SetEnabled(ctx.Profile.Music > 0)
	m.build(menuSpec{
		title: "Worlds Around",
		lines: []menuLine{{text: "Profile: " + ctx.Profile.Name}},
		items: []menuItem{
			{"Play", m.play},
			{"Settings", func() { m.choose(scene.Push(NewSettings())) }},
			{"Profiles", func() { m.choose(scene.Push(NewProfiles())) }},
			{"Quit", func() { m.choose(scene.Pop()) }},
		},
	})
}

func (m *MainMenu) play() {
	m.ctx.NewRun()
	m.choose(scene.Push(NewLevel()))
}

func (m *MainMenu) Input(ev input.Event) scene.Command {
	if cmd := m.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	switch {
	case ev.IsKeyDown(ebiten.KeyEnter):
		m.ctx.NewRun()
		return scene.Push(NewLevel())
	case ev.IsKeyDown(ebiten.KeyEscape):
		return scene.Pop()
	}
	return scene.Continue()
}
