package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/scene"
)

// GameOver ends a run. Restart returns to the level for a fresh run.
type GameOver struct {
	menu
	reason string
}

func NewGameOver(reason string) *GameOver {
	return &GameOver{reason: reason}
}

func (g *GameOver) Enter(ctx *scene.Context) {
	g.ctx = ctx
	g.pending = scene.Continue()
	g.build(menuSpec{
		title: "Game Over",
		lines: []menuLine{{text: g.reason}},
		items: []menuItem{
			{"Restart", g.restart},
			{"Quit", func() { g.choose(scene.PopAll()) }},
		},
	})
}

func (g *GameOver) restart() {
	g.ctx.NewRun()
	g.choose(scene.Pop())
}

func (g *GameOver) Input(ev input.Event) scene.Command {
	if cmd := g.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	if ev.IsKeyDown(ebiten.KeyEnter) {
		g.ctx.NewRun()
		return scene.Pop()
	}
	return scene.Continue()
}
