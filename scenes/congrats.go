package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/scene"
)

// Congrats is shown when the player reaches the end of the level.
type Congrats struct {
	menu
	elapsed int
}

// NewCongrats reports a finish after elapsed ms.
func NewCongrats(elapsed int) *Congrats {
	return &Congrats{elapsed: elapsed}
}

func (c *Congrats) Enter(ctx *scene.Context) {
	c.ctx = ctx
	c.pending = scene.Continue()
	c.build(menuSpec{
		title: "Congratulations!",
		lines: []menuLine{
			{text: fmt.Sprintf("Finished in %s", formatTime(c.elapsed))},
			{text: fmt.Sprintf("Lives left: %d", ctx.Lives)},
		},
		items: []menuItem{
			{"Continue", func() { c.choose(scene.PopAll()) }},
		},
	})
}

func (c *Congrats) Input(ev input.Event) scene.Command {
	if cmd := c.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	if ev.IsKeyDown(ebiten.KeyEnter) {
		return scene.PopAll()
	}
	return scene.Continue()
}

// formatTime renders ms as m:ss.
func formatTime(ms int) string {
	s := ms / 1000
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
