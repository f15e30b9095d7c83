package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/profile"
	"github.com/milk9111/worldsaround/scene"
	"go.uber.org/zap"
)

// ConfirmDelete asks before removing a saved profile.
type ConfirmDelete struct {
	menu
	name string
}

func NewConfirmDelete(name string) *ConfirmDelete {
	return &ConfirmDelete{name: name}
}

func (c *ConfirmDelete) Enter(ctx *scene.Context) {
	c.ctx = ctx
	c.pending = scene.Continue()
	c.build(menuSpec{
		title: "Delete " + c.name + "?",
		lines: []menuLine{{text: "Bindings and volumes will be lost."}},
		items: []menuItem{
			{"Yes", c.confirm},
			{"No", func() { c.choose(scene.Pop()) }},
		},
	})
}

func (c *ConfirmDelete) confirm() {
	deleteProfile(c.ctx, c.name)
	c.choose(scene.Pop())
}

// deleteProfile removes the named profile. The active profile falls back to
// defaults so it is not written back on the next save.
func deleteProfile(ctx *scene.Context, name string) {
	if err := ctx.Profiles.Delete(name); err != nil {
		ctx.Log.Warn("delete profile", zap.String("profile", name), zap.Error(err))
		return
	}
	if ctx.Profile != nil && ctx.Profile.Name == name {
		ctx.SetProfile(profile.Default(name))
	}
}

func (c *ConfirmDelete) Input(ev input.Event) scene.Command {
	if cmd := c.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	if ev.IsKeyDown(ebiten.KeyEscape) {
		return scene.Pop()
	}
	return scene.Continue()
}
