package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/profile"
	"github.com/milk9111/worldsaround/scene"
	"go.uber.org/zap"
)

// Profiles lists the save slots. Selecting one makes it active, creating it
// on first save.
type Profiles struct {
	menu
	message menuLine
	dirty   bool
}

func NewProfiles() *Profiles {
	return &Profiles{}
}

func (p *Profiles) Enter(ctx *scene.Context) {
	p.ctx = ctx
	p.pending = scene.Continue()
	p.message = menuLine{}
	p.rebuild()
}

func (p *Profiles) rebuild() {
	var lines []menuLine
	if p.message.text != "" {
		lines = append(lines, p.message)
	}
	p.build(menuSpec{
		title:   "Profiles",
		lines:   lines,
		items:   p.items(),
		columns: 2,
	})
}

func (p *Profiles) items() []menuItem {
	var items []menuItem
	for _, name := range profile.Slots {
		items = append(items,
			menuItem{slotLabel(p.ctx, name), func() { p.selectSlot(name) }},
			menuItem{"Delete", func() { p.choose(scene.Push(NewConfirmDelete(name))) }},
		)
	}
	items = append(items, menuItem{"Back", func() { p.choose(scene.Pop()) }})
	return items
}

func slotLabel(ctx *scene.Context, name string) string {
	label := name
	if ctx.Profile != nil && ctx.Profile.Name == name {
		label = "* " + label
	}
	if ctx.Profiles != nil && !ctx.Profiles.Exists(name) {
		label += " (new)"
	}
	return label
}

func (p *Profiles) selectSlot(name string) {
	p.dirty = true
	if p.ctx.Profile != nil && p.ctx.Profile.Name == name {
		return
	}
	p.ctx.SaveProfile()
	next, err := p.ctx.Profiles.Load(name)
	if err != nil {
		p.ctx.Log.Warn("load profile", zap.String("profile", name), zap.Error(err))
		p.message = menuLine{text: "Could not load " + name, color: errorText}
		return
	}
	p.ctx.SetProfile(next)
	p.ctx.SaveProfile()
	p.message = menuLine{text: "Playing as " + name}
}

func (p *Profiles) Input(ev input.Event) scene.Command {
	if cmd := p.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	if ev.IsKeyDown(ebiten.KeyEscape) {
		return scene.Pop()
	}
	return scene.Continue()
}

func (p *Profiles) Update(dt int) {
	p.menu.Update(dt)
	if p.dirty {
		p.dirty = false
		p.rebuild()
	}
}
