package scenes

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/profile"
	"github.com/milk9111/worldsaround/scene"
)

const volumeStep = 0.1

// Settings edits the active profile: key bindings and volumes. The profile
// is saved when the scene is left.
type Settings struct {
	menu
	waiting bool
	action  profile.Action
	message menuLine
	dirty   bool
}

func NewSettings() *Settings {
	return &Settings{}
}

func (s *Settings) Enter(ctx *scene.Context) {
	s.ctx = ctx
	s.pending = scene.Continue()
	s.waiting = false
	s.message = menuLine{}
	s.rebuild()
}

func (s *Settings) Exit() {
	s.ctx.SaveProfile()
}

func (s *Settings) rebuild() {
	var lines []menuLine
	if s.message.text != "" {
		lines = append(lines, s.message)
	}
	s.build(menuSpec{
		title:   "Settings",
		lines:   lines,
		items:   s.items(),
		columns: 2,
	})
}

func (s *Settings) items() []menuItem {
	p := s.ctx.Profile
	var items []menuItem
	for _, a := range profile.Actions() {
		items = append(items, menuItem{
			label:   fmt.Sprintf("%s: %s", a.Label(), profile.KeyName(p.Controls.Key(a))),
			onClick: func() { s.listen(a) },
		})
	}
	items = append(items,
		menuItem{fmt.Sprintf("Music - (%d%%)", percent(p.Music)), func() { s.setMusic(p.Music - volumeStep) }},
		menuItem{fmt.Sprintf("Music + (%d%%)", percent(p.Music)), func() { s.setMusic(p.Music + volumeStep) }},
		menuItem{fmt.Sprintf("Sfx - (%d%%)", percent(p.Sfx)), func() { s.setSfx(p.Sfx - volumeStep) }},
		menuItem{fmt.Sprintf("Sfx + (%d%%)", percent(p.Sfx)), func() { s.setSfx(p.Sfx + volumeStep) }},
		menuItem{"Reset defaults", s.reset},
		menuItem{"Back", func() { s.choose(scene.Pop()) }},
	)
	return items
}

func (s *Settings) listen(a profile.Action) {
	s.waiting = true
	s.action = a
	s.message = menuLine{text: fmt.Sprintf("Press a key for %s (Esc cancels)", a.Label())}
	s.dirty = true
}

func (s *Settings) setMusic(v float64) {
	s.ctx.Profile.SetMusic(v)
	s.ctx.Music.SetVolume(s.ctx.Profile.Music)
	s.ctx.Music.SetEnabled(s.ctx.Profile.Music > 0)
	s.dirty = true
}

func (s *Settings) setSfx(v float64) {
	s.ctx.Profile.SetSfx(v)
	s.dirty = true
}

func (s *Settings) reset() {
	s.ctx.Profile.Controls = profile.DefaultControls()
	s.message = menuLine{text: "Controls reset"}
	s.dirty = true
}

func (s *Settings) Input(ev input.Event) scene.Command {
	if cmd := s.take(); cmd.Kind() != scene.KindContinue {
		return cmd
	}
	if ev.Type != input.KeyDown {
		return scene.Continue()
	}
	if !s.waiting {
		if ev.Key == ebiten.KeyEscape {
			return scene.Pop()
		}
		return scene.Continue()
	}

	s.waiting = false
	s.dirty = true
	if ev.Key == ebiten.KeyEscape {
		s.message = menuLine{}
		return scene.Continue()
	}
	err := s.ctx.Profile.Controls.Set(s.action, ev.Key)
	switch {
	case errors.Is(err, profile.ErrKeyInUse):
		owner, _ := s.ctx.Profile.Controls.ActionFor(ev.Key)
		s.message = menuLine{text: fmt.Sprintf("%s is already used by %s", profile.KeyName(ev.Key), owner.Label()), color: errorText}
	case err != nil:
		s.message = menuLine{text: err.Error(), color: errorText}
	default:
		s.message = menuLine{text: fmt.Sprintf("%s bound to %s", s.action.Label(), profile.KeyName(ev.Key))}
	}
	return scene.Continue()
}

func (s *Settings) Update(dt int) {
	s.menu.Update(dt)
	if s.dirty {
		s.dirty = false
		s.rebuild()
	}
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}
