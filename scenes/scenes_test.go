package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/prefabs"
	"github.com/milk9111/worldsaround/profile"
	"github.com/milk9111/worldsaround/scene"
	"github.com/milk9111/worldsaround/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func keyDown(k ebiten.Key) input.Event { return input.Event{Type: input.KeyDown, Key: k} }
func keyUp(k ebiten.Key) input.Event   { return input.Event{Type: input.KeyUp, Key: k} }

func newContext(t *testing.T) *scene.Context {
	return &scene.Context{
		Log:      zaptest.NewLogger(t),
		Profile:  profile.Default("profile1"),
		Tunables: prefabs.DefaultTunables(),
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{61_000, "1:01"},
		{600_500, "10:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTime(tt.ms), "%d ms", tt.ms)
	}
}

func TestLivesPopsAfterDelay(t *testing.T) {
	ctx := newContext(t)
	ctx.Tunables.LivesDelay = 100
	l := NewLives()
	l.Enter(ctx)

	l.Update(50)
	assert.Empty(t, ctx.Drain())

	l.Update(60)
	events := ctx.Drain()
	require.Len(t, events, 1)
	assert.True(t, events[0].IsUser(livesDone))

	l.Update(500)
	assert.Empty(t, ctx.Drain(), "posts only once")

	assert.Equal(t, scene.KindPop, l.Input(events[0]).Kind())
	assert.Equal(t, scene.KindContinue, l.Input(input.Event{Type: input.User, Name: "other"}).Kind())
	assert.Equal(t, scene.KindPop, l.Input(keyDown(ebiten.KeySpace)).Kind())
}

func TestLevelTracksHeldKey(t *testing.T) {
	l := NewLevel()

	l.Input(keyDown(ebiten.KeyA))
	assert.Equal(t, ebiten.KeyA, l.key)
	assert.True(t, l.held)

	l.Input(keyDown(ebiten.KeyD))
	l.Input(keyUp(ebiten.KeyA))
	assert.Equal(t, ebiten.KeyD, l.key)
	assert.True(t, l.held, "releasing an older key keeps the newest held")

	l.Input(keyUp(ebiten.KeyD))
	assert.False(t, l.held)
}

func TestLevelPauses(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP} {
		cmd := NewLevel().Input(keyDown(k))
		require.Equal(t, scene.KindPush, cmd.Kind(), "%s", k)
		assert.IsType(t, &PauseMenu{}, cmd.Scene())
	}
}

func TestLevelLeaveWaitsForInput(t *testing.T) {
	ctx := newContext(t)
	l := NewLevel()
	l.ctx = ctx

	l.leave(scene.Push(NewGameOver("Out of time")))
	events := ctx.Drain()
	require.Len(t, events, 1)

	cmd := l.Input(events[0])
	assert.Equal(t, scene.KindPush, cmd.Kind())
	assert.IsType(t, &GameOver{}, cmd.Scene())
	assert.Equal(t, scene.KindContinue, l.Input(events[0]).Kind(), "a command is returned once")
}

func TestLevelKeepsCommandAcrossPause(t *testing.T) {
	ctx := newContext(t)
	ctx.Lives = 1
	l := NewLevel()
	l.ctx = ctx
	l.m = &tilemap.TileMap{}

	l.leave(scene.Push(NewGameOver("Out of lives")))
	cmd := l.Input(keyDown(ebiten.KeyEscape))
	require.IsType(t, &PauseMenu{}, cmd.Scene())
	ctx.Drain() // the pause menu is on top when the wake-up arrives

	l.Update(16)
	assert.Equal(t, 1, ctx.Lives)
	assert.Zero(t, l.elapsed, "level holds still while a command is queued")

	l.Enter(ctx)
	events := ctx.Drain()
	require.Len(t, events, 1)
	cmd = l.Input(events[0])
	assert.Equal(t, scene.KindPush, cmd.Kind())
	assert.IsType(t, &GameOver{}, cmd.Scene())

	l.Enter(ctx)
	assert.Empty(t, ctx.Drain(), "nothing left to hand over")
}

func TestSettingsItemsBindTheirAction(t *testing.T) {
	for i, a := range profile.Actions() {
		t.Run(a.Label(), func(t *testing.T) {
			s := NewSettings()
			s.ctx = newContext(t)
			s.items()[i].onClick()
			assert.True(t, s.waiting)
			assert.Equal(t, a, s.action)
		})
	}
}

func TestProfilesItemsBindTheirSlot(t *testing.T) {
	for i, name := range profile.Slots {
		t.Run(name, func(t *testing.T) {
			p := NewProfiles()
			p.ctx = newContext(t)
			p.ctx.Profiles = profile.NewStore(t.TempDir())
			// slot and delete buttons alternate
			p.items()[2*i+1].onClick()
			events := p.ctx.Drain()
			require.Len(t, events, 1)
			cmd := p.Input(events[0])
			require.Equal(t, scene.KindPush, cmd.Kind())
			confirm, ok := cmd.Scene().(*ConfirmDelete)
			require.True(t, ok)
			assert.Equal(t, name, confirm.name)
		})
	}
}

func TestSettingsRebind(t *testing.T) {
	ctx := newContext(t)
	s := NewSettings()
	s.ctx = ctx
	controls := &ctx.Profile.Controls

	s.listen(profile.Jump)
	assert.Equal(t, scene.KindContinue, s.Input(keyDown(ebiten.KeyJ)).Kind())
	assert.Equal(t, ebiten.KeyJ, controls.Key(profile.Jump))
	assert.False(t, s.waiting)

	s.listen(profile.Left)
	s.Input(keyDown(controls.Key(profile.Right)))
	assert.Equal(t, ebiten.KeyA, controls.Key(profile.Left), "key in use is rejected")
	assert.Equal(t, errorText, s.message.color)

	s.listen(profile.Left)
	assert.Equal(t, scene.KindContinue, s.Input(keyDown(ebiten.KeyEscape)).Kind(), "escape cancels listening")
	assert.Equal(t, ebiten.KeyA, controls.Key(profile.Left))

	assert.Equal(t, scene.KindPop, s.Input(keyDown(ebiten.KeyEscape)).Kind())
}

func TestSettingsVolumes(t *testing.T) {
	ctx := newContext(t)
	s := NewSettings()
	s.ctx = ctx

	s.setMusic(1.3)
	assert.Equal(t, 1.0, ctx.Profile.Music)
	s.setSfx(-0.2)
	assert.Equal(t, 0.0, ctx.Profile.Sfx)
	assert.Equal(t, 100, percent(ctx.Profile.Music))
	assert.Equal(t, 50, percent(0.499999))

	ctx.Profile.Controls.Left = ebiten.KeyQ
	s.reset()
	assert.Equal(t, profile.DefaultControls(), ctx.Profile.Controls)
}

func TestProfileSlots(t *testing.T) {
	ctx := newContext(t)
	ctx.Profiles = profile.NewStore(t.TempDir())

	assert.Equal(t, "* profile1 (new)", slotLabel(ctx, "profile1"))
	assert.Equal(t, "profile2 (new)", slotLabel(ctx, "profile2"))

	ctx.Profile.SetMusic(0.9)
	ctx.SaveProfile()
	assert.Equal(t, "* profile1", slotLabel(ctx, "profile1"))

	deleteProfile(ctx, "profile1")
	assert.False(t, ctx.Profiles.Exists("profile1"))
	assert.Equal(t, 0.5, ctx.Profile.Music, "active profile falls back to defaults")
	assert.Equal(t, "profile1", ctx.Profile.Name)
}
