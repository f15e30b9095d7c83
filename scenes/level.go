package scenes

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/worldsaround/camera"
	"github.com/milk9111/worldsaround/common"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
	"github.com/milk9111/worldsaround/ecs/system"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/levels"
	"github.com/milk9111/worldsaround/prefabs"
	"github.com/milk9111/worldsaround/scene"
	"github.com/milk9111/worldsaround/tilemap"
	"go.uber.org/zap"
)

const (
	// levelEvent wakes the level so it can return a queued command.
	levelEvent = "level"
	// cameraEase is the share of the distance to the player the camera
	// covers each frame.
	cameraEase = 0.15
)

// Level plays one tile map. It keeps its state across pushed menus and only
// reloads when a run restarts or its content changes on disk.
type Level struct {
	ctx     *scene.Context
	m       *tilemap.TileMap
	elapsed int

	key  ebiten.Key
	held bool

	pending scene.Command
}

func NewLevel() *Level {
	return &Level{}
}

func (l *Level) Enter(ctx *scene.Context) {
	l.ctx = ctx
	if l.m != nil && !ctx.Restart {
		// A menu pushed in the same frame may have consumed the wake-up.
		if l.pending.Kind() != scene.KindContinue {
			ctx.Post(input.Event{Type: input.User, Name: levelEvent})
		}
		return
	}
	ctx.Restart = false
	l.elapsed = 0
	if err := l.load(); err != nil {
		ctx.Log.Error("load level", zap.String("level", ctx.LevelName), zap.Error(err))
		l.leave(scene.Pop())
		return
	}
	l.leave(scene.Push(NewLives()))
}

func (l *Level) Exit() {
	l.held = false
}

func (l *Level) load() error {
	name := l.ctx.LevelName
	if name == "" {
		name = levels.Default
	}
	m, err := tilemap.Load(l.ctx.Levels, name, l.ctx.Images, levels.ParseProperty)
	if err != nil {
		return err
	}
	if m.Tileset.ColorKey != nil {
		if err := l.ctx.Images.ApplyColorKey(m.Tileset.Image, m.Tileset.ColorKey); err != nil {
			return fmt.Errorf("colorkey: %w", err)
		}
	}
	tw, th := m.TileSize()
	l.ctx.Camera.SetWorld(float64(m.Width()*tw), float64(m.Height()*th))
	l.m = m
	if p, ok := l.player(); ok {
		x, y := l.center(p)
		l.ctx.Camera.CenterOn(x, y)
	}
	l.ctx.Log.Debug("level loaded",
		zap.String("level", m.Name),
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Int("objects", m.Objects.Len()),
		zap.String("tileset", l.ctx.Images.Path(m.Tileset.Image)),
		zap.Int("textures", l.ctx.Images.Len()),
	)
	return nil
}

// reload picks up edited tunables and level files.
func (l *Level) reload() {
	if t, err := prefabs.LoadTunables(); err != nil {
		l.ctx.Log.Warn("reload tunables", zap.Error(err))
	} else {
		l.ctx.Tunables = t
	}
	old := l.m
	if err := l.load(); err != nil {
		l.ctx.Log.Warn("reload level", zap.Error(err))
		l.m = old
	}
}

func (l *Level) Input(ev input.Event) scene.Command {
	if ev.IsUser(levelEvent) {
		cmd := l.pending
		l.pending = scene.Continue()
		return cmd
	}
	switch ev.Type {
	case input.KeyDown:
		if ev.Key == ebiten.KeyEscape || ev.Key == ebiten.KeyP {
			return scene.Push(NewPauseMenu())
		}
		l.key, l.held = ev.Key, true
	case input.KeyUp:
		if ev.Key == l.key {
			l.held = false
		}
	}
	return scene.Continue()
}

func (l *Level) Update(dt int) {
	// The level holds still until a queued command has been handed over.
	if l.m == nil || l.pending.Kind() != scene.KindContinue {
		return
	}
	if l.ctx.ContentChanged {
		l.ctx.ContentChanged = false
		l.reload()
	}

	t := l.ctx.Tunables
	l.elapsed += dt
	if l.elapsed/1000 >= t.TimeLimit {
		l.leave(scene.Push(NewGameOver("Out of time")))
		return
	}

	objs := l.m.Objects
	system.Player(objs, dt, system.PlayerInput{Key: l.key, Held: l.held, Controls: l.ctx.Profile.Controls}, t.PlayerParams())
	system.Gravity(objs, t.Gravity)
	system.Physics(objs, dt, system.PhysicsParams{Grid: l.m, Friction: t.Friction})
	system.Enemies(objs, dt)
	system.Behaviors(objs, dt, system.BehaviorParams{Scripts: l.ctx.Scripts, Log: l.ctx.Log})
	system.Animation(objs, dt)

	tw, th := l.m.TileSize()
	if enemy, hit := system.PlayerHits(objs, tw, th); hit {
		l.hit(enemy)
		return
	}

	p, ok := l.player()
	if !ok {
		return
	}
	if bb, ok := system.Footprint(p, tw, th); ok && bb.R >= float64(l.m.Width()) {
		l.ctx.Log.Info("level complete", zap.Int("elapsed_ms", l.elapsed))
		l.leave(scene.Push(NewCongrats(l.elapsed)))
		return
	}
	x, y := l.center(p)
	l.ctx.Camera.Follow(x, y, cameraEase)
}

func (l *Level) hit(enemy *ecs.Entity) {
	l.ctx.Lives--
	l.ctx.Log.Info("player hit", zap.Stringer("enemy", enemy), zap.Int("lives", l.ctx.Lives))
	if l.ctx.Lives <= 0 {
		l.leave(scene.Push(NewGameOver("Out of lives")))
		return
	}
	l.held = false
	if err := l.load(); err != nil {
		l.ctx.Log.Error("reload level", zap.Error(err))
		l.leave(scene.Pop())
		return
	}
	l.leave(scene.Push(NewLives()))
}

// leave queues cmd for the next input pass.
func (l *Level) leave(cmd scene.Command) {
	l.pending = cmd
	l.ctx.Post(input.Event{Type: input.User, Name: levelEvent})
}

func (l *Level) player() (*ecs.Entity, bool) {
	return l.m.Objects.First(ecs.KindPlayer, ecs.KindPosition)
}

// center returns the middle of e in world pixels.
func (l *Level) center(e *ecs.Entity) (float64, float64) {
	tw, th := l.m.TileSize()
	bb, _ := system.Footprint(e, tw, th)
	return (bb.L + bb.R) / 2 * float64(tw), (bb.B + bb.T) / 2 * float64(th)
}

func (l *Level) Draw(screen *ebiten.Image) {
	if l.m == nil {
		return
	}
	cam := l.ctx.Camera
	tw, th := l.m.TileSize()

	if bg, ok := l.ctx.Images.Get(l.m.Background); ok {
		op := &ebiten.DrawImageOptions{}
		b := bg.Bounds()
		op.GeoM.Scale(float64(common.BaseWidth)/float64(b.Dx()), float64(common.BaseHeight)/float64(b.Dy()))
		dim := float32(1 - l.ctx.Tunables.BackgroundDim)
		op.ColorScale.Scale(dim, dim, dim, 1)
		screen.DrawImage(bg, op)
	}

	if tiles, ok := l.ctx.Images.Get(l.m.Tileset.Image); ok {
		for y := range l.m.Height() {
			for x := range l.m.Width() {
				id := l.m.TileAt(x, y)
				if id == tilemap.NullTile {
					continue
				}
				src, ok := l.m.Tileset.Source(id)
				if !ok {
					continue
				}
				dst := image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th)
				cam.Render(screen, tiles, dst, src, nil)
			}
		}
	}

	ecs.ForEach3(l.m.Objects, func(_ *ecs.Entity, pos *component.Position, size *component.Size, sprite *component.Sprite) {
		img, ok := l.ctx.Images.Get(sprite.Image)
		if !ok {
			return
		}
		px, py := int(pos.X*float64(tw)), int(pos.Y*float64(th))
		dst := image.Rect(px, py, px+size.W, py+size.H)
		cam.Render(screen, img, dst, sprite.Rect, &camera.DrawOptions{Flip: sprite.Flip})
	})

	l.drawHUD(screen)
}

func (l *Level) drawHUD(screen *ebiten.Image) {
	a := l.ctx.Assets
	face := a.Font(a.Small)
	left := max(0, l.ctx.Tunables.TimeLimit-l.elapsed/1000)

	hud := func(s string, x, y float64, align text.Align) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.PrimaryAlign = align
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, s, face, op)
	}
	hud(fmt.Sprintf("TIME %03d", left), 8, 6, text.AlignStart)
	hud(fmt.Sprintf("LIVES %d", l.ctx.Lives), float64(common.BaseWidth)/2, 6, text.AlignCenter)
	if p, ok := l.player(); ok {
		if active, ok := ecs.Get[*component.Active](p); ok {
			name := "JUMP"
			if active.Powerup == ecs.KindPowerupSpeed {
				name = "SPEED"
			}
			remaining := time.Duration(active.Remaining) * time.Millisecond
			hud(fmt.Sprintf("%s %.1fs", name, remaining.Seconds()), float64(common.BaseWidth)-8, 6, text.AlignEnd)
		}
	}

	if l.ctx.Debug {
		msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f  objects %d  textures %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), l.m.Objects.Len(), l.ctx.Images.Len())
		if p, ok := l.player(); ok {
			pos := ecs.MustGet[*component.Position](p)
			vel, _ := ecs.Get[*component.Velocity](p)
			msg += fmt.Sprintf("\npos %.2f,%.2f", pos.X, pos.Y)
			if vel != nil {
				msg += fmt.Sprintf("  vel %.2f,%.2f", vel.X, vel.Y)
			}
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, common.BaseHeight-40)
	}
}
