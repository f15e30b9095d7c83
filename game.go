package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/common"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/prefabs"
	"github.com/milk9111/worldsaround/scene"
	"go.uber.org/zap"
)

// Game adapts the scene director to ebiten's game loop. Each frame hands
// the polled and posted events to the current scene, then updates it once.
type Game struct {
	ctx      *scene.Context
	director *scene.Director
	watcher  *prefabs.Watcher

	events []input.Event
	frames int
}

func NewGame(ctx *scene.Context, first scene.Scene, watcher *prefabs.Watcher) *Game {
	d := scene.NewDirector(ctx)
	d.Push(first)
	return &Game{
		ctx:      ctx,
		director: d,
		watcher:  watcher,
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		if files, ok := g.watcher.Changed(); ok {
			g.ctx.Log.Info("content changed", zap.Strings("files", files))
			g.ctx.ContentChanged = true
		}
	}

	g.events = input.Poll(g.events[:0])
	g.events = append(g.events, g.ctx.Drain()...)
	for _, ev := range g.events {
		if g.director.Done() {
			break
		}
		if err := g.director.Input(ev); err != nil {
			return err
		}
	}
	if g.director.Done() {
		return ebiten.Termination
	}

	g.director.Update(1000 / ebiten.TPS())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clearColor())
	g.director.Draw(screen)
}

func (g *Game) clearColor() color.Color {
	if c := g.ctx.Tunables.ClearColor; c != nil && c.Color != nil {
		return c.Color
	}
	return color.Black
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// run drives the game and treats a normal shutdown as success.
func run(g *Game) error {
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
