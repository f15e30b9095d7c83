package scenes

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/common"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/scene"
)

const livesDone = "lives_done"

// Lives shows the remaining lives for a moment before play resumes. Any key
// skips it.
type Lives struct {
	scene.Base
	ctx     *scene.Context
	elapsed int
	posted  bool
}

func NewLives() *Lives {
	return &Lives{}
}

func (l *Lives) Enter(ctx *scene.Context) {
	l.ctx = ctx
	l.elapsed = 0
	l.posted = false
}

func (l *Lives) Input(ev input.Event) scene.Command {
	if ev.IsUser(livesDone) || ev.Type == input.KeyDown {
		return scene.Pop()
	}
	return scene.Continue()
}

func (l *Lives) Update(dt int) {
	l.elapsed += dt
	if !l.posted && l.elapsed >= l.ctx.Tunables.LivesDelay {
		l.posted = true
		l.ctx.Post(input.Event{Type: input.User, Name: livesDone})
	}
}

func (l *Lives) Draw(screen *ebiten.Image) {
	a := l.ctx.Assets
	cx, cy := float64(common.BaseWidth)/2, float64(common.BaseHeight)/2

	if icon, ok := l.ctx.Images.Get(texture(l.ctx, assets.PlayerImage)); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(4, 4)
		op.GeoM.Translate(cx-80, cy-32)
		screen.DrawImage(icon.SubImage(image.Rect(0, 0, 16, 16)).(*ebiten.Image), op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, fmt.Sprintf("x %d", l.ctx.Lives), a.Font(a.Huge), op)
}

// texture returns the handle of an image that is part of the shipped
// assets, or NoTexture if it failed to load.
func texture(ctx *scene.Context, path string) assets.TextureID {
	id, err := ctx.Images.Load(path)
	if err != nil {
		return assets.NoTexture
	}
	return id
}
