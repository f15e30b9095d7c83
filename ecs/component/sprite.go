package component

import (
	"image"

	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/ecs"
)

type Sprite struct {
	Image assets.TextureID
	// Rect is the source rectangle inside Image.
	Rect image.Rectangle
	Flip bool
}

func (*Sprite) Kind() ecs.Kind { return ecs.KindSprite }
