package assets

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Paths of the images and sounds the game ships with.
const (
	TilesetImage    = "images/tileset.png"
	PlayerImage     = "images/player.png"
	EnemyImage      = "images/enemy.png"
	BackgroundImage = "images/background.png"
	MusicIconImage  = "images/music.png"
	SoundsIconImage = "images/sounds.png"
	ItemsImage      = "images/items.png"
	ThemeMusic      = "audio/theme.wav"
)

// FailedToLoadAssetError reports an asset the game cannot start without.
type FailedToLoadAssetError struct {
	Asset string
	Err   error
}

func (e *FailedToLoadAssetError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Asset, e.Err)
}

func (e *FailedToLoadAssetError) Unwrap() error { return e.Err }

// Assets holds the handles shared by every scene.
type Assets struct {
	Images *ImageCache
	Fonts  *FontCache

	Background TextureID
	MusicIcon  TextureID
	SoundsIcon TextureID
	Items      TextureID

	Small  FontID
	Medium FontID
	Large  FontID
	Huge   FontID

	// Debug is a fixed-size bitmap face for overlays.
	Debug text.Face
}

// Load resolves every shared asset through images and fonts.
func Load(images *ImageCache, fonts *FontCache) (*Assets, error) {
	a := &Assets{
		Images: images,
		Fonts:  fonts,
		Debug:  text.NewGoXFace(basicfont.Face7x13),
	}

	for _, img := range []struct {
		path string
		dst  *TextureID
	}{
		{BackgroundImage, &a.Background},
		{MusicIconImage, &a.MusicIcon},
		{SoundsIconImage, &a.SoundsIcon},
		{ItemsImage, &a.Items},
	} {
		id, err := images.Load(img.path)
		if err != nil {
			return nil, &FailedToLoadAssetError{Asset: img.path, Err: err}
		}
		*img.dst = id
	}

	for _, f := range []struct {
		size float64
		dst  *FontID
	}{
		{12, &a.Small},
		{18, &a.Medium},
		{28, &a.Large},
		{40, &a.Huge},
	} {
		id, err := fonts.Load(DefaultFont, f.size)
		if err != nil {
			return nil, &FailedToLoadAssetError{Asset: DefaultFont, Err: err}
		}
		*f.dst = id
	}
	return a, nil
}

// Image returns the image behind id, or nil.
func (a *Assets) Image(id TextureID) *ebiten.Image {
	img, _ := a.Images.Get(id)
	return img
}

// Font returns the face behind id.
func (a *Assets) Font(id FontID) text.Face {
	return a.Fonts.MustGet(id)
}
