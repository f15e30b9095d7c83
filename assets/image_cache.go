package assets

import (
	"fmt"
	"image/color"

	"github.com/cespare/xxhash/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

// TextureID is a handle into an ImageCache.
type TextureID int

// NoTexture is the handle of an entity without a sprite image.
const NoTexture TextureID = -1

// ImageLoader turns an asset path into an image.
type ImageLoader func(path string) (*ebiten.Image, error)

// ImageCache loads each image path once and hands out stable integer
// handles. Handles are assigned in load order starting at 0.
type ImageCache struct {
	load   ImageLoader
	ids    *intmap.Map[uint64, TextureID]
	paths  []string
	images []*ebiten.Image
	keyed  map[TextureID]bool
}

// NewImageCache creates a cache that reads images through load, or through
// LoadImage when load is nil.
func NewImageCache(load ImageLoader) *ImageCache {
	if load == nil {
		load = LoadImage
	}
	return &ImageCache{
		load: load,
		ids:  intmap.New[uint64, TextureID](16),
	}
}

// Load returns the handle for path, loading the image on first use.
func (c *ImageCache) Load(path string) (TextureID, error) {
	if id, ok := c.lookup(path); ok {
		return id, nil
	}
	img, err := c.load(path)
	if err != nil {
		return NoTexture, fmt.Errorf("assets: load image %s: %w", path, err)
	}
	id := TextureID(len(c.images))
	c.images = append(c.images, img)
	c.paths = append(c.paths, path)
	c.ids.Put(xxhash.Sum64String(path), id)
	return id, nil
}

func (c *ImageCache) lookup(path string) (TextureID, bool) {
	id, ok := c.ids.Get(xxhash.Sum64String(path))
	if !ok || c.paths[id] != path {
		return NoTexture, false
	}
	return id, true
}

// Get returns the image behind id.
func (c *ImageCache) Get(id TextureID) (*ebiten.Image, bool) {
	if !c.Has(id) {
		return nil, false
	}
	return c.images[id], true
}

// MustGet returns the image behind id and panics on an unknown handle.
func (c *ImageCache) MustGet(id TextureID) *ebiten.Image {
	img, ok := c.Get(id)
	if !ok {
		panic(fmt.Sprintf("assets: unknown texture %d", id))
	}
	return img
}

// Has reports whether id was handed out by this cache.
func (c *ImageCache) Has(id TextureID) bool {
	return id >= 0 && int(id) < len(c.images)
}

// Path returns the path id was loaded from.
func (c *ImageCache) Path(id TextureID) string {
	if !c.Has(id) {
		return ""
	}
	return c.paths[id]
}

// Len returns the number of loaded images.
func (c *ImageCache) Len() int {
	return len(c.images)
}

// ApplyColorKey makes every pixel of id that matches key transparent. Each
// image is keyed at most once. It must run while the game loop is active.
func (c *ImageCache) ApplyColorKey(id TextureID, key color.Color) error {
	img, ok := c.Get(id)
	if !ok {
		return fmt.Errorf("assets: color key: unknown texture %d", id)
	}
	if key == nil || c.keyed[id] {
		return nil
	}
	kr, kg, kb, _ := key.RGBA()
	b := img.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	img.ReadPixels(pix)
	for i := 0; i < len(pix); i += 4 {
		if uint32(pix[i])*0x101 == kr && uint32(pix[i+1])*0x101 == kg && uint32(pix[i+2])*0x101 == kb {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = 0, 0, 0, 0
		}
	}
	img.WritePixels(pix)
	if c.keyed == nil {
		c.keyed = make(map[TextureID]bool)
	}
	c.keyed[id] = true
	return nil
}
