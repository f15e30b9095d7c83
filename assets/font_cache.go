package assets

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont names the built-in Go Regular typeface.
const DefaultFont = "goregular"

// FontID is a handle into a FontCache.
type FontID int

// FontCache keeps one face per (typeface, size) pair. Typeface sources are
// parsed once and shared between sizes.
type FontCache struct {
	ids     map[string]FontID
	faces   []text.Face
	sources map[string]*text.GoTextFaceSource
}

func NewFontCache() *FontCache {
	return &FontCache{
		ids:     make(map[string]FontID),
		sources: make(map[string]*text.GoTextFaceSource),
	}
}

// Load returns the handle for the named typeface at size. The default
// typeface is built in; any other name is read from the embedded assets.
func (c *FontCache) Load(name string, size float64) (FontID, error) {
	key := name + "@" + strconv.FormatFloat(size, 'f', -1, 64)
	if id, ok := c.ids[key]; ok {
		return id, nil
	}
	src, err := c.source(name)
	if err != nil {
		return -1, err
	}
	id := FontID(len(c.faces))
	c.faces = append(c.faces, &text.GoTextFace{Source: src, Size: size})
	c.ids[key] = id
	return id, nil
}

func (c *FontCache) source(name string) (*text.GoTextFaceSource, error) {
	if src, ok := c.sources[name]; ok {
		return src, nil
	}
	var ttf []byte
	if name == DefaultFont {
		ttf = goregular.TTF
	} else {
		b, err := LoadFile(name)
		if err != nil {
			return nil, fmt.Errorf("assets: load font %s: %w", name, err)
		}
		ttf = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("assets: parse font %s: %w", name, err)
	}
	c.sources[name] = src
	return src, nil
}

func (c *FontCache) Get(id FontID) (text.Face, bool) {
	if !c.Has(id) {
		return nil, false
	}
	return c.faces[id], true
}

func (c *FontCache) MustGet(id FontID) text.Face {
	f, ok := c.Get(id)
	if !ok {
		panic(fmt.Sprintf("assets: unknown font %d", id))
	}
	return f
}

func (c *FontCache) Has(id FontID) bool {
	return id >= 0 && int(id) < len(c.faces)
}

// LoadDefault returns the built-in typeface at size.
func (c *FontCache) LoadDefault(size float64) (FontID, error) {
	return c.Load(DefaultFont, size)
}
