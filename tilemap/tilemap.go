package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path"
	"slices"

	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
)

// TileID identifies a tile in a tileset.
type TileID int

// NullTile is the empty tile. Every other id is solid.
const NullTile TileID = 0

type Tile struct {
	Offset     image.Point
	Properties map[string]any
}

type Tileset struct {
	Name  string
	Image assets.TextureID
	TileW int
	TileH int
	// ColorKey is the colour drawn as transparent, or nil.
	ColorKey color.Color
	Tiles    map[TileID]Tile
}

// Source returns the rectangle of id inside the tileset image.
func (ts *Tileset) Source(id TileID) (image.Rectangle, bool) {
	t, ok := ts.Tiles[id]
	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(t.Offset.X, t.Offset.Y, t.Offset.X+ts.TileW, t.Offset.Y+ts.TileH), true
}

// TileMap is a loaded level: a grid of tile ids and the objects placed on it.
// It is not modified after Load, except for the object components that the
// systems update.
type TileMap struct {
	Name       string
	Background assets.TextureID
	Tileset    Tileset
	Tiles      []TileID
	Objects    *ecs.EntityList

	width int
}

// ImageLoader resolves an image path to a texture handle.
type ImageLoader interface {
	Load(path string) (assets.TextureID, error)
}

// PropertyParser turns one object property into a component. A nil component
// means the property is ignored.
type PropertyParser func(key string, value json.RawMessage) (ecs.Component, error)

// DefaultParser tags the object with the property name.
func DefaultParser(key string, _ json.RawMessage) (ecs.Component, error) {
	return &component.Tag{Name: key}, nil
}

func (m *TileMap) Width() int { return m.width }

func (m *TileMap) Height() int {
	if m.width == 0 {
		return 0
	}
	return len(m.Tiles) / m.width
}

func (m *TileMap) TileSize() (int, int) {
	return m.Tileset.TileW, m.Tileset.TileH
}

// TileAt returns the tile at column x, row y. Cells outside the map are
// NullTile.
func (m *TileMap) TileAt(x, y int) TileID {
	if x < 0 || y < 0 || x >= m.width || y >= m.Height() {
		return NullTile
	}
	return m.Tiles[y*m.width+x]
}

func (m *TileMap) Solid(x, y int) bool {
	return m.TileAt(x, y) != NullTile
}

type mapFile struct {
	Name       string       `json:"name"`
	Background string       `json:"background"`
	Width      int          `json:"width"`
	Tileset    string       `json:"tileset"`
	Tiles      []TileID     `json:"tiles"`
	Objects    []objectFile `json:"objects"`
}

type objectFile struct {
	Offset struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"offset"`
	Area       []int                      `json:"area"`
	Image      string                     `json:"image"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type tilesetFile struct {
	Name     string     `json:"name"`
	Image    string     `json:"image"`
	TileSize []int      `json:"tile_size"`
	ColorKey []int      `json:"colorkey"`
	Tiles    []tileFile `json:"tiles"`
}

type tileFile struct {
	TID        TileID         `json:"tid"`
	Offset     []int          `json:"offset"`
	Properties map[string]any `json:"properties"`
}

// Load reads the map file name from fsys, then the tileset it names from the
// same directory. Images are resolved through images and each object property
// through parse; a nil parse uses DefaultParser.
func Load(fsys fs.FS, name string, images ImageLoader, parse PropertyParser) (*TileMap, error) {
	if parse == nil {
		parse = DefaultParser
	}

	var mf mapFile
	if err := readJSON(fsys, name, &mf); err != nil {
		return nil, fmt.Errorf("tilemap: %w", err)
	}
	if mf.Width <= 0 {
		return nil, fmt.Errorf("tilemap: %s: width must be positive, got %d", name, mf.Width)
	}
	if len(mf.Tiles)%mf.Width != 0 {
		return nil, fmt.Errorf("tilemap: %s: %d tiles do not fill rows of %d", name, len(mf.Tiles), mf.Width)
	}
	if mf.Tileset == "" {
		return nil, fmt.Errorf("tilemap: %s: no tileset", name)
	}

	ts, err := loadTileset(fsys, path.Join(path.Dir(name), mf.Tileset), images)
	if err != nil {
		return nil, fmt.Errorf("tilemap: %s: %w", name, err)
	}

	m := &TileMap{
		Name:       mf.Name,
		Background: assets.NoTexture,
		Tileset:    *ts,
		Tiles:      mf.Tiles,
		Objects:    ecs.NewEntityList(),
		width:      mf.Width,
	}
	if m.Tiles == nil {
		m.Tiles = []TileID{}
	}

	if mf.Background != "" {
		if m.Background, err = images.Load(mf.Background); err != nil {
			return nil, fmt.Errorf("tilemap: %s: background: %w", name, err)
		}
	}

	for i, obj := range mf.Objects {
		e, err := buildObject(obj, images, parse)
		if err != nil {
			return nil, fmt.Errorf("tilemap: %s: object %d: %w", name, i, err)
		}
		m.Objects.Add(e)
	}
	return m, nil
}

func loadTileset(fsys fs.FS, name string, images ImageLoader) (*Tileset, error) {
	var tf tilesetFile
	if err := readJSON(fsys, name, &tf); err != nil {
		return nil, err
	}
	if len(tf.TileSize) != 2 || tf.TileSize[0] <= 0 || tf.TileSize[1] <= 0 {
		return nil, fmt.Errorf("tileset %s: tile_size must be two positive numbers, got %v", name, tf.TileSize)
	}

	ts := &Tileset{
		Name:  tf.Name,
		Image: assets.NoTexture,
		TileW: tf.TileSize[0],
		TileH: tf.TileSize[1],
		Tiles: make(map[TileID]Tile, len(tf.Tiles)),
	}
	switch len(tf.ColorKey) {
	case 0:
	case 3:
		var rgb [3]uint8
		for i, v := range tf.ColorKey {
			if v < 0 || v > 0xff {
				return nil, fmt.Errorf("tileset %s: colorkey component %d out of range", name, v)
			}
			rgb[i] = uint8(v)
		}
		ts.ColorKey = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	default:
		return nil, fmt.Errorf("tileset %s: colorkey must be [r, g, b], got %v", name, tf.ColorKey)
	}

	for _, t := range tf.Tiles {
		if len(t.Offset) != 2 {
			return nil, fmt.Errorf("tileset %s: tile %d: offset must be [x, y]", name, t.TID)
		}
		if _, dup := ts.Tiles[t.TID]; dup {
			return nil, fmt.Errorf("tileset %s: duplicate tile %d", name, t.TID)
		}
		props := t.Properties
		if props == nil {
			props = map[string]any{}
		}
		ts.Tiles[t.TID] = Tile{Offset: image.Pt(t.Offset[0], t.Offset[1]), Properties: props}
	}

	if tf.Image != "" {
		id, err := images.Load(tf.Image)
		if err != nil {
			return nil, fmt.Errorf("tileset %s: %w", name, err)
		}
		ts.Image = id
	}
	return ts, nil
}

func buildObject(obj objectFile, images ImageLoader, parse PropertyParser) (*ecs.Entity, error) {
	if len(obj.Area) != 4 {
		return nil, errors.New("area must be [col, row, w, h]")
	}
	col, row, w, h := obj.Area[0], obj.Area[1], obj.Area[2], obj.Area[3]

	sprite := &component.Sprite{
		Image: assets.NoTexture,
		Rect:  image.Rect(col*w, row*h, col*w+w, row*h+h),
	}
	if obj.Image != "" {
		id, err := images.Load(obj.Image)
		if err != nil {
			return nil, err
		}
		sprite.Image = id
	}

	e := ecs.NewEntity(
		&component.Position{X: obj.Offset.X, Y: obj.Offset.Y},
		&component.Size{W: w, H: h},
		sprite,
	)

	keys := make([]string, 0, len(obj.Properties))
	for k := range obj.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		c, err := parse(k, obj.Properties[k])
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", k, err)
		}
		e.Add(c)
	}
	return e, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
