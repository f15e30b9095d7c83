package tilemap_test

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
	"github.com/milk9111/worldsaround/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// images hands out ids in load order and remembers the paths it saw.
type images struct {
	paths []string
	fail  string
}

func (im *images) Load(path string) (assets.TextureID, error) {
	if path == im.fail {
		return assets.NoTexture, errors.New("boom")
	}
	for i, p := range im.paths {
		if p == path {
			return assets.TextureID(i), nil
		}
	}
	im.paths = append(im.paths, path)
	return assets.TextureID(len(im.paths) - 1), nil
}

const tileset = `{
	"name": "ground",
	"image": "images/tileset.png",
	"tile_size": [8, 8],
	"tiles": [
		{"tid": 1, "offset": [0, 0]},
		{"tid": 2, "offset": [8, 0], "properties": {"slippery": true}}
	]
}`

func fsWith(files map[string]string) fstest.MapFS {
	out := fstest.MapFS{}
	for name, data := range files {
		out[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return out
}

func TestLoadGridWithoutObjects(t *testing.T) {
	fsys := fsWith(map[string]string{
		"maps/tiny.json":    `{"name": "tiny", "width": 2, "tileset": "tileset.json", "tiles": [1, 1, 1, 1], "objects": []}`,
		"maps/tileset.json": tileset,
	})

	m, err := tilemap.Load(fsys, "maps/tiny.json", &images{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "tiny", m.Name)
	assert.Len(t, m.Tiles, 4)
	for _, id := range m.Tiles {
		assert.Equal(t, tilemap.TileID(1), id)
	}
	assert.Equal(t, 0, m.Objects.Len())
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, assets.NoTexture, m.Background)
	assert.Equal(t, assets.TextureID(0), m.Tileset.Image)
	assert.Nil(t, m.Tileset.ColorKey)
}

func TestLoadObjects(t *testing.T) {
	fsys := fsWith(map[string]string{
		"level.json": `{
			"name": "one",
			"background": "images/background.png",
			"width": 3,
			"tileset": "tileset.json",
			"tiles": [0, 0, 0, 2, 2, 2],
			"objects": [
				{"offset": {"x": 1.5, "y": 0}, "area": [1, 2, 16, 16], "image": "images/player.png",
				 "properties": {"type": "player", "name": "hero"}}
			]
		}`,
		"tileset.json": tileset,
	})
	im := &images{}

	m, err := tilemap.Load(fsys, "level.json", im, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"images/tileset.png", "images/background.png", "images/player.png"}, im.paths)
	assert.Equal(t, assets.TextureID(1), m.Background)
	require.Equal(t, 1, m.Objects.Len())

	e := m.Objects.Entities()[0]
	pos := ecs.MustGet[*component.Position](e)
	assert.Equal(t, 1.5, pos.X)
	assert.Equal(t, component.Size{W: 16, H: 16}, *ecs.MustGet[*component.Size](e))
	sprite := ecs.MustGet[*component.Sprite](e)
	assert.Equal(t, image.Rect(16, 32, 32, 48), sprite.Rect)
	assert.Equal(t, assets.TextureID(2), sprite.Image)

	// The default parser keeps the last tag in key order.
	tag := ecs.MustGet[*component.Tag](e)
	assert.Equal(t, "type", tag.Name)

	assert.Equal(t, map[string]any{"slippery": true}, m.Tileset.Tiles[2].Properties)
	src, ok := m.Tileset.Source(2)
	require.True(t, ok)
	assert.Equal(t, image.Rect(8, 0, 16, 8), src)
}

func TestLoadCustomParser(t *testing.T) {
	fsys := fsWith(map[string]string{
		"level.json": `{"name": "p", "width": 1, "tileset": "tileset.json", "tiles": [0],
			"objects": [{"offset": {"x": 0, "y": 0}, "area": [0, 0, 8, 8], "image": "",
			"properties": {"name": "\"bob\"", "ignored": 1}}]}`,
		"tileset.json": tileset,
	})
	var seen []string
	parse := func(key string, value json.RawMessage) (ecs.Component, error) {
		seen = append(seen, key)
		if key == "name" {
			return &component.Name{Value: string(value)}, nil
		}
		return nil, nil
	}

	m, err := tilemap.Load(fsys, "level.json", &images{}, parse)
	require.NoError(t, err)

	assert.Equal(t, []string{"ignored", "name"}, seen)
	e := m.Objects.Entities()[0]
	assert.True(t, e.Has(ecs.KindName))
	assert.False(t, e.Has(ecs.KindTag))
	assert.Equal(t, assets.NoTexture, ecs.MustGet[*component.Sprite](e).Image)
}

func TestLoadColorKey(t *testing.T) {
	fsys := fsWith(map[string]string{
		"level.json":   `{"name": "c", "width": 1, "tileset": "tileset.json", "tiles": [1]}`,
		"tileset.json": `{"name": "k", "image": "x.png", "tile_size": [8, 8], "colorkey": [255, 0, 255], "tiles": []}`,
	})

	m, err := tilemap.Load(fsys, "level.json", &images{}, nil)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, m.Tileset.ColorKey)
	assert.Equal(t, 0, m.Objects.Len())
}

func TestLoadErrors(t *testing.T) {
	parseErr := func(string, json.RawMessage) (ecs.Component, error) { return nil, errors.New("bad") }

	tests := []struct {
		name   string
		files  map[string]string
		images *images
		parse  tilemap.PropertyParser
	}{
		{name: "missing map", files: map[string]string{}},
		{name: "malformed map", files: map[string]string{"level.json": `{`}},
		{name: "zero width", files: map[string]string{"level.json": `{"width": 0, "tileset": "tileset.json", "tiles": []}`, "tileset.json": tileset}},
		{name: "ragged tiles", files: map[string]string{"level.json": `{"width": 2, "tileset": "tileset.json", "tiles": [1, 1, 1]}`, "tileset.json": tileset}},
		{name: "missing tileset", files: map[string]string{"level.json": `{"width": 1, "tileset": "nope.json", "tiles": [1]}`}},
		{name: "bad tile size", files: map[string]string{"level.json": `{"width": 1, "tileset": "tileset.json", "tiles": [1]}`, "tileset.json": `{"tile_size": [8]}`}},
		{name: "bad colorkey", files: map[string]string{"level.json": `{"width": 1, "tileset": "tileset.json", "tiles": [1]}`, "tileset.json": `{"tile_size": [8, 8], "colorkey": [1, 2]}`}},
		{name: "tileset image fails", images: &images{fail: "images/tileset.png"}, files: map[string]string{"level.json": `{"width": 1, "tileset": "tileset.json", "tiles": [1]}`, "tileset.json": tileset}},
		{name: "short area", files: map[string]string{"level.json": `{"width": 1, "tileset": "tileset.json", "tiles": [1], "objects": [{"area": [0, 0, 8]}]}`, "tileset.json": tileset}},
		{name: "parser error", parse: parseErr, files: map[string]string{"level.json": `{"width": 1, "tileset": "tileset.json", "tiles": [1], "objects": [{"area": [0, 0, 8, 8], "properties": {"x": 1}}]}`, "tileset.json": tileset}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := tt.images
			if im == nil {
				im = &images{}
			}
			_, err := tilemap.Load(fsWith(tt.files), "level.json", im, tt.parse)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "tilemap:")
		})
	}
}

func TestTileAt(t *testing.T) {
	fsys := fsWith(map[string]string{
		"level.json":   `{"name": "g", "width": 3, "tileset": "tileset.json", "tiles": [0, 1, 0, 2, 0, 1]}`,
		"tileset.json": tileset,
	})
	m, err := tilemap.Load(fsys, "level.json", &images{}, nil)
	require.NoError(t, err)

	tests := []struct {
		x, y  int
		want  tilemap.TileID
		solid bool
	}{
		{0, 0, 0, false},
		{1, 0, 1, true},
		{0, 1, 2, true},
		{2, 1, 1, true},
		{-1, 0, tilemap.NullTile, false},
		{3, 0, tilemap.NullTile, false},
		{0, 2, tilemap.NullTile, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.TileAt(tt.x, tt.y), "(%d, %d)", tt.x, tt.y)
		assert.Equal(t, tt.solid, m.Solid(tt.x, tt.y), "(%d, %d)", tt.x, tt.y)
	}
	w, h := m.TileSize()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}
