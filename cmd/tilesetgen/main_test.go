package main

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopImages struct{}

func (nopImages) Load(string) (assets.TextureID, error) { return 0, nil }

func TestGenerate(t *testing.T) {
	ts, err := generate("sheet", "images/sheet.png", 20, 17, 8, 8)
	require.NoError(t, err)

	assert.Equal(t, [2]int{8, 8}, ts.TileSize)
	require.Len(t, ts.Tiles, 4)
	assert.Equal(t, tileFile{TID: 1, Offset: [2]int{0, 0}}, ts.Tiles[0])
	assert.Equal(t, tileFile{TID: 2, Offset: [2]int{8, 0}}, ts.Tiles[1])
	assert.Equal(t, tileFile{TID: 3, Offset: [2]int{0, 8}}, ts.Tiles[2])
	assert.Equal(t, tileFile{TID: 4, Offset: [2]int{8, 8}}, ts.Tiles[3])
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		tw, th int
	}{
		{"zero tile", 16, 16, 0, 8},
		{"negative tile", 16, 16, 8, -1},
		{"image too small", 4, 16, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generate("x", "x.png", tt.w, tt.h, tt.tw, tt.th)
			assert.Error(t, err)
		})
	}
}

func TestParseColorKey(t *testing.T) {
	key, err := parseColorKey("255,0,128")
	require.NoError(t, err)
	assert.Equal(t, []int{255, 0, 128}, key)

	key, err = parseColorKey("")
	require.NoError(t, err)
	assert.Nil(t, key)

	_, err = parseColorKey("1,2")
	assert.Error(t, err)
	_, err = parseColorKey("0,0,256")
	assert.Error(t, err)
}

func TestGeneratedTilesetLoads(t *testing.T) {
	ts, err := generate("sheet", "images/sheet.png", 16, 8, 8, 8)
	require.NoError(t, err)
	ts.ColorKey = []int{255, 0, 255}
	data, err := json.Marshal(ts)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"maps/tileset.json": {Data: data},
		"maps/map.json":     {Data: []byte(`{"name":"m","width":2,"tileset":"tileset.json","tiles":[1,2]}`)},
	}
	m, err := tilemap.Load(fsys, "maps/map.json", nopImages{}, nil)
	require.NoError(t, err)

	src, ok := m.Tileset.Source(2)
	require.True(t, ok)
	assert.Equal(t, 8, src.Min.X)
	assert.NotNil(t, m.Tileset.ColorKey)
}
