package assets

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAssets(t *testing.T) {
	images := NewImageCache(func(string) (*ebiten.Image, error) { return &ebiten.Image{}, nil })
	a, err := Load(images, NewFontCache())
	require.NoError(t, err)

	for _, id := range []TextureID{a.Background, a.MusicIcon, a.SoundsIcon, a.Items} {
		assert.True(t, images.Has(id))
	}
	assert.NotNil(t, a.Font(a.Huge))
	assert.NotNil(t, a.Debug)
}

func TestLoadAssetsMissingImage(t *testing.T) {
	images := NewImageCache(func(p string) (*ebiten.Image, error) {
		if p == SoundsIconImage {
			return nil, fs.ErrNotExist
		}
		return &ebiten.Image{}, nil
	})
	_, err := Load(images, NewFontCache())

	var missing *FailedToLoadAssetError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, SoundsIconImage, missing.Asset)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
