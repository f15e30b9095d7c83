package system_test

import (
	"image"

	"github.com/milk9111/worldsaround/ecs/component"
)

// grid is a tile layer where every non-zero id is solid.
type grid struct {
	w, h         int
	tileW, tileH int
	tiles        []int
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, tileW: 8, tileH: 8, tiles: make([]int, w*h)}
}

func (g *grid) fillRow(y int) *grid {
	for x := 0; x < g.w; x++ {
		g.tiles[y*g.w+x] = 1
	}
	return g
}

func (g *grid) Width() int           { return g.w }
func (g *grid) Height() int          { return g.h }
func (g *grid) TileSize() (int, int) { return g.tileW, g.tileH }
func (g *grid) Solid(x, y int) bool  { return g.tiles[y*g.w+x] != 0 }

func walker() *component.Animator {
	return &component.Animator{
		Active: "idle_right",
		Animations: map[string]component.Animation{
			"idle_right": {StartY: 0, Frames: 4, Duration: 400, Loop: true},
			"idle_left":  {StartY: 1, Frames: 4, Duration: 400, Loop: true},
			"walk_right": {StartY: 2, Frames: 4, Duration: 400, Loop: true},
			"walk_left":  {StartY: 3, Frames: 4, Duration: 400, Loop: true},
		},
	}
}

func sprite() *component.Sprite {
	return &component.Sprite{Rect: image.Rect(0, 0, 16, 16)}
}
