package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
)

// DefaultFriction scales both velocity axes once per frame.
const DefaultFriction = 0.9

// Grid is the static tile layer entities collide with.
type Grid interface {
	Width() int
	Height() int
	TileSize() (w, h int)
	Solid(x, y int) bool
}

type PhysicsParams struct {
	Grid     Grid
	Friction float64
}

// Footprint returns the entity's collision box in tile units. L and R are the
// left and right edges, B is the top and T the bottom edge.
func Footprint(e *ecs.Entity, tileW, tileH int) (cp.BB, bool) {
	pos, ok := ecs.Get[*component.Position](e)
	if !ok {
		return cp.BB{}, false
	}
	w, h := footprintSize(e, tileW, tileH)
	return cp.BB{L: pos.X, B: pos.Y, R: pos.X + w, T: pos.Y + h}, true
}

func footprintSize(e *ecs.Entity, tileW, tileH int) (float64, float64) {
	var w, h int
	if col, ok := ecs.Get[*component.Collider](e); ok {
		w, h = col.W, col.H
	} else if size, ok := ecs.Get[*component.Size](e); ok {
		w, h = size.W, size.H
	}
	return float64(w) / float64(tileW), float64(h) / float64(tileH)
}

// Physics moves every entity with a position, velocity and size by its
// velocity, stops it on solid tiles below it and keeps it inside the map.
func Physics(list *ecs.EntityList, dt int, p PhysicsParams) {
	tileW, tileH := p.Grid.TileSize()
	mapW, mapH := float64(p.Grid.Width()), float64(p.Grid.Height())
	seconds := float64(dt) / 1000

	ecs.ForEach3(list, func(e *ecs.Entity, pos *component.Position, vel *component.Velocity, _ *component.Size) {
		footW, footH := footprintSize(e, tileW, tileH)

		if grounded(p.Grid, pos.X, pos.Y+footH, footW) {
			vel.Y = math.Min(0, vel.Y)
		}

		oldBottom := pos.Y + footH
		pos.X += vel.X * seconds
		pos.Y += vel.Y * seconds

		if vel.Y > 0 {
			if row, ok := landing(p.Grid, pos.X, footW, oldBottom, pos.Y+footH); ok {
				pos.Y = float64(row) - footH
				vel.Y = 0
			}
		}

		pos.X = cp.Clamp(pos.X, 0, math.Max(0, mapW-footW))
		floor := math.Max(0, mapH-footH)
		if pos.Y >= floor {
			vel.Y = math.Min(0, vel.Y)
		}
		pos.Y = cp.Clamp(pos.Y, 0, floor)

		vel.X *= p.Friction
		vel.Y *= p.Friction
	})
}

// grounded reports whether the row directly under bottom holds a solid tile
// within the footprint columns.
func grounded(g Grid, x, bottom, footW float64) bool {
	row := int(math.Ceil(bottom))
	if bottom < float64(row) || row >= g.Height() {
		return false
	}
	return solidRow(g, row, x, footW)
}

// landing returns the first solid row crossed while the bottom edge moved
// from oldBottom to newBottom.
func landing(g Grid, x, footW, oldBottom, newBottom float64) (int, bool) {
	first := int(math.Ceil(oldBottom))
	last := min(int(math.Floor(newBottom)), g.Height()-1)
	for row := max(first, 0); row <= last; row++ {
		if solidRow(g, row, x, footW) {
			return row, true
		}
	}
	return 0, false
}

func solidRow(g Grid, row int, x, footW float64) bool {
	minX := max(int(math.Floor(x)), 0)
	maxX := min(int(math.Ceil(x+footW)), g.Width())
	for col := minX; col < maxX; col++ {
		if g.Solid(col, row) {
			return true
		}
	}
	return false
}
