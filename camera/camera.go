package camera

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldsaround/common"
)

// Camera is a window onto the world. Area is in world pixels with L/B the
// top-left and R/T the bottom-right corner; Zoom scales world pixels to
// screen pixels.
type Camera struct {
	Area  cp.BB
	Zoom  float64
	world cp.BB
}

// New creates a camera covering a screen of w×h pixels.
func New(w, h int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	vw, vh := float64(w)/zoom, float64(h)/zoom
	return &Camera{
		Area:  cp.BB{L: 0, B: 0, R: vw, T: vh},
		Zoom:  zoom,
		world: cp.BB{L: 0, B: 0, R: vw, T: vh},
	}
}

func (c *Camera) Width() float64  { return c.Area.R - c.Area.L }
func (c *Camera) Height() float64 { return c.Area.T - c.Area.B }

// SetWorld sets the bounds CenterOn keeps the camera inside.
func (c *Camera) SetWorld(w, h float64) {
	c.world = cp.BB{L: 0, B: 0, R: w, T: h}
}

// CenterOn moves the camera so (x, y) is in the middle, without showing
// anything outside the world. A world smaller than the view is pinned to the
// top-left.
func (c *Camera) CenterOn(x, y float64) {
	w, h := c.Width(), c.Height()
	left := cp.Clamp(x-w/2, c.world.L, math.Max(c.world.L, c.world.R-w))
	top := cp.Clamp(y-h/2, c.world.B, math.Max(c.world.B, c.world.T-h))
	c.Area = cp.BB{L: left, B: top, R: left + w, T: top + h}
}

// Follow eases the camera towards centring on (x, y). t is the fraction of
// the distance covered this frame.
func (c *Camera) Follow(x, y, t float64) {
	cx := common.Lerp(c.Area.L+c.Width()/2, x, t)
	cy := common.Lerp(c.Area.B+c.Height()/2, y, t)
	c.CenterOn(cx, cy)
}

// Visible reports whether r overlaps the camera area.
func (c *Camera) Visible(r image.Rectangle) bool {
	bb := cp.BB{L: float64(r.Min.X), B: float64(r.Min.Y), R: float64(r.Max.X), T: float64(r.Max.Y)}
	return bb.L < c.Area.R && c.Area.L < bb.R && bb.B < c.Area.T && c.Area.B < bb.T
}

// ToScreen converts a world position to screen pixels.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return (x - c.Area.L) * c.Zoom, (y - c.Area.B) * c.Zoom
}

type DrawOptions struct {
	Flip       bool
	ColorScale ebiten.ColorScale
}

// Render draws the src part of img at world rectangle dst. Nothing is drawn
// when dst is off camera. It reports whether it drew.
func (c *Camera) Render(screen, img *ebiten.Image, dst, src image.Rectangle, opts *DrawOptions) bool {
	if img == nil || src.Empty() || !c.Visible(dst) {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if opts != nil && opts.Flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(sw, 0)
	}
	op.GeoM.Scale(float64(dst.Dx())/sw, float64(dst.Dy())/sh)
	sx, sy := c.ToScreen(float64(dst.Min.X), float64(dst.Min.Y))
	op.GeoM.Scale(c.Zoom, c.Zoom)
	op.GeoM.Translate(sx, sy)
	if opts != nil {
		op.ColorScale = opts.ColorScale
	}
	screen.DrawImage(img.SubImage(src).(*ebiten.Image), op)
	return true
}
