package gfx

import (
	"math"

	"github.com/kjkrol/gokg/geom"
)

const (
	minSpan = 1e-13
	maxSpan = 1e3
)

// Bounds is the visible rectangle in world coordinates. Y grows upwards, so
// the box's TopLeft corner holds the minimum of both axes.
type Bounds struct {
	geom.AABB[float64]
}

func NewBounds(minX, minY, maxX, maxY float64) Bounds {
	return Bounds{geom.NewAABB(geom.NewVec(minX, minY), geom.NewVec(maxX, maxY))}
}

// boundsAround builds the width x height rectangle centered on c.
func boundsAround(c geom.Vec[float64], width, height float64) Bounds {
	return Bounds{geom.NewAABBAt(geom.NewVec(c.X-width/2, c.Y-height/2), width, height)}
}

func (b Bounds) Min() geom.Vec[float64] { return b.TopLeft }
func (b Bounds) Max() geom.Vec[float64] { return b.BottomRight }

func (b Bounds) Width() float64  { return b.BottomRight.X - b.TopLeft.X }
func (b Bounds) Height() float64 { return b.BottomRight.Y - b.TopLeft.Y }

func (b Bounds) Center() geom.Vec[float64] {
	return geom.NewVec((b.TopLeft.X+b.BottomRight.X)/2, (b.TopLeft.Y+b.BottomRight.Y)/2)
}

// Translate moves both corners by shift.
func (b Bounds) Translate(shift geom.Vec[float64]) Bounds {
	return Bounds{geom.NewAABB(b.TopLeft.Add(shift), b.BottomRight.Add(shift))}
}

// Vec4 packs the bounds as minX, minY, maxX, maxY for a shader uniform.
func (b Bounds) Vec4() [4]float32 {
	return [4]float32{float32(b.TopLeft.X), float32(b.TopLeft.Y), float32(b.BottomRight.X), float32(b.BottomRight.Y)}
}

// Viewport maps a framebuffer of Width x Height pixels onto world Bounds.
// It is owned by the render loop and mutated only by Pan, Zoom, Resize and Reset.
type Viewport struct {
	bounds  Bounds
	home    Bounds
	width   int
	height  int
	version uint64
}

func NewViewport(bounds Bounds, width, height int) *Viewport {
	v := &Viewport{bounds: bounds, home: bounds, width: max(width, 1), height: max(height, 1)}
	return v
}

func (v *Viewport) Bounds() Bounds {
	return v.bounds
}

func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// Version changes every time the bounds change.
func (v *Viewport) Version() uint64 {
	return v.version
}

// Scale is the world distance covered by one pixel on each axis.
func (v *Viewport) Scale() geom.Vec[float64] {
	return geom.NewVec(v.bounds.Width()/float64(v.width), v.bounds.Height()/float64(v.height))
}

// PixelToWorld converts window coordinates (origin top-left) to world coordinates.
func (v *Viewport) PixelToWorld(x, y float64) geom.Vec[float64] {
	s := v.Scale()
	return geom.NewVec(v.bounds.TopLeft.X+x*s.X, v.bounds.BottomRight.Y-y*s.Y)
}

// Pan drags the visible content by dx, dy pixels.
func (v *Viewport) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	s := v.Scale()
	v.set(v.bounds.Translate(geom.NewVec(-dx*s.X, dy*s.Y)))
}

// Zoom scales the view by factor around the pixel (x, y); factor > 1 zooms in.
// The world point under (x, y) stays under it.
func (v *Viewport) Zoom(factor, x, y float64) {
	if factor <= 0 || factor == 1 {
		return
	}
	width := v.bounds.Width() / factor
	height := v.bounds.Height() / factor
	if width < minSpan || height < minSpan || width > maxSpan || height > maxSpan {
		return
	}
	anchor := v.PixelToWorld(x, y)
	fx := x / float64(v.width)
	fy := y / float64(v.height)
	minX := anchor.X - fx*width
	maxY := anchor.Y + fy*height
	v.set(NewBounds(minX, maxY-height, minX+width, maxY))
}

// Resize keeps the center and the per-pixel scale when the framebuffer changes.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == v.width && height == v.height) {
		return
	}
	s := v.Scale()
	v.width, v.height = width, height
	v.set(boundsAround(v.bounds.Center(), float64(width)*s.X, float64(height)*s.Y))
}

// Reset restores the initial bounds, fitted to the current size.
func (v *Viewport) Reset() {
	home := v.home
	sx := home.Width() / float64(v.width)
	sy := home.Height() / float64(v.height)
	s := math.Max(sx, sy)
	v.set(boundsAround(home.Center(), float64(v.width)*s, float64(v.height)*s))
}

func (v *Viewport) set(b Bounds) {
	if b == v.bounds {
		return
	}
	v.bounds = b
	v.version++
}
