package gfx_test

import (
	"testing"

	"github.com/kjkrol/gokg/geom"
	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/gldemo/pkg/gfx"
)

const eps = 1e-9

func newViewport() *gfx.Viewport {
	// 4 x 3 world units on 400 x 300 pixels: 0.01 per pixel.
	return gfx.NewViewport(gfx.NewBounds(-2.5, -1.5, 1.5, 1.5), 400, 300)
}

func TestViewport_PixelToWorld(t *testing.T) {
	v := newViewport()

	topLeft := v.PixelToWorld(0, 0)
	assert.InDelta(t, -2.5, topLeft.X, eps)
	assert.InDelta(t, 1.5, topLeft.Y, eps)

	bottomRight := v.PixelToWorld(400, 300)
	assert.InDelta(t, 1.5, bottomRight.X, eps)
	assert.InDelta(t, -1.5, bottomRight.Y, eps)
}

func TestViewport_PanMovesContentWithCursor(t *testing.T) {
	v := newViewport()
	before := v.Version()

	v.Pan(100, 50)

	b := v.Bounds()
	assert.InDelta(t, -3.5, b.Min().X, eps)
	assert.InDelta(t, 0.5, b.Max().X, eps)
	assert.InDelta(t, -1.0, b.Min().Y, eps)
	assert.InDelta(t, 2.0, b.Max().Y, eps)
	assert.Greater(t, v.Version(), before)
}

func TestViewport_PanZeroKeepsVersion(t *testing.T) {
	v := newViewport()
	v.Pan(0, 0)
	assert.Equal(t, uint64(0), v.Version())
}

func TestViewport_ZoomKeepsAnchorFixed(t *testing.T) {
	v := newViewport()
	anchor := v.PixelToWorld(100, 200)

	v.Zoom(2, 100, 200)

	b := v.Bounds()
	assert.InDelta(t, 2.0, b.Width(), eps)
	assert.InDelta(t, 1.5, b.Height(), eps)
	after := v.PixelToWorld(100, 200)
	assert.InDelta(t, anchor.X, after.X, eps)
	assert.InDelta(t, anchor.Y, after.Y, eps)

	v.Zoom(0.5, 100, 200)
	assert.InDelta(t, 4.0, v.Bounds().Width(), eps)
}

func TestViewport_ZoomIgnoresInvalidFactors(t *testing.T) {
	v := newViewport()
	v.Zoom(0, 10, 10)
	v.Zoom(-2, 10, 10)
	v.Zoom(1, 10, 10)
	assert.Equal(t, uint64(0), v.Version())

	v.Zoom(1e-6, 0, 0)
	assert.Equal(t, uint64(0), v.Version(), "zooming past the widest span is refused")
}

func TestViewport_ResizeKeepsCenterAndScale(t *testing.T) {
	v := newViewport()
	center := v.Bounds().Center()
	scale := v.Scale()

	v.Resize(800, 300)

	w, h := v.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 300, h)
	assert.InDelta(t, center.X, v.Bounds().Center().X, eps)
	assert.InDelta(t, center.Y, v.Bounds().Center().Y, eps)
	assert.InDelta(t, scale.X, v.Scale().X, eps)
	assert.InDelta(t, 8.0, v.Bounds().Width(), eps)

	version := v.Version()
	v.Resize(0, 0)
	v.Resize(800, 300)
	assert.Equal(t, version, v.Version())
}

func TestViewport_ResetRestoresHome(t *testing.T) {
	v := newViewport()
	home := v.Bounds()
	v.Pan(30, -20)
	v.Zoom(4, 10, 10)

	v.Reset()

	b := v.Bounds()
	assert.InDelta(t, home.Min().X, b.Min().X, eps)
	assert.InDelta(t, home.Min().Y, b.Min().Y, eps)
	assert.InDelta(t, home.Max().X, b.Max().X, eps)
	assert.InDelta(t, home.Max().Y, b.Max().Y, eps)
}

func TestBounds_Vec4(t *testing.T) {
	b := gfx.NewBounds(-2, -1, 1, 1)
	assert.Equal(t, [4]float32{-2, -1, 1, 1}, b.Vec4())
}

func TestBounds_TranslateKeepsSize(t *testing.T) {
	b := gfx.NewBounds(-2, -1, 1, 1)

	moved := b.Translate(geom.NewVec(0.5, -0.25))

	assert.Equal(t, geom.NewVec(-1.5, -1.25), moved.Min())
	assert.Equal(t, geom.NewVec(1.5, 0.75), moved.Max())
	assert.InDelta(t, b.Width(), moved.Width(), eps)
	assert.InDelta(t, b.Height(), moved.Height(), eps)
	assert.True(t, moved.Contains(gfx.NewBounds(-1, -1, 1, 0.5).AABB))
	assert.Equal(t, geom.NewVec(0.0, -0.25), moved.Center())
}
