package scene_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/gldemo/pkg/scene"
)

func TestSpin_AdvanceWrapsAngle(t *testing.T) {
	s := scene.NewSpin(1024, 768)
	s.Speed = math.Pi

	s.Advance(0.5)
	assert.InDelta(t, math.Pi/2, s.Angle(), 1e-5)

	s.Advance(2)
	assert.InDelta(t, math.Pi/2, s.Angle(), 1e-5)

	s.Advance(-1)
	assert.InDelta(t, math.Pi/2, s.Angle(), 1e-5)
}

func TestSpin_TogglePausesRotation(t *testing.T) {
	s := scene.NewSpin(800, 600)
	s.Toggle()
	s.Advance(1)

	assert.True(t, s.Paused())
	assert.Equal(t, float32(0), s.Angle())

	s.Toggle()
	s.Advance(1)
	assert.InDelta(t, 1, s.Angle(), 1e-5)
}

func TestSpin_ResizeIgnoresEmptyFramebuffer(t *testing.T) {
	s := scene.NewSpin(800, 400)
	assert.Equal(t, float32(2), s.Aspect())

	s.Resize(0, 0)
	assert.Equal(t, float32(2), s.Aspect())
}

func TestSpin_MVPProjectsTargetToCenter(t *testing.T) {
	s := scene.NewSpin(1024, 768)
	s.Advance(0.7)

	clip := s.MVP().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())

	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
	assert.True(t, ndc.Z() > -1 && ndc.Z() < 1)
}

func TestSpin_ModelRotatesAboutAxis(t *testing.T) {
	s := scene.NewSpin(1, 1)
	s.Speed = math.Pi / 2
	s.Advance(1)

	p := s.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -1, p.Z(), 1e-5)
}
