// Package scene describes what each demo draws and how it reacts to input.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spin is a model rotating about a fixed axis in front of a look-at camera.
type Spin struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Axis   mgl32.Vec3
	FovY   float32
	Near   float32
	Far    float32
	// Speed is the rotation speed in radians per second.
	Speed float32

	angle  float32
	aspect float32
	paused bool
}

func NewSpin(width, height int) *Spin {
	s := &Spin{
		Eye:    mgl32.Vec3{4, 3, 3},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Axis:   mgl32.Vec3{0, 1, 0},
		FovY:   mgl32.DegToRad(45),
		Near:   0.1,
		Far:    100,
		Speed:  1,
	}
	s.Resize(width, height)
	return s
}

func (s *Spin) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
}

// Advance turns the model by Speed*seconds, keeping the angle in [0, 2π).
func (s *Spin) Advance(seconds float64) {
	if s.paused || seconds <= 0 {
		return
	}
	a := math.Mod(float64(s.angle)+float64(s.Speed)*seconds, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	s.angle = float32(a)
}

func (s *Spin) Toggle() {
	s.paused = !s.paused
}

func (s *Spin) Paused() bool {
	return s.paused
}

func (s *Spin) Angle() float32 {
	return s.angle
}

func (s *Spin) Aspect() float32 {
	return s.aspect
}

func (s *Spin) Projection() mgl32.Mat4 {
	return mgl32.Perspective(s.FovY, s.aspect, s.Near, s.Far)
}

func (s *Spin) View() mgl32.Mat4 {
	return mgl32.LookAtV(s.Eye, s.Target, s.Up)
}

func (s *Spin) Model() mgl32.Mat4 {
	return mgl32.HomogRotate3D(s.angle, s.Axis.Normalize())
}

// MVP is projection * view * model.
func (s *Spin) MVP() mgl32.Mat4 {
	return s.Projection().Mul4(s.View()).Mul4(s.Model())
}
