//go:build !js

package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// uniforms caches locations per program; -1 marks names the program lacks.
type uniforms struct {
	program   uint32
	locations map[string]int32
}

func newUniforms(program uint32) *uniforms {
	return &uniforms{program: program, locations: make(map[string]int32)}
}

func (u *uniforms) location(name string) int32 {
	if loc, ok := u.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(u.program, gl.Str(name+"\x00"))
	u.locations[name] = loc
	return loc
}

func (u *uniforms) Mat4(name string, m mgl32.Mat4) {
	if loc := u.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (u *uniforms) Vec4(name string, v mgl32.Vec4) {
	if loc := u.location(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (u *uniforms) Vec2(name string, v mgl32.Vec2) {
	if loc := u.location(name); loc >= 0 {
		gl.Uniform2f(loc, v[0], v[1])
	}
}

func (u *uniforms) Int(name string, v int32) {
	if loc := u.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}
