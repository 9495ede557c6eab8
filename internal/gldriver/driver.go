//go:build !js

// Package gldriver implements shader.Driver on top of the OpenGL 3.3 core
// bindings. The GL context must be current on the calling thread.
package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/gldemo/pkg/shader"
)

type Driver struct{}

func New() *Driver {
	return &Driver{}
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	if stage == shader.StageFragment {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (Driver) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (Driver) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (Driver) ShaderCompiled(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return trimLog(log)
}

func (Driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, id uint32) {
	gl.AttachShader(program, id)
}

func (Driver) DetachShader(program, id uint32) {
	gl.DetachShader(program, id)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return trimLog(log)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func trimLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimSpace(log)
}

var _ shader.Driver = Driver{}
