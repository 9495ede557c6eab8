// Package shadertest provides an in-memory shader.Driver for tests.
package shadertest

import (
	"strings"

	"github.com/kjkrol/gldemo/pkg/shader"
)

// CompileFunc decides the compile status and info log of one shader source.
type CompileFunc func(stage shader.Stage, source string) (ok bool, log string)

// LinkFunc decides the link status and info log given the compile status of
// every attached shader.
type LinkFunc func(compiled []bool) (ok bool, log string)

// DefaultCompile accepts any source that declares a main function.
func DefaultCompile(stage shader.Stage, source string) (bool, string) {
	if strings.Contains(source, "void main") {
		return true, ""
	}
	return false, "0:1(1): error: syntax error, unexpected end of file"
}

// DefaultLink fails when any attached shader did not compile.
func DefaultLink(compiled []bool) (bool, string) {
	if len(compiled) < 2 {
		return false, "error: program lacks a vertex or fragment shader"
	}
	for _, ok := range compiled {
		if !ok {
			return false, "error: linking with uncompiled/unspecialized shader"
		}
	}
	return true, ""
}

type fakeShader struct {
	stage    shader.Stage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached map[uint32]struct{}
	linked   bool
	log      string
}

// Driver records every object it creates. It is not safe for concurrent use.
type Driver struct {
	Compile CompileFunc
	Link    LinkFunc

	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	Detached       int
	DeletedShaders []uint32
	DeletedProgs   []uint32
}

func NewDriver() *Driver {
	return &Driver{
		Compile:  DefaultCompile,
		Link:     DefaultLink,
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (d *Driver) id() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CreateShader(stage shader.Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *Driver) ShaderSource(id uint32, source string) {
	if s, ok := d.shaders[id]; ok {
		s.source = source
	}
}

func (d *Driver) CompileShader(id uint32) {
	s, ok := d.shaders[id]
	if !ok {
		return
	}
	s.compiled, s.log = d.Compile(s.stage, s.source)
}

func (d *Driver) ShaderCompiled(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *Driver) ShaderInfoLog(id uint32) string {
	if s, ok := d.shaders[id]; ok {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(id uint32) {
	if _, ok := d.shaders[id]; !ok {
		return
	}
	delete(d.shaders, id)
	d.DeletedShaders = append(d.DeletedShaders, id)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{attached: make(map[uint32]struct{})}
	return id
}

func (d *Driver) AttachShader(program, id uint32) {
	if p, ok := d.programs[program]; ok {
		p.attached[id] = struct{}{}
	}
}

func (d *Driver) DetachShader(program, id uint32) {
	p, ok := d.programs[program]
	if !ok {
		return
	}
	if _, ok := p.attached[id]; ok {
		delete(p.attached, id)
		d.Detached++
	}
}

func (d *Driver) LinkProgram(program uint32) {
	p, ok := d.programs[program]
	if !ok {
		return
	}
	compiled := make([]bool, 0, len(p.attached))
	for id := range p.attached {
		compiled = append(compiled, d.ShaderCompiled(id))
	}
	p.linked, p.log = d.Link(compiled)
}

func (d *Driver) ProgramLinked(program uint32) bool {
	p, ok := d.programs[program]
	return ok && p.linked
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) DeleteProgram(program uint32) {
	if _, ok := d.programs[program]; !ok {
		return
	}
	delete(d.programs, program)
	d.DeletedProgs = append(d.DeletedProgs, program)
}

// LiveShaders is the number of shader objects not yet deleted.
func (d *Driver) LiveShaders() int {
	return len(d.shaders)
}

// LivePrograms is the number of program objects not yet deleted.
func (d *Driver) LivePrograms() int {
	return len(d.programs)
}

// Created is the number of objects created so far.
func (d *Driver) Created() int {
	return int(d.next)
}

// Attached returns how many shaders are still attached to program.
func (d *Driver) Attached(program uint32) int {
	if p, ok := d.programs[program]; ok {
		return len(p.attached)
	}
	return 0
}

// Linked reports whether program exists and linked successfully.
func (d *Driver) Linked(program shader.Program) bool {
	return d.ProgramLinked(uint32(program))
}
