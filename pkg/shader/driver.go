package shader

// Driver is the subset of the graphics API the builder needs. Every call is
// expected to run on the thread that owns the graphics context.
//
// Info logs are returned without trailing NUL bytes or whitespace.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}
