// Package shader builds linked GPU programs from vertex and fragment sources
// and reports every compile and link info log along the way.
package shader

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Policy decides what Build does with a program whose compile or link failed.
type Policy uint8

const (
	// PolicyLogAndContinue returns the program handle even when a step failed.
	// Result.Status tells the caller whether it can be drawn with.
	PolicyLogAndContinue Policy = iota
	// PolicyStrict deletes a failed program and returns a *BuildError.
	PolicyStrict
)

type Options struct {
	Policy Policy
	// LegacyFragmentFallback compiles an empty fragment source when the fragment
	// file cannot be opened instead of failing the build.
	LegacyFragmentFallback bool
}

type Builder struct {
	driver Driver
	logger *slog.Logger
	opts   Options
}

func NewBuilder(driver Driver, logger *slog.Logger, opts Options) *Builder {
	if driver == nil {
		panic("shader driver is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{driver: driver, logger: logger, opts: opts}
}

func (b *Builder) Options() Options {
	return b.opts
}

// Build reads both source files, compiles them and links the program.
// A source that cannot be read aborts the build before anything is created on
// the driver and the returned Result has a zero program.
func (b *Builder) Build(vertexPath, fragmentPath string) (Result, error) {
	vertex, err := ReadSource(vertexPath, StageVertex)
	if err != nil {
		b.logger.Error(err.Error(), "stage", StageVertex)
		return Result{}, err
	}

	fragment, err := ReadSource(fragmentPath, StageFragment)
	if err != nil {
		var readErr *ReadError
		if !b.opts.LegacyFragmentFallback || !errors.As(err, &readErr) {
			b.logger.Error(err.Error(), "stage", StageFragment)
			return Result{}, err
		}
		b.logger.Warn(err.Error(), "stage", StageFragment, "fallback", "empty source")
		fragment = Source{Path: fragmentPath, Stage: StageFragment}
	}

	return b.BuildSources(vertex, fragment)
}

// BuildSources compiles and links already loaded sources.
func (b *Builder) BuildSources(vertex, fragment Source) (Result, error) {
	var res Result
	vs := b.compile(vertex, &res)
	fs := b.compile(fragment, &res)

	b.logger.Info("Linking program")
	program := b.driver.CreateProgram()
	b.driver.AttachShader(program, vs)
	b.driver.AttachShader(program, fs)
	b.driver.LinkProgram(program)
	res.Diagnostics = append(res.Diagnostics, b.report(Diagnostic{
		Step: StepLink,
		OK:   b.driver.ProgramLinked(program),
		Log:  cleanLog(b.driver.ProgramInfoLog(program)),
	}))

	b.driver.DetachShader(program, vs)
	b.driver.DetachShader(program, fs)
	b.driver.DeleteShader(vs)
	b.driver.DeleteShader(fs)

	res.Program = Program(program)
	res.summarize()

	if res.Status == StatusFailed && b.opts.Policy == PolicyStrict {
		b.driver.DeleteProgram(program)
		res.Program = 0
		return res, &BuildError{Failures: res.Failures()}
	}
	return res, nil
}

func (b *Builder) compile(src Source, res *Result) uint32 {
	b.logger.Info("Compiling shader : "+src.Path, "stage", src.Stage)
	id := b.driver.CreateShader(src.Stage)
	b.driver.ShaderSource(id, src.Text)
	b.driver.CompileShader(id)
	res.Diagnostics = append(res.Diagnostics, b.report(Diagnostic{
		Step: compileStep(src.Stage),
		Path: src.Path,
		OK:   b.driver.ShaderCompiled(id),
		Log:  cleanLog(b.driver.ShaderInfoLog(id)),
	}))
	return id
}

// report surfaces a non-empty info log whatever the step status was.
func (b *Builder) report(d Diagnostic) Diagnostic {
	if d.Log == "" {
		if !d.OK {
			b.logger.Error("shader step failed without info log", "step", d.Step, "path", d.Path)
		}
		return d
	}
	level := slog.LevelWarn
	if !d.OK {
		level = slog.LevelError
	}
	b.logger.Log(context.Background(), level, d.Log, "step", d.Step, "path", d.Path)
	return d
}

func cleanLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
