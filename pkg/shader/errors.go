package shader

import (
	"fmt"
	"strings"
)

// ReadError reports a shader source file that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Unable to open %s.", e.Path)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// TranslateError reports a WGSL source that naga could not turn into GLSL.
type TranslateError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("translate %s shader %s: %v", e.Stage, e.Path, e.Err)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}

// BuildError is returned under PolicyStrict when a compile or link step failed.
type BuildError struct {
	Failures []Diagnostic
}

func (e *BuildError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, d := range e.Failures {
		parts = append(parts, d.String())
	}
	return "shader build failed: " + strings.Join(parts, "; ")
}
