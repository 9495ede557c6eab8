package shader

import "fmt"

// Program is a handle to a linked program object. Zero means no program.
type Program uint32

func (p Program) Valid() bool {
	return p != 0
}

// Status summarizes the outcome of a build.
type Status uint8

const (
	// StatusClean: every step succeeded and produced an empty info log.
	StatusClean Status = iota
	// StatusDiagnostic: every step succeeded but at least one log is non-empty.
	StatusDiagnostic
	// StatusFailed: a compile or link step reported failure.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusDiagnostic:
		return "diagnostic"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Diagnostic is the outcome of one compile or link step.
type Diagnostic struct {
	Step Step
	Path string
	OK   bool
	Log  string
}

func (d Diagnostic) String() string {
	target := d.Path
	if target == "" {
		target = "program"
	}
	if d.Log == "" {
		return fmt.Sprintf("%s %s: ok=%t", d.Step, target, d.OK)
	}
	return fmt.Sprintf("%s %s: ok=%t: %s", d.Step, target, d.OK, d.Log)
}

// Result carries the program handle together with every step's diagnostic.
type Result struct {
	Program     Program
	Status      Status
	Diagnostics []Diagnostic
}

// Usable reports whether the program linked cleanly enough to draw with.
func (r Result) Usable() bool {
	return r.Program.Valid() && r.Status != StatusFailed
}

// Logs returns the non-empty info logs in step order.
func (r Result) Logs() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Log != "" {
			out = append(out, d)
		}
	}
	return out
}

// Failures returns the diagnostics of failed steps.
func (r Result) Failures() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if !d.OK {
			out = append(out, d)
		}
	}
	return out
}

func (r *Result) summarize() {
	r.Status = StatusClean
	for _, d := range r.Diagnostics {
		if !d.OK {
			r.Status = StatusFailed
			return
		}
		if d.Log != "" {
			r.Status = StatusDiagnostic
		}
	}
}
