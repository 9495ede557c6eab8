package shader

// Stage identifies one compilable unit of a program.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Step is a single driver operation whose info log is reported.
type Step uint8

const (
	StepCompileVertex Step = iota
	StepCompileFragment
	StepLink
)

func (s Step) String() string {
	switch s {
	case StepCompileVertex:
		return "compile vertex"
	case StepCompileFragment:
		return "compile fragment"
	case StepLink:
		return "link"
	default:
		return "unknown"
	}
}

func compileStep(stage Stage) Step {
	if stage == StageFragment {
		return StepCompileFragment
	}
	return StepCompileVertex
}
