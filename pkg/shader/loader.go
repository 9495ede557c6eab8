package shader

import "log/slog"

// Loader owns the program built from one vertex/fragment pair and swaps it on
// reload only when the rebuilt program is usable.
type Loader struct {
	builder  *Builder
	driver   Driver
	logger   *slog.Logger
	vertex   string
	fragment string
	current  Result
}

func NewLoader(driver Driver, logger *slog.Logger, opts Options, vertexPath, fragmentPath string) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		builder:  NewBuilder(driver, logger, opts),
		driver:   driver,
		logger:   logger,
		vertex:   vertexPath,
		fragment: fragmentPath,
	}
}

// Paths returns the vertex and fragment source paths.
func (l *Loader) Paths() (string, string) {
	return l.vertex, l.fragment
}

// Current is the result of the last build that was kept.
func (l *Loader) Current() Result {
	return l.current
}

// Load builds the program and replaces whatever was held before.
func (l *Loader) Load() (Result, error) {
	res, err := l.builder.Build(l.vertex, l.fragment)
	l.Release()
	l.current = res
	return res, err
}

// Reload rebuilds the program. The new program replaces the current one only
// if it is usable; otherwise it is deleted and the current one is kept.
func (l *Loader) Reload() (Result, bool) {
	res, err := l.builder.Build(l.vertex, l.fragment)
	if err != nil || !res.Usable() {
		if res.Program.Valid() {
			l.driver.DeleteProgram(uint32(res.Program))
		}
		l.logger.Warn("shader reload rejected, keeping previous program",
			"vertex", l.vertex, "fragment", l.fragment, "status", res.Status)
		return res, false
	}
	l.Release()
	l.current = res
	l.logger.Info("shader reloaded", "vertex", l.vertex, "fragment", l.fragment, "status", res.Status)
	return res, true
}

// Release deletes the held program.
func (l *Loader) Release() {
	if l.current.Program.Valid() {
		l.driver.DeleteProgram(uint32(l.current.Program))
	}
	l.current = Result{}
}
