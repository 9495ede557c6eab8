// Package config loads the optional per-demo TOML settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kjkrol/gldemo/pkg/shader"
)

type Config struct {
	Window  Window  `toml:"window"`
	Shaders Shaders `toml:"shaders"`
	Log     Log     `toml:"log"`
}

type Window struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Title       string `toml:"title"`
	Samples     int    `toml:"samples"`
	GLMajor     int    `toml:"gl_major"`
	GLMinor     int    `toml:"gl_minor"`
	VSync       bool   `toml:"vsync"`
	Resizable   bool   `toml:"resizable"`
	RefreshRate int    `toml:"refresh_rate"`
}

type Shaders struct {
	Vertex                 string `toml:"vertex"`
	Fragment               string `toml:"fragment"`
	Strict                 bool   `toml:"strict"`
	LegacyFragmentFallback bool   `toml:"legacy_fragment_fallback"`
	HotReload              bool   `toml:"hot_reload"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the settings every demo starts from.
func Default(title, vertex, fragment string) Config {
	return Config{
		Window: Window{
			Width:       1024,
			Height:      768,
			Title:       title,
			Samples:     4,
			GLMajor:     3,
			GLMinor:     3,
			VSync:       true,
			Resizable:   true,
			RefreshRate: 60,
		},
		Shaders: Shaders{
			Vertex:   vertex,
			Fragment: fragment,
		},
		Log: Log{Level: "info"},
	}
}

// Load overlays the TOML file at path on defaults. A missing file is not an
// error and yields defaults unchanged.
func Load(path string, defaults Config) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f, defaults)
	if err != nil {
		return defaults, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML read from r on defaults and validates the result.
func Decode(r io.Reader, defaults Config) (Config, error) {
	cfg := defaults
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return defaults, err
	}
	if err := cfg.Validate(); err != nil {
		return defaults, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is below the required 3.3 core", c.Window.GLMajor, c.Window.GLMinor))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples %d must not be negative", c.Window.Samples))
	}
	if c.Window.RefreshRate < 0 {
		errs = append(errs, fmt.Errorf("refresh rate %d must not be negative", c.Window.RefreshRate))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("vertex and fragment shader paths are required"))
	}
	return errors.Join(errs...)
}

// ShaderOptions maps the shader section onto builder options.
func (c Config) ShaderOptions() shader.Options {
	opts := shader.Options{LegacyFragmentFallback: c.Shaders.LegacyFragmentFallback}
	if c.Shaders.Strict {
		opts.Policy = shader.PolicyStrict
	}
	return opts
}
