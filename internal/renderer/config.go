package renderer

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gldemo/pkg/shader"
)

// RendererConfig names the shader pair a renderer draws its scene with.
type RendererConfig struct {
	VertexPath   string
	FragmentPath string
	Options      shader.Options
	ClearColor   mgl32.Vec4
	Logger       *slog.Logger
}

func (c RendererConfig) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
