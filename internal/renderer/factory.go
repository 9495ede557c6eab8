//go:build !js

package renderer

import (
	"github.com/kjkrol/gldemo/pkg/gfx"
	"github.com/kjkrol/gldemo/pkg/scene"
)

// NewRendererFactory returns a factory drawing s. The renderer is handed back
// through out so the caller can trigger reloads on it.
func NewRendererFactory(conf RendererConfig, s scene.Scene, out **Renderer) gfx.RendererFactory {
	return func(w *gfx.Window) gfx.Renderer {
		r := newRenderer(w, conf, s)
		if out != nil {
			*out = r
		}
		return r
	}
}
