//go:build !js

package renderer

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/gldemo/internal/gldriver"
	"github.com/kjkrol/gldemo/pkg/gfx"
	"github.com/kjkrol/gldemo/pkg/scene"
	"github.com/kjkrol/gldemo/pkg/shader"
)

// Renderer draws one scene with a program loaded from disk. All methods run
// on the thread that owns the GL context.
type Renderer struct {
	conf   RendererConfig
	scene  scene.Scene
	logger *slog.Logger

	loader   *shader.Loader
	uniforms *uniforms
	mesh     *meshState

	width       int
	height      int
	initialized bool
	failed      bool
}

func newRenderer(w *gfx.Window, conf RendererConfig, s scene.Scene) *Renderer {
	r := &Renderer{
		conf:   conf,
		scene:  s,
		logger: conf.logger(),
	}
	r.width, r.height = w.Size()
	return r
}

func (r *Renderer) ensureInit() bool {
	if r.initialized {
		return true
	}
	if r.failed {
		return false
	}

	r.loader = shader.NewLoader(gldriver.New(), r.logger, r.conf.Options, r.conf.VertexPath, r.conf.FragmentPath)
	res, err := r.loader.Load()
	if err != nil {
		r.logger.Error("shader program unavailable", "err", err)
	}
	r.useProgram(res)

	m, err := uploadMesh(r.scene.Mesh())
	if err != nil {
		r.logger.Error("mesh upload failed", "err", err)
		r.failed = true
		return false
	}
	r.mesh = m

	r.scene.Resize(r.width, r.height)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	c := r.conf.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	r.initialized = true
	return true
}

func (r *Renderer) useProgram(res shader.Result) {
	if !res.Usable() {
		r.uniforms = nil
		return
	}
	r.uniforms = newUniforms(uint32(res.Program))
}

func (r *Renderer) Render(w *gfx.Window) {
	if !r.ensureInit() {
		return
	}

	if width, height := w.Size(); width != r.width || height != r.height {
		r.width, r.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		r.scene.Resize(width, height)
	}

	if r.scene.DepthTest() {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	} else {
		gl.Disable(gl.DEPTH_TEST)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	if r.uniforms == nil {
		return
	}
	gl.UseProgram(r.uniforms.program)
	r.scene.Apply(r.uniforms)
	r.mesh.draw()
	gl.UseProgram(0)
}

// Reload rebuilds the program from disk and keeps the previous one when the
// rebuild is not usable.
func (r *Renderer) Reload() {
	if !r.initialized {
		return
	}
	if res, ok := r.loader.Reload(); ok {
		r.useProgram(res)
	}
}

func (r *Renderer) Close() {
	if r.mesh != nil {
		r.mesh.delete()
		r.mesh = nil
	}
	if r.loader != nil {
		r.loader.Release()
	}
	r.uniforms = nil
	r.initialized = false
}
