package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gldemo/pkg/gfx"
	"github.com/kjkrol/gldemo/pkg/mesh"
)

// Uniforms sets values on the active program. Unknown names are ignored.
type Uniforms interface {
	Mat4(name string, m mgl32.Mat4)
	Vec4(name string, v mgl32.Vec4)
	Vec2(name string, v mgl32.Vec2)
	Int(name string, v int32)
}

// Scene is what a demo draws: one mesh plus the uniforms that go with it.
type Scene interface {
	Mesh() mesh.Mesh
	DepthTest() bool
	Resize(width, height int)
	Apply(u Uniforms)
}

// Triangle draws the flat colored triangle.
type Triangle struct{}

func (Triangle) Mesh() mesh.Mesh          { return mesh.Triangle() }
func (Triangle) DepthTest() bool          { return false }
func (Triangle) Resize(width, height int) {}
func (Triangle) Apply(Uniforms)           {}

// Cube draws the rotating cube.
type Cube struct {
	Spin *Spin
}

func NewCube(width, height int) *Cube {
	return &Cube{Spin: NewSpin(width, height)}
}

func (c *Cube) Mesh() mesh.Mesh { return mesh.Cube() }
func (c *Cube) DepthTest() bool { return true }

func (c *Cube) Resize(width, height int) {
	c.Spin.Resize(width, height)
}

func (c *Cube) Apply(u Uniforms) {
	u.Mat4("MVP", c.Spin.MVP())
}

// DefaultIterations bounds the escape-time loop of the Mandelbrot shader.
const DefaultIterations = 256

// Mandelbrot draws the escape-time fractal for the bounds of View.
type Mandelbrot struct {
	View       *gfx.Viewport
	Iterations int32

	dragging         bool
	lastX, lastY     int
	cursorX, cursorY int
	hasCursor        bool
}

// MandelbrotHome is the classic framing of the whole set.
func MandelbrotHome() gfx.Bounds {
	return gfx.NewBounds(-2.5, -1.25, 1.0, 1.25)
}

func NewMandelbrot(width, height int) *Mandelbrot {
	m := &Mandelbrot{
		View:       gfx.NewViewport(MandelbrotHome(), width, height),
		Iterations: DefaultIterations,
	}
	m.View.Reset()
	return m
}

func (m *Mandelbrot) Mesh() mesh.Mesh { return mesh.FullscreenQuad() }
func (m *Mandelbrot) DepthTest() bool { return false }

func (m *Mandelbrot) Resize(width, height int) {
	m.View.Resize(width, height)
}

func (m *Mandelbrot) Apply(u Uniforms) {
	w, h := m.View.Size()
	u.Vec4("uBounds", mgl32.Vec4(m.View.Bounds().Vec4()))
	u.Vec2("uResolution", mgl32.Vec2{float32(w), float32(h)})
	u.Int("uIterations", m.Iterations)
}
