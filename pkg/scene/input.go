package scene

import "github.com/kjkrol/gldemo/pkg/gfx"

const (
	// KeyPanPixels is how far one arrow key press drags the view.
	KeyPanPixels = 32
	// ZoomStep is the zoom factor of one wheel notch or +/- press.
	ZoomStep = 1.25
)

// Handle toggles the rotation on Space and reports whether the event was used.
func (c *Cube) Handle(event gfx.Event) bool {
	if e, ok := event.(gfx.KeyPress); ok && e.Code == gfx.KeySpace && !e.Repeat {
		c.Spin.Toggle()
		return true
	}
	return false
}

// Handle applies navigation input to the view and reports whether the event
// was used.
func (m *Mandelbrot) Handle(event gfx.Event) bool {
	switch e := event.(type) {
	case gfx.KeyPress:
		return m.handleKey(e)
	case gfx.ButtonPress:
		if e.Button == gfx.ButtonLeft {
			m.dragging = true
			m.lastX, m.lastY = e.X, e.Y
			return true
		}
	case gfx.ButtonRelease:
		if e.Button == gfx.ButtonLeft {
			m.dragging = false
			return true
		}
	case gfx.MotionNotify:
		m.cursorX, m.cursorY = e.X, e.Y
		m.hasCursor = true
		if m.dragging {
			m.View.Pan(float64(e.X-m.lastX), float64(e.Y-m.lastY))
			m.lastX, m.lastY = e.X, e.Y
			return true
		}
	case gfx.LeaveNotify:
		m.dragging = false
		m.hasCursor = false
	case gfx.MouseWheel:
		if e.DeltaY == 0 {
			return false
		}
		factor := ZoomStep
		if e.DeltaY < 0 {
			factor = 1 / ZoomStep
		}
		m.View.Zoom(factor, float64(e.X), float64(e.Y))
		return true
	}
	return false
}

func (m *Mandelbrot) handleKey(e gfx.KeyPress) bool {
	w, h := m.View.Size()
	switch e.Code {
	case gfx.KeyLeft:
		m.View.Pan(KeyPanPixels, 0)
	case gfx.KeyRight:
		m.View.Pan(-KeyPanPixels, 0)
	case gfx.KeyUp:
		m.View.Pan(0, KeyPanPixels)
	case gfx.KeyDown:
		m.View.Pan(0, -KeyPanPixels)
	case gfx.KeyEqual, gfx.KeyKPAdd:
		m.View.Zoom(ZoomStep, m.anchor(m.cursorX, w), m.anchor(m.cursorY, h))
	case gfx.KeyMinus, gfx.KeyKPSub:
		m.View.Zoom(1/ZoomStep, m.anchor(m.cursorX, w), m.anchor(m.cursorY, h))
	case gfx.KeyR:
		m.View.Reset()
	default:
		return false
	}
	return true
}

// anchor falls back to the center while the cursor is outside the window.
func (m *Mandelbrot) anchor(pos, size int) float64 {
	if !m.hasCursor {
		return float64(size) / 2
	}
	return float64(pos)
}
