//go:build !js

// Package glfwbackend registers a GLFW window with an OpenGL core context as
// the platform backend.
package glfwbackend

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/gldemo/internal/platform"
)

func init() {
	platform.Register(New)
}

type glfwWindowWrapper struct {
	window *glfw.Window
	queue  []platform.Event
}

// New creates a hidden window with a current OpenGL core context. The calling
// goroutine stays locked to its thread until Close.
func New(conf platform.WindowConfig) platform.PlatformWindowWrapper {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		panic(fmt.Sprintf("glfw init error: %v", err))
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Samples, conf.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, conf.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if conf.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		panic(fmt.Sprintf("glfw create window error: %v", err))
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		panic(fmt.Sprintf("gl init error: %v", err))
	}
	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindowWrapper{window: window}
	w.installCallbacks()
	return w
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := keyLabel(key, scancode)
		switch action {
		case glfw.Press:
			w.push(platform.KeyPress{Code: uint64(key), Label: label})
		case glfw.Repeat:
			w.push(platform.KeyPress{Code: uint64(key), Label: label, Repeat: true})
		case glfw.Release:
			w.push(platform.KeyRelease{Code: uint64(key), Label: label})
		}
	})
	w.window.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.cursor(win.GetCursorPos())
		// X11 numbering: left button is 1.
		b := uint32(button) + 1
		if action == glfw.Press {
			w.push(platform.ButtonPress{Button: b, X: x, Y: y})
		} else {
			w.push(platform.ButtonRelease{Button: b, X: x, Y: y})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, cx, cy float64) {
		x, y := w.cursor(cx, cy)
		w.push(platform.MotionNotify{X: x, Y: y})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.push(platform.EnterNotify{})
		} else {
			w.push(platform.LeaveNotify{})
		}
	})
	w.window.SetScrollCallback(func(win *glfw.Window, dx, dy float64) {
		x, y := w.cursor(win.GetCursorPos())
		w.push(platform.MouseWheel{DeltaX: dx, DeltaY: dy, X: x, Y: y})
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(platform.Resize{Width: width, Height: height})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.push(platform.DestroyNotify{})
	})
}

// cursor converts screen coordinates to framebuffer pixels, which differ on
// HiDPI displays.
func (w *glfwWindowWrapper) cursor(x, y float64) (int, int) {
	ww, wh := w.window.GetSize()
	fw, fh := w.window.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		x *= float64(fw) / float64(ww)
		y *= float64(fh) / float64(wh)
	}
	return int(x), int(y)
}

func (w *glfwWindowWrapper) push(e platform.Event) {
	w.queue = append(w.queue, e)
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	w.window.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}

func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) platform.Event {
	if len(w.queue) == 0 {
		if timeoutMs > 0 {
			glfw.WaitEventsTimeout((time.Duration(timeoutMs) * time.Millisecond).Seconds())
		} else {
			glfw.PollEvents()
		}
	}
	if len(w.queue) == 0 {
		return platform.TimeoutEvent{}
	}
	e := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return e
}

func (w *glfwWindowWrapper) BeginFrame() {}

func (w *glfwWindowWrapper) EndFrame() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}
