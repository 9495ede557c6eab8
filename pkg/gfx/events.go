package gfx

import (
	"github.com/kjkrol/gldemo/internal/platform"
)

type Event interface{}

type KeyPress struct {
	Code   uint64
	Label  string
	Repeat bool
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type EnterNotify struct{}
type LeaveNotify struct{}
type DestroyNotify struct{}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}

// Resize carries the new framebuffer size in pixels.
type Resize struct {
	Width, Height int
}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label, Repeat: e.Repeat}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Label: e.Label}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return MotionNotify{X: e.X, Y: e.Y}
	case platform.EnterNotify:
		return EnterNotify{}
	case platform.LeaveNotify:
		return LeaveNotify{}
	case platform.DestroyNotify:
		return DestroyNotify{}
	case platform.MouseWheel:
		return MouseWheel{DeltaX: e.DeltaX, DeltaY: e.DeltaY, X: e.X, Y: e.Y}
	case platform.Resize:
		return Resize{Width: e.Width, Height: e.Height}
	default:
		return UnexpectedEvent{}
	}
}
