package gfx

import "github.com/kjkrol/gldemo/internal/platform"

// Key codes carried by KeyPress and KeyRelease.
const (
	KeyEscape = platform.KeyEscape
	KeySpace  = platform.KeySpace
	KeyLeft   = platform.KeyLeft
	KeyRight  = platform.KeyRight
	KeyUp     = platform.KeyUp
	KeyDown   = platform.KeyDown
	KeyR      = platform.KeyR
	KeyEqual  = platform.KeyEqual
	KeyMinus  = platform.KeyMinus
	KeyKPAdd  = platform.KeyKPAdd
	KeyKPSub  = platform.KeyKPSub
	KeyF5     = platform.KeyF5

	ButtonLeft  = platform.ButtonLeft
	ButtonRight = platform.ButtonRight
)
