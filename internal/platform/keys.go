package platform

// Key codes follow GLFW. Buttons use X11 numbering, left is 1.
const (
	KeySpace  uint64 = 32
	KeyMinus  uint64 = 45
	KeyEqual  uint64 = 61
	KeyR      uint64 = 82
	KeyEscape uint64 = 256
	KeyRight  uint64 = 262
	KeyLeft   uint64 = 263
	KeyDown   uint64 = 264
	KeyUp     uint64 = 265
	KeyF5     uint64 = 294
	KeyKPSub  uint64 = 333
	KeyKPAdd  uint64 = 334

	ButtonLeft  uint32 = 1
	ButtonRight uint32 = 2
)
