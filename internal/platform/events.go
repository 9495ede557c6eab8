package platform

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
type Resize struct {
	Width, Height int
}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}
