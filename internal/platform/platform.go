package platform

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Samples   int
	GLMajor   int
	GLMinor   int
	VSync     bool
	Resizable bool
}

type PlatformWindowWrapper interface {
	Show()
	Close()
	// NextEventTimeout waits up to timeoutMs for an event and returns
	// TimeoutEvent when none arrived.
	NextEventTimeout(timeoutMs int) Event
	BeginFrame()
	EndFrame()
	FramebufferSize() (int, int)
}

// Backend creates platform windows. Exactly one backend is registered by the
// program, usually through a blank import of its package.
type Backend func(conf WindowConfig) PlatformWindowWrapper

var backend Backend

func Register(b Backend) {
	backend = b
}

func NewPlatformWindowWrapper(conf WindowConfig) PlatformWindowWrapper {
	if backend == nil {
		panic("no platform backend registered")
	}
	return backend(conf)
}
