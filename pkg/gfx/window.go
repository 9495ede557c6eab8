package gfx

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/kjkrol/gldemo/internal/platform"
)

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

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Width:     w.Width,
		Height:    w.Height,
		Title:     w.Title,
		Samples:   w.Samples,
		GLMajor:   w.GLMajor,
		GLMinor:   w.GLMinor,
		VSync:     w.VSync,
		Resizable: w.Resizable,
	}
}

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	refreshDelay       time.Duration
	width              int
	height             int
	wg                 sync.WaitGroup
	ctx                context.Context
	cancel             context.CancelFunc

	updates chan func()
	delta   time.Duration
}

const updatesBufferSize = 1024

func NewWindow(conf WindowConfig, factory RendererFactory) *Window {
	window := Window{
		platformWinWrapper: platform.NewPlatformWindowWrapper(conf.convert()),
		updates:            make(chan func(), updatesBufferSize),
		width:              conf.Width,
		height:             conf.Height,
	}
	if window.platformWinWrapper == nil {
		panic("platform window wrapper is required")
	}
	// HiDPI framebuffers can be larger than the requested window size.
	if fw, fh := window.platformWinWrapper.FramebufferSize(); fw > 0 && fh > 0 {
		window.width, window.height = fw, fh
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	if factory != nil {
		window.renderer = factory(&window)
	}
	return &window
}

// Size is the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

// FrameDelta is the time elapsed between the last two rendered frames.
func (w *Window) FrameDelta() time.Duration {
	return w.delta
}

// Context is cancelled by Stop.
func (w *Window) Context() context.Context {
	return w.ctx
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

// RefreshRate sets how many frames per second the event loop renders.
func (w *Window) RefreshRate(fps int) {
	w.refreshDelay = FramePeriod(fps)
}

// FrameDelay is the render interval set by RefreshRate.
func (w *Window) FrameDelay() time.Duration {
	return w.refreshDelay
}

func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	w.cancel()
	w.wg.Wait()
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// Post queues fn to run on the event loop thread before the next frame.
// It is safe to call from any goroutine and reports false once the window
// is stopped or the queue is full.
func (w *Window) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-w.ctx.Done():
		return false
	default:
	}
	select {
	case w.updates <- fn:
		return true
	default:
		return false
	}
}

// Go runs fn on a goroutine tracked by the window; Close waits for it.
func (w *Window) Go(fn func(ctx context.Context)) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		fn(w.ctx)
	}()
}

func (w *Window) ListenEvents(handleEvent func(event Event), strategy EventsConsumerStrategy) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if strategy == nil {
		strategy = DrainAll()
	}
	poll := func(timeoutMs int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	handle := func(event Event) {
		if e, ok := event.(Resize); ok && e.Width > 0 && e.Height > 0 {
			w.width, w.height = e.Width, e.Height
		}
		if handleEvent != nil {
			handleEvent(event)
		}
	}

	clock := newFrameClock(w.refreshDelay, time.Now())
	for {
		select {
		case <-w.ctx.Done():
			return
		default:
			strategy.Consume(poll, handle, clock.waitMs(time.Now()))

			if now := time.Now(); clock.due(now) {
				w.drainUpdates()
				w.delta = clock.tick(now)

				w.platformWinWrapper.BeginFrame()
				if w.renderer != nil {
					w.renderer.Render(w)
				}
				w.platformWinWrapper.EndFrame()
			}
		}
	}
}

func (w *Window) drainUpdates() {
	for {
		select {
		case upd := <-w.updates:
			upd()
		default:
			return
		}
	}
}

func (w *Window) StartAnimation(animation *Animation) {
	animation.Run(w.ctx, &w.wg, w.updates)
}
