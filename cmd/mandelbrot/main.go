package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gldemo/internal/demo"
	_ "github.com/kjkrol/gldemo/internal/platform/glfwbackend"
	"github.com/kjkrol/gldemo/internal/renderer"
	"github.com/kjkrol/gldemo/pkg/config"
	"github.com/kjkrol/gldemo/pkg/gfx"
	"github.com/kjkrol/gldemo/pkg/scene"
)

var configPath = flag.String("config", "mandelbrot.toml", "settings file, optional")

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	cfg, logger, err := demo.Setup(*configPath,
		config.Default("Mandelbrot", "shaders/mandelbrot.vs.glsl", "shaders/mandelbrot.fs.glsl"), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fractal := scene.NewMandelbrot(cfg.Window.Width, cfg.Window.Height)

	var r *renderer.Renderer
	conf := renderer.RendererConfig{
		VertexPath:   cfg.Shaders.Vertex,
		FragmentPath: cfg.Shaders.Fragment,
		Options:      cfg.ShaderOptions(),
		ClearColor:   mgl32.Vec4{0, 0, 0, 1},
		Logger:       logger,
	}
	window := gfx.NewWindow(demo.WindowConfig(cfg), renderer.NewRendererFactory(conf, fractal, &r))
	defer window.Close()

	// fit the set to the real framebuffer, which is larger on HiDPI displays
	fractal.Resize(window.Size())
	fractal.View.Reset()

	window.Show()
	window.RefreshRate(cfg.Window.RefreshRate)

	if err := demo.WatchShaders(window, cfg, logger, r.Reload); err != nil {
		logger.Warn("shader hot reload disabled", "err", err)
	}

	// drags flood motion events, cap them per frame
	window.ListenEvents(func(event gfx.Event) {
		switch {
		case demo.Quit(event):
			window.Stop()
		case demo.Reload(event):
			r.Reload()
		default:
			version := fractal.View.Version()
			if fractal.Handle(event) && fractal.View.Version() != version {
				b := fractal.View.Bounds()
				logger.Debug("view changed", "center", b.Center(), "width", b.Width())
			}
		}
	}, gfx.DrainMax(64))

	logger.Info("Program closed")
}
