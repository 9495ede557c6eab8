package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gldemo/internal/demo"
	_ "github.com/kjkrol/gldemo/internal/platform/glfwbackend"
	"github.com/kjkrol/gldemo/internal/renderer"
	"github.com/kjkrol/gldemo/pkg/config"
	"github.com/kjkrol/gldemo/pkg/gfx"
	"github.com/kjkrol/gldemo/pkg/scene"
)

var configPath = flag.String("config", "cube.toml", "settings file, optional")

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	cfg, logger, err := demo.Setup(*configPath,
		config.Default("Cube", "shaders/cube.vs.glsl", "shaders/cube.fs.glsl"), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cube := scene.NewCube(cfg.Window.Width, cfg.Window.Height)

	var r *renderer.Renderer
	conf := renderer.RendererConfig{
		VertexPath:   cfg.Shaders.Vertex,
		FragmentPath: cfg.Shaders.Fragment,
		Options:      cfg.ShaderOptions(),
		ClearColor:   mgl32.Vec4{0, 0, 0.4, 0},
		Logger:       logger,
	}
	window := gfx.NewWindow(demo.WindowConfig(cfg), renderer.NewRendererFactory(conf, cube, &r))
	defer window.Close()

	window.Show()
	window.RefreshRate(cfg.Window.RefreshRate)
	window.StartAnimation(gfx.NewAnimation(window.FrameDelay(), func(elapsed time.Duration) {
		cube.Spin.Advance(elapsed.Seconds())
	}))

	if err := demo.WatchShaders(window, cfg, logger, r.Reload); err != nil {
		logger.Warn("shader hot reload disabled", "err", err)
	}

	window.ListenEvents(func(event gfx.Event) {
		switch {
		case demo.Quit(event):
			window.Stop()
		case demo.Reload(event):
			r.Reload()
		case cube.Handle(event):
			logger.Debug("rotation toggled", "paused", cube.Spin.Paused())
		}
	}, gfx.DrainAll())

	logger.Info("Program closed")
}
