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

var configPath = flag.String("config", "triangle.toml", "settings file, optional")

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	cfg, logger, err := demo.Setup(*configPath,
		config.Default("Triangle", "shaders/main.vs.glsl", "shaders/main.fs.glsl"), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var r *renderer.Renderer
	conf := renderer.RendererConfig{
		VertexPath:   cfg.Shaders.Vertex,
		FragmentPath: cfg.Shaders.Fragment,
		Options:      cfg.ShaderOptions(),
		ClearColor:   mgl32.Vec4{0, 0, 0.4, 0},
		Logger:       logger,
	}
	window := gfx.NewWindow(demo.WindowConfig(cfg), renderer.NewRendererFactory(conf, scene.Triangle{}, &r))
	defer window.Close()

	window.Show()
	window.RefreshRate(cfg.Window.RefreshRate)

	if err := demo.WatchShaders(window, cfg, logger, r.Reload); err != nil {
		logger.Warn("shader hot reload disabled", "err", err)
	}

	window.ListenEvents(func(event gfx.Event) {
		switch {
		case demo.Quit(event):
			window.Stop()
		case demo.Reload(event):
			r.Reload()
		}
	}, gfx.DrainAll())

	logger.Info("Program closed")
}
