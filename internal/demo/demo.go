// Package demo holds the start-up steps shared by the cmd programs.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kjkrol/gldemo/internal/logging"
	"github.com/kjkrol/gldemo/pkg/config"
	"github.com/kjkrol/gldemo/pkg/gfx"
	"github.com/kjkrol/gldemo/pkg/shader"
)

// Setup loads configPath over defaults and builds the logger it asks for.
func Setup(configPath string, defaults config.Config, out io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath, defaults)
	if err != nil {
		return cfg, nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return cfg, logging.New(out, level), nil
}

func WindowConfig(cfg config.Config) gfx.WindowConfig {
	return gfx.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Samples:   cfg.Window.Samples,
		GLMajor:   cfg.Window.GLMajor,
		GLMinor:   cfg.Window.GLMinor,
		VSync:     cfg.Window.VSync,
		Resizable: cfg.Window.Resizable,
	}
}

// Poster queues work on the thread that owns the GL context.
type Poster interface {
	Post(fn func()) bool
	Go(fn func(ctx context.Context))
}

// WatchShaders posts reload whenever one of the configured shader files
// changes. It does nothing unless hot reload is enabled.
func WatchShaders(w Poster, cfg config.Config, logger *slog.Logger, reload func()) error {
	if !cfg.Shaders.HotReload {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	watcher, err := shader.NewWatcher(logger, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}
	w.Go(func(ctx context.Context) {
		watcher.Run(ctx, func(path string) {
			logger.Info("shader changed, reloading", "path", path)
			if !w.Post(reload) {
				logger.Warn("reload dropped, event loop is not accepting work", "path", path)
			}
		})
	})
	return nil
}

// Quit reports whether event asks the demo to close.
func Quit(event gfx.Event) bool {
	switch e := event.(type) {
	case gfx.DestroyNotify:
		return true
	case gfx.KeyPress:
		return e.Code == gfx.KeyEscape
	}
	return false
}

// Reload reports whether event asks for a manual shader reload.
func Reload(event gfx.Event) bool {
	e, ok := event.(gfx.KeyPress)
	return ok && !e.Repeat && e.Code == gfx.KeyF5
}
