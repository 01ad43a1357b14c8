package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/uaschema/internal/bootstrap"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	modules  []registry.Module

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and an empty registry. Without explicit modules the
// compiled-in ones are used unless cfg.NoBuiltins is set.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 && !cfg.NoBuiltins {
		modules = CoreModules()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: registry.New(registry.WithLogger(logger)),
		modules:  modules,
	}
}

// Load bootstraps the registry from the configured modules and paths.
func (a *App) Load(ctx context.Context) (*bootstrap.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Loading declarations.", "paths", a.config.Paths, "modules", len(a.modules))

	return bootstrap.Run(ctx, a.registry, bootstrap.Options{
		Paths:   a.config.Paths,
		Workers: a.config.WorkerCount,
		Modules: a.modules,
	})
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
