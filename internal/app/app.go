package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/ctxlog"
	"github.com/vk/rendergraph/internal/registry"
)

// newLogger builds the App's isolated slog.Logger. The level string follows
// slog's own spelling ("debug", "info", "warn", "error"); anything else falls
// back to info. It never touches the process-global default.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	pipeline *config.Pipeline
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all configuration into the format-agnostic pipeline model first.
	pipeline, err := loader.Load(ctx, appConfig.PipelinePath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.",
		"pipeline", pipeline.Name, "node_count", len(pipeline.Nodes))

	// Create and populate the registry with node type factories.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All node modules registered.", "count", len(modules), "types", reg.Types())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		pipeline: pipeline,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Pipeline returns the loaded pipeline model. This is primarily for testing.
func (a *App) Pipeline() *config.Pipeline {
	return a.pipeline
}
