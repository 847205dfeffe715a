package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/rendergraph/internal/ctxlog"
	"github.com/vk/rendergraph/internal/graph"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/renderer"
)

// newRenderer selects the rendering backend by name.
func newRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "", "null":
		return renderer.NewNull(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Building render graph from pipeline model...")
	g, err := graph.Build(ctx, a.pipeline, a.registry)
	if err != nil {
		return fmt.Errorf("failed to build render graph: %w", err)
	}
	a.logger.Debug("Render graph built.",
		"build_id", g.BuildID, "node_count", len(g.Nodes), "edge_count", len(g.Edges()))

	rend, err := newRenderer(appConfig.RendererName)
	if err != nil {
		return err
	}
	a.logger.Info("Renderer selected.", "renderer", rend.Name())

	if err := g.Setup(ctx, rend); err != nil {
		g.Destroy(ctx)
		return fmt.Errorf("graph setup failed: %w", err)
	}
	defer g.Destroy(ctx)

	a.logger.Info("🚀 Starting frame loop.", "frames", appConfig.Frames)
	var failed int
	prev := time.Now()
	for f := 0; f < appConfig.Frames; f++ {
		now := time.Now()
		fc := &node.FrameContext{
			Frame:    uint64(f),
			Delta:    now.Sub(prev).Seconds(),
			Renderer: rend,
		}
		prev = now

		if err := g.ExecuteFrame(ctx, fc); err != nil {
			// A failed frame is dropped; the graph stays valid for the next one.
			a.logger.Error("Frame aborted.", "frame", f, "error", err)
			failed++
		}
	}
	a.logger.Info("🏁 Frame loop finished.", "frames", appConfig.Frames, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d frames aborted", failed, appConfig.Frames)
	}
	return nil
}
