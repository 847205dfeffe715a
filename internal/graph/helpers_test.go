package graph

import (
	"context"
	"errors"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/registry"
	"github.com/vk/rendergraph/internal/renderer"
	"github.com/vk/rendergraph/internal/resource"
)

// callLog records lifecycle calls across all test handlers, in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(s string) {
	if l != nil {
		l.calls = append(l.calls, s)
	}
}

// beginHandler is a minimal frame_begin: it produces a framebuffer source
// named "colourbuffer" and a texture source named "depthbuffer".
type beginHandler struct {
	log *callLog
}

func (h *beginHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	h.log.add("create " + n.Name)
	depth := &resource.Texture{Label: n.Name + ".depth"}
	fb := &resource.Framebuffer{Label: n.Name, Color: &resource.Texture{}, Depth: depth}
	if _, err := n.AddSource("colourbuffer", resource.KindFramebuffer, resource.FramebufferValue(fb)); err != nil {
		return err
	}
	if _, err := n.AddSource("depthbuffer", resource.KindTexture, resource.TextureValue(depth)); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *beginHandler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	h.log.add("exec " + n.Name)
	return nil
}

// endHandler is a minimal frame_end: one framebuffer sink, no sources.
type endHandler struct {
	log *callLog
}

func (h *endHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	h.log.add("create " + n.Name)
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *endHandler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	h.log.add("exec " + n.Name)
	return fc.Renderer.Submit()
}

// relayHandler is a pass-through render pass: framebuffer sinks from config
// and a framebuffer source "colourbuffer" whose value is filled in from the
// first bound sink during Init.
type relayHandler struct {
	log *callLog
}

func (h *relayHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	h.log.add("create " + n.Name)
	if _, err := n.AddSource("colourbuffer", resource.KindFramebuffer, resource.Value{Kind: resource.KindFramebuffer}); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *relayHandler) Init(ctx context.Context, n *node.Node) error {
	h.log.add("init " + n.Name)
	if len(n.Sinks) > 0 {
		return n.SetSourceValue("colourbuffer", n.Sinks[0].Source.Value)
	}
	return nil
}

func (h *relayHandler) LoadResources(ctx context.Context, n *node.Node, r renderer.Renderer) error {
	h.log.add("load " + n.Name)
	return nil
}

func (h *relayHandler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	h.log.add("exec " + n.Name)
	return nil
}

func (h *relayHandler) Destroy(ctx context.Context, n *node.Node) {
	h.log.add("destroy " + n.Name)
}

// texSourceHandler produces a single texture source named "out".
type texSourceHandler struct{}

func (h *texSourceHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	if _, err := n.AddSource("out", resource.KindTexture, resource.TextureValue(&resource.Texture{Label: n.Name})); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindTexture)
}

// numRelayHandler has a number source "out" and number sinks; handy for
// building cycles without caring about payloads.
type numRelayHandler struct{}

func (h *numRelayHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	if _, err := n.AddSource("out", resource.KindNumber, resource.NumberValue(0)); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindNumber)
}

// failingHandler fails either at Create or at Execute, by configuration.
type failingHandler struct {
	log      *callLog
	onCreate bool
}

var errBoom = errors.New("boom")

func (h *failingHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	if h.onCreate {
		return errBoom
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *failingHandler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	h.log.add("exec " + n.Name)
	return errBoom
}

// sleepyHandler executes only on even frames.
type sleepyHandler struct {
	log *callLog
}

func (h *sleepyHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *sleepyHandler) Active(n *node.Node, fc *node.FrameContext) bool {
	return fc.Frame%2 == 0
}

func (h *sleepyHandler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	h.log.add("exec " + n.Name)
	return nil
}

// testRegistry wires every test node type against a shared call log.
func testRegistry(log *callLog) *registry.Registry {
	r := registry.New()
	r.RegisterNode(TypeFrameBegin, func() node.Handler { return &beginHandler{log: log} })
	r.RegisterNode(TypeFrameEnd, func() node.Handler { return &endHandler{log: log} })
	r.RegisterNode("relay", func() node.Handler { return &relayHandler{log: log} })
	r.RegisterNode("tex_source", func() node.Handler { return &texSourceHandler{} })
	r.RegisterNode("num_relay", func() node.Handler { return &numRelayHandler{} })
	r.RegisterNode("fail_exec", func() node.Handler { return &failingHandler{log: log} })
	r.RegisterNode("fail_create", func() node.Handler { return &failingHandler{log: log, onCreate: true} })
	r.RegisterNode("even_frames_only", func() node.Handler { return &sleepyHandler{log: log} })
	return r
}

// pnode builds a config node declaration; sinks are given as
// name:kind:source triples with kind possibly empty.
func pnode(typ, name string, sinks ...*config.Sink) *config.Node {
	return &config.Node{Type: typ, Name: name, Sinks: sinks}
}

func sink(name, kind, sourceRef string) *config.Sink {
	return &config.Sink{Name: name, Kind: kind, SourceRef: sourceRef}
}

// chainPipeline is the canonical four-node scenario: begin -> clear ->
// skybox -> end, linked through colourbuffer references.
func chainPipeline() *config.Pipeline {
	return &config.Pipeline{
		Name: "forward",
		Nodes: []*config.Node{
			pnode(TypeFrameBegin, "begin"),
			pnode("relay", "clear", sink("colourbuffer", "", "begin.colourbuffer")),
			pnode("relay", "skybox", sink("colourbuffer", "", "clear.colourbuffer")),
			pnode(TypeFrameEnd, "end", sink("colourbuffer", "", "skybox.colourbuffer")),
		},
	}
}
