package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/renderer"
)

func TestSetupRunsInitThenLoad(t *testing.T) {
	log := &callLog{}
	g, err := Build(context.Background(), chainPipeline(), testRegistry(log))
	require.NoError(t, err)

	log.calls = nil
	require.NoError(t, g.Setup(context.Background(), renderer.NewNull()))

	// Relays implement both stages; all Inits precede all LoadResources,
	// each in execution order.
	assert.Equal(t, []string{"init clear", "init skybox", "load clear", "load skybox"}, log.calls)

	// Init saw the bound sources: the relay pass-through propagated begin's
	// framebuffer down the whole chain.
	beginFB := g.NodeByName("begin").Source("colourbuffer").Value.Framebuffer
	require.NotNil(t, beginFB)
	assert.Same(t, beginFB, g.NodeByName("skybox").Source("colourbuffer").Value.Framebuffer)
}

func TestExecuteFrameOrderAndCount(t *testing.T) {
	log := &callLog{}
	g, err := Build(context.Background(), chainPipeline(), testRegistry(log))
	require.NoError(t, err)
	rend := renderer.NewNull()
	require.NoError(t, g.Setup(context.Background(), rend))

	log.calls = nil
	for frame := uint64(0); frame < 3; frame++ {
		fc := &node.FrameContext{Frame: frame, Delta: 1.0 / 60.0, Renderer: rend}
		require.NoError(t, g.ExecuteFrame(context.Background(), fc))
	}

	want := []string{"exec begin", "exec clear", "exec skybox", "exec end"}
	assert.Equal(t, append(append(append([]string{}, want...), want...), want...), log.calls)
	assert.Equal(t, 3, rend.Submits)
}

func TestExecuteFrameSkipsInactiveNodes(t *testing.T) {
	log := &callLog{}
	p := &config.Pipeline{Name: "p", Nodes: []*config.Node{
		pnode(TypeFrameBegin, "begin"),
		pnode("even_frames_only", "flicker", sink("colourbuffer", "", "begin.colourbuffer")),
		pnode(TypeFrameEnd, "end", sink("colourbuffer", "", "begin.colourbuffer")),
	}}
	g, err := Build(context.Background(), p, testRegistry(log))
	require.NoError(t, err)
	rend := renderer.NewNull()

	log.calls = nil
	for frame := uint64(0); frame < 2; frame++ {
		fc := &node.FrameContext{Frame: frame, Renderer: rend}
		require.NoError(t, g.ExecuteFrame(context.Background(), fc))
	}

	assert.Equal(t, []string{
		"exec begin", "exec flicker", "exec end", // frame 0: active
		"exec begin", "exec end", // frame 1: skipped
	}, log.calls)
}

func TestExecuteFrameFailureAbortsFrameOnly(t *testing.T) {
	log := &callLog{}
	p := &config.Pipeline{Name: "p", Nodes: []*config.Node{
		pnode(TypeFrameBegin, "begin"),
		pnode("fail_exec", "broken", sink("colourbuffer", "", "begin.colourbuffer")),
		pnode("relay", "after", sink("colourbuffer", "", "begin.colourbuffer")),
		pnode(TypeFrameEnd, "end", sink("colourbuffer", "", "after.colourbuffer")),
	}}
	g, err := Build(context.Background(), p, testRegistry(log))
	require.NoError(t, err)
	rend := renderer.NewNull()
	require.NoError(t, g.Setup(context.Background(), rend))

	log.calls = nil
	fc := &node.FrameContext{Frame: 0, Renderer: rend}
	err = g.ExecuteFrame(context.Background(), fc)
	require.ErrorIs(t, err, ErrNodeFailed)
	assert.ErrorContains(t, err, `"broken"`)

	// Nodes after the failure did not run this frame.
	assert.Equal(t, []string{"exec begin", "exec broken"}, log.calls)

	// The graph stays valid: the next frame runs up to the failing node again.
	log.calls = nil
	fc = &node.FrameContext{Frame: 1, Renderer: rend}
	err = g.ExecuteFrame(context.Background(), fc)
	require.ErrorIs(t, err, ErrNodeFailed)
	assert.Equal(t, []string{"exec begin", "exec broken"}, log.calls)
}

func TestDestroyVisitsEveryNodeOnce(t *testing.T) {
	log := &callLog{}
	g, err := Build(context.Background(), chainPipeline(), testRegistry(log))
	require.NoError(t, err)

	log.calls = nil
	g.Destroy(context.Background())

	// Only the relays implement Destroy.
	assert.ElementsMatch(t, []string{"destroy clear", "destroy skybox"}, log.calls)
}
