package shadow

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/renderer"
	"github.com/vk/rendergraph/internal/resource"
	"github.com/vk/rendergraph/internal/testutil"
)

func TestDefaults(t *testing.T) {
	h := &handler{}
	n := &node.Node{Name: "sun", Type: "shadow", Handler: h}
	require.NoError(t, h.Create(context.Background(), n, &config.Node{Name: "sun"}))

	sm := n.Source("shadowmap")
	require.NotNil(t, sm)
	assert.Equal(t, resource.KindTexture, sm.Kind)
	assert.Equal(t, uint32(1024), sm.Value.Texture.Size.Width)
	assert.Equal(t, gputypes.TextureFormatDepth24PlusStencil8, sm.Value.Texture.Format)

	bias := n.Source("bias")
	require.NotNil(t, bias)
	assert.Equal(t, resource.KindNumber, bias.Kind)
	assert.Equal(t, 0.005, bias.Value.Number)
}

func TestConfigOverrides(t *testing.T) {
	h := &handler{}
	n := &node.Node{Name: "sun", Handler: h}
	cfg := &config.Node{Name: "sun", Config: testutil.ParseBody(t, `
		resolution = 2048
		bias       = 0.001
	`)}
	require.NoError(t, h.Create(context.Background(), n, cfg))

	assert.Equal(t, uint32(2048), n.Source("shadowmap").Value.Texture.Size.Width)
	assert.Equal(t, 0.001, n.Source("bias").Value.Number)
}

func TestRejectsNonPositiveResolution(t *testing.T) {
	h := &handler{}
	n := &node.Node{Name: "sun", Handler: h}
	cfg := &config.Node{Name: "sun", Config: testutil.ParseBody(t, `resolution = 0`)}
	err := h.Create(context.Background(), n, cfg)
	require.ErrorContains(t, err, "resolution must be positive")
}

// framebufferFailRenderer creates textures normally but refuses to assemble
// a framebuffer from them.
type framebufferFailRenderer struct {
	*renderer.Null
}

func (r *framebufferFailRenderer) CreateFramebuffer(f *resource.Framebuffer) error {
	return errors.New("device lost")
}

func TestReleasesShadowmapWhenFramebufferFails(t *testing.T) {
	h := &handler{}
	n := &node.Node{Name: "sun", Handler: h}
	require.NoError(t, h.Create(context.Background(), n, &config.Node{Name: "sun"}))

	rend := &framebufferFailRenderer{Null: renderer.NewNull()}
	require.Error(t, h.LoadResources(context.Background(), n, rend))
	assert.Equal(t, 1, rend.TexturesCreated)

	// The shadowmap created before the failure must still be released.
	h.Destroy(context.Background(), n)
	assert.Equal(t, 1, rend.TexturesDestroyed)
}

func TestLoadExecuteDestroy(t *testing.T) {
	h := &handler{}
	n := &node.Node{Name: "sun", Handler: h}
	require.NoError(t, h.Create(context.Background(), n, &config.Node{Name: "sun"}))

	rend := renderer.NewNull()
	require.NoError(t, h.LoadResources(context.Background(), n, rend))
	assert.Equal(t, 1, rend.TexturesCreated)
	assert.Equal(t, 1, rend.FramebuffersCreated)

	require.NoError(t, h.Execute(context.Background(), n, &node.FrameContext{Renderer: rend}))
	assert.Equal(t, 1, rend.Clears)
	assert.Equal(t, []string{"sun.depth"}, rend.DrawLabels)

	h.Destroy(context.Background(), n)
	assert.Equal(t, 1, rend.TexturesDestroyed)
}
