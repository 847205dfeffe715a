// Package testutil provides shared helpers for tests that exercise the HCL
// loading and graph building pipeline end to end.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	hclv2 "github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/require"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/graph"
	"github.com/vk/rendergraph/internal/hcl"
	"github.com/vk/rendergraph/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles materializes the given relative path to content mapping in a
// fresh temp directory and returns its root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return tmpDir
}

// LoadPipeline parses the given HCL files through the real loader.
func LoadPipeline(t *testing.T, files map[string]string) (*config.Pipeline, error) {
	t.Helper()
	dir := WriteFiles(t, files)
	return hcl.NewLoader().Load(context.Background(), dir)
}

// BuildFromHCL runs the full load-and-build pipeline against the given
// registry. The files map uses paths relative to a fresh temp directory.
func BuildFromHCL(t *testing.T, files map[string]string, reg *registry.Registry) (*graph.Graph, error) {
	t.Helper()
	p, err := LoadPipeline(t, files)
	if err != nil {
		return nil, err
	}
	return graph.Build(context.Background(), p, reg)
}

// ParseBody parses an HCL snippet into a body, for handing a node handler its
// config block directly.
func ParseBody(t *testing.T, src string) hclv2.Body {
	t.Helper()
	f, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "parsing test HCL: %s", diags)
	return f.Body
}
