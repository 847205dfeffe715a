// Package hcl is the HCL implementation of the config.Loader interface. It
// discovers .hcl files, decodes pipeline blocks and translates them into the
// format-agnostic config model.
package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/ctxlog"
)

// Loader loads render pipeline definitions from HCL files.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from the given paths and returns the
// single pipeline they define. Zero or multiple pipeline blocks across the
// file set is a configuration error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Pipeline, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var pipelines []*pipelineBlock

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		pipelines = append(pipelines, root.Pipelines...)
	}

	if len(pipelines) == 0 {
		return nil, fmt.Errorf("no pipeline block found in %d file(s)", len(files))
	}
	if len(pipelines) > 1 {
		return nil, fmt.Errorf("expected exactly one pipeline block, found %d", len(pipelines))
	}

	pipeline, err := translatePipeline(pipelines[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "pipeline", pipeline.Name, "nodes", len(pipeline.Nodes))
	return pipeline, nil
}

// findHCLFiles walks all given paths and returns a flat, deduplicated list
// of .hcl files. Files are returned in walk order so repeated loads see the
// same sequence.
func findHCLFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; !ok {
			files = append(files, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
