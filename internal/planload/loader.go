// Package planload implements config.Loader on top of the HCL and YAML plan
// formats. It expands directories, dispatches every plan file to the parser
// for its extension and merges the resulting steps in a stable order.
package planload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/ctxlog"
	"github.com/vk/mendgrid/internal/fsutil"
	"github.com/vk/mendgrid/internal/hclplan"
	"github.com/vk/mendgrid/internal/yamlplan"
)

// parseFunc parses one plan file.
type parseFunc func(ctx context.Context, path string) ([]*config.Step, error)

type format struct {
	extensions []string
	parse      parseFunc
}

var formats = []format{
	{extensions: hclplan.Extensions, parse: hclplan.ParseFile},
	{extensions: yamlplan.Extensions, parse: yamlplan.ParseFile},
}

// Loader is the multi-format implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every plan file reachable from paths. Each path is either a
// plan file or a directory searched recursively. A path that does not exist
// is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Plan loader started.", "path_count", len(paths))

	files, err := findPlanFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered plan files.", "count", len(files), "files", files)

	model := &config.Model{}
	for _, file := range files {
		f, ok := formatFor(file)
		if !ok {
			return nil, fmt.Errorf("unsupported plan file %s: expected one of %v", file, supportedExtensions())
		}
		steps, err := f.parse(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Merge(&config.Model{Steps: steps})
	}

	logger.Debug("Plan loading complete.", "steps", len(model.Steps))
	return model, nil
}

// findPlanFiles walks all given paths and returns a flat, de-duplicated list
// of plan files. Explicit files are kept even when their extension is not a
// known one, so Load can report them.
func findPlanFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		key := filepath.Clean(p)
		if _, wasSeen := seen[key]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[key] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing plan path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, supportedExtensions()...)
		if err != nil {
			return nil, fmt.Errorf("error walking plan directory %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}

func formatFor(path string) (format, bool) {
	for _, f := range formats {
		if fsutil.HasExtension(path, f.extensions...) {
			return f, true
		}
	}
	return format{}, false
}

func supportedExtensions() []string {
	var exts []string
	for _, f := range formats {
		exts = append(exts, f.extensions...)
	}
	return exts
}

var _ config.Loader = (*Loader)(nil)
