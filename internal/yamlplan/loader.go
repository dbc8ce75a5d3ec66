package yamlplan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions handled by this package.
var Extensions = []string{".yaml", ".yml"}

// ParseFile parses a single YAML plan file and returns its steps in
// declaration order. Unknown keys are rejected.
func ParseFile(ctx context.Context, path string) ([]*config.Step, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing YAML plan file.", "file", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var doc planFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	steps := make([]*config.Step, 0, len(doc.Steps))
	for i, s := range doc.Steps {
		if s.Type == "" || s.Name == "" {
			return nil, fmt.Errorf("step #%d in %s: both type and name are required", i+1, path)
		}

		args := make(map[string]cty.Value, len(s.Arguments))
		for name, raw := range s.Arguments {
			val, err := config.FromNative(raw)
			if err != nil {
				return nil, fmt.Errorf("step %q in %s: argument %q: %w", s.Type+"."+s.Name, path, name, err)
			}
			args[name] = val
		}

		steps = append(steps, &config.Step{
			Type:       s.Type,
			Name:       s.Name,
			Arguments:  args,
			DependsOn:  s.DependsOn,
			SourceFile: path,
		})
	}

	logger.Debug("YAML plan file parsed.", "file", path, "steps", len(steps))
	return steps, nil
}
