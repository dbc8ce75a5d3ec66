package hclplan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Extensions lists the file extensions handled by this package.
var Extensions = []string{".hcl"}

// ParseFile parses a single HCL plan file and returns its steps in
// declaration order, with all argument expressions already evaluated.
func ParseFile(ctx context.Context, path string) ([]*config.Step, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL plan file.", "file", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	evalCtx := newEvalContext(path, processEnviron())

	steps := make([]*config.Step, 0, len(root.Steps))
	for _, s := range root.Steps {
		args, err := evaluateArguments(s.Arguments, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("step %q in %s: %w", s.Type+"."+s.Name, path, err)
		}
		steps = append(steps, &config.Step{
			Type:       s.Type,
			Name:       s.Name,
			Arguments:  args,
			DependsOn:  s.DependsOn,
			SourceFile: path,
		})
	}

	logger.Debug("HCL plan file parsed.", "file", path, "steps", len(steps))
	return steps, nil
}

// evaluateArguments turns the attributes of an 'arguments' block into
// concrete values.
func evaluateArguments(block *StepArgs, evalCtx *hcl.EvalContext) (map[string]cty.Value, error) {
	args := make(map[string]cty.Value)
	if block == nil || block.Body == nil {
		return args, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, diags
		}
		args[name] = val
	}
	return args, nil
}
