package dag

import (
	"context"
	"fmt"

	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/ctxlog"
	"github.com/vk/mendgrid/internal/nodeid"
	"github.com/vk/mendgrid/internal/registry"
)

// Build validates the steps of a plan and returns them in execution order.
func Build(ctx context.Context, model *config.Model, r *registry.Registry) ([]*config.Step, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")

	graph := New()
	byID := make(map[string]*config.Step, len(model.Steps))

	// First pass: create a node per step.
	for _, step := range model.Steps {
		addr, err := nodeid.New(step.Type, step.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", describe(step), err)
		}
		id := addr.String()
		if prev, dup := byID[id]; dup {
			return nil, fmt.Errorf("duplicate step %q declared in %s and %s", id, origin(prev), origin(step))
		}
		if !r.Has(step.Type) {
			return nil, fmt.Errorf("%s: unknown step type %q", describe(step), step.Type)
		}
		byID[id] = step
		graph.AddNode(id)
	}
	logger.Debug("Build: Node creation complete.", "node_count", len(byID))

	// Second pass: link explicit dependencies.
	for _, step := range model.Steps {
		id := step.Address()
		for _, rawDep := range step.DependsOn {
			depAddr, err := nodeid.Parse(rawDep)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid depends_on entry: %w", describe(step), err)
			}
			depID := depAddr.String()
			if !graph.HasNode(depID) {
				return nil, fmt.Errorf("%s: depends on undeclared step %q", describe(step), depID)
			}
			if err := graph.AddEdge(depID, id); err != nil {
				return nil, fmt.Errorf("%s: %w", describe(step), err)
			}
		}
	}
	logger.Debug("Build: Node linking complete.")

	if err := graph.DetectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("error ordering dependency graph: %w", err)
	}

	steps := make([]*config.Step, 0, len(order))
	for _, id := range order {
		steps = append(steps, byID[id])
	}

	logger.Debug("Build: Graph construction successful.", "order", order)
	return steps, nil
}

func describe(s *config.Step) string {
	return fmt.Sprintf("step %q (%s)", s.Type+"."+s.Name, origin(s))
}

func origin(s *config.Step) string {
	if s.SourceFile == "" {
		return "command line"
	}
	return s.SourceFile
}
