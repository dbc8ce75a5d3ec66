package strip_lines

import (
	"context"

	"github.com/vk/mendgrid/internal/registry"
	"github.com/vk/mendgrid/internal/repair"
)

// StepType is the plan identifier of this module.
const StepType = "strip_lines"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the strip_lines step. An empty Destination
// defaults to the source path plus ".fixed"; empty Targets fall back to
// repair.DefaultTargets.
type Input struct {
	Source      string   `mend:"source"`
	Destination string   `mend:"destination,optional"`
	Targets     []string `mend:"targets,optional"`
}

// OnRunStripLines removes every line matching one of the targets.
func OnRunStripLines(ctx context.Context, input *Input, opts repair.Options) (*repair.Result, error) {
	matcher := repair.DefaultMatcher()
	if len(input.Targets) > 0 {
		m, err := repair.NewMatcher(input.Targets...)
		if err != nil {
			return nil, err
		}
		matcher = m
	}
	return repair.StripLines(ctx, repair.Paths{Source: input.Source, Destination: input.Destination}, matcher, opts)
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner(StepType, &registry.RegisteredRunner{
		Description: "Write a copy of a file without its orphaned literal lines.",
		NewInput:    func() any { return new(Input) },
		Fn: func(ctx context.Context, input any, opts repair.Options) (*repair.Result, error) {
			return OnRunStripLines(ctx, input.(*Input), opts)
		},
	})
}
