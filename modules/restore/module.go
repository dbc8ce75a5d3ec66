package restore

import (
	"context"

	"github.com/vk/mendgrid/internal/registry"
	"github.com/vk/mendgrid/internal/repair"
)

// StepType is the plan identifier of this module.
const StepType = "restore"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the restore step.
type Input struct {
	Source      string `mend:"source"`
	Destination string `mend:"destination"`
}

// OnRunRestore copies a known-good backup over the destination file.
func OnRunRestore(ctx context.Context, input *Input, opts repair.Options) (*repair.Result, error) {
	return repair.Restore(ctx, repair.Paths{Source: input.Source, Destination: input.Destination}, opts)
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner(StepType, &registry.RegisteredRunner{
		Description: "Copy a known-good backup file verbatim over a damaged file.",
		NewInput:    func() any { return new(Input) },
		Fn: func(ctx context.Context, input any, opts repair.Options) (*repair.Result, error) {
			return OnRunRestore(ctx, input.(*Input), opts)
		},
	})
}
