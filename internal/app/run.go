package app

import (
	"context"
	"fmt"

	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/ctxlog"
	"github.com/vk/mendgrid/internal/dag"
	"github.com/vk/mendgrid/internal/repair"
)

// Run loads the plan (or takes the inline steps), orders it and executes
// every step sequentially. The first failing step aborts the run; steps
// after it are not attempted.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "dry_run", a.config.DryRun)

	model, err := a.loadModel(ctx)
	if err != nil {
		return err
	}

	steps, err := dag.Build(ctx, model, a.registry)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	rep := newReporter(a.outW)
	if len(steps) == 0 {
		a.logger.Warn("No steps found in plan, nothing to repair.")
		rep.nothingToDo()
		return nil
	}

	opts := repair.Options{DryRun: a.config.DryRun}
	a.logger.Info("Starting repair.", "steps", len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("repair interrupted before step %q: %w", step.Address(), err)
		}

		a.logger.Info("Running step.", "step", step.Address(), "position", i+1, "of", len(steps))
		res, err := a.registry.Run(ctx, step, opts)
		if err != nil {
			a.logger.Error("Step failed.", "step", step.Address(), "error", err)
			return fmt.Errorf("step %q failed: %w", step.Address(), err)
		}
		rep.step(step.Address(), res)
	}

	rep.summary(len(steps), a.config.DryRun)
	a.logger.Info("Repair finished.", "steps", len(steps))
	return nil
}

func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	if len(a.config.Steps) > 0 {
		a.logger.Debug("Using inline steps.", "count", len(a.config.Steps))
		return &config.Model{Steps: a.config.Steps}, nil
	}

	if a.loader == nil {
		return nil, fmt.Errorf("no plan loader configured")
	}
	model, err := a.loader.Load(ctx, a.config.PlanPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	a.logger.Debug("Plan loaded.", "steps", len(model.Steps))
	return model, nil
}
