package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/repair"
)

// Module is the interface that all step modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// HandlerFunc executes one step with its decoded input.
type HandlerFunc func(ctx context.Context, input any, opts repair.Options) (*repair.Result, error)

// RegisteredRunner holds the compiled Go parts of a step type.
type RegisteredRunner struct {
	Description string
	NewInput    func() any
	Fn          HandlerFunc
}

// Registry holds all registered step handlers for a single application instance.
type Registry struct {
	runners map[string]*RegisteredRunner
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		runners: make(map[string]*RegisteredRunner),
	}
}

// RegisterRunner registers the handler for a step type. Registering the same
// type twice is a programming error and panics.
func (r *Registry) RegisterRunner(stepType string, handler *RegisteredRunner) {
	if _, exists := r.runners[stepType]; exists {
		panic(fmt.Sprintf("runner handler for step type '%s' already registered", stepType))
	}
	if handler == nil || handler.NewInput == nil || handler.Fn == nil {
		panic(fmt.Sprintf("runner handler for step type '%s' is incomplete", stepType))
	}
	slog.Debug("Registering runner handler.", "type", stepType)
	r.runners[stepType] = handler
}

// Has reports whether a handler exists for the step type.
func (r *Registry) Has(stepType string) bool {
	_, ok := r.runners[stepType]
	return ok
}

// Types returns the registered step types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.runners))
	for t := range r.runners {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Run decodes the step's arguments into the handler's input struct and
// invokes the handler.
func (r *Registry) Run(ctx context.Context, step *config.Step, opts repair.Options) (*repair.Result, error) {
	handler, ok := r.runners[step.Type]
	if !ok {
		return nil, fmt.Errorf("no handler registered for step type %q", step.Type)
	}

	input := handler.NewInput()
	if err := config.Decode(ctx, step.Arguments, input); err != nil {
		return nil, fmt.Errorf("invalid arguments for step %q: %w", step.Address(), err)
	}

	return handler.Fn(ctx, input, opts)
}
