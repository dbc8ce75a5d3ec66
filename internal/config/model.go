package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of a repair plan.
type Model struct {
	Steps []*Step
}

// Step is a single repair operation declared in a plan.
type Step struct {
	Type       string
	Name       string
	Arguments  map[string]cty.Value
	DependsOn  []string
	SourceFile string // empty for steps built from CLI arguments
}

// Address returns the canonical "<type>.<name>" identifier of the step.
func (s *Step) Address() string {
	return fmt.Sprintf("%s.%s", s.Type, s.Name)
}

// Merge appends the steps of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Steps = append(m.Steps, other.Steps...)
}
