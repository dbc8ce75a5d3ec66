package hclplan

import "github.com/hashicorp/hcl/v2"

// StepArgs represents the content of the 'arguments' block within a step.
type StepArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Step represents a `step` block from a plan file.
type Step struct {
	Type      string    `hcl:"step_type,label"`
	Name      string    `hcl:"step_name,label"`
	Arguments *StepArgs `hcl:"arguments,block"`
	DependsOn []string  `hcl:"depends_on,optional"`
}

// fileRoot is used to decode all top-level blocks of a plan file. Anything
// other than `step` blocks is rejected.
type fileRoot struct {
	Steps []*Step `hcl:"step,block"`
}
