// Package config defines the format-agnostic repair plan model, along with
// the Loader interface that concrete plan formats implement and the binding
// of step arguments into Go input structs.
//
// Arguments are carried as already-evaluated cty values, so the executor
// never needs to know whether a step came from an HCL or a YAML file.
package config
