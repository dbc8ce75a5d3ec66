// Package registry provides the central "glue" for the step module system.
//
// The Registry maps the step type strings used in repair plans (e.g.
// "restore") to the compiled Go handlers that implement them, along with a
// factory for each handler's typed input struct. During a run the registry
// binds a step's arguments into that struct and invokes the handler.
package registry
