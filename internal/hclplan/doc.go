// Package hclplan provides the HCL implementation of repair plan files. It
// parses `step` blocks, evaluates their argument expressions against an
// evaluation context exposing `env` and `plan`, and translates the result
// into the format-agnostic config model.
package hclplan
