// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for step
identifiers within a repair plan, based on the canonical format `type.name`.

Both segments are restricted to letters, digits, underscores and hyphens,
e.g., `restore.posts` or `strip_lines.posts-v2`.

This package enforces the identifier schema and centralizes all
formatting and parsing logic, so plan loaders and the dependency graph agree
on what a reference to another step looks like.
*/
package nodeid
