// Package repair implements the two file repair operations: restoring a file
// from a known-good backup, and stripping orphaned literal lines from a file
// into a separate output.
//
// Each operation is a single read-transform-write pass. File handles are
// released before the operation returns, on every path. Failures are reported
// as *OpError values whose Kind separates missing files, permission problems
// and invalid UTF-8 content from other I/O errors.
package repair
