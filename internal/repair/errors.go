package repair

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for broad classification. OpError matches them through
// errors.Is based on its Kind.
var (
	ErrNotFound        = errors.New("not found")
	ErrPermission      = errors.New("permission denied")
	ErrEncoding        = errors.New("invalid text encoding")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorKind is a coarse-grained categorization for repair failures.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindPermission      ErrorKind = "permission"
	KindEncoding        ErrorKind = "encoding"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindIO              ErrorKind = "io"
)

// OpError wraps an underlying error with the failing operation, the path it
// was working on and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) and friends match on the kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPermission:
		return e.Kind == KindPermission
	case ErrEncoding:
		return e.Kind == KindEncoding
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	}
	return false
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// fsError classifies a filesystem error into an OpError.
func fsError(op, path string, err error) error {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &OpError{Op: op, Kind: kind, Path: path, Err: err}
}
