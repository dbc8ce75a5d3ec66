// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex is used to validate a single segment, e.g., `restore` or `posts-v2`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateSegment checks for empty, malformed and undesirable segment values.
func validateSegment(kind, s string) error {
	if s == "" {
		return fmt.Errorf("step %s cannot be empty", kind)
	}
	if !segmentRegex.MatchString(s) {
		return fmt.Errorf("invalid step %s: %q", kind, s)
	}
	if s == "-" {
		return fmt.Errorf("invalid step %s: %q", kind, s)
	}
	return nil
}

// Parse creates a new Address struct by parsing its canonical string representation.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	parts := strings.Split(rawID, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("identifier %q must have the form <type>.<name>", rawID)
	}
	return New(parts[0], parts[1])
}
