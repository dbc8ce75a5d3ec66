// internal/nodeid/types.go
package nodeid

// Address is the structured representation of a unique step identifier.
type Address struct {
	Type string
	Name string
}

// New creates an Address after validating both segments.
func New(stepType, name string) (*Address, error) {
	if err := validateSegment("type", stepType); err != nil {
		return nil, err
	}
	if err := validateSegment("name", name); err != nil {
		return nil, err
	}
	return &Address{Type: stepType, Name: name}, nil
}
