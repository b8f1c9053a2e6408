package marshaller

import (
	"fmt"
)

// MarshalError represents an error when marshalling fails.
type MarshalError struct {
	format string
	parent error
}

// NewMarshalError wraps parent into a MarshalError for the given format.
// It returns nil if parent is nil.
func NewMarshalError(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{format: format, parent: parent}
}

// Format returns the name of the encoding that failed.
func (e MarshalError) Format() string {
	return e.format
}

// Unwrap returns the underlying error that caused the marshalling failure.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the marshalling error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("Failed to marshal %s: %s", e.format, e.parent)
}

// UnmarshalError represents an error when unmarshalling fails.
type UnmarshalError struct {
	format string
	parent error
}

// NewUnmarshalError wraps parent into an UnmarshalError for the given format.
// It returns nil if parent is nil.
func NewUnmarshalError(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{format: format, parent: parent}
}

// Format returns the name of the encoding that failed.
func (e UnmarshalError) Format() string {
	return e.format
}

// Unwrap returns the underlying error that caused the unmarshalling failure.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the unmarshalling error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("Failed to unmarshal %s: %s", e.format, e.parent)
}
