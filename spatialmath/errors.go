package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// DegenerateVectorError is returned when a vector with zero length is asked for its direction.
type DegenerateVectorError struct {
	Vector r3.Vector
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("cannot normalize degenerate vector %v", e.Vector)
}

// NewDegenerateVectorError returns an error indicating that v has no direction.
func NewDegenerateVectorError(v r3.Vector) error {
	return &DegenerateVectorError{Vector: v}
}

// InvalidInputError describes input that has the wrong shape or is not a finite number.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// NewInvalidInputError returns an InvalidInputError for the named field.
func NewInvalidInputError(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// NewInvalidInputErrorf is NewInvalidInputError with a formatted reason.
func NewInvalidInputErrorf(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
