package bmi

import "fmt"

// InvalidInputMessage is the fixed text shown to the user for any input error.
const InvalidInputMessage = "Please enter valid positive values."

// InvalidInputError reports a field that failed numeric validation.
// It is the only error kind Calculate produces.
type InvalidInputError struct {
	Field string
	Value string
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field, value string) *InvalidInputError {
	return &InvalidInputError{
		Field: field,
		Value: value,
	}
}

// Error returns the error message
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s input %q: expected a finite positive number", e.Field, e.Value)
}
