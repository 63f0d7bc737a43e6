package diag

import "fmt"

// GenError is a generation failure tied to a specific declaration. The
// pipeline catches it at the smallest possible granularity and turns it
// into a diagnostic rather than aborting the batch.
type GenError struct {
	// Element identifies the offending declaration.
	Element string
	Msg     string
	cause   error
}

// NewGenError builds a GenError for the given declaration.
func NewGenError(element, msg string) *GenError {
	return &GenError{Element: element, Msg: msg}
}

// WrapGenError builds a GenError that preserves the underlying cause.
func WrapGenError(element string, cause error) *GenError {
	return &GenError{Element: element, Msg: cause.Error(), cause: cause}
}

// Error implements the error interface.
func (e *GenError) Error() string {
	return fmt.Sprintf("could not generate model for %s: %s", e.Element, e.Msg)
}

// Unwrap exposes the underlying cause, if any.
func (e *GenError) Unwrap() error {
	return e.cause
}
