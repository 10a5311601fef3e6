package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the calculation pipeline.
var (
	// ErrInvalidConfiguration indicates a non-physical input value.
	ErrInvalidConfiguration = errors.New("splinther: invalid configuration")

	// ErrOutOfRangeProperty indicates a property correlation evaluated
	// outside the sodium liquid range.
	ErrOutOfRangeProperty = errors.New("splinther: property evaluated outside valid liquid range")

	// ErrUndefinedResult indicates a degenerate arithmetic condition, such
	// as zero flow with nonzero power, that would otherwise produce NaN or
	// infinity.
	ErrUndefinedResult = errors.New("splinther: undefined result")
)

// CalcError wraps one of the sentinel errors with enough context to
// diagnose a failed run without re-running it.
type CalcError struct {
	Engine   string  // which engine failed
	Quantity string  // which quantity was being computed
	Value    float64 // the offending value
	Wrapped  error
}

func (e *CalcError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %v", e.Engine, e.Quantity, e.Value, e.Wrapped)
}

func (e *CalcError) Unwrap() error {
	return e.Wrapped
}
