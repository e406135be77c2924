package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSeedState is returned when Seed is called with a state outside
// the four valid values. The grid is left untouched.
var ErrInvalidSeedState = errors.New("invalid seed state")

// ErrInvalidDisplayState is returned when a display adapter encounters a
// cell outside the four valid states. This is an internal-consistency fault
// (the kernel never produces such a cell), not a user input error.
var ErrInvalidDisplayState = errors.New("invalid display state")

// ParamError reports a single invalid construction parameter.
type ParamError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parameter %q: invalid value %v", e.Name, e.Value)
	}
	if e.Name == "size" {
		return fmt.Sprintf("parameter %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("parameter %q: %s (got %v)", e.Name, e.Reason, e.Value)
}

// AggregateError collects multiple parameter failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d parameter errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ParamErrors returns the individual failures if err is an AggregateError,
// or nil otherwise.
func ParamErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
