package gnuplot

import (
	"errors"
	"fmt"
)

// ErrInvalidIncrement indicates a tick increment that is not positive.
var ErrInvalidIncrement = errors.New("tick increment must be positive")

// ErrInvalidSymbol indicates a point symbol character outside the
// supported set.
var ErrInvalidSymbol = errors.New("invalid point symbol")

// ErrInvalidGridPosition indicates a grid placement outside the grid.
var ErrInvalidGridPosition = errors.New("invalid grid position")

// ErrInvalidPalette indicates a palette parameter outside its domain.
var ErrInvalidPalette = errors.New("invalid palette parameter")

// ErrEmptyPalette indicates a custom palette with no control points.
var ErrEmptyPalette = errors.New("custom palette needs at least one control point")

// ErrNonMonotonic indicates custom palette gray levels that decrease.
var ErrNonMonotonic = errors.New("gray levels must be non-decreasing")

// ErrInvalidLabelKind indicates an unrecognized label kind. It can only
// arise from a programming error inside this package.
var ErrInvalidLabelKind = errors.New("invalid label kind")

// ArgumentError represents a caller-contract violation in a setter or
// plot call. A failed call leaves the axes state unchanged.
type ArgumentError struct {
	Op  string // the method that rejected its arguments
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// newArgumentError creates a new ArgumentError.
func newArgumentError(op string, err error) *ArgumentError {
	return &ArgumentError{Op: op, Err: err}
}
