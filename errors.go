package bigsqrt

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput reports a required argument that was not supplied.
	ErrNilInput = errors.New("nil input")

	// ErrInvalidArgument reports a violated numeric precondition. All
	// more specific failures below wrap it, so callers can match the
	// whole class with errors.Is(err, ErrInvalidArgument).
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNegativeInput     = fmt.Errorf("%w: negative input", ErrInvalidArgument)
	ErrNotPerfectSquare  = fmt.Errorf("%w: not a perfect square", ErrInvalidArgument)
	ErrRoundingNecessary = fmt.Errorf("%w: rounding necessary", ErrInvalidArgument)
	ErrDivisionByZero    = fmt.Errorf("%w: division by zero", ErrInvalidArgument)
)
