package bigsqrt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Defaults used when an option is not supplied.
const (
	DefaultMaxIterations = 10
	DefaultInitialScale  = 10
	DefaultPrecision     = 128
)

// DefaultAbortCriterion is 10^-10.
var DefaultAbortCriterion = decimal.New(1, -10)

// Context bundles the tunable parameters of the square root engine:
// convergence tolerance, iteration cap, seed/output scale and the
// numeric context applied to intermediate divisions. A Context is
// immutable after construction and safe to share across goroutines.
type Context struct {
	abortCriterion decimal.Decimal
	maxIterations  int
	initialScale   int32
	numeric        NumericContext
}

// ContextOption mutates a Context under construction. Options validate
// eagerly; the first failing option aborts NewContext.
type ContextOption func(*Context) error

// WithAbortCriterion sets the convergence tolerance. The criterion
// must lie in the open interval (0, 1).
func WithAbortCriterion(criterion decimal.Decimal) ContextOption {
	return func(c *Context) error {
		if criterion.Sign() <= 0 || criterion.GreaterThanOrEqual(decimal.New(1, 0)) {
			return fmt.Errorf("%w: abort criterion must be in (0, 1), got %s", ErrInvalidArgument, criterion)
		}
		c.abortCriterion = criterion
		return nil
	}
}

// WithMaxIterations sets the refinement cap, at least 1.
func WithMaxIterations(n int) ContextOption {
	return func(c *Context) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidArgument, n)
		}
		c.maxIterations = n
		return nil
	}
}

// WithInitialScale sets the scale of the seed estimate and of the
// returned root, at least 0.
func WithInitialScale(scale int32) ContextOption {
	return func(c *Context) error {
		if scale < 0 {
			return fmt.Errorf("%w: initial scale must not be negative, got %d", ErrInvalidArgument, scale)
		}
		c.initialScale = scale
		return nil
	}
}

// WithNumericContext sets the precision and rounding of intermediate
// divisions. The zero NumericContext is rejected; build one with
// NewNumericContext.
func WithNumericContext(numeric NumericContext) ContextOption {
	return func(c *Context) error {
		if numeric.precision < 1 {
			return fmt.Errorf("%w: numeric context is not initialized", ErrInvalidArgument)
		}
		c.numeric = numeric
		return nil
	}
}

// NewContext builds an immutable Context starting from the defaults
// (abort criterion 10^-10, 10 iterations, scale 10, 128 digits
// half-up) and applying the options in order.
func NewContext(opts ...ContextOption) (*Context, error) {
	c := Context{
		abortCriterion: DefaultAbortCriterion,
		maxIterations:  DefaultMaxIterations,
		initialScale:   DefaultInitialScale,
		numeric:        NumericContext{precision: DefaultPrecision, mode: RoundHalfUp},
	}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("context option: %w", ErrNilInput)
		}
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

var defaultContext, _ = NewContext()

// DefaultContext returns the shared all-defaults context.
func DefaultContext() *Context {
	return defaultContext
}

func (c *Context) AbortCriterion() decimal.Decimal {
	return c.abortCriterion
}

func (c *Context) MaxIterations() int {
	return c.maxIterations
}

func (c *Context) InitialScale() int32 {
	return c.initialScale
}

func (c *Context) Numeric() NumericContext {
	return c.numeric
}

// Equal reports structural equality over the four fields.
func (c *Context) Equal(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.abortCriterion.Equal(other.abortCriterion) &&
		c.maxIterations == other.maxIterations &&
		c.initialScale == other.initialScale &&
		c.numeric == other.numeric
}

func (c *Context) String() string {
	return fmt.Sprintf("Context{abortCriterion=%s maxIterations=%d initialScale=%d numeric={%s}}",
		c.abortCriterion, c.maxIterations, c.initialScale, c.numeric)
}
