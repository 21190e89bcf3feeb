package bigsqrt

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	two = decimal.NewFromInt(2)
	ten = decimal.NewFromInt(10)

	seedFactorLow  = decimal.NewFromInt(2)
	seedFactorHigh = decimal.NewFromInt(6)
)

// Engine computes square roots under a Context. It holds no mutable
// state; one Engine may serve any number of goroutines.
type Engine struct {
	ctx *Context
	obs IterationObserver
}

// EngineOption configures an Engine under construction.
type EngineOption func(*Engine)

// WithObserver attaches a diagnostic sink for iteration events.
func WithObserver(obs IterationObserver) EngineOption {
	return func(e *Engine) {
		if obs != nil {
			e.obs = obs
		}
	}
}

// NewEngine builds an Engine. A nil ctx selects DefaultContext.
func NewEngine(ctx *Context, opts ...EngineOption) *Engine {
	if ctx == nil {
		ctx = DefaultContext()
	}
	e := &Engine{ctx: ctx, obs: noopObserver{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Context() *Context {
	return e.ctx
}

var defaultEngine = NewEngine(nil)

// Sqrt computes the square root of x with the default context.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	return defaultEngine.Sqrt(x)
}

// SqrtBigInt computes the square root of n with the default context.
func SqrtBigInt(n *big.Int) (decimal.Decimal, error) {
	return defaultEngine.SqrtBigInt(n)
}

// IsPerfectSquare reports whether n is a perfect square, using the
// default context's engine.
func IsPerfectSquare(n *big.Int) (bool, error) {
	return defaultEngine.IsPerfectSquare(n)
}

// SqrtOfPerfectSquare returns the exact integer root of a perfect
// square, using the default context's engine.
func SqrtOfPerfectSquare(n *big.Int) (*big.Int, error) {
	return defaultEngine.SqrtOfPerfectSquare(n)
}

// Sqrt returns the square root of x, rounded to the context's scale
// with the context's rounding mode. Negative x fails with
// ErrNegativeInput.
func (e *Engine) Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	if x.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("sqrt of %s: %w", x, ErrNegativeInput)
	}
	root, err := e.heronsMethod(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return e.ctx.numeric.mode.Apply(root, e.ctx.initialScale)
}

// SqrtBigInt converts n to a scale-0 decimal and delegates to Sqrt.
// A nil n fails with ErrNilInput, a negative n with ErrNegativeInput.
func (e *Engine) SqrtBigInt(n *big.Int) (decimal.Decimal, error) {
	if n == nil {
		return decimal.Decimal{}, fmt.Errorf("sqrt: %w", ErrNilInput)
	}
	if n.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("sqrt of %s: %w", n, ErrNegativeInput)
	}
	return e.Sqrt(decimal.NewFromBigInt(n, 0))
}

// IsPerfectSquare reports whether n equals some integer squared. The
// test accumulates consecutive odd numbers (the sum of the first k odd
// numbers is k^2), staying in exact integer arithmetic so large inputs
// cannot be misclassified by rounding.
func (e *Engine) IsPerfectSquare(n *big.Int) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("perfect square test: %w", ErrNilInput)
	}
	if n.Sign() < 0 {
		return false, fmt.Errorf("perfect square test of %s: %w", n, ErrNegativeInput)
	}
	_, ok := exactRoot(n)
	return ok, nil
}

// SqrtOfPerfectSquare returns the exact integer root of n. It fails
// with ErrNotPerfectSquare when n has no integer root.
func (e *Engine) SqrtOfPerfectSquare(n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, fmt.Errorf("exact sqrt: %w", ErrNilInput)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("exact sqrt of %s: %w", n, ErrNegativeInput)
	}
	root, ok := exactRoot(n)
	if !ok {
		return nil, fmt.Errorf("exact sqrt of %s: %w", n, ErrNotPerfectSquare)
	}
	return root, nil
}

// exactRoot accumulates 1 + 3 + 5 + ... until the sum reaches n. The
// number of summands is the candidate root; the sum matches n exactly
// when n is a perfect square.
func exactRoot(n *big.Int) (*big.Int, bool) {
	var (
		sum  = new(big.Int)
		odd  = big.NewInt(1)
		root = new(big.Int)
		one  = big.NewInt(1)
		step = big.NewInt(2)
	)
	for sum.Cmp(n) < 0 {
		sum.Add(sum, odd)
		odd.Add(odd, step)
		root.Add(root, one)
	}
	return root, sum.Cmp(n) == 0
}

// heronsMethod refines seedValue(x) with
//
//	successor = (predecessor^2 + x) / (2 * predecessor)
//
// until successive estimates differ by less than the abort criterion
// or the iteration cap is hit. The cap is a safety bound, not an
// error: the current best estimate is returned either way. The first
// successor is computed before the counted loop, so at most
// maxIterations+1 estimates are produced.
func (e *Engine) heronsMethod(x decimal.Decimal) (decimal.Decimal, error) {
	predecessor, err := e.seedValue(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	successor, err := e.nextEstimate(predecessor, x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	step := 1
	e.obs.ObserveIteration(IterationEvent{
		Iteration:   step,
		Predecessor: predecessor,
		Successor:   successor,
		Delta:       successor.Sub(predecessor).Abs(),
	})
	for i := 0; i < e.ctx.maxIterations && e.ctx.abortCriterion.LessThan(successor.Sub(predecessor).Abs()); i++ {
		predecessor = successor
		if successor, err = e.nextEstimate(predecessor, x); err != nil {
			return decimal.Decimal{}, err
		}
		step++
		e.obs.ObserveIteration(IterationEvent{
			Iteration:   step,
			Predecessor: predecessor,
			Successor:   successor,
			Delta:       successor.Sub(predecessor).Abs(),
		})
	}
	return successor, nil
}

// nextEstimate is one Heron step. A zero predecessor would divide by
// zero; the abort criterion itself is returned as a safe non-zero
// fallback for that degenerate seed.
func (e *Engine) nextEstimate(predecessor, x decimal.Decimal) (decimal.Decimal, error) {
	if predecessor.IsZero() {
		return e.ctx.abortCriterion, nil
	}
	numerator := predecessor.Mul(predecessor).Add(x)
	denominator := two.Mul(predecessor)
	return e.ctx.numeric.Div(numerator, denominator)
}

// seedValue picks the initial estimate from the scientific notation of
// x: with x = c * 10^(2m),
//
//	seed = 6 * 10^m  if c >= 10
//	seed = 2 * 10^m  otherwise
//
// which lands within a small factor of the true root and lets the
// quadratic convergence of Heron's method finish well inside the
// default iteration cap. The seed is rounded to the initial scale.
func (e *Engine) seedValue(x decimal.Decimal) (decimal.Decimal, error) {
	notation := DecomposeForSqrt(x)
	power := decimal.New(1, notation.exponent/2)
	factor := seedFactorLow
	if notation.coefficient.GreaterThanOrEqual(ten) {
		factor = seedFactorHigh
	}
	return e.ctx.numeric.mode.Apply(factor.Mul(power), e.ctx.initialScale)
}
