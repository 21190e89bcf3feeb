package bigsqrt

import (
	"fmt"
	"math/big"
)

// SquareWithRoot pairs an integer square with its exact root. Callers
// building invertible fixtures (and the property tests in this module)
// use it to know the expected root up front.
type SquareWithRoot struct {
	Square *big.Int
	Root   *big.Int
}

// PairWithSquare squares root and returns both values. The inputs are
// copied, so later mutation of root does not leak into the pair.
func PairWithSquare(root *big.Int) (SquareWithRoot, error) {
	if root == nil {
		return SquareWithRoot{}, fmt.Errorf("pair with square: %w", ErrNilInput)
	}
	if root.Sign() < 0 {
		return SquareWithRoot{}, fmt.Errorf("pair with square of %s: %w", root, ErrNegativeInput)
	}
	return SquareWithRoot{
		Square: new(big.Int).Mul(root, root),
		Root:   new(big.Int).Set(root),
	}, nil
}

func (p SquareWithRoot) String() string {
	return fmt.Sprintf("%s = %s^2", p.Square, p.Root)
}
