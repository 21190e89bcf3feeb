package bigsqrt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ScientificNotation is a (coefficient, exponent) pair with
// value = coefficient * 10^exponent. DecomposeForSqrt keeps the
// exponent even so that exponent/2 is an exact power of ten for the
// seed estimate.
type ScientificNotation struct {
	coefficient decimal.Decimal
	exponent    int32
}

func (n ScientificNotation) Coefficient() decimal.Decimal {
	return n.coefficient
}

func (n ScientificNotation) Exponent() int32 {
	return n.exponent
}

// Decimal recomposes coefficient * 10^exponent.
func (n ScientificNotation) Decimal() decimal.Decimal {
	return n.coefficient.Shift(n.exponent)
}

func (n ScientificNotation) String() string {
	return fmt.Sprintf("%s * 10^%d", n.coefficient, n.exponent)
}

var oneHundred = decimal.NewFromInt(100)

// DecomposeForSqrt shifts two digits at a time out of x until the
// coefficient drops below 100. For x >= 1 the coefficient ends up in
// [1, 100); zero decomposes to (0, 0). The exponent is always even.
// Callers must not pass negative values.
func DecomposeForSqrt(x decimal.Decimal) ScientificNotation {
	coefficient := x
	var exponent int32
	for coefficient.GreaterThanOrEqual(oneHundred) {
		// shifting by -2 is an exact division by 100
		coefficient = coefficient.Shift(-2)
		exponent += 2
	}
	return ScientificNotation{coefficient: coefficient, exponent: exponent}
}
