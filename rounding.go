package bigsqrt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how digits are discarded when a value is
// shortened to a given scale.
type RoundingMode uint8

const (
	RoundUp          RoundingMode = iota // away from zero
	RoundDown                            // toward zero
	RoundCeiling                         // toward +infinity
	RoundFloor                           // toward -infinity
	RoundHalfUp                          // nearest, ties away from zero
	RoundHalfDown                        // nearest, ties toward zero
	RoundHalfEven                        // nearest, ties to even
	RoundUnnecessary                     // fails if any digit would be discarded
)

var roundingModeNames = [...]string{
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundHalfUp:      "half_up",
	RoundHalfDown:    "half_down",
	RoundHalfEven:    "half_even",
	RoundUnnecessary: "unnecessary",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("rounding_mode(%d)", uint8(m))
}

// ParseRoundingMode is the inverse of String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingModeNames {
		if s == name {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rounding mode %q", ErrInvalidArgument, s)
}

// Apply rounds d to scale decimal places under the mode. A negative
// scale rounds the integer part. RoundUnnecessary fails with
// ErrRoundingNecessary unless d is already exact at that scale.
func (m RoundingMode) Apply(d decimal.Decimal, scale int32) (decimal.Decimal, error) {
	switch m {
	case RoundUp:
		return d.RoundUp(scale), nil
	case RoundDown:
		return d.RoundDown(scale), nil
	case RoundCeiling:
		return d.RoundCeil(scale), nil
	case RoundFloor:
		return d.RoundFloor(scale), nil
	case RoundHalfUp:
		return d.Round(scale), nil
	case RoundHalfDown:
		// shopspring has no half-down primitive. Detect an exact tie
		// (remainder == 5 * 10^(-scale-1)) and truncate it; everything
		// else behaves like half-up.
		down := d.RoundDown(scale)
		if d.Sub(down).Abs().Equal(decimal.New(5, -scale-1)) {
			return down, nil
		}
		return d.Round(scale), nil
	case RoundHalfEven:
		return d.RoundBank(scale), nil
	case RoundUnnecessary:
		down := d.RoundDown(scale)
		if !down.Equal(d) {
			return decimal.Decimal{}, fmt.Errorf("%s at scale %d: %w", d, scale, ErrRoundingNecessary)
		}
		return down, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: unknown rounding mode %d", ErrInvalidArgument, uint8(m))
}

// extra quotient digits carried through a division before the
// significant-digit cap is enforced
const divGuardDigits = 4

// NumericContext pairs a significant-digit precision with a rounding
// mode and applies them to inexact operations.
type NumericContext struct {
	precision int32
	mode      RoundingMode
}

// NewNumericContext fails with ErrInvalidArgument unless precision is
// at least 1 and mode is a known rounding mode.
func NewNumericContext(precision int32, mode RoundingMode) (NumericContext, error) {
	if precision < 1 {
		return NumericContext{}, fmt.Errorf("%w: precision must be at least 1, got %d", ErrInvalidArgument, precision)
	}
	if int(mode) >= len(roundingModeNames) {
		return NumericContext{}, fmt.Errorf("%w: unknown rounding mode %d", ErrInvalidArgument, uint8(mode))
	}
	return NumericContext{precision: precision, mode: mode}, nil
}

func (c NumericContext) Precision() int32 {
	return c.precision
}

func (c NumericContext) Mode() RoundingMode {
	return c.mode
}

func (c NumericContext) String() string {
	return fmt.Sprintf("precision=%d mode=%s", c.precision, c.mode)
}

// Div returns x/y carrying the context's significant-digit precision,
// rounded with the context's mode.
func (c NumericContext) Div(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%s / %s: %w", x, y, ErrDivisionByZero)
	}
	// place the precision window around the quotient's leading digit
	magnitude := leadingDigitPos(x) - leadingDigitPos(y)
	scale := c.precision - int32(magnitude) + divGuardDigits
	if scale < 0 {
		scale = 0
	}
	return c.Round(x.DivRound(y, scale))
}

// Round caps d at the context's significant-digit precision. Values
// already within the cap pass through unchanged.
func (c NumericContext) Round(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsZero() {
		return d, nil
	}
	digits := int32(d.NumDigits())
	if digits <= c.precision {
		return d, nil
	}
	scale := -d.Exponent() - (digits - c.precision)
	return c.mode.Apply(d, scale)
}

// position of the leading digit relative to the decimal point:
// 1234 -> 4, 0.05 -> -1, 0 -> 0
func leadingDigitPos(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	return d.NumDigits() + int(d.Exponent())
}
