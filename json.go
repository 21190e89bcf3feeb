package bigsqrt

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ContextFromJSON builds a Context from a JSON document such as
//
//	{
//	  "abortCriterion": "0.0000000001",
//	  "maxIterations": 10,
//	  "initialScale": 10,
//	  "precision": 128,
//	  "roundingMode": "half_up"
//	}
//
// Every key is optional; missing keys keep their defaults. Present
// keys are validated exactly like the corresponding options.
func ContextFromJSON(data []byte) (*Context, error) {
	var opts []ContextOption

	if r := gjson.GetBytes(data, "abortCriterion"); r.Exists() {
		criterion, err := decimal.NewFromString(r.String())
		if err != nil {
			return nil, fmt.Errorf("%w: abortCriterion %q is not a decimal", ErrInvalidArgument, r.String())
		}
		opts = append(opts, WithAbortCriterion(criterion))
	}
	if r := gjson.GetBytes(data, "maxIterations"); r.Exists() {
		opts = append(opts, WithMaxIterations(int(r.Int())))
	}
	if r := gjson.GetBytes(data, "initialScale"); r.Exists() {
		opts = append(opts, WithInitialScale(int32(r.Int())))
	}

	precisionField := gjson.GetBytes(data, "precision")
	modeField := gjson.GetBytes(data, "roundingMode")
	if precisionField.Exists() || modeField.Exists() {
		precision := int32(DefaultPrecision)
		if precisionField.Exists() {
			precision = int32(precisionField.Int())
		}
		mode := RoundHalfUp
		if modeField.Exists() {
			var err error
			if mode, err = ParseRoundingMode(modeField.String()); err != nil {
				return nil, err
			}
		}
		numeric, err := NewNumericContext(precision, mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithNumericContext(numeric))
	}

	return NewContext(opts...)
}
