// Package bigsqrt computes square roots of arbitrary-precision
// integers and decimals without touching floating-point hardware, so
// results are deterministic and reproducible across platforms.
//
// The decimal path runs Heron's method seeded from a scientific
// notation decomposition of the input; precision, rounding, tolerance
// and the iteration cap come from a Context. The integer path tests
// and extracts exact roots of perfect squares in pure big.Int
// arithmetic.
//
// Example:
//
//	root, _ := bigsqrt.Sqrt(decimal.NewFromInt(2))
//	// root ≈ 1.4142135624
//
//	ctx, _ := bigsqrt.NewContext(bigsqrt.WithInitialScale(30))
//	root, _ = bigsqrt.NewEngine(ctx).Sqrt(decimal.NewFromInt(2))
package bigsqrt
