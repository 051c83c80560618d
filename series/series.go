// Package series provides the numeric operand layer shared by every
// emissions equation in this module.
//
// Published GPC/IPCC equations are written over either single quantities or
// per-category vectors (per fuel, per waste type, per livestock category).
// Series normalizes both shapes into one representation so equation code can
// multiply, add and sum without branching on scalar-vs-slice input.
//
// Series is strictly one-dimensional. Every published equation here runs
// over a single category axis, so higher-rank input (e.g. a slice of
// slices) is rejected as non-numeric; callers holding matrix-shaped data
// flatten or reduce it to one axis per call.
package series

import (
	"errors"
	"fmt"
)

// Series is the canonical array form of a numeric operand. A scalar input
// becomes a one-element Series.
type Series []float64

// Sentinel errors for operand validation. Compare with errors.Is.
var (
	// ErrNotNumeric indicates an operand of a type that cannot be
	// interpreted as a numeric quantity.
	ErrNotNumeric = errors.New("operand is not numeric")

	// ErrShapeMismatch indicates two operands whose lengths permit no
	// elementwise combination (lengths differ and neither is 1).
	ErrShapeMismatch = errors.New("operands are not broadcast-compatible")

	// ErrOutOfRange indicates a fractional input outside [0, 1].
	ErrOutOfRange = errors.New("value out of range")
)

// Coerce promotes v to a Series.
//
// Accepted input types: Series, []float64, []float32, []int, []int64, and
// the scalar forms float64, float32, int, int64. Scalars become one-element
// Series; slices are converted elementwise. Any other type fails with
// ErrNotNumeric — this layer never guesses at string or struct content.
func Coerce(v any) (Series, error) {
	switch x := v.(type) {
	case Series:
		return x, nil
	case []float64:
		return Series(x), nil
	case []float32:
		out := make(Series, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case []int:
		out := make(Series, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case []int64:
		out := make(Series, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out, nil
	case float64:
		return Series{x}, nil
	case float32:
		return Series{float64(x)}, nil
	case int:
		return Series{float64(x)}, nil
	case int64:
		return Series{float64(x)}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

// apply combines a and b elementwise under op, broadcasting a one-element
// operand against the other's length.
func apply(a, b Series, op func(x, y float64) float64) (Series, error) {
	switch {
	case len(a) == len(b):
		out := make(Series, len(a))
		for i := range a {
			out[i] = op(a[i], b[i])
		}
		return out, nil
	case len(a) == 1:
		out := make(Series, len(b))
		for i := range b {
			out[i] = op(a[0], b[i])
		}
		return out, nil
	case len(b) == 1:
		out := make(Series, len(a))
		for i := range a {
			out[i] = op(a[i], b[0])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrShapeMismatch, len(a), len(b))
	}
}

// Mul returns the elementwise product of a and b.
func Mul(a, b Series) (Series, error) {
	return apply(a, b, func(x, y float64) float64 { return x * y })
}

// Add returns the elementwise sum of a and b.
func Add(a, b Series) (Series, error) {
	return apply(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the elementwise difference a - b.
func Sub(a, b Series) (Series, error) {
	return apply(a, b, func(x, y float64) float64 { return x - y })
}

// Scale returns s with every element multiplied by f.
func Scale(s Series, f float64) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v * f
	}
	return out
}

// Sum reduces s to the sum of its elements. An empty Series sums to 0.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Scalar returns the single element of a one-element Series.
// The second return is false when s does not hold exactly one value.
func (s Series) Scalar() (float64, bool) {
	if len(s) != 1 {
		return 0, false
	}
	return s[0], true
}

// CheckFraction verifies every element of s lies in [0, 1]. Violations fail
// with ErrOutOfRange naming the offending operand; values are never clamped.
func CheckFraction(name string, s Series) error {
	for _, v := range s {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be between 0 and 1, got %g", ErrOutOfRange, name, v)
		}
	}
	return nil
}
