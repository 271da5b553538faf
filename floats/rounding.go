package floats

import (
	"math"

	"github.com/ARM-software/golang-numerics/constraints"
)

// Floor returns the largest integer less than or equal to x.
func Floor[F constraints.IFloat](x F) F {
	return F(math.Floor(float64(x)))
}

// Ceil returns the smallest integer greater than or equal to x.
func Ceil[F constraints.IFloat](x F) F {
	return F(math.Ceil(float64(x)))
}

// Round returns the nearest integer, rounding half-way cases away from zero.
func Round[F constraints.IFloat](x F) F {
	return F(math.Round(float64(x)))
}

// Trunc returns the integer part of x.
func Trunc[F constraints.IFloat](x F) F {
	return F(math.Trunc(float64(x)))
}

// Fract returns the fractional part of x, which has the sign of x.
func Fract[F constraints.IFloat](x F) F {
	return x - Trunc(x)
}

// Max returns the maximum of two numbers. NaN is ignored when the other operand is a number.
func Max[F constraints.IFloat](x, y F) F {
	switch {
	case IsNaN(x):
		return y
	case IsNaN(y):
		return x
	default:
		return F(math.Max(float64(x), float64(y)))
	}
}

// Min returns the minimum of two numbers. NaN is ignored when the other operand is a number.
func Min[F constraints.IFloat](x, y F) F {
	switch {
	case IsNaN(x):
		return y
	case IsNaN(y):
		return x
	default:
		return F(math.Min(float64(x), float64(y)))
	}
}

// AbsSub returns the positive difference: x - y if x > y, +0.0 otherwise. NaN is propagated.
func AbsSub[F constraints.IFloat](x, y F) F {
	return F(math.Dim(float64(x), float64(y)))
}
