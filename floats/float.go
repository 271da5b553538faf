/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package floats provides IEEE-754 classification, rounding and transcendental functions for float32 and float64.
// Computations are carried out through the math package in float64 and rounded back to the kind of the argument.
// Domain errors are reported the IEEE-754 way (e.g. the square root of a negative number is NaN) and never as errors.
package floats

import (
	"math"

	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

//go:generate go tool enumer -type=Category -trimprefix=Category -transform=lower -text -json
type Category uint8

const (
	CategoryNan Category = iota
	CategoryInfinite
	CategoryZero
	CategorySubnormal
	CategoryNormal
)

func info[F constraints.IFloat]() numkind.Info {
	return numkind.Of[F]().Info()
}

// NaN returns the Not-a-Number value.
func NaN[F constraints.IFloat]() F {
	return F(math.NaN())
}

// Infinity returns positive infinity.
func Infinity[F constraints.IFloat]() F {
	return F(math.Inf(1))
}

// NegInfinity returns negative infinity.
func NegInfinity[F constraints.IFloat]() F {
	return F(math.Inf(-1))
}

// NegZero returns -0.0.
func NegZero[F constraints.IFloat]() F {
	return F(math.Copysign(0, -1))
}

// MinPositiveValue returns the smallest positive normal value.
func MinPositiveValue[F constraints.IFloat]() F {
	return F(info[F]().SmallestNormal)
}

// MaxValue returns the largest finite value.
func MaxValue[F constraints.IFloat]() F {
	return F(info[F]().MaxFinite)
}

// MinValue returns the smallest finite value i.e. -MaxValue.
func MinValue[F constraints.IFloat]() F {
	return -MaxValue[F]()
}

// Epsilon returns the difference between 1.0 and the next larger representable number.
func Epsilon[F constraints.IFloat]() F {
	return F(info[F]().Epsilon)
}

func IsNaN[F constraints.IFloat](x F) bool {
	return x != x
}

func IsInfinite[F constraints.IFloat](x F) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite returns true if the number is neither infinite nor NaN.
func IsFinite[F constraints.IFloat](x F) bool {
	return !IsNaN(x) && !IsInfinite(x)
}

// IsNormal returns true if the number is neither zero, infinite, subnormal nor NaN.
func IsNormal[F constraints.IFloat](x F) bool {
	return Classify(x) == CategoryNormal
}

func IsSubnormal[F constraints.IFloat](x F) bool {
	return Classify(x) == CategorySubnormal
}

// Classify returns the floating point category of the number.
func Classify[F constraints.IFloat](x F) Category {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return CategoryNan
	case math.IsInf(f, 0):
		return CategoryInfinite
	case f == 0:
		return CategoryZero
	case math.Abs(f) < info[F]().SmallestNormal:
		return CategorySubnormal
	default:
		return CategoryNormal
	}
}

// IsSignPositive returns true if the sign bit is not set, including for +0.0, +Inf and NaNs with a positive sign bit.
func IsSignPositive[F constraints.IFloat](x F) bool {
	return !math.Signbit(float64(x))
}

// IsSignNegative returns true if the sign bit is set, including for -0.0, -Inf and NaNs with a negative sign bit.
func IsSignNegative[F constraints.IFloat](x F) bool {
	return math.Signbit(float64(x))
}
