/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package signed provides the operations available on numbers able to hold negative values: signed integers and floats.
package signed

import (
	"math"

	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

func isFloat[T constraints.ISigned]() bool {
	return numkind.Of[T]().IsFloat()
}

// Abs computes the absolute value.
//
// For floats, NaN is returned if the number is NaN and -0.0 becomes +0.0.
// For signed integers, the minimum value of the kind is returned unchanged as its opposite does not fit.
func Abs[T constraints.ISigned](x T) T {
	if isFloat[T]() {
		return T(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns the sign of the number.
//
// For floats:
//   - 1.0 if the number is positive, +0.0 or +Inf
//   - -1.0 if the number is negative, -0.0 or -Inf
//   - NaN if the number is NaN
//
// For signed integers:
//   - 0 if the number is zero
//   - 1 if the number is positive
//   - -1 if the number is negative
func Signum[T constraints.ISigned](x T) T {
	if isFloat[T]() {
		f := float64(x)
		if math.IsNaN(f) {
			return x
		}
		return T(math.Copysign(1, f))
	}
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IsPositive returns true if the number is positive and false if the number is zero or negative.
// For floats, +0.0 and +Inf are positive. NaN is neither positive nor negative.
func IsPositive[T constraints.ISigned](x T) bool {
	if isFloat[T]() {
		f := float64(x)
		return f > 0 || 1/f == math.Inf(1)
	}
	return x > 0
}

// IsNegative returns true if the number is negative and false if the number is zero or positive.
// For floats, -0.0 and -Inf are negative. NaN is neither positive nor negative.
func IsNegative[T constraints.ISigned](x T) bool {
	if isFloat[T]() {
		f := float64(x)
		return f < 0 || 1/f == math.Inf(-1)
	}
	return x < 0
}
