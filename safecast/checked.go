/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safecast converts numbers between the numeric kinds.
//
// The checked family (CastFrom, CastInto, Cast, Convert) only succeeds when the value is
// representable in the target kind. The saturating family (ToInt8, ToUint64, ...) clamps
// out-of-range values to the closest bound instead.
package safecast

import (
	"math"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

// CastFrom converts s into T. It returns false when s is not representable in T.
// Floats converted to integers are truncated toward zero, and NaN survives float narrowing.
func CastFrom[T, S constraints.INumber](s S) (t T, ok bool) {
	if !representable(s, numkind.Of[S](), numkind.Of[T]()) {
		return
	}
	t = T(s)
	ok = true
	return
}

// CastInto converts s and stores the result in dst. dst is left untouched when the conversion fails.
func CastInto[S, T constraints.INumber](s S, dst *T) bool {
	if dst == nil {
		return false
	}
	v, ok := CastFrom[T](s)
	if ok {
		*dst = v
	}
	return ok
}

// Convert is similar to CastFrom but returns an error wrapping commonerrors.ErrOutOfRange on failure.
func Convert[T, S constraints.INumber](s S) (T, error) {
	v, ok := CastFrom[T](s)
	if !ok {
		return v, outOfRange(s, numkind.Of[S](), numkind.Of[T]())
	}
	return v, nil
}

func outOfRange(value any, src, dst numkind.Kind) error {
	return commonerrors.Newf(commonerrors.ErrOutOfRange, "%v (%v) cannot be represented as %v", value, src, dst)
}

func representable[S constraints.INumber](s S, src, dst numkind.Kind) bool {
	switch RuleFor(src, dst) {
	case RuleSignedNarrowing:
		v := int64(s)
		return v >= dst.MinInt() && v <= int64(dst.MaxUint())
	case RuleSignedToUnsigned:
		v := int64(s)
		return v >= 0 && uint64(v) <= dst.MaxUint()
	case RuleUnsignedNarrowing, RuleUnsignedToSigned:
		return uint64(s) <= dst.MaxUint()
	case RuleFloatToInteger:
		return floatFitsInteger(float64(s), dst)
	case RuleFloatNarrowing:
		f := float64(s)
		return math.IsNaN(f) || math.Abs(f) <= dst.MaxFinite()
	default:
		return true
	}
}

// floatFitsInteger compares f against the integer bounds of dst without rounding the bounds.
// The lower bound is a power of two (or zero) so always exact. The upper bound 2^n-1 is exact
// as long as n fits the float64 mantissa; above that no float64 lies between 2^n-1 and 2^n.
func floatFitsInteger(f float64, dst numkind.Kind) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if f < float64(dst.MinInt()) {
		return false
	}
	valueBits := dst.Bits()
	if dst.IsSignedInteger() {
		valueBits--
	}
	if valueBits <= numkind.KindFloat64.Precision() {
		return f <= float64(dst.MaxUint())
	}
	return f < math.Ldexp(1, valueBits)
}
