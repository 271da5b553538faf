/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package integer provides width-aware bit manipulation and arithmetic for every signed and unsigned integer kind.
// All functions take the width of their type parameter into account e.g. rotating an uint8 rotates 8 bits, not 64.
package integer

import (
	"math/bits"

	"golang.org/x/sys/cpu"

	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

func width[T constraints.IInteger]() int {
	return numkind.Of[T]().Bits()
}

func isSigned[T constraints.IInteger]() bool {
	return numkind.Of[T]().IsSignedInteger()
}

func mask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

// pattern returns the bits of x, zero-extended to 64 bits.
func pattern[T constraints.IInteger](x T) uint64 {
	return uint64(x) & mask(width[T]())
}

// MinValue returns the smallest value representable by the integer kind.
func MinValue[T constraints.IInteger]() T {
	return T(numkind.Of[T]().MinInt())
}

// MaxValue returns the largest value representable by the integer kind.
func MaxValue[T constraints.IInteger]() T {
	return T(numkind.Of[T]().MaxUint())
}

// CountOnes returns the number of ones in the binary representation of x.
func CountOnes[T constraints.IInteger](x T) uint32 {
	return uint32(bits.OnesCount64(pattern(x)))
}

// CountZeros returns the number of zeros in the binary representation of x.
func CountZeros[T constraints.IInteger](x T) uint32 {
	return uint32(width[T]()) - CountOnes(x)
}

// LeadingZeros returns the number of leading zeros in the binary representation of x.
func LeadingZeros[T constraints.IInteger](x T) uint32 {
	return uint32(bits.LeadingZeros64(pattern(x)) - (64 - width[T]()))
}

// TrailingZeros returns the number of trailing zeros in the binary representation of x.
// It returns the width of the kind when x is zero.
func TrailingZeros[T constraints.IInteger](x T) uint32 {
	p := pattern(x)
	if p == 0 {
		return uint32(width[T]())
	}
	return uint32(bits.TrailingZeros64(p))
}

// RotateLeft shifts the bits to the left by n, wrapping the truncated bits to the end.
func RotateLeft[T constraints.IInteger](x T, n uint32) T {
	w := width[T]()
	k := int(n % uint32(w))
	p := pattern(x)
	return T((p<<k | p>>(w-k)) & mask(w))
}

// RotateRight shifts the bits to the right by n, wrapping the truncated bits to the beginning.
func RotateRight[T constraints.IInteger](x T, n uint32) T {
	w := uint32(width[T]())
	return RotateLeft(x, w-n%w)
}

// SwapBytes reverses the byte order of x.
func SwapBytes[T constraints.IInteger](x T) T {
	switch width[T]() {
	case 16:
		return T(bits.ReverseBytes16(uint16(x)))
	case 32:
		return T(bits.ReverseBytes32(uint32(x)))
	case 64:
		return T(bits.ReverseBytes64(uint64(x)))
	default:
		return x
	}
}

// FromBigEndian converts x from big endian to the target's endianness.
func FromBigEndian[T constraints.IInteger](x T) T {
	if cpu.IsBigEndian {
		return x
	}
	return SwapBytes(x)
}

// FromLittleEndian converts x from little endian to the target's endianness.
func FromLittleEndian[T constraints.IInteger](x T) T {
	if cpu.IsBigEndian {
		return SwapBytes(x)
	}
	return x
}

// ToBigEndian converts x to big endian from the target's endianness.
func ToBigEndian[T constraints.IInteger](x T) T {
	return FromBigEndian(x)
}

// ToLittleEndian converts x to little endian from the target's endianness.
func ToLittleEndian[T constraints.IInteger](x T) T {
	return FromLittleEndian(x)
}
