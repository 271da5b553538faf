/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package numkind describes the closed set of numeric kinds supported by this module: fixed-width signed and unsigned integers, pointer-width integers and the two IEEE-754 floating point widths.
// Every kind carries statically known bounds so that the generic packages never duplicate per-type constants.
package numkind

import (
	"math"
	"math/bits"
	"reflect"

	"github.com/ARM-software/golang-numerics/constraints"
)

//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=lower -text -json
type Kind uint8

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindFloat32
	KindFloat64
)

//go:generate go tool enumer -type=Category -trimprefix=Category -transform=kebab -text -json
type Category uint8

const (
	CategorySignedInteger Category = iota
	CategoryUnsignedInteger
	CategoryFloat
)

// Info holds the static description of a kind.
type Info struct {
	Category Category
	// Bits is the storage width.
	Bits int
	// Precision is the number of magnitude bits which are represented exactly i.e. the mantissa size (with the implicit bit) for floats.
	Precision int
	// Min and Max are the integer bounds. They are zero for floats.
	Min int64
	Max uint64
	// MaxFinite is the largest finite magnitude. For integers, it is Max.
	MaxFinite float64
	// SmallestNormal is the smallest positive normal value of a float kind.
	SmallestNormal float64
	// Epsilon is the difference between 1 and the next representable value of a float kind.
	Epsilon float64
	goType  reflect.Type
}

var kinds = [...]Info{
	KindInt8:    signedInfo(8, math.MinInt8, math.MaxInt8, reflect.TypeFor[int8]()),
	KindInt16:   signedInfo(16, math.MinInt16, math.MaxInt16, reflect.TypeFor[int16]()),
	KindInt32:   signedInfo(32, math.MinInt32, math.MaxInt32, reflect.TypeFor[int32]()),
	KindInt64:   signedInfo(64, math.MinInt64, math.MaxInt64, reflect.TypeFor[int64]()),
	KindInt:     signedInfo(bits.UintSize, math.MinInt, math.MaxInt, reflect.TypeFor[int]()),
	KindUint8:   unsignedInfo(8, math.MaxUint8, reflect.TypeFor[uint8]()),
	KindUint16:  unsignedInfo(16, math.MaxUint16, reflect.TypeFor[uint16]()),
	KindUint32:  unsignedInfo(32, math.MaxUint32, reflect.TypeFor[uint32]()),
	KindUint64:  unsignedInfo(64, math.MaxUint64, reflect.TypeFor[uint64]()),
	KindUint:    unsignedInfo(bits.UintSize, math.MaxUint, reflect.TypeFor[uint]()),
	KindFloat32: floatInfo(32, 24, math.MaxFloat32, 0x1p-126, 0x1p-23, reflect.TypeFor[float32]()),
	KindFloat64: floatInfo(64, 53, math.MaxFloat64, 0x1p-1022, 0x1p-52, reflect.TypeFor[float64]()),
}

func signedInfo(width int, minV int64, maxV uint64, t reflect.Type) Info {
	return Info{
		Category:  CategorySignedInteger,
		Bits:      width,
		Precision: width - 1,
		Min:       minV,
		Max:       maxV,
		MaxFinite: float64(maxV),
		goType:    t,
	}
}

func unsignedInfo(width int, maxV uint64, t reflect.Type) Info {
	return Info{
		Category:  CategoryUnsignedInteger,
		Bits:      width,
		Precision: width,
		Max:       maxV,
		MaxFinite: float64(maxV),
		goType:    t,
	}
}

func floatInfo(width, precision int, maxFinite, smallestNormal, epsilon float64, t reflect.Type) Info {
	return Info{
		Category:       CategoryFloat,
		Bits:           width,
		Precision:      precision,
		MaxFinite:      maxFinite,
		SmallestNormal: smallestNormal,
		Epsilon:        epsilon,
		goType:         t,
	}
}

// Of returns the kind of the type parameter. Defined types are described by their underlying type.
func Of[T constraints.INumber]() Kind {
	k, _ := FromReflectKind(reflect.TypeFor[T]().Kind())
	return k
}

// OfValue returns the kind of a value. It returns false if the value is not a supported number.
func OfValue(v any) (Kind, bool) {
	if v == nil {
		return 0, false
	}
	return FromReflectKind(reflect.TypeOf(v).Kind())
}

// FromReflectKind maps a reflect kind onto a numeric kind.
func FromReflectKind(k reflect.Kind) (Kind, bool) {
	switch k {
	case reflect.Int8:
		return KindInt8, true
	case reflect.Int16:
		return KindInt16, true
	case reflect.Int32:
		return KindInt32, true
	case reflect.Int64:
		return KindInt64, true
	case reflect.Int:
		return KindInt, true
	case reflect.Uint8:
		return KindUint8, true
	case reflect.Uint16:
		return KindUint16, true
	case reflect.Uint32:
		return KindUint32, true
	case reflect.Uint64:
		return KindUint64, true
	case reflect.Uint:
		return KindUint, true
	case reflect.Float32:
		return KindFloat32, true
	case reflect.Float64:
		return KindFloat64, true
	default:
		return 0, false
	}
}

// Info returns the static description of the kind.
func (i Kind) Info() Info {
	if !i.IsAKind() {
		return Info{}
	}
	return kinds[i]
}

// Category returns whether the kind is a signed integer, an unsigned integer or a float.
func (i Kind) Category() Category {
	return i.Info().Category
}

// Bits returns the storage width of the kind.
func (i Kind) Bits() int {
	return i.Info().Bits
}

// Precision returns the number of magnitude bits the kind represents exactly.
func (i Kind) Precision() int {
	return i.Info().Precision
}

// MinInt returns the minimum value of an integer kind.
func (i Kind) MinInt() int64 {
	return i.Info().Min
}

// MaxUint returns the maximum value of an integer kind.
func (i Kind) MaxUint() uint64 {
	return i.Info().Max
}

// MaxFinite returns the largest finite magnitude of the kind.
func (i Kind) MaxFinite() float64 {
	return i.Info().MaxFinite
}

// Type returns the predeclared Go type of the kind.
func (i Kind) Type() reflect.Type {
	return i.Info().goType
}

func (i Kind) IsSignedInteger() bool {
	return i.IsAKind() && i.Category() == CategorySignedInteger
}

func (i Kind) IsUnsignedInteger() bool {
	return i.IsAKind() && i.Category() == CategoryUnsignedInteger
}

func (i Kind) IsInteger() bool {
	return i.IsSignedInteger() || i.IsUnsignedInteger()
}

func (i Kind) IsFloat() bool {
	return i.IsAKind() && i.Category() == CategoryFloat
}

// IsSigned states whether the kind can hold negative values.
func (i Kind) IsSigned() bool {
	return i.IsSignedInteger() || i.IsFloat()
}

// Contains states whether every value of `inner` is exactly representable as a value of `outer`.
func Contains(outer, inner Kind) bool {
	if !outer.IsAKind() || !inner.IsAKind() {
		return false
	}
	if outer == inner {
		return true
	}
	switch inner.Category() {
	case CategorySignedInteger:
		switch outer.Category() {
		case CategorySignedInteger:
			return outer.Bits() >= inner.Bits()
		case CategoryFloat:
			return outer.Precision() >= inner.Precision()
		default:
			return false
		}
	case CategoryUnsignedInteger:
		switch outer.Category() {
		case CategoryUnsignedInteger:
			return outer.Bits() >= inner.Bits()
		case CategorySignedInteger:
			return outer.Bits() > inner.Bits()
		default:
			return outer.Precision() >= inner.Precision()
		}
	default:
		return outer.IsFloat() && outer.Bits() >= inner.Bits()
	}
}
