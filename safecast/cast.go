package safecast

import (
	"math"

	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

// Saturate converts any [constraints.IConvertable] value to T.
// If the value lies outside the range of T, the closest boundary value is returned.
// NaN converts to zero for integer targets and stays NaN for float targets.
func Saturate[T, S constraints.IConvertable](s S) T {
	if v, ok := CastFrom[T](s); ok {
		return v
	}
	dst := numkind.Of[T]()
	if numkind.Of[S]().IsFloat() && math.IsNaN(float64(s)) {
		return 0
	}
	negative := s < 0
	if dst.IsFloat() {
		if negative {
			return T(-dst.MaxFinite())
		}
		return T(dst.MaxFinite())
	}
	if negative {
		return T(dst.MinInt())
	}
	return T(dst.MaxUint())
}

// ToInt attempts to convert any [constraints.IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned.
func ToInt[C constraints.IConvertable](i C) int {
	return Saturate[int](i)
}

// ToUint attempts to convert any [constraints.IConvertable] value to an uint.
// If the conversion results in a value outside the range of an uint,
// the closest boundary value will be returned.
func ToUint[C constraints.IConvertable](i C) uint {
	return Saturate[uint](i)
}

// ToInt8 attempts to convert any [constraints.IConvertable] value to an int8.
// If the conversion results in a value outside the range of an int8,
// the closest boundary value will be returned.
func ToInt8[C constraints.IConvertable](i C) int8 {
	return Saturate[int8](i)
}

// ToUint8 attempts to convert any [constraints.IConvertable] value to an uint8.
// If the conversion results in a value outside the range of an uint8,
// the closest boundary value will be returned.
func ToUint8[C constraints.IConvertable](i C) uint8 {
	return Saturate[uint8](i)
}

// ToInt16 attempts to convert any [constraints.IConvertable] value to an int16.
// If the conversion results in a value outside the range of an int16,
// the closest boundary value will be returned.
func ToInt16[C constraints.IConvertable](i C) int16 {
	return Saturate[int16](i)
}

// ToUint16 attempts to convert any [constraints.IConvertable] value to an uint16.
// If the conversion results in a value outside the range of an uint16,
// the closest boundary value will be returned.
func ToUint16[C constraints.IConvertable](i C) uint16 {
	return Saturate[uint16](i)
}

// ToInt32 attempts to convert any [constraints.IConvertable] value to an int32.
// If the conversion results in a value outside the range of an int32,
// the closest boundary value will be returned.
func ToInt32[C constraints.IConvertable](i C) int32 {
	return Saturate[int32](i)
}

// ToUint32 attempts to convert any [constraints.IConvertable] value to an uint32.
// If the conversion results in a value outside the range of an uint32,
// the closest boundary value will be returned.
func ToUint32[C constraints.IConvertable](i C) uint32 {
	return Saturate[uint32](i)
}

// ToInt64 attempts to convert any [constraints.IConvertable] value to an int64.
// If the conversion results in a value outside the range of an int64,
// the closest boundary value will be returned.
func ToInt64[C constraints.IConvertable](i C) int64 {
	return Saturate[int64](i)
}

// ToUint64 attempts to convert any [constraints.IConvertable] value to an uint64.
// If the conversion results in a value outside the range of an uint64,
// the closest boundary value will be returned.
func ToUint64[C constraints.IConvertable](i C) uint64 {
	return Saturate[uint64](i)
}

// ToFloat32 attempts to convert any [constraints.IConvertable] value to a float32.
// Values beyond the finite float32 range, infinities included, are clamped to ±math.MaxFloat32.
func ToFloat32[C constraints.IConvertable](i C) float32 {
	return Saturate[float32](i)
}

// ToFloat64 attempts to convert any [constraints.IConvertable] value to a float64.
func ToFloat64[C constraints.IConvertable](i C) float64 {
	return float64(i)
}
