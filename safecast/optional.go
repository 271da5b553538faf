package safecast

import (
	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/field"
)

// ToOptional converts s into T and returns nil when s is not representable in T.
func ToOptional[T, S constraints.INumber](s S) *T {
	v, ok := CastFrom[T](s)
	if !ok {
		return nil
	}
	return field.ToOptional(v)
}

// Then converts an optional value. A nil input, or a failed conversion, yields nil so that
// chained conversions stop at the first failure.
//
//	v := safecast.Then[uint8](safecast.ToOptional[int16](x))
func Then[T, S constraints.INumber](opt *S) *T {
	if opt == nil {
		return nil
	}
	return ToOptional[T](*opt)
}
