// Package constraints defines the type sets used by the generic numeric functions of this module.
// It builds on https://pkg.go.dev/golang.org/x/exp/constraints and restricts them to the fixed-width kinds this module supports.
package constraints

import "golang.org/x/exp/constraints"

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger interface {
	constraints.Signed
}

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, and uint64 types.
// uintptr is not part of the set.
type IUnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IInteger is an alias for the all unsigned and signed integers
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}

// IFloat is an alias for the float32 and float64 types.
type IFloat interface {
	constraints.Float
}

// ISigned is an alias for all the numbers able to hold a negative value.
type ISigned interface {
	ISignedInteger | IFloat
}

// INumber is an alias for all integers and floats
type INumber interface {
	IInteger | IFloat
}

// IConvertable is an alias for everything that can be converted
type IConvertable interface {
	INumber
}
