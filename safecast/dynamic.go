package safecast

import (
	"reflect"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

// Cast converts value, which must be of kind src, into a value of kind dst.
// The returned value has the built-in Go type of dst. It returns false when value is not
// of kind src or is not representable in dst.
func Cast(src, dst numkind.Kind, value any) (any, bool) {
	if !src.IsAKind() || !dst.IsAKind() {
		return nil, false
	}
	if k, ok := numkind.OfValue(value); !ok || k != src {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch src {
	case numkind.KindInt8:
		return castTo(int8(rv.Int()), dst)
	case numkind.KindInt16:
		return castTo(int16(rv.Int()), dst)
	case numkind.KindInt32:
		return castTo(int32(rv.Int()), dst)
	case numkind.KindInt64:
		return castTo(rv.Int(), dst)
	case numkind.KindInt:
		return castTo(int(rv.Int()), dst)
	case numkind.KindUint8:
		return castTo(uint8(rv.Uint()), dst)
	case numkind.KindUint16:
		return castTo(uint16(rv.Uint()), dst)
	case numkind.KindUint32:
		return castTo(uint32(rv.Uint()), dst)
	case numkind.KindUint64:
		return castTo(rv.Uint(), dst)
	case numkind.KindUint:
		return castTo(uint(rv.Uint()), dst)
	case numkind.KindFloat32:
		return castTo(float32(rv.Float()), dst)
	case numkind.KindFloat64:
		return castTo(rv.Float(), dst)
	default:
		return nil, false
	}
}

// CastValue converts value into a value of kind dst, inferring the source kind from value.
func CastValue(value any, dst numkind.Kind) (any, error) {
	if !dst.IsAKind() {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unknown target kind %v", dst)
	}
	src, ok := numkind.OfValue(value)
	if !ok {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%T is not a supported number", value)
	}
	converted, ok := Cast(src, dst, value)
	if !ok {
		return nil, outOfRange(value, src, dst)
	}
	return converted, nil
}

func castTo[S constraints.INumber](s S, dst numkind.Kind) (any, bool) {
	switch dst {
	case numkind.KindInt8:
		return box[int8](s)
	case numkind.KindInt16:
		return box[int16](s)
	case numkind.KindInt32:
		return box[int32](s)
	case numkind.KindInt64:
		return box[int64](s)
	case numkind.KindInt:
		return box[int](s)
	case numkind.KindUint8:
		return box[uint8](s)
	case numkind.KindUint16:
		return box[uint16](s)
	case numkind.KindUint32:
		return box[uint32](s)
	case numkind.KindUint64:
		return box[uint64](s)
	case numkind.KindUint:
		return box[uint](s)
	case numkind.KindFloat32:
		return box[float32](s)
	case numkind.KindFloat64:
		return box[float64](s)
	default:
		return nil, false
	}
}

func box[T, S constraints.INumber](s S) (any, bool) {
	v, ok := CastFrom[T](s)
	if !ok {
		return nil, false
	}
	return v, true
}
