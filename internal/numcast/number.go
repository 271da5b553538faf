package numcast

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/integer"
	"github.com/ARM-software/golang-numerics/numkind"
	"github.com/ARM-software/golang-numerics/safecast"
)

// ParseNumber reads text as a decimal number of the named kind.
// When kind is empty, it is inferred: int64, then uint64, then float64.
func ParseNumber(text, kind string) (any, numkind.Kind, error) {
	text = strings.TrimSpace(text)
	if kind == "" {
		return inferNumber(text)
	}
	k, err := numkind.KindString(kind)
	if err != nil {
		return nil, 0, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "unknown numeric kind %q", kind)
	}
	v, err := parseKind(text, k, 10)
	return v, k, err
}

func inferNumber(text string) (any, numkind.Kind, error) {
	if v, err := integer.ParseRadix[int64](text, 10); err == nil {
		return v, numkind.KindInt64, nil
	}
	if v, err := integer.ParseRadix[uint64](text, 10); err == nil {
		return v, numkind.KindUint64, nil
	}
	f, err := parseFloat(text)
	if err != nil {
		return nil, 0, err
	}
	return f, numkind.KindFloat64, nil
}

func parseFloat(text string) (float64, error) {
	f, err := cast.ToFloat64E(text)
	if err == nil {
		return f, nil
	}
	if _, rangeErr := strconv.ParseFloat(text, 64); errors.Is(rangeErr, strconv.ErrRange) {
		return 0, commonerrors.Newf(commonerrors.ErrOutOfRange, "%q cannot be represented as %v", text, numkind.KindFloat64)
	}
	return 0, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%q is not a number", text)
}

func parseKind(text string, k numkind.Kind, radix int) (any, error) {
	switch k {
	case numkind.KindInt8:
		return parseInteger[int8](text, radix)
	case numkind.KindInt16:
		return parseInteger[int16](text, radix)
	case numkind.KindInt32:
		return parseInteger[int32](text, radix)
	case numkind.KindInt64:
		return parseInteger[int64](text, radix)
	case numkind.KindInt:
		return parseInteger[int](text, radix)
	case numkind.KindUint8:
		return parseInteger[uint8](text, radix)
	case numkind.KindUint16:
		return parseInteger[uint16](text, radix)
	case numkind.KindUint32:
		return parseInteger[uint32](text, radix)
	case numkind.KindUint64:
		return parseInteger[uint64](text, radix)
	case numkind.KindUint:
		return parseInteger[uint](text, radix)
	case numkind.KindFloat32, numkind.KindFloat64:
		if radix != 10 {
			return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "%v can only be parsed in radix 10", k)
		}
		f, err := parseFloat(text)
		if err != nil {
			return nil, err
		}
		return safecast.CastValue(f, k)
	default:
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unknown numeric kind %v", k)
	}
}

func parseInteger[T constraints.IInteger](text string, radix int) (any, error) {
	v, err := integer.ParseRadix[T](text, radix)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// FormatNumber prints a number of any kind. Floats use the shortest representation which reads back to the same value.
func FormatNumber(v any) string {
	switch f := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return cast.ToString(v)
	}
}
