// Package validation provides ozzo validation rules for numeric options.
package validation

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/integer"
	"github.com/ARM-software/golang-numerics/numkind"
)

// IsKind checks that a string or a numkind.Kind names one of the numeric kinds.
// Empty strings are valid; combine with validation.Required to reject them.
func IsKind() validation.Rule {
	return validation.By(func(vRaw any) error {
		switch v := vRaw.(type) {
		case numkind.Kind:
			if !v.IsAKind() {
				return commonerrors.Newf(commonerrors.ErrInvalid, "unknown numeric kind %v", v)
			}
		case string:
			if v == "" {
				return nil
			}
			if _, err := numkind.KindString(v); err != nil {
				return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "unknown numeric kind %q", v)
			}
		case *string:
			if v == nil {
				return nil
			}
			return IsKind().Validate(*v)
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for kind validation: %T", vRaw)
		}
		return nil
	})
}

// IsRadix checks that an integer is a radix accepted by integer.ParseRadix.
func IsRadix() validation.Rule {
	return validation.By(func(vRaw any) error {
		val := reflect.ValueOf(vRaw)
		var radix int64
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			radix = val.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if val.Uint() > integer.MaxRadix {
				radix = integer.MaxRadix + 1
			} else {
				radix = int64(val.Uint())
			}
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for radix validation: %T", vRaw)
		}
		if radix < integer.MinRadix || radix > integer.MaxRadix {
			return commonerrors.Newf(commonerrors.ErrInvalid, "radix %v is not within [%v, %v]", radix, integer.MinRadix, integer.MaxRadix)
		}
		return nil
	})
}
