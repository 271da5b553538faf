// Package value inspects arbitrary values.
package value

import (
	"reflect"
	"strings"

	"github.com/ARM-software/golang-numerics/numkind"
)

// IsEmpty checks whether a value is empty i.e. "", nil, 0, [], {}, false, etc.
// For strings, a string is considered empty if it is "" or if it only contains whitespaces.
// Numbers of any numeric kind, defined types included, are empty when equal to zero: -0.0 is empty, NaN is not.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return isBlank(v)
	case *string:
		return v == nil || isBlank(*v)
	case bool:
		return !v
	}
	objValue := reflect.ValueOf(value)
	if kind, ok := numkind.OfValue(value); ok {
		return isZeroNumber(objValue, kind)
	}
	switch objValue.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return objValue.Len() == 0
	case reflect.Ptr:
		if objValue.IsNil() {
			return true
		}
		return IsEmpty(objValue.Elem().Interface())
	default:
		return objValue.IsZero()
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isZeroNumber(v reflect.Value, kind numkind.Kind) bool {
	switch kind.Category() {
	case numkind.CategorySignedInteger:
		return v.Int() == 0
	case numkind.CategoryUnsignedInteger:
		return v.Uint() == 0
	default:
		return v.Float() == 0
	}
}
