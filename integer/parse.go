package integer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/constraints"
	"github.com/ARM-software/golang-numerics/numkind"
)

const (
	MinRadix = 2
	MaxRadix = 36
)

// ParseError describes why a text could not be parsed into an integer kind.
// It wraps commonerrors.ErrInvalid for malformed input and commonerrors.ErrOutOfRange for literals which do not fit in the kind.
type ParseError struct {
	Input  string
	Radix  int
	Kind   numkind.Kind
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return commonerrors.Newf(e.Err, "could not parse %q as %v in radix %d: %v", e.Input, e.Kind, e.Radix, e.Reason).Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(input string, radix int, kind numkind.Kind, err error, reason string) *ParseError {
	return &ParseError{
		Input:  input,
		Radix:  radix,
		Kind:   kind,
		Reason: reason,
		Err:    err,
	}
}

// ParseRadix converts a string in the given radix to an integer of kind T.
// The string may start with a `+` sign, and with a `-` sign for signed kinds. Digits are case-insensitive and no prefix (e.g. 0x) nor underscore is accepted.
// The radix must be in [2, 36].
func ParseRadix[T constraints.IInteger](s string, radix int) (T, error) {
	kind := numkind.Of[T]()
	if radix < MinRadix || radix > MaxRadix {
		return 0, newParseError(s, radix, kind, commonerrors.ErrInvalid, fmt.Sprintf("radix must be in [%d, %d]", MinRadix, MaxRadix))
	}
	if s == "" {
		return 0, newParseError(s, radix, kind, commonerrors.ErrInvalid, "empty input")
	}
	if kind.IsSignedInteger() {
		v, err := strconv.ParseInt(s, radix, kind.Bits())
		if err != nil {
			return 0, convertNumError(s, radix, kind, err)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), radix, kind.Bits())
	if err != nil {
		return 0, convertNumError(s, radix, kind, err)
	}
	return T(v), nil
}

func convertNumError(s string, radix int, kind numkind.Kind, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return newParseError(s, radix, kind, commonerrors.ErrOutOfRange, fmt.Sprintf("value does not fit in [%v, %v]", kind.MinInt(), kind.MaxUint()))
	}
	return newParseError(s, radix, kind, commonerrors.ErrInvalid, "invalid digit found in string")
}
