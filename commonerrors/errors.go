// Package commonerrors defines the error types shared by all the numeric packages.
// Errors are plain sentinels which can be wrapped with a reason while still being matched using `errors.Is`.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrUndefined      = errors.New("undefined")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCondition      = errors.New("failed condition")
	ErrEmpty          = errors.New("empty")
	ErrUnexpected     = errors.New("unexpected")
	ErrOutOfRange     = errors.New("out of range")
	ErrOverflow       = errors.New("overflow")
)

var commonErrors = []error{
	ErrNotImplemented,
	ErrNoLogger,
	ErrNoLoggerSource,
	ErrUndefined,
	ErrUnsupported,
	ErrUnknown,
	ErrInvalid,
	ErrMarshalling,
	ErrCondition,
	ErrEmpty,
	ErrUnexpected,
	ErrOutOfRange,
	ErrOverflow,
}

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the error description contains any of the strings provided. The comparison is case-insensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Ignore returns nil if `target` corresponds to any of the `ignore` errors. Otherwise, it returns `target`.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// IsEmpty states whether an error is empty or not.
func IsEmpty(err any) bool {
	if err == nil {
		return true
	}
	if e, ok := err.(error); ok {
		return e == nil || strings.TrimSpace(e.Error()) == ""
	}
	return false
}

// New creates a new error of type `targetErr` with a reason.
func New(targetErr error, msg string) error {
	tErr := targetErr
	if tErr == nil {
		tErr = ErrUnknown
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return tErr
	}
	return fmt.Errorf("%w: %v", tErr, msg)
}

// Newf is similar to New but allows formatting of messages.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError. The description of the original error is kept in the message.
func WrapError(targetError, originalError error, msg string) error {
	tErr := targetError
	if tErr == nil {
		tErr = ErrUnknown
	}
	if originalError == nil {
		return New(tErr, msg)
	}
	cleansedMsg := strings.TrimSpace(msg)
	if cleansedMsg == "" {
		return fmt.Errorf("%w: %v", tErr, originalError.Error())
	}
	return fmt.Errorf("%w: %v: %v", tErr, cleansedMsg, originalError.Error())
}

// WrapErrorf is similar to WrapError but allows formatting of messages.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// GetCommonErrorReason returns the reason of an error wrapping a common error i.e. the text after `common error:`.
// An error is returned if the error does not wrap any common error.
func GetCommonErrorReason(err error) (reason string, commonErr error) {
	if err == nil {
		return
	}
	for i := range commonErrors {
		if errors.Is(err, commonErrors[i]) {
			commonErr = commonErrors[i]
			reason = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(err.Error(), commonErr.Error()), ":"))
			return
		}
	}
	reason = err.Error()
	commonErr = ErrUnknown
	return
}
