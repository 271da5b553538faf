package config

import (
	"errors"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"

	"github.com/ARM-software/golang-numerics/commonerrors"
)

// ValidationError describes which configuration entry failed validation and why.
// It always matches commonerrors.ErrInvalid.
type ValidationError struct {
	// Tree lists the structure fields leading to the entry, outermost first.
	Tree []string
	// Keys lists the mapstructure keys leading to the entry, outermost first.
	Keys   []string
	Reason string
}

func (v *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration failed validation:")
	if len(v.Tree) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(v.Tree, "->"))
		b.WriteString(")")
	}
	if key := v.Key(); key != "" {
		b.WriteString(" [")
		b.WriteString(key)
		b.WriteString("]")
	}
	if v.Reason != "" {
		b.WriteString(" ")
		b.WriteString(v.Reason)
	}
	return commonerrors.New(commonerrors.ErrInvalid, b.String()).Error()
}

// Key returns the dotted configuration key of the entry.
func (v *ValidationError) Key() string {
	return strings.Join(v.Keys, configKeySeparator)
}

// EnvVar returns the environment variable which sets the entry.
func (v *ValidationError) EnvVar(envVarPrefix string) string {
	if len(v.Keys) == 0 {
		return ""
	}
	return EnvVarName(envVarPrefix, v.Key())
}

func (v *ValidationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *ValidationError) record(fieldName, key string) {
	v.Tree = slices.Insert(v.Tree, 0, strings.TrimSpace(fieldName))
	if key != "" {
		v.Keys = slices.Insert(v.Keys, 0, key)
	}
}

// WrapFieldValidationError records that the field fieldName, read from key, failed validation with err.
func WrapFieldValidationError(fieldName, key string, err error) error {
	vErrs := collectValidationErrors(err)
	for i := range vErrs {
		vErrs[i].record(fieldName, key)
	}
	return combineValidationErrors(vErrs)
}

// NewValidationError converts err into a ValidationError describing its first failing entry.
// Ozzo validation errors keep the name of the failing field.
func NewValidationError(err error) *ValidationError {
	vErrs := collectValidationErrors(err)
	if len(vErrs) == 0 {
		return nil
	}
	return vErrs[0]
}

// NewValidationErrors converts errs into one ValidationError per failing entry.
// A single failure is returned as a *ValidationError, several are gathered in a *multierror.Error.
// It returns nil when nothing failed.
func NewValidationErrors(errs ...error) error {
	var vErrs []*ValidationError
	for i := range errs {
		vErrs = append(vErrs, collectValidationErrors(errs[i])...)
	}
	return combineValidationErrors(vErrs)
}

// ValidationErrorList returns every failing entry described by err.
func ValidationErrorList(err error) []*ValidationError {
	return collectValidationErrors(err)
}

func combineValidationErrors(vErrs []*ValidationError) error {
	switch len(vErrs) {
	case 0:
		return nil
	case 1:
		return vErrs[0]
	}
	result := &multierror.Error{ErrorFormat: formatValidationErrors}
	for i := range vErrs {
		result = multierror.Append(result, vErrs[i])
	}
	return result
}

func formatValidationErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for i := range errs {
		msgs = append(msgs, errs[i].Error())
	}
	return strings.Join(msgs, "; ")
}

func collectValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	var mErr *multierror.Error
	if errors.As(err, &mErr) {
		var vErrs []*ValidationError
		for i := range mErr.Errors {
			vErrs = append(vErrs, collectValidationErrors(mErr.Errors[i])...)
		}
		return vErrs
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return []*ValidationError{vErr}
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return fromOzzoErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return []*ValidationError{{Reason: oe.Error()}}
	}
	reason, _ := commonerrors.GetCommonErrorReason(err)
	return []*ValidationError{{Reason: reason}}
}

// fromOzzoErrors returns the failing entries sorted by key.
func fromOzzoErrors(oes validation.Errors) []*ValidationError {
	keys := make([]string, 0, len(oes))
	for key, err := range oes {
		if err != nil {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return []*ValidationError{{Reason: oes.Error()}}
	}
	slices.Sort(keys)
	var vErrs []*ValidationError
	for _, key := range keys {
		entries := collectValidationErrors(oes[key])
		for i := range entries {
			entries[i].record(key, key)
		}
		vErrs = append(vErrs, entries...)
	}
	return vErrs
}
