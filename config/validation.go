package config

import (
	"reflect"
	"strings"
)

// Validator is implemented by configuration structures which can check their own entries.
type Validator interface {
	Validate() error
}

// ValidateEmbedded uses reflection to find embedded structs and validate them.
// Every embedded struct is validated and all failing entries are reported.
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Ptr || r.Elem().Kind() != reflect.Struct {
		return nil
	}
	r = r.Elem()
	var failures []error
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.Addr().CanInterface() {
			continue
		}
		validator, ok := f.Addr().Interface().(Validator)
		if !ok {
			continue
		}
		structField := r.Type().Field(i)
		if err := WrapFieldValidationError(structField.Name, processMapStructureString(structField.Tag.Get("mapstructure")), validator.Validate()); err != nil {
			failures = append(failures, err)
		}
	}
	return NewValidationErrors(failures...)
}

// processMapStructureString returns the key name of a mapstructure tag, ignoring its options.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
