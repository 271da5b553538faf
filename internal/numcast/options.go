package numcast

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/config"
	numvalidation "github.com/ARM-software/golang-numerics/config/validation"
	"github.com/ARM-software/golang-numerics/logs"
)

// EnvVarPrefix is the prefix of the environment variables read by numcast e.g. NUMCAST_CAST_TO.
const EnvVarPrefix = "numcast"

const (
	formatText = "text"
	formatJSON = "json"
)

// Options gathers every numcast setting. Each entry can be set by flag, by environment variable or by default.
type Options struct {
	Output string       `mapstructure:"output"`
	Log    LogOptions   `mapstructure:"log"`
	Cast   CastOptions  `mapstructure:"cast"`
	Parse  ParseOptions `mapstructure:"parse"`
	Rules  RulesOptions `mapstructure:"rules"`
}

func (o *Options) Validate() error {
	validation.ErrorTag = "mapstructure"
	return config.NewValidationErrors(
		config.ValidateEmbedded(o),
		validation.ValidateStruct(o,
			validation.Field(&o.Output, validation.Required, validation.In(formatText, formatJSON)),
		),
	)
}

// LogOptions selects the logger.
type LogOptions struct {
	Backend string `mapstructure:"backend"`
	Quiet   bool   `mapstructure:"quiet"`
}

func (o *LogOptions) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(o,
		validation.Field(&o.Backend, validation.Required, validation.By(isBackend)),
	)
}

func isBackend(v any) error {
	name, _ := v.(string)
	if _, err := logs.BackendString(name); err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "unknown logging backend %q", name)
	}
	return nil
}

type CastOptions struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

func (o *CastOptions) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(o,
		validation.Field(&o.From, numvalidation.IsKind()),
		validation.Field(&o.To, numvalidation.IsKind()),
	)
}

type ParseOptions struct {
	Kind  string `mapstructure:"kind"`
	Radix int    `mapstructure:"radix"`
}

func (o *ParseOptions) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(o,
		validation.Field(&o.Kind, numvalidation.IsKind()),
		validation.Field(&o.Radix, numvalidation.IsRadix()),
	)
}

type RulesOptions struct {
	From string `mapstructure:"from"`
}

func (o *RulesOptions) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(o,
		validation.Field(&o.From, numvalidation.IsKind()),
	)
}

// DefaultOptions returns the settings used when neither flags nor environment variables are set.
func DefaultOptions() *Options {
	return &Options{
		Output: formatText,
		Log: LogOptions{
			Backend: logs.BackendNone.String(),
		},
		Parse: ParseOptions{
			Radix: 10,
		},
	}
}
