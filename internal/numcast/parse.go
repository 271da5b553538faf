package numcast

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/config"
	"github.com/ARM-software/golang-numerics/numkind"
)

type parseResult struct {
	Input string       `json:"input"`
	Radix int          `json:"radix"`
	Kind  numkind.Kind `json:"kind"`
	Value string       `json:"value"`
}

func newParseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse --kind KIND [--radix N] TEXT",
		Short: "Parses an integer written in any radix between 2 and 36",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args[0])
		},
	}
	cmd.Flags().String("kind", "", "kind of the parsed number")
	cmd.Flags().Int("radix", 10, "radix of TEXT")
	a.bind("PARSE_KIND", cmd.Flags().Lookup("kind"))
	a.bind("PARSE_RADIX", cmd.Flags().Lookup("radix"))
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, text string) error {
	opts := a.options.Parse
	if opts.Kind == "" {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing kind: set --kind or %v", config.EnvVarName(EnvVarPrefix, "PARSE_KIND"))
	}
	k, err := numkind.KindString(opts.Kind)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
	}
	v, err := parseKind(text, k, opts.Radix)
	if err != nil {
		a.logger.Error(err, "could not parse", "input", text, "kind", k, "radix", opts.Radix)
		return err
	}
	result := parseResult{
		Input: text,
		Radix: opts.Radix,
		Kind:  k,
		Value: FormatNumber(v),
	}
	a.logger.V(1).Info("parsed", "input", text, "kind", k, "radix", opts.Radix)
	return a.print(cmd, result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Value)
		return err
	})
}
