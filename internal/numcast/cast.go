package numcast

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/config"
	"github.com/ARM-software/golang-numerics/numkind"
	"github.com/ARM-software/golang-numerics/safecast"
)

type castResult struct {
	Input string        `json:"input"`
	From  numkind.Kind  `json:"from"`
	To    numkind.Kind  `json:"to"`
	Rule  safecast.Rule `json:"rule"`
	Value string        `json:"value"`
}

func newCastCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cast --to KIND [--from KIND] VALUE",
		Short: "Converts a value into another numeric kind",
		Long: "Converts VALUE into the kind given by --to. The conversion fails when the value cannot be represented in the target kind.\n" +
			"Without --from, VALUE is read as an int64, then as an uint64, then as a float64.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCast(cmd, args[0])
		},
	}
	cmd.Flags().String("from", "", "kind of VALUE")
	cmd.Flags().String("to", "", "kind to convert VALUE into")
	a.bind("CAST_FROM", cmd.Flags().Lookup("from"))
	a.bind("CAST_TO", cmd.Flags().Lookup("to"))
	return cmd
}

func (a *app) runCast(cmd *cobra.Command, text string) error {
	opts := a.options.Cast
	if opts.To == "" {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing target kind: set --to or %v", config.EnvVarName(EnvVarPrefix, "CAST_TO"))
	}
	dst, err := numkind.KindString(opts.To)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
	}
	value, src, err := ParseNumber(text, opts.From)
	if err != nil {
		a.logger.Error(err, "could not read value", "input", text)
		return err
	}
	converted, err := safecast.CastValue(value, dst)
	if err != nil {
		a.logger.Error(err, "conversion failed", "input", text, "from", src, "to", dst)
		return err
	}
	result := castResult{
		Input: text,
		From:  src,
		To:    dst,
		Rule:  safecast.RuleFor(src, dst),
		Value: FormatNumber(converted),
	}
	a.logger.V(1).Info("converted", "from", src, "to", dst, "rule", result.Rule)
	return a.print(cmd, result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Value)
		return err
	})
}
