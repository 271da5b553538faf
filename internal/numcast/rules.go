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

type ruleDescription struct {
	From     numkind.Kind  `json:"from"`
	To       numkind.Kind  `json:"to"`
	Rule     safecast.Rule `json:"rule"`
	Lossless bool          `json:"lossless"`
}

func newRulesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules --from KIND",
		Short: "Shows the conversion rule applied from a kind to every other kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRules(cmd)
		},
	}
	cmd.Flags().String("from", "", "source kind")
	a.bind("RULES_FROM", cmd.Flags().Lookup("from"))
	return cmd
}

func (a *app) runRules(cmd *cobra.Command) error {
	if a.options.Rules.From == "" {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing source kind: set --from or %v", config.EnvVarName(EnvVarPrefix, "RULES_FROM"))
	}
	src, err := numkind.KindString(a.options.Rules.From)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
	}
	kinds := numkind.KindValues()
	rules := make([]ruleDescription, 0, len(kinds))
	for _, dst := range kinds {
		rules = append(rules, ruleDescription{
			From:     src,
			To:       dst,
			Rule:     safecast.RuleFor(src, dst),
			Lossless: safecast.Lossless(src, dst),
		})
	}
	return a.print(cmd, rules, func(w io.Writer) error {
		for i := range rules {
			r := rules[i]
			suffix := ""
			if r.Lossless {
				suffix = " (lossless)"
			}
			if _, err := fmt.Fprintf(w, "%v -> %v: %v%v\n", r.From, r.To, r.Rule, suffix); err != nil {
				return err
			}
		}
		return nil
	})
}
