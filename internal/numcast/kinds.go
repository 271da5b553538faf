package numcast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ARM-software/golang-numerics/numkind"
)

type kindDescription struct {
	Kind      numkind.Kind     `json:"kind"`
	Category  numkind.Category `json:"category"`
	Bits      int              `json:"bits"`
	Precision int              `json:"precision,omitempty"`
	Min       string           `json:"min"`
	Max       string           `json:"max"`
}

func describeKind(k numkind.Kind) kindDescription {
	d := kindDescription{
		Kind:     k,
		Category: k.Category(),
		Bits:     k.Bits(),
	}
	if k.IsFloat() {
		d.Precision = k.Precision()
		d.Min = strconv.FormatFloat(-k.MaxFinite(), 'g', -1, k.Bits())
		d.Max = strconv.FormatFloat(k.MaxFinite(), 'g', -1, k.Bits())
	} else {
		d.Min = strconv.FormatInt(k.MinInt(), 10)
		d.Max = strconv.FormatUint(k.MaxUint(), 10)
	}
	return d
}

func newKindsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Lists the numeric kinds and their bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := numkind.KindValues()
			descriptions := make([]kindDescription, 0, len(kinds))
			for _, k := range kinds {
				descriptions = append(descriptions, describeKind(k))
			}
			return a.print(cmd, descriptions, func(w io.Writer) error {
				return writeKinds(w, descriptions)
			})
		},
	}
}

func writeKinds(w io.Writer, descriptions []kindDescription) error {
	const row = "%-8s %-16s %4v %24s %24s\n"
	if _, err := fmt.Fprintf(w, row, "KIND", "CATEGORY", "BITS", "MIN", "MAX"); err != nil {
		return err
	}
	for i := range descriptions {
		d := descriptions[i]
		if _, err := fmt.Fprintf(w, row, d.Kind, d.Category, d.Bits, d.Min, d.Max); err != nil {
			return err
		}
	}
	return nil
}
