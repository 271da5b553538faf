package numcast

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/ARM-software/golang-numerics/commonerrors"
)

// print writes data as indented JSON when the json output is selected, or calls text otherwise.
func (a *app) print(cmd *cobra.Command, data any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	if a.options.Output != formatJSON {
		return text(w)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not write output")
	}
	return nil
}
