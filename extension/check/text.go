// text.go implements the "vetted name" and "vetted desc" commands.
//
// Design: desc reads from stdin when the argument is "-" or omitted, since
// descriptions are often multi-line and awkward to quote on a shell line.
// The description is never echoed back; output reports only its length.

package check

import (
	"fmt"
	"io"

	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/internal/check"
	"github.com/spf13/cobra"
)

func (e *Extension) newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <value>",
		Short: "Validate a display name",
		Long: `Validate a display name.

Display names may contain any printable Unicode, including spaces, but no
control, bidirectional override or line separator characters, and must not
be blank.

  vetted name "Zoë O'Brien"`,
		Args: cobra.ExactArgs(1),
		RunE: e.runName,
	}
}

func (e *Extension) runName(_ *cobra.Command, args []string) error {
	r, err := check.DisplayName(writer(), e.ctx.Rules(), args[0])
	return e.finish("check:name", r, err)
}

func (e *Extension) newDescCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "desc [value|-]",
		Short: "Validate a description",
		Long: `Validate a free-text description.

Tabs and newlines are allowed; other control characters are not. Reads
stdin when the value is "-" or omitted.

  vetted desc "Writes about Go"
  vetted desc < about.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runDesc,
	}
}

func (e *Extension) runDesc(_ *cobra.Command, args []string) error {
	var desc string
	if len(args) == 1 && args[0] != "-" {
		desc = args[0]
	} else {
		data, err := io.ReadAll(cmd.In())
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("read stdin: %w", err))
		}
		desc = string(data)
	}

	r, err := check.Description(writer(), e.ctx.Rules(), desc)
	return e.finish("check:desc", r, err)
}
