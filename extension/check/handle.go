// handle.go implements the "vetted handle" command.
//
// Separated from the other checks because it is the only one with a
// correction: --suggest derives a passing handle and shows the edit as a
// character diff, coloured on a terminal.

package check

import (
	"fmt"
	"os"

	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/check"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newHandleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "handle <value>",
		Short: "Validate a handle",
		Long: `Validate a handle (username).

Handles are 3-30 characters of ASCII letters, digits, '_', '-' and '.',
and must not be a reserved word. Bounds and reserved words come from config.

  vetted handle alice
  vetted handle "Alice Smith!" --suggest`,
		Args: cobra.ExactArgs(1),
		RunE: e.runHandle,
	}
	c.Flags().BoolP(extension.FlagSuggest, "s", false, "Suggest a passing handle when invalid")
	return c
}

func (e *Extension) runHandle(c *cobra.Command, args []string) error {
	suggest, _ := c.Flags().GetBool(extension.FlagSuggest)
	w := writer()

	r, err := check.Handle(w, e.ctx.Rules(), args[0], suggest)
	if r.Diff != nil && r.Diff.Changed() {
		fmt.Fprint(w, r.Diff.Format(term.IsTerminal(int(os.Stdout.Fd()))))
	}
	return e.finish("check:handle", r, err)
}
