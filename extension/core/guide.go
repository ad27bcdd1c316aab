// guide.go implements the "vetted guide" command for documentation access.
//
// Separated from extension.go to isolate documentation rendering logic
// including terminal detection and glamour markdown formatting.
//
// Design: Guides are embedded in the binary via the guide package, ensuring
// documentation is always available without external files. Terminal output
// gets glamour rendering for readability; pipe/redirect gets raw markdown
// for machine consumption and LLM context loading.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the vetted usage guide",
		Long: `Outputs the vetted guide for LLMs and humans.

  vetted guide             # main guide
  vetted guide handle      # handle rules
  vetted guide tag-date    # tag date formats
  vetted guide --list      # list topics`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGuide,
	}
	c.Flags().BoolP(extension.FlagList, "l", false, "List available topics")
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without terminal rendering")
	return c
}

func runGuide(c *cobra.Command, args []string) error {
	list, _ := c.Flags().GetBool(extension.FlagList)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	if list {
		topics, err := guide.List()
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		if cmd.JSON() {
			return cmd.PrintJSON(topics)
		}
		for _, t := range topics {
			fmt.Fprintln(cmd.Out(), t)
		}
		return nil
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	content, err := guide.Get(name)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return listErr
		}
		return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
	}

	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(cmd.Out(), content)
	return nil
}
