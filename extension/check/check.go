// Package check provides the check extension for vetted.
// It registers commands: handle, name, desc, tagdate, ts, id, profile, and
// the matching MCP tools.
package check

import (
	"io"

	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/check"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check" - this extension provides the validation commands.
func (e *Extension) Name() string { return "check" }

// Init receives the shared context carrying the configured rules.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns one command per validator plus profile.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newHandleCmd(),
		e.newNameCmd(),
		e.newDescCmd(),
		e.newTagDateCmd(),
		e.newTimestampCmd(),
		e.newIDCmd(),
		e.newProfileCmd(),
	}
}

// MCPTools returns a tool per validator plus vetted_profile.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}

// writer returns where human-readable output goes: nowhere in JSON mode,
// where the Result is printed instead.
func writer() io.Writer {
	if cmd.JSON() {
		return io.Discard
	}
	return cmd.Out()
}

// finish records the check, prints the JSON result when requested and maps
// a rejected value to cmd.ErrInvalid so the process exits 1 without a
// second error line.
func (e *Extension) finish(source string, r check.Result, err error) error {
	extension.Fire(e.ctx, extension.CheckEvent{
		Source: source,
		Author: cmd.Author(),
		Field:  r.Field,
		Length: r.Length,
		Err:    err,
	})
	if perr := cmd.PrintJSON(r); perr != nil {
		return perr
	}
	if err != nil {
		return cmd.ErrInvalid
	}
	return nil
}
