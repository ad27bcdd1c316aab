// serve.go implements the "vetted serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks indefinitely handling
// MCP requests over stdio.

package core

import (
	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/internal/log"
	"github.com/jpl-au/vetted/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The server exposes every check as a tool, plus vetted_rules, vetted_config_get,
vetted_config_set and vetted_guide. Rules are loaded from the same config
as the CLI; vetted_config_set applies changes without a restart.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	extCtx, err := cmd.ExtContext()
	if err != nil {
		return err
	}
	err = mcp.Serve(extCtx)
	log.Event("core:serve", "serve").Author(cmd.Author()).Write(err)
	return err
}
