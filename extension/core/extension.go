// Package core provides the core extension for vetted.
// It registers commands: config, serve, guide, log, version, and writes the
// audit log for every check and configuration change.
package core

import (
	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension    = (*Extension)(nil)
	_ extension.Standalone   = (*Extension)(nil)
	_ extension.EventHandler = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental vetted commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the rules, config and guide tools are served
// directly by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// StandaloneCommands returns commands that do not need configuration.
// log: reads the audit database only, so a broken config file must not hide it.
func (e *Extension) StandaloneCommands() []string {
	return []string{"log"}
}

// HandleEvent records checks and configuration changes in the audit log.
// Checked values never reach the log: CheckEvent carries only the length.
func (e *Extension) HandleEvent(_ extension.Context, evt extension.Event) error {
	switch ev := evt.(type) {
	case extension.CheckEvent:
		log.Event(ev.Source, "validate").
			Author(ev.Author).
			Field(ev.Field).
			Length(ev.Length).
			Write(ev.Err)
	case extension.ConfigSetEvent:
		// Value intentionally not logged
		log.Event(configSource(ev.Author), "set").
			Author(ev.Author).
			Detail("key", ev.Key).
			Detail("scope", ev.Scope).
			Write(ev.Err)
	}
	return nil
}

// configSource attributes a config change to the MCP server or the CLI.
func configSource(author string) string {
	if author == "mcp" {
		return "mcp:vetted_config_set"
	}
	return "core:config"
}
