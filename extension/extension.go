// Package extension provides the plugin architecture for vetted. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for vetted extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their first
// command runs.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// must run without loading configuration. Commands returned by
// StandaloneCommands() do not trigger extension initialisation in
// PersistentPreRunE.
//
// Use cases:
// 1. Repairing a config file that no longer validates
// 2. Help and version output
type Standalone interface {
	StandaloneCommands() []string
}
