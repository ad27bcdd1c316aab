// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters from
// MCP's generic argument map. These helpers provide safe defaults when
// optional parameters are missing.
//
// Design: We use permissive extraction (return default on error) rather than
// strict validation because LLMs frequently omit optional parameters or
// provide them in unexpected formats.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or not a string.
func GetString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// GetBool extracts a boolean parameter from the MCP request arguments.
// Returns the default if the parameter is missing or not a boolean, which
// covers an LLM passing "true" (string) instead of true.
func GetBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// HasArg reports whether the request carries an argument called name,
// including an empty string. Used where absent and empty differ.
func HasArg(req mcp.CallToolRequest, name string) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return false
	}
	_, ok = args[name]
	return ok
}

// JSONResult serialises any value as indented JSON and wraps it in an MCP
// text result. Marshalling errors become MCP error results so every failure
// reaches the client the same way.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
