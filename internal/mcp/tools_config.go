// tools_config.go implements MCP tools for configuration management.
//
// Separated because config operations modify persistent settings that
// affect all subsequent checks.
//
// Design: A successful set rebuilds the shared extension Context so the
// running server applies the new rules immediately. Without this, changes
// would only take effect after a restart.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles vetted_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := GetString(req, "key", "")
	if key == "" {
		return JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return JSONResult(map[string]string{key: v})
}

// configSet handles vetted_config_set tool calls.
func (h *handlers) configSet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	cur := h.context()
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Set(key, value)
	}
	if err == nil {
		err = cfg.Save()
	}

	scope := config.ScopeGlobal.String()
	if cfg != nil {
		scope = cfg.Scope().String()
	}
	// Value intentionally not logged
	extension.Fire(cur, extension.ConfigSetEvent{Author: "mcp", Key: key, Scope: scope, Err: err})

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.setContext(extension.NewContext(cfg, cur.Now))
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s (%s)", key, value, scope)), nil
}
