// Package mcp implements the Model Context Protocol server, exposing vetted
// checks to LLMs. Assistants can validate user input before submitting it,
// read the active rules and consult the guide through a standard protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)
	slog.Info("vetted MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every extension tool and the
// server's own rules, config and guide tools registered.
func NewServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		"vetted",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	h := &handlers{ctx: extCtx}
	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the shared
// extension Context. The Context is replaced when config changes so new
// rules apply without a restart.
type handlers struct {
	mu  sync.RWMutex
	ctx extension.Context
}

func (h *handlers) context() extension.Context {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

func (h *handlers) setContext(c extension.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = c
}

// extensionTool binds an extension handler to the Context current at call
// time, so a config change reaches tools already registered.
func (h *handlers) extensionTool(handler extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handler(ctx, h.context(), req)
	}
}

// registerResources adds URI-based access to the guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"vetted://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read a vetted guide page by topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// registerTools exposes extension tools and the server's own tools.
func registerTools(s *server.MCPServer, h *handlers) {
	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, h.extensionTool(t.Handler))
	}

	s.AddTool(
		mcp.NewTool("vetted_rules",
			mcp.WithDescription("Show the validation rules in effect: length bounds, reserved handles, year range, timestamp epoch and skew"),
		),
		h.rules,
	)

	s.AddTool(
		mcp.NewTool("vetted_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (e.g. handle.max_length, timestamp.max_skew) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("vetted_config_set",
			mcp.WithDescription("Set a configuration value; takes effect for subsequent checks"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (e.g. handle.max_length, handle.reserved)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("vetted_guide",
			mcp.WithDescription("Get help/guide content for vetted checks"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'handle', 'tag-date', 'timestamp') or empty for index")),
		),
		h.getGuide,
	)
}
