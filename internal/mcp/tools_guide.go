// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool gives LLMs the documentation for each check and the
// configuration keys, enabling self-service help without external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/vetted/guide"
	"github.com/jpl-au/vetted/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles vetted_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := GetString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:vetted_guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
