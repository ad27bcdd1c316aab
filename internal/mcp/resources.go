// resources.go implements MCP resource handlers for guide pages.
//
// MCP resources provide read-only access via URI schemes, so a client can
// load a guide page into context without a tool call.
//
// Design: Resource URIs follow the pattern vetted://guide/{topic}. An empty
// topic returns the main guide, mirroring "vetted guide".

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/vetted/guide"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidURI indicates a malformed resource URI, helping clients debug
// URI construction issues.
var ErrInvalidURI = errors.New("invalid URI")

// readGuide handles vetted://guide/{topic} resource requests.
func (h *handlers) readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	topic, err := parseGuideURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from vetted://guide/{topic}.
func parseGuideURI(uri string) (string, error) {
	const prefix = "vetted://guide/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	topic := strings.TrimPrefix(uri, prefix)
	if strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return topic, nil
}
