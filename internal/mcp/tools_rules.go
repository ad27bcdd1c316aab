// tools_rules.go implements the MCP tool that reports the active rules.

package mcp

import (
	"context"
	"time"

	"github.com/jpl-au/vetted/internal/duration"
	"github.com/mark3labs/mcp-go/mcp"
)

// rulesView is the JSON shape of validate.Rules for clients.
type rulesView struct {
	Handle struct {
		MinLength int      `json:"min_length"`
		MaxLength int      `json:"max_length"`
		Charset   string   `json:"charset"`
		Reserved  []string `json:"reserved"`
	} `json:"handle"`
	DisplayName struct {
		MinLength int `json:"min_length"`
		MaxLength int `json:"max_length"`
	} `json:"display_name"`
	Description struct {
		MaxLength int `json:"max_length"`
	} `json:"description"`
	TagDate struct {
		MinYear int    `json:"min_year"`
		MaxYear int    `json:"max_year"`
		Formats string `json:"formats"`
	} `json:"tag_date"`
	Timestamp struct {
		Epoch   string `json:"epoch"`
		MaxSkew string `json:"max_skew"`
		Now     string `json:"now"`
	} `json:"timestamp"`
}

// rules handles vetted_rules tool calls.
func (h *handlers) rules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := h.context()
	r := c.Rules().Effective()

	var v rulesView
	v.Handle.MinLength = r.HandleMinLen
	v.Handle.MaxLength = r.HandleMaxLen
	v.Handle.Charset = "A-Z a-z 0-9 _ - ."
	v.Handle.Reserved = r.Reserved
	v.DisplayName.MinLength = 1
	v.DisplayName.MaxLength = r.DisplayNameMaxLen
	v.Description.MaxLength = r.DescriptionMaxLen
	v.TagDate.MinYear = r.MinYear
	v.TagDate.MaxYear = r.MaxYear
	v.TagDate.Formats = "YYYY, YYYY-MM, YYYY-MM-DD"
	v.Timestamp.Epoch = r.Epoch.UTC().Format(time.RFC3339)
	v.Timestamp.MaxSkew = duration.Format(r.MaxSkew)
	v.Timestamp.Now = c.Now().UTC().Format(time.RFC3339)

	return JSONResult(v)
}
