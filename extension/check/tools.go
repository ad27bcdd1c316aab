// tools.go implements the MCP tools contributed by the check extension.
//
// Design: A rejected value is a successful tool call whose JSON result has
// valid set to false, so an assistant can read the rule and fix the input.
// Tool errors are reserved for unusable arguments.

package check

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/check"
	mcputil "github.com/jpl-au/vetted/internal/mcp"
	"github.com/jpl-au/vetted/internal/profile"
	"github.com/mark3labs/mcp-go/mcp"
)

// nowArg documents the optional reference time accepted by timestamp tools.
var nowArg = mcp.WithString("now", mcp.Description("Reference time in RFC3339 (default: server clock)"))

func tools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("vetted_handle",
				mcp.WithDescription("Validate a handle (username): length, ASCII charset [A-Za-z0-9_.-], reserved words"),
				mcp.WithString("value", mcp.Required(), mcp.Description("Handle to validate")),
				mcp.WithBoolean("suggest", mcp.Description("Suggest a passing handle when invalid")),
			),
			Handler: handleTool,
		},
		{
			Tool: mcp.NewTool("vetted_display_name",
				mcp.WithDescription("Validate a display name: length, no control or bidirectional override characters, not blank"),
				mcp.WithString("value", mcp.Required(), mcp.Description("Display name to validate")),
			),
			Handler: displayNameTool,
		},
		{
			Tool: mcp.NewTool("vetted_description",
				mcp.WithDescription("Validate a free-text description: maximum length, no control characters other than tab and newline"),
				mcp.WithString("value", mcp.Required(), mcp.Description("Description to validate")),
			),
			Handler: descriptionTool,
		},
		{
			Tool: mcp.NewTool("vetted_tag_date",
				mcp.WithDescription("Validate a tag date: YYYY, YYYY-MM or YYYY-MM-DD with calendar-correct days"),
				mcp.WithString("value", mcp.Required(), mcp.Description("Tag date, e.g. 2024-02-29")),
			),
			Handler: tagDateTool,
		},
		{
			Tool: mcp.NewTool("vetted_timestamp",
				mcp.WithDescription("Validate the 10-character timestamp segment of a ULID against the epoch and clock skew"),
				mcp.WithString("value", mcp.Required(), mcp.Description("Timestamp segment, e.g. 01HQ3K5Z8X")),
				nowArg,
			),
			Handler: timestampTool,
		},
		{
			Tool: mcp.NewTool("vetted_id",
				mcp.WithDescription("Validate the creation timestamp embedded in a ULID or UUIDv7"),
				mcp.WithString("value", mcp.Required(), mcp.Description("ULID or UUIDv7")),
				nowArg,
			),
			Handler: idTool,
		},
		{
			Tool: mcp.NewTool("vetted_profile",
				mcp.WithDescription("Validate every field of a profile given as YAML or JSON with keys handle, display_name, description, tag_date, id"),
				mcp.WithString("profile", mcp.Required(), mcp.Description("Profile document (YAML or JSON)")),
				nowArg,
			),
			Handler: profileTool,
		},
	}
}

// runTool extracts the value argument, runs fn and records the check.
func runTool(extCtx extension.Context, req mcp.CallToolRequest, tool string, fn func(string) (check.Result, error)) (*mcp.CallToolResult, error) {
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}
	r, err := fn(value)
	extension.Fire(extCtx, extension.CheckEvent{
		Source: "mcp:" + tool,
		Author: "mcp",
		Field:  r.Field,
		Length: r.Length,
		Err:    err,
	})
	return mcputil.JSONResult(r)
}

// referenceTime returns the now argument or the context clock.
func referenceTime(extCtx extension.Context, req mcp.CallToolRequest) (time.Time, error) {
	s := mcputil.GetString(req, "now", "")
	if s == "" {
		return extCtx.Now(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid now %q: want RFC3339", s)
	}
	return t, nil
}

func handleTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	suggest := mcputil.GetBool(req, "suggest", false)
	return runTool(extCtx, req, "vetted_handle", func(v string) (check.Result, error) {
		return check.Handle(io.Discard, extCtx.Rules(), v, suggest)
	})
}

func displayNameTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runTool(extCtx, req, "vetted_display_name", func(v string) (check.Result, error) {
		return check.DisplayName(io.Discard, extCtx.Rules(), v)
	})
}

func descriptionTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runTool(extCtx, req, "vetted_description", func(v string) (check.Result, error) {
		return check.Description(io.Discard, extCtx.Rules(), v)
	})
}

func tagDateTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runTool(extCtx, req, "vetted_tag_date", func(v string) (check.Result, error) {
		return check.TagDate(io.Discard, extCtx.Rules(), v)
	})
}

func timestampTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now, err := referenceTime(extCtx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return runTool(extCtx, req, "vetted_timestamp", func(v string) (check.Result, error) {
		return check.Timestamp(io.Discard, extCtx.Rules(), v, now)
	})
}

func idTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now, err := referenceTime(extCtx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return runTool(extCtx, req, "vetted_id", func(v string) (check.Result, error) {
		return check.ID(io.Discard, extCtx.Rules(), v, now)
	})
}

func profileTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile is required"), nil //nolint:nilerr
	}
	now, err := referenceTime(extCtx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := profile.Decode(strings.NewReader(doc))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, _ := profile.Check(io.Discard, extCtx.Rules(), p, now)
	for _, r := range report.Results {
		extension.Fire(extCtx, extension.CheckEvent{
			Source: "mcp:vetted_profile",
			Author: "mcp",
			Field:  r.Field,
			Length: r.Length,
			Err:    r.Err,
		})
	}
	return mcputil.JSONResult(report)
}
