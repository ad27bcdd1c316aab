// Package guide provides access to embedded help and guide pages used by
// the CLI's built-in documentation system and the MCP guide tool.
package guide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// ErrNotFound is returned when no page exists for a topic.
var ErrNotFound = errors.New("guide not found")

// aliases maps command names onto the page that documents them.
var aliases = map[string]string{
	"name":    "display-name",
	"desc":    "description",
	"tagdate": "tag-date",
	"ts":      "timestamp",
	"id":      "timestamp",
	"serve":   "mcp",
}

// Get returns the content of a guide page by name. If `name` is empty
// the default "guide" page is returned. Command names resolve to the page
// that documents them ("ts" -> "timestamp").
func Get(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "guide"
	}
	if page, ok := aliases[name]; ok {
		name = page
	}
	if strings.ContainsAny(name, "/\\.") {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	data, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available guide page names (without the .md suffix).
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if name != "guide.md" {
			names = append(names, strings.TrimSuffix(name, ".md"))
		}
	}
	return names, nil
}
