// Package log provides centralised audit logging for vetted checks.
// Logs are stored in ~/.vetted/log/vetted-log.db and track every CLI check
// and MCP tool invocation across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("check:handle", "validate").
//		Author(cmd.Author()).
//		Field("handle").
//		Length(utf8.RuneCountInString(h)).
//		Write(err)
//
//	log.Event("core:config", "set").
//		Author(cmd.Author()).
//		Detail("key", key).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "check:handle",
// "check:profile", "mcp:vetted_tag_date".
//
// # Privacy
//
// Checked values are never stored. An entry records the field, the input
// length and, on failure, the error kind and rule. For validation errors
// the detail text is dropped because it quotes the offending character.
package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jpl-au/vetted/internal/validate"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	ID     int64  `json:"id,omitempty"`
	Source string `json:"source"`           // e.g., "check:handle", "mcp:vetted_handle"
	Author string `json:"author,omitempty"` // who performed the action
	Action string `json:"action"`           // verb: validate, suggest, set, serve
	Field  string `json:"field,omitempty"`  // validated field, e.g. "handle"
	Length int    `json:"length,omitempty"` // input length in runes

	// Failure classification, populated from a *validate.Error
	Kind string `json:"kind,omitempty"`
	Rule string `json:"rule,omitempty"`

	// Timing
	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`          // whether the check passed
	Error   string         `json:"error,omitempty"`  // error message if failed
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "check:handle")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:vetted_handle")
//
// The action describes what operation was performed:
//   - "validate", "suggest", "set", "serve", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Field sets the name of the validated field.
func (b *Builder) Field(field string) *Builder {
	b.entry.Field = field
	return b
}

// Length records the input length in runes. The input itself is never logged.
func (b *Builder) Length(n int) *Builder {
	b.entry.Length = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// config keys, profile field counts, and similar. Never pass a checked value.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful. If err wraps a
// *validate.Error, kind and rule are recorded and the message is reduced to
// its non-quoting form. Other errors are recorded verbatim.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
		var ve *validate.Error
		if errors.As(err, &ve) {
			b.entry.Kind = ve.Kind.Error()
			b.entry.Rule = string(ve.Rule)
			redacted := *ve
			redacted.Detail = ""
			b.entry.Error = redacted.Error()
		}
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// ErrNotOpen is returned by queries when the logger has not been opened.
var ErrNotOpen = errors.New("audit log is not open")

// Query returns entries matching f, newest first.
func Query(f Filter) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrNotOpen
	}
	return l.query(f)
}

// Summary counts entries matching f per rule. Successful checks are
// counted under the empty rule.
func Summary(f Filter) (map[string]int, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrNotOpen
	}
	return l.summary(f)
}

// Prune deletes entries that started before cutoff and returns how many
// were (or, with dryRun, would be) removed.
func Prune(cutoff time.Time, dryRun bool) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, ErrNotOpen
	}
	return l.prune(cutoff, dryRun)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
