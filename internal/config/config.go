// Package config provides reading and writing of vetted configuration.
// Supports both global (~/.vetted/config.yaml) and local (.vetted/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/vetted/internal/duration"
	"github.com/jpl-au/vetted/internal/validate"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.vetted/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .vetted/config.yaml
	ScopeLocal
)

// String returns "global" or "local".
func (s Scope) String() string {
	if s == ScopeLocal {
		return "local"
	}
	return "global"
}

// Dir is the name of the configuration directory, both in the home
// directory and in a project.
const Dir = ".vetted"

// Author identifies who ran a check in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Handle holds handle validation settings.
type Handle struct {
	MinLength *int `yaml:"min_length,omitempty"`
	MaxLength *int `yaml:"max_length,omitempty"`
	// Reserved replaces the built-in reserved words. An explicit empty
	// list disables reserved-word checks.
	Reserved *[]string `yaml:"reserved,omitempty"`
}

// DisplayName holds display name validation settings.
type DisplayName struct {
	MaxLength *int `yaml:"max_length,omitempty"`
}

// Description holds description validation settings.
type Description struct {
	MaxLength *int `yaml:"max_length,omitempty"`
}

// TagDate holds tag date validation settings.
type TagDate struct {
	MinYear *int `yaml:"min_year,omitempty"`
	MaxYear *int `yaml:"max_year,omitempty"`
}

// Timestamp holds identifier timestamp settings. Values are kept as text so
// the file stays readable; Validate checks they parse.
type Timestamp struct {
	Epoch   *string `yaml:"epoch,omitempty"`    // RFC3339
	MaxSkew *string `yaml:"max_skew,omitempty"` // duration.Parse syntax
}

// Validation bounds for configuration values.
const (
	MinLength  = 1
	MaxLength  = 4096
	MinYear    = 1
	MaxYear    = 9999
	MinMaxSkew = time.Second
	MaxMaxSkew = 24 * time.Hour
)

// minEpoch is the earliest configurable epoch. ULID and UUIDv7 timestamps
// count milliseconds from the Unix epoch and cannot encode anything earlier.
var minEpoch = time.Unix(0, 0).UTC()

// Config contains configuration for vetted.
type Config struct {
	Author      Author      `yaml:"author,omitempty"`
	Handle      Handle      `yaml:"handle,omitempty"`
	DisplayName DisplayName `yaml:"display_name,omitempty"`
	Description Description `yaml:"description,omitempty"`
	TagDate     TagDate     `yaml:"tag_date,omitempty"`
	Timestamp   Timestamp   `yaml:"timestamp,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	lengths := []struct {
		key string
		v   *int
	}{
		{"handle.min_length", c.Handle.MinLength},
		{"handle.max_length", c.Handle.MaxLength},
		{"display_name.max_length", c.DisplayName.MaxLength},
		{"description.max_length", c.Description.MaxLength},
	}
	for _, l := range lengths {
		if l.v != nil && (*l.v < MinLength || *l.v > MaxLength) {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d",
				ErrInvalidValue, l.key, MinLength, MaxLength, *l.v)
		}
	}
	if lo, hi := c.HandleMinLength(), c.HandleMaxLength(); lo > hi {
		return fmt.Errorf("%w: handle.min_length (%d) exceeds handle.max_length (%d)",
			ErrInvalidValue, lo, hi)
	}

	for key, v := range map[string]*int{"tag_date.min_year": c.TagDate.MinYear, "tag_date.max_year": c.TagDate.MaxYear} {
		if v != nil && (*v < MinYear || *v > MaxYear) {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d",
				ErrInvalidValue, key, MinYear, MaxYear, *v)
		}
	}
	if lo, hi := c.MinYear(), c.MaxYear(); lo > hi {
		return fmt.Errorf("%w: tag_date.min_year (%d) exceeds tag_date.max_year (%d)",
			ErrInvalidValue, lo, hi)
	}

	if c.Timestamp.Epoch != nil {
		t, err := time.Parse(time.RFC3339, *c.Timestamp.Epoch)
		if err != nil {
			return fmt.Errorf("%w: timestamp.epoch must be RFC3339, got %q", ErrInvalidValue, *c.Timestamp.Epoch)
		}
		if t.Before(minEpoch) {
			return fmt.Errorf("%w: timestamp.epoch must not be before %s, got %s",
				ErrInvalidValue, minEpoch.Format(time.RFC3339), *c.Timestamp.Epoch)
		}
	}
	if c.Timestamp.MaxSkew != nil {
		d, err := duration.Parse(*c.Timestamp.MaxSkew)
		if err != nil {
			return fmt.Errorf("%w: timestamp.max_skew: %v", ErrInvalidValue, err)
		}
		if d < MinMaxSkew || d > MaxMaxSkew {
			return fmt.Errorf("%w: timestamp.max_skew must be between %s and %s, got %s",
				ErrInvalidValue, MinMaxSkew, MaxMaxSkew, d)
		}
	}
	return nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// HandleMinLength returns the minimum handle length (defaults to 3).
func (c *Config) HandleMinLength() int {
	return intOr(c.Handle.MinLength, validate.DefaultHandleMinLen)
}

// HandleMaxLength returns the maximum handle length (defaults to 30).
func (c *Config) HandleMaxLength() int {
	return intOr(c.Handle.MaxLength, validate.DefaultHandleMaxLen)
}

// Reserved returns the reserved handles, the built-in list unless set.
func (c *Config) Reserved() []string {
	if c.Handle.Reserved == nil {
		return validate.DefaultReserved()
	}
	return append([]string{}, *c.Handle.Reserved...)
}

// DisplayNameMaxLength returns the maximum display name length (defaults to 64).
func (c *Config) DisplayNameMaxLength() int {
	return intOr(c.DisplayName.MaxLength, validate.DefaultDisplayNameMaxLen)
}

// DescriptionMaxLength returns the maximum description length (defaults to 1024).
func (c *Config) DescriptionMaxLength() int {
	return intOr(c.Description.MaxLength, validate.DefaultDescriptionMaxLen)
}

// MinYear returns the earliest accepted tag date year (defaults to 1).
func (c *Config) MinYear() int {
	return intOr(c.TagDate.MinYear, validate.DefaultMinYear)
}

// MaxYear returns the latest accepted tag date year (defaults to 9999).
func (c *Config) MaxYear() int {
	return intOr(c.TagDate.MaxYear, validate.DefaultMaxYear)
}

// Epoch returns the earliest accepted identifier timestamp.
// An unparseable value falls back to the default; Validate reports it.
func (c *Config) Epoch() time.Time {
	if c.Timestamp.Epoch != nil {
		if t, err := time.Parse(time.RFC3339, *c.Timestamp.Epoch); err == nil {
			return t.UTC()
		}
	}
	return validate.DefaultEpoch()
}

// MaxSkew returns how far ahead of now an identifier timestamp may be.
func (c *Config) MaxSkew() time.Duration {
	if c.Timestamp.MaxSkew != nil {
		if d, err := duration.Parse(*c.Timestamp.MaxSkew); err == nil && d > 0 {
			return d
		}
	}
	return validate.DefaultMaxSkew
}

// Rules returns the validation rules with configured overrides applied.
func (c *Config) Rules() validate.Rules {
	return validate.Rules{
		HandleMinLen:      c.HandleMinLength(),
		HandleMaxLen:      c.HandleMaxLength(),
		Reserved:          c.Reserved(),
		DisplayNameMaxLen: c.DisplayNameMaxLength(),
		DescriptionMaxLen: c.DescriptionMaxLength(),
		MinYear:           c.MinYear(),
		MaxYear:           c.MaxYear(),
		Epoch:             c.Epoch(),
		MaxSkew:           c.MaxSkew(),
	}
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.vetted/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
