// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go owns the YAML structure and loading; this file
// serves the CLI and MCP, where settings are addressed by dotted keys
// (e.g., "handle.max_length").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set". Get reports the effective value,
// which is the default when the key is unset.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jpl-au/vetted/internal/duration"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"handle.min_length", "handle.max_length", "handle.reserved",
		"display_name.max_length",
		"description.max_length",
		"tag_date.min_year", "tag_date.max_year",
		"timestamp.epoch", "timestamp.max_skew",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "handle.min_length":
		return strconv.Itoa(c.HandleMinLength()), nil
	case "handle.max_length":
		return strconv.Itoa(c.HandleMaxLength()), nil
	case "handle.reserved":
		return strings.Join(c.Reserved(), ","), nil
	case "display_name.max_length":
		return strconv.Itoa(c.DisplayNameMaxLength()), nil
	case "description.max_length":
		return strconv.Itoa(c.DescriptionMaxLength()), nil
	case "tag_date.min_year":
		return strconv.Itoa(c.MinYear()), nil
	case "tag_date.max_year":
		return strconv.Itoa(c.MaxYear()), nil
	case "timestamp.epoch":
		return c.Epoch().Format(time.RFC3339), nil
	case "timestamp.max_skew":
		return duration.Format(c.MaxSkew()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. The whole config is
// re-validated so cross-key constraints (min <= max) hold after the change.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "handle.min_length":
		return c.setInt(key, value, &c.Handle.MinLength)
	case "handle.max_length":
		return c.setInt(key, value, &c.Handle.MaxLength)
	case "handle.reserved":
		words := splitList(value)
		c.Handle.Reserved = &words
	case "display_name.max_length":
		return c.setInt(key, value, &c.DisplayName.MaxLength)
	case "description.max_length":
		return c.setInt(key, value, &c.Description.MaxLength)
	case "tag_date.min_year":
		return c.setInt(key, value, &c.TagDate.MinYear)
	case "tag_date.max_year":
		return c.setInt(key, value, &c.TagDate.MaxYear)
	case "timestamp.epoch":
		return c.setString(&c.Timestamp.Epoch, value)
	case "timestamp.max_skew":
		return c.setString(&c.Timestamp.MaxSkew, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func (c *Config) setInt(key, value string, field **int) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer", ErrInvalidValue, key)
	}
	prev := *field
	*field = &n
	if err := c.Validate(); err != nil {
		*field = prev
		return err
	}
	return nil
}

func (c *Config) setString(field **string, value string) error {
	prev := *field
	v := strings.TrimSpace(value)
	*field = &v
	if err := c.Validate(); err != nil {
		*field = prev
		return err
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, key := range ValidKeys() {
		v, _ := c.Get(key)
		all[key] = v
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "handle.min_length":
		return c.Handle.MinLength != nil
	case "handle.max_length":
		return c.Handle.MaxLength != nil
	case "handle.reserved":
		return c.Handle.Reserved != nil
	case "display_name.max_length":
		return c.DisplayName.MaxLength != nil
	case "description.max_length":
		return c.Description.MaxLength != nil
	case "tag_date.min_year":
		return c.TagDate.MinYear != nil
	case "tag_date.max_year":
		return c.TagDate.MaxYear != nil
	case "timestamp.epoch":
		return c.Timestamp.Epoch != nil
	case "timestamp.max_skew":
		return c.Timestamp.MaxSkew != nil
	default:
		return false
	}
}
