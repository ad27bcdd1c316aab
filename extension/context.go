// context.go defines the Context interface for extension access to vetted internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals.
//
// Design: Context uses an interface to enable testing with mock implementations.
// Extensions receive Context during Init(), not at construction, to support
// the two-phase initialization pattern where extensions register before
// configuration is loaded.

package extension

import (
	"time"

	"github.com/jpl-au/vetted/internal/config"
	"github.com/jpl-au/vetted/internal/validate"
)

// Context provides extensions controlled access to vetted internals.
type Context interface {
	// Config returns user configuration.
	Config() *config.Config

	// Rules returns the validation rules derived from Config.
	Rules() validate.Rules

	// Now returns the reference time for timestamp checks.
	Now() time.Time
}

// extContext implements Context.
type extContext struct {
	cfg   *config.Config
	rules validate.Rules
	now   func() time.Time
}

// NewContext creates a new extension context. A nil now uses time.Now.
func NewContext(cfg *config.Config, now func() time.Time) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if now == nil {
		now = time.Now
	}
	return &extContext{
		cfg:   cfg,
		rules: cfg.Rules(),
		now:   now,
	}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}

// Rules returns the effective validation rules.
func (c *extContext) Rules() validate.Rules {
	return c.rules
}

// Now returns the reference time.
func (c *extContext) Now() time.Time {
	return c.now()
}
