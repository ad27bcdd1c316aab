// rules.go defines the tunable bounds used by the validators.
//
// Rules is a plain value: copying it is cheap and no method mutates the
// receiver, so one Rules can be shared across goroutines. Zero fields fall
// back to the defaults, which lets callers override a single bound without
// restating the others.

package validate

import (
	"strings"
	"time"
)

// Default bounds.
const (
	DefaultHandleMinLen      = 3
	DefaultHandleMaxLen      = 30
	DefaultDisplayNameMaxLen = 64
	DefaultDescriptionMaxLen = 1024
	DefaultMinYear           = 1
	DefaultMaxYear           = 9999
	DefaultMaxSkew           = 5 * time.Minute
)

// displayNameMinLen is fixed: an empty display name is never meaningful.
const displayNameMinLen = 1

// DefaultEpoch returns the earliest accepted identifier timestamp,
// 2020-01-01T00:00:00Z.
func DefaultEpoch() time.Time {
	return time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// defaultReserved lists handles that would impersonate the platform.
var defaultReserved = []string{
	"admin", "administrator", "root", "system", "support",
	"moderator", "mod", "staff", "api", "www",
	"null", "undefined", "anonymous", "me", "settings", "help",
}

// DefaultReserved returns a copy of the built-in reserved handles.
func DefaultReserved() []string {
	out := make([]string, len(defaultReserved))
	copy(out, defaultReserved)
	return out
}

// Rules holds the bounds applied by the validators.
type Rules struct {
	HandleMinLen      int
	HandleMaxLen      int
	Reserved          []string // compared case-insensitively; nil means DefaultReserved
	DisplayNameMaxLen int
	DescriptionMaxLen int
	MinYear           int
	MaxYear           int
	Epoch             time.Time
	MaxSkew           time.Duration
}

// DefaultRules returns the rules used by the package-level validators.
func DefaultRules() Rules {
	return Rules{
		HandleMinLen:      DefaultHandleMinLen,
		HandleMaxLen:      DefaultHandleMaxLen,
		Reserved:          DefaultReserved(),
		DisplayNameMaxLen: DefaultDisplayNameMaxLen,
		DescriptionMaxLen: DefaultDescriptionMaxLen,
		MinYear:           DefaultMinYear,
		MaxYear:           DefaultMaxYear,
		Epoch:             DefaultEpoch(),
		MaxSkew:           DefaultMaxSkew,
	}
}

func (r Rules) handleMin() int {
	if r.HandleMinLen <= 0 {
		return DefaultHandleMinLen
	}
	return r.HandleMinLen
}

func (r Rules) handleMax() int {
	if r.HandleMaxLen <= 0 {
		return DefaultHandleMaxLen
	}
	return r.HandleMaxLen
}

func (r Rules) displayNameMax() int {
	if r.DisplayNameMaxLen <= 0 {
		return DefaultDisplayNameMaxLen
	}
	return r.DisplayNameMaxLen
}

func (r Rules) descriptionMax() int {
	if r.DescriptionMaxLen <= 0 {
		return DefaultDescriptionMaxLen
	}
	return r.DescriptionMaxLen
}

func (r Rules) minYear() int {
	if r.MinYear <= 0 {
		return DefaultMinYear
	}
	return r.MinYear
}

func (r Rules) maxYear() int {
	if r.MaxYear <= 0 {
		return DefaultMaxYear
	}
	return r.MaxYear
}

func (r Rules) epoch() time.Time {
	if r.Epoch.IsZero() {
		return DefaultEpoch()
	}
	return r.Epoch
}

func (r Rules) maxSkew() time.Duration {
	if r.MaxSkew <= 0 {
		return DefaultMaxSkew
	}
	return r.MaxSkew
}

func (r Rules) isReserved(h string) bool {
	words := r.Reserved
	if words == nil {
		words = defaultReserved
	}
	for _, w := range words {
		if strings.EqualFold(h, w) {
			return true
		}
	}
	return false
}

// Effective returns r with every zero field replaced by its default, which
// is what the validators actually apply.
func (r Rules) Effective() Rules {
	reserved := r.Reserved
	if reserved == nil {
		reserved = DefaultReserved()
	}
	return Rules{
		HandleMinLen:      r.handleMin(),
		HandleMaxLen:      r.handleMax(),
		Reserved:          reserved,
		DisplayNameMaxLen: r.displayNameMax(),
		DescriptionMaxLen: r.descriptionMax(),
		MinYear:           r.minYear(),
		MaxYear:           r.maxYear(),
		Epoch:             r.epoch(),
		MaxSkew:           r.maxSkew(),
	}
}

var defaultRules = DefaultRules()
