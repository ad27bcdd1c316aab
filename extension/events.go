// events.go defines the event types for extension notifications.
//
// Separated from extension.go to isolate the event system. Events let
// extensions observe checks and configuration changes without the emitting
// extension knowing who listens. The core extension uses this to write the
// audit log for both CLI commands and MCP tools.
//
// Design: Events are fire-and-forget notifications, not approval requests.
// Extensions cannot block or veto operations via events - they observe
// after the fact.

package extension

import (
	"fmt"
	"os"
)

// EventType identifies the kind of event.
type EventType string

const (
	EventCheck     EventType = "check"
	EventConfigSet EventType = "config:set"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
}

// CheckEvent is fired after a value has been validated. It carries the
// input length, never the input.
type CheckEvent struct {
	Source string // e.g., "check:handle", "mcp:vetted_handle"
	Author string
	Field  string
	Length int
	Err    error // validation error, nil when valid
}

func (e CheckEvent) EventType() EventType { return EventCheck }

// ConfigSetEvent is fired after a configuration key has been saved.
type ConfigSetEvent struct {
	Author string
	Key    string
	Scope  string
	Err    error
}

func (e ConfigSetEvent) EventType() EventType { return EventConfigSet }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}

// Fire notifies every registered EventHandler. Handler errors are reported
// on stderr but not propagated: events are notifications, not veto points.
func Fire(ctx Context, e Event) {
	for _, ext := range All() {
		if h, ok := ext.(EventHandler); ok {
			if err := h.HandleEvent(ctx, e); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "vetted: %s handling %s: %v\n", ext.Name(), e.EventType(), err)
			}
		}
	}
}
