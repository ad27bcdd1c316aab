// Package validate checks user-supplied strings and identifier timestamps.
//
// Every function here is pure: it takes a value (and, for timestamps, a
// reference time) and returns nil or a *Error. Nothing is cached, nothing is
// logged and the only package state is read-only defaults, so all functions
// and Rules methods are safe for concurrent use.
//
// # Validators
//
// Handle validates usernames: length bounds, ASCII charset, reserved words.
// DisplayName validates human-facing names: length, no control characters.
// Description validates free text: maximum length, no control sequences.
// TagDate validates a year, year-month or year-month-day period.
// TimestampComponent validates the timestamp segment of a ULID.
//
// IDTimestamp and ParseTagDate build on these for whole identifiers and
// textual dates. SuggestHandle proposes a correction for a rejected handle.
//
// # Rules
//
// The package-level functions use DefaultRules. Callers that load bounds from
// configuration build a Rules value and call the method of the same name.
//
// # Error Handling
//
// Failures are *Error values whose Kind is one of ErrInvalidFormat,
// ErrInvalidRange, ErrOutOfRange or ErrDecode:
//
//	if errors.Is(err, validate.ErrInvalidFormat) {
//	    // reject input
//	}
//	if validate.RuleOf(err) == validate.RuleTooShort {
//	    // prompt for a longer handle
//	}
package validate
