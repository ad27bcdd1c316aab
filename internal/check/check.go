// Package check runs validators for the CLI and MCP layers.
//
// Each function runs one validator, writes a single human-readable line to
// w and returns a Result suitable for JSON output. The validation error is
// returned alongside the Result so callers can set the exit status; the
// Result already carries its classification.

package check

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/jpl-au/vetted/internal/diff"
	"github.com/jpl-au/vetted/internal/validate"
)

// Result contains the outcome of a single check.
type Result struct {
	Field  string `json:"field"`
	Value  string `json:"value,omitempty"`
	Length int    `json:"length"`
	Valid  bool   `json:"valid"`

	// Failure classification, empty when Valid
	Kind  string `json:"kind,omitempty"`
	Rule  string `json:"rule,omitempty"`
	Part  string `json:"part,omitempty"`
	Error string `json:"error,omitempty"`

	// Decoded values
	Date *validate.Date `json:"date,omitempty"`
	Time *time.Time     `json:"time,omitempty"`

	// Suggestion is set by Handle when asked and a correction exists.
	Suggestion string       `json:"suggestion,omitempty"`
	Diff       *diff.Result `json:"diff,omitempty"`

	// Err is the validation error behind Error, kept for errors.Is.
	Err error `json:"-"`
}

// newResult classifies err into a Result for field.
func newResult(field, value string, err error) Result {
	r := Result{
		Field:  field,
		Value:  value,
		Length: utf8.RuneCountInString(value),
		Valid:  err == nil,
	}
	if err == nil {
		return r
	}
	r.Err = err
	r.Error = err.Error()
	var ve *validate.Error
	if errors.As(err, &ve) {
		r.Kind = ve.Kind.Error()
		r.Rule = string(ve.Rule)
		r.Part = ve.Part
	}
	return r
}

// report writes the one-line summary of r to w.
func report(w io.Writer, r Result) {
	if r.Valid {
		switch {
		case r.Time != nil:
			fmt.Fprintf(w, "ok %s %q (%s)\n", r.Field, r.Value, r.Time.Format(time.RFC3339Nano))
		case r.Value == "" && r.Length > 0:
			fmt.Fprintf(w, "ok %s (%d characters)\n", r.Field, r.Length)
		default:
			fmt.Fprintf(w, "ok %s %q\n", r.Field, r.Value)
		}
		return
	}
	fmt.Fprintf(w, "invalid: %s\n", r.Error)
}

// Handle validates a handle. With suggest set, a failing handle gets a
// derived replacement and its diff when one exists.
func Handle(w io.Writer, rules validate.Rules, h string, suggest bool) (Result, error) {
	err := rules.Handle(h)
	r := newResult(validate.FieldHandle, h, err)
	report(w, r)
	if err != nil && suggest {
		if s := rules.SuggestHandle(h); s != "" {
			d := diff.Compute(h, s)
			r.Suggestion = s
			r.Diff = &d
			fmt.Fprintf(w, "suggestion: %s\n", s)
		}
	}
	return r, err
}

// DisplayName validates a display name.
func DisplayName(w io.Writer, rules validate.Rules, name string) (Result, error) {
	err := rules.DisplayName(name)
	r := newResult(validate.FieldDisplayName, name, err)
	report(w, r)
	return r, err
}

// Description validates a description. The text itself is not echoed in
// the Result; only its length is reported.
func Description(w io.Writer, rules validate.Rules, desc string) (Result, error) {
	err := rules.Description(desc)
	r := newResult(validate.FieldDescription, desc, err)
	r.Value = ""
	report(w, r)
	return r, err
}

// TagDate parses and validates a textual tag date.
func TagDate(w io.Writer, rules validate.Rules, s string) (Result, error) {
	d, err := rules.ParseTagDate(s)
	r := newResult(validate.FieldTagDate, s, err)
	if err == nil {
		r.Date = &d
	}
	report(w, r)
	return r, err
}

// Timestamp validates a ULID timestamp segment relative to now.
func Timestamp(w io.Writer, rules validate.Rules, segment string, now time.Time) (Result, error) {
	t, err := rules.TimestampComponent(segment, now)
	r := newResult(validate.FieldTimestamp, segment, err)
	if err == nil {
		r.Time = &t
	}
	report(w, r)
	return r, err
}

// ID validates the timestamp embedded in a ULID or UUIDv7 relative to now.
func ID(w io.Writer, rules validate.Rules, id string, now time.Time) (Result, error) {
	t, err := rules.IDTimestamp(id, now)
	r := newResult(validate.FieldID, id, err)
	if err == nil {
		r.Time = &t
	}
	report(w, r)
	return r, err
}
