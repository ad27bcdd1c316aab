// errors.go defines the failure taxonomy shared by every validator.
//
// Two layers: a small set of sentinel kinds for errors.Is checks
// (ErrInvalidFormat, ErrInvalidRange, ErrOutOfRange, ErrDecode), and the
// *Error value that names the field, the component and the rule that failed.
// Callers that only care about the category use errors.Is; callers that
// present the failure use errors.As or RuleOf.

package validate

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidRange  = errors.New("invalid range")
	ErrOutOfRange    = errors.New("out of range")
	ErrDecode        = errors.New("decode error")
)

// Rule identifies the specific check that rejected a value. Values are stable
// and safe to match on in callers, logs and JSON output.
type Rule string

const (
	RuleTooShort           Rule = "too_short"
	RuleTooLong            Rule = "too_long"
	RuleIllegalChar        Rule = "illegal_character"
	RuleReserved           Rule = "reserved"
	RuleBlank              Rule = "blank"
	RuleInvalidEncoding    Rule = "invalid_encoding"
	RuleControlChar        Rule = "control_character"
	RuleOutOfRange         Rule = "out_of_range"
	RuleMissingComponent   Rule = "missing_component"
	RuleMalformed          Rule = "malformed"
	RuleWrongLength        Rule = "wrong_length"
	RuleOverflow           Rule = "overflow"
	RuleBeforeEpoch        Rule = "before_epoch"
	RuleInFuture           Rule = "in_future"
	RuleUnsupportedVersion Rule = "unsupported_version"
)

var ruleText = map[Rule]string{
	RuleTooShort:           "too short",
	RuleTooLong:            "too long",
	RuleIllegalChar:        "illegal character",
	RuleReserved:           "reserved word",
	RuleBlank:              "blank",
	RuleInvalidEncoding:    "invalid UTF-8",
	RuleControlChar:        "control character",
	RuleOutOfRange:         "out of range",
	RuleMissingComponent:   "missing component",
	RuleMalformed:          "malformed",
	RuleWrongLength:        "wrong length",
	RuleOverflow:           "overflow",
	RuleBeforeEpoch:        "before epoch",
	RuleInFuture:           "too far in the future",
	RuleUnsupportedVersion: "unsupported version",
}

// String returns the human-readable text for the rule.
func (r Rule) String() string {
	if s, ok := ruleText[r]; ok {
		return s
	}
	return string(r)
}

// Field names used in Error.Field.
const (
	FieldHandle      = "handle"
	FieldDisplayName = "display name"
	FieldDescription = "description"
	FieldTagDate     = "tag date"
	FieldTimestamp   = "timestamp"
	FieldID          = "id"
)

// Error describes a single validation failure.
//
// Format: "{kind}: {field}[ {part}]: {rule}[ ({detail})]", for example
// "invalid range: tag date month: out of range (got 13, want 1-12)".
type Error struct {
	Kind   error  // one of the Err* sentinels
	Field  string // value being validated (FieldHandle, ...)
	Part   string // component of a structured value ("year", "month", "day"); may be empty
	Rule   Rule   // the violated rule
	Detail string // optional context for humans; never contains more than a rune of input
}

// Error implements the error interface.
func (e *Error) Error() string {
	field := e.Field
	if e.Part != "" {
		field += " " + e.Part
	}
	msg := fmt.Sprintf("%v: %s: %s", e.Kind, field, e.Rule)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the kind so errors.Is(err, ErrInvalidFormat) works.
func (e *Error) Unwrap() error {
	return e.Kind
}

// RuleOf returns the rule carried by err, or "" if err does not wrap an *Error.
func RuleOf(err error) Rule {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Rule
	}
	return ""
}

// PartOf returns the component carried by err, or "" if there is none.
func PartOf(err error) string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Part
	}
	return ""
}

// KindOf returns the sentinel kind carried by err, or nil.
func KindOf(err error) error {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return nil
}

func formatErr(field string, rule Rule, detail string) *Error {
	return &Error{Kind: ErrInvalidFormat, Field: field, Rule: rule, Detail: detail}
}

func rangeErr(field, part, detail string) *Error {
	return &Error{Kind: ErrInvalidRange, Field: field, Part: part, Rule: RuleOutOfRange, Detail: detail}
}

func decodeErr(field string, rule Rule, detail string) *Error {
	return &Error{Kind: ErrDecode, Field: field, Rule: rule, Detail: detail}
}
