// handle.go implements handle (username) validation.
//
// Handles appear in URLs and mentions, so the charset is ASCII only:
// letters, digits, underscore, hyphen and dot. Length is counted in runes
// so that a short multi-byte input is reported as too short rather than as
// an illegal character.

package validate

import (
	"fmt"
	"unicode/utf8"
)

// Handle validates h against the default rules.
func Handle(h string) error {
	return defaultRules.Handle(h)
}

// Handle validates a handle.
//
// Validation rules, checked in order:
//   - At least HandleMinLen runes (empty is too short)
//   - At most HandleMaxLen runes
//   - Only ASCII letters, digits, '_', '-' and '.'
//   - Not a reserved word (case-insensitive)
func (r Rules) Handle(h string) error {
	n := utf8.RuneCountInString(h)
	if minLen := r.handleMin(); n < minLen {
		return formatErr(FieldHandle, RuleTooShort, fmt.Sprintf("minimum %d characters, got %d", minLen, n))
	}
	if maxLen := r.handleMax(); n > maxLen {
		return formatErr(FieldHandle, RuleTooLong, fmt.Sprintf("maximum %d characters, got %d", maxLen, n))
	}
	for i, ch := range h {
		if ch == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(h[i:]); size == 1 {
				return formatErr(FieldHandle, RuleIllegalChar, fmt.Sprintf("invalid UTF-8 at byte %d", i))
			}
		}
		if !IsHandleChar(ch) {
			return formatErr(FieldHandle, RuleIllegalChar, fmt.Sprintf("%q at byte %d", ch, i))
		}
	}
	if r.isReserved(h) {
		return formatErr(FieldHandle, RuleReserved, "")
	}
	return nil
}

// IsHandleChar reports whether ch may appear in a handle.
func IsHandleChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-' || ch == '.'
}
