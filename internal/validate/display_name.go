// display_name.go implements display name validation.
//
// Display names are shown to people, not parsed by machines, so any
// printable Unicode is allowed. Rejected content is what can corrupt
// rendering: control characters, line separators and bidi overrides that
// can visually reorder surrounding text.

package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayName validates name against the default rules.
func DisplayName(name string) error {
	return defaultRules.DisplayName(name)
}

// DisplayName validates a display name.
//
// Validation rules, checked in order:
//   - Valid UTF-8
//   - At least one rune, at most DisplayNameMaxLen runes
//   - No control characters, line separators or bidi controls
//   - Not whitespace only
func (r Rules) DisplayName(name string) error {
	if !utf8.ValidString(name) {
		return formatErr(FieldDisplayName, RuleInvalidEncoding, "")
	}
	n := utf8.RuneCountInString(name)
	if n < displayNameMinLen {
		return formatErr(FieldDisplayName, RuleTooShort, fmt.Sprintf("minimum %d character", displayNameMinLen))
	}
	if maxLen := r.displayNameMax(); n > maxLen {
		return formatErr(FieldDisplayName, RuleTooLong, fmt.Sprintf("maximum %d characters, got %d", maxLen, n))
	}
	if i, ch, ok := findDisallowed(name, false); ok {
		return formatErr(FieldDisplayName, RuleControlChar, fmt.Sprintf("%U at byte %d", ch, i))
	}
	if strings.TrimSpace(name) == "" {
		return formatErr(FieldDisplayName, RuleBlank, "")
	}
	return nil
}

// findDisallowed returns the first rune in s that is a control or a
// disallowed format character. Tab, newline and carriage return are
// permitted when allowLayout is set.
func findDisallowed(s string, allowLayout bool) (int, rune, bool) {
	for i, ch := range s {
		if allowLayout && (ch == '\t' || ch == '\n' || ch == '\r') {
			continue
		}
		if unicode.IsControl(ch) || isDisallowedFormat(ch) {
			return i, ch, true
		}
	}
	return 0, 0, false
}

// isDisallowedFormat reports line/paragraph separators and bidi embedding,
// override and isolate controls. Joiners and variation selectors are not
// included: emoji sequences depend on them.
func isDisallowedFormat(ch rune) bool {
	switch {
	case ch == '\u2028', ch == '\u2029':
		return true
	case ch >= '\u202A' && ch <= '\u202E':
		return true
	case ch >= '\u2066' && ch <= '\u2069':
		return true
	}
	return false
}
