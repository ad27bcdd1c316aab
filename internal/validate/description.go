// description.go implements free-text description validation.
//
// Descriptions are multi-line, so tab and newlines are allowed. Other
// control characters are not: ESC in particular starts ANSI sequences that
// can rewrite a terminal when the text is later printed.

package validate

import (
	"fmt"
	"unicode/utf8"
)

// Description validates desc against the default rules.
func Description(desc string) error {
	return defaultRules.Description(desc)
}

// Description validates a description.
//
// Validation rules:
//   - Valid UTF-8
//   - At most DescriptionMaxLen runes (empty is allowed)
//   - No control characters other than tab, newline and carriage return
//   - No line separators or bidi controls
func (r Rules) Description(desc string) error {
	if !utf8.ValidString(desc) {
		return formatErr(FieldDescription, RuleInvalidEncoding, "")
	}
	if maxLen, n := r.descriptionMax(), utf8.RuneCountInString(desc); n > maxLen {
		return formatErr(FieldDescription, RuleTooLong, fmt.Sprintf("maximum %d characters, got %d", maxLen, n))
	}
	if i, ch, ok := findDisallowed(desc, true); ok {
		return formatErr(FieldDescription, RuleControlChar, fmt.Sprintf("%U at byte %d", ch, i))
	}
	return nil
}
