// suggest.go derives an acceptable handle from rejected input.
//
// Used by the CLI to offer a correction. The function never invents
// characters: it only removes or replaces, so the suggestion stays
// recognisably the user's own choice.

package validate

import (
	"strings"
	"unicode"
)

// SuggestHandle derives a handle from s using the default rules.
func SuggestHandle(s string) string {
	return defaultRules.SuggestHandle(s)
}

// SuggestHandle returns a handle close to s that passes r.Handle, or "" if
// none can be derived. Whitespace runs become a single '_', other characters
// outside the handle charset are dropped, and the result is truncated to the
// maximum length.
func (r Rules) SuggestHandle(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, ch := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(ch):
			pendingSep = true
		case IsHandleChar(ch):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(ch)
		}
	}

	out := b.String()
	if maxLen := r.handleMax(); len(out) > maxLen {
		out = out[:maxLen]
	}
	if r.Handle(out) != nil {
		return ""
	}
	return out
}
