package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRule Rule
	}{
		{"empty", "", ""},
		{"single line", "Backend developer.", ""},
		{"multi line", "Line one\nLine two\r\n\tIndented", ""},
		{"unicode", "Café ☕ and 日本語", ""},
		{"at max length", strings.Repeat("x", 1024), ""},
		{"multibyte at max length", strings.Repeat("日", 1024), ""},

		{"over max length", strings.Repeat("x", 1025), RuleTooLong},
		{"ansi escape", "Hello \x1b[2J world", RuleControlChar},
		{"null byte", "Hello\x00", RuleControlChar},
		{"bell", "Hello\a", RuleControlChar},
		{"backspace", "Hello\b", RuleControlChar},
		{"paragraph separator", "Hello\u2029world", RuleControlChar},
		{"bidi override", "abc\u202Dxyz", RuleControlChar},
		{"invalid utf-8", "Hello \xc3\x28", RuleInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Description(tt.input)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.Equal(t, tt.wantRule, RuleOf(err))
		})
	}
}

func TestDescription_RejectsEveryLengthAboveMax(t *testing.T) {
	for _, extra := range []int{1, 2, 100, 10000} {
		err := Description(strings.Repeat("a", DefaultDescriptionMaxLen+extra))
		require.Error(t, err)
		assert.Equal(t, RuleTooLong, RuleOf(err))
	}
}

func TestRules_Description_CustomMax(t *testing.T) {
	r := Rules{DescriptionMaxLen: 10}
	assert.NoError(t, r.Description("0123456789"))
	assert.Equal(t, RuleTooLong, RuleOf(r.Description("0123456789a")))
}
