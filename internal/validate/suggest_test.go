package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestHandle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"alice", "alice"},
		{"Alice Smith", "Alice_Smith"},
		{"  alice   smith  ", "alice_smith"},
		{"renée", "rene"},
		{"alice@example.com", "aliceexample.com"},
		{strings.Repeat("a", 40), strings.Repeat("a", 30)},
		{"日本", ""},
		{"a b", "a_b"},
		{"ab", ""},
		{"admin", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SuggestHandle(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.NoError(t, Handle(got))
			}
		})
	}
}
