package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# vetted")
		env.contains(out, "vetted handle")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nonexistent")
		assert.Error(t, err)
		env.contains(out, "Available:")
	})

	t.Run("list", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide", "--list")
		env.contains(out, "handle")
		env.contains(out, "tag-date")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"handle", "vetted handle"},
		{"display-name", "vetted name"},
		{"name", "vetted name"},
		{"description", "vetted desc"},
		{"tag-date", "vetted tagdate"},
		{"timestamp", "vetted ts"},
		{"profile", "vetted profile"},
		{"config", "vetted config"},
		{"log", "vetted log"},
		{"mcp", "vetted serve"},
	}

	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}
