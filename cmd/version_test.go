package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")

	var info map[string]string
	assert.Equal(t, 0, env.runJSON(&info, "version"))
	assert.Equal(t, "dev", info["build_tag"])
}

func TestOutputFormat_Invalid(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("-o", "xml", "handle", "alice")
	assert.Error(t, err)
	env.contains(out, "invalid output format")
}
