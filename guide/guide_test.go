package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "# vetted")

	page, err := Get("handle")
	require.NoError(t, err)
	assert.Contains(t, page, "reserved")

	alias, err := Get("ts")
	require.NoError(t, err)
	ts, err := Get("timestamp")
	require.NoError(t, err)
	assert.Equal(t, ts, alias)

	_, err = Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Get("../go")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Contains(t, names, "handle")
	assert.Contains(t, names, "tag-date")
	assert.NotContains(t, names, "guide")

	for _, n := range names {
		_, err := Get(n)
		assert.NoError(t, err, n)
	}
}
