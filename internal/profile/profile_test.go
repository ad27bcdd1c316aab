package profile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/vetted/internal/validate"
)

var now = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestDecode(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		p, err := Decode(strings.NewReader("handle: alice\ndisplay_name: Alice\n"))
		require.NoError(t, err)
		require.NotNil(t, p.Handle)
		assert.Equal(t, "alice", *p.Handle)
		assert.Equal(t, "Alice", *p.DisplayName)
		assert.Nil(t, p.Description)
	})

	t.Run("json", func(t *testing.T) {
		p, err := Decode(strings.NewReader(`{"handle": "alice", "tag_date": "2024-02-29"}`))
		require.NoError(t, err)
		assert.Equal(t, "alice", *p.Handle)
		assert.Equal(t, "2024-02-29", *p.TagDate)
	})

	t.Run("empty display name is present", func(t *testing.T) {
		p, err := Decode(strings.NewReader(`display_name: ""`))
		require.NoError(t, err)
		require.NotNil(t, p.DisplayName)
		assert.Empty(t, *p.DisplayName)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("no known fields", func(t *testing.T) {
		_, err := Decode(strings.NewReader("{}"))
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Decode(strings.NewReader("handel: alice\n"))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Decode(strings.NewReader("handle: [\n"))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Decode(strings.NewReader("description: " + strings.Repeat("a", MaxSize)))
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("handle: alice\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alice", *p.Handle)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func ptr(s string) *string { return &s }

func TestCheck(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		p := &Profile{
			Handle:      ptr("alice"),
			DisplayName: ptr("Alice Smith"),
			Description: ptr("Writes Go.\nLikes tea."),
			TagDate:     ptr("2024-02-29"),
			ID:          ptr(ulid.MustNew(ulid.Timestamp(now.Add(-time.Hour)), nil).String()),
		}
		var buf bytes.Buffer
		report, err := Check(&buf, validate.DefaultRules(), p, now)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Len(t, report.Results, 5)
		assert.Equal(t, 5, strings.Count(buf.String(), "ok "))
	})

	t.Run("joins every failure", func(t *testing.T) {
		p := &Profile{
			Handle:      ptr("ab"),
			DisplayName: ptr(""),
			TagDate:     ptr("2023-02-29"),
		}
		var buf bytes.Buffer
		report, err := Check(&buf, validate.DefaultRules(), p, now)
		require.Error(t, err)
		assert.False(t, report.Valid)
		require.Len(t, report.Results, 3)
		assert.ErrorIs(t, err, validate.ErrInvalidFormat)
		assert.ErrorIs(t, err, validate.ErrInvalidRange)
		assert.Equal(t, "too_short", report.Results[0].Rule)
		assert.Equal(t, "too_short", report.Results[1].Rule)
		assert.Equal(t, "day", report.Results[2].Part)
	})

	t.Run("absent fields are skipped", func(t *testing.T) {
		var buf bytes.Buffer
		report, err := Check(&buf, validate.DefaultRules(), &Profile{Handle: ptr("alice")}, now)
		require.NoError(t, err)
		assert.Len(t, report.Results, 1)
	})
}
