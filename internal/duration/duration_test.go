package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"5m", 5 * time.Minute, false},
		{"90s", 90 * time.Second, false},
		{"1h30m", 90 * time.Minute, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"2w", 14 * 24 * time.Hour, false},
		{" 3d ", 3 * 24 * time.Hour, false},
		{"0s", 0, false},
		{"", 0, true},
		{"5", 0, true},
		{"1y", 0, true},
		{"-5m", 0, true},
		{"d", 0, true},
		{"106751d", 106751 * 24 * time.Hour, false},
		{"106752d", 0, true},
		{"200000d", 0, true},
		{"15250w", 15250 * 7 * 24 * time.Hour, false},
		{"15251w", 0, true},
		{"99999999999999999999d", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_NeverNegative(t *testing.T) {
	for _, s := range []string{"106751d", "106752d", "200000d", "15251w", "9223372036854775807d"} {
		d, err := Parse(s)
		if err == nil {
			assert.GreaterOrEqual(t, d, time.Duration(0), s)
		}
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "5m0s", Format(5*time.Minute))
	assert.Equal(t, "3d", Format(72*time.Hour))
	assert.Equal(t, "2w", Format(14*24*time.Hour))
	assert.Equal(t, "25h0m0s", Format(25*time.Hour))

	for _, d := range []time.Duration{time.Second, 5 * time.Minute, 48 * time.Hour, 21 * 24 * time.Hour} {
		got, err := Parse(Format(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
