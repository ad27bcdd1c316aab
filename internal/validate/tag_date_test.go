package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagDate(t *testing.T) {
	tests := []struct {
		name     string
		input    Date
		wantKind error
		wantPart string
	}{
		{"year only", Date{Year: 2024}, nil, ""},
		{"year and month", Date{Year: 2024, Month: 12}, nil, ""},
		{"full date", Date{Year: 2024, Month: 1, Day: 31}, nil, ""},
		{"leap day", Date{Year: 2024, Month: 2, Day: 29}, nil, ""},
		{"leap day 2000", Date{Year: 2000, Month: 2, Day: 29}, nil, ""},
		{"thirty day month end", Date{Year: 2023, Month: 4, Day: 30}, nil, ""},
		{"min year", Date{Year: 1}, nil, ""},
		{"max year", Date{Year: 9999, Month: 12, Day: 31}, nil, ""},

		{"non-leap feb 29", Date{Year: 2023, Month: 2, Day: 29}, ErrInvalidRange, "day"},
		{"century non-leap", Date{Year: 1900, Month: 2, Day: 29}, ErrInvalidRange, "day"},
		{"april 31", Date{Year: 2024, Month: 4, Day: 31}, ErrInvalidRange, "day"},
		{"day 32", Date{Year: 2024, Month: 1, Day: 32}, ErrInvalidRange, "day"},
		{"negative day", Date{Year: 2024, Month: 1, Day: -1}, ErrInvalidRange, "day"},
		{"month 13", Date{Year: 2024, Month: 13}, ErrInvalidRange, "month"},
		{"month 13 with day", Date{Year: 2024, Month: 13, Day: 1}, ErrInvalidRange, "month"},
		{"negative month", Date{Year: 2024, Month: -1}, ErrInvalidRange, "month"},
		{"year zero", Date{Year: 0}, ErrInvalidRange, "year"},
		{"negative year", Date{Year: -44, Month: 3, Day: 15}, ErrInvalidRange, "year"},
		{"year too large", Date{Year: 10000}, ErrInvalidRange, "year"},
		{"day without month", Date{Year: 2024, Day: 5}, ErrInvalidFormat, "month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TagDate(tt.input)
			if tt.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantPart, PartOf(err))
		})
	}
}

func TestTagDate_Month13AlwaysOutOfRange(t *testing.T) {
	for _, year := range []int{1, 1999, 2024, 9999} {
		for _, day := range []int{0, 1, 28} {
			err := TagDate(Date{Year: year, Month: 13, Day: day})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRange)
			assert.Equal(t, RuleOutOfRange, RuleOf(err))
			assert.Equal(t, "month", PartOf(err))
		}
	}
}

func TestTagDate_AgreesWithTimePackage(t *testing.T) {
	for _, year := range []int{1600, 1900, 2000, 2023, 2024, 2100} {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				got := TagDate(Date{Year: year, Month: month, Day: day}) == nil
				norm := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				want := norm.Day() == day
				assert.Equal(t, want, got, "%04d-%02d-%02d", year, month, day)
			}
		}
	}
}

func TestTagDate_ErrorMessage(t *testing.T) {
	err := TagDate(Date{Year: 2024, Month: 13})
	assert.EqualError(t, err, "invalid range: tag date month: out of range (got 13, want 1-12)")
}

func TestRules_TagDate_YearBounds(t *testing.T) {
	r := Rules{MinYear: 2000, MaxYear: 2099}
	assert.NoError(t, r.TagDate(Date{Year: 2000}))
	assert.Equal(t, "year", PartOf(r.TagDate(Date{Year: 1999})))
	assert.Equal(t, "year", PartOf(r.TagDate(Date{Year: 2100})))
}

func TestParseTagDate(t *testing.T) {
	tests := []struct {
		input    string
		want     Date
		wantRule Rule
		wantPart string
	}{
		{"2024", Date{Year: 2024}, "", ""},
		{"2024-02", Date{Year: 2024, Month: 2}, "", ""},
		{"2024-02-29", Date{Year: 2024, Month: 2, Day: 29}, "", ""},
		{"0001-01-01", Date{Year: 1, Month: 1, Day: 1}, "", ""},

		{"2023-02-29", Date{}, RuleOutOfRange, "day"},
		{"2024-13", Date{}, RuleOutOfRange, "month"},
		{"2024-13-40", Date{}, RuleOutOfRange, "month"},
		{"2024-00", Date{}, RuleOutOfRange, "month"},
		{"2024-01-00", Date{}, RuleOutOfRange, "day"},
		{"0000", Date{}, RuleOutOfRange, "year"},

		{"", Date{}, RuleMalformed, ""},
		{"24", Date{}, RuleMalformed, ""},
		{"2024-2", Date{}, RuleMalformed, ""},
		{"2024-02-5", Date{}, RuleMalformed, ""},
		{"2024/02/05", Date{}, RuleMalformed, ""},
		{"+024", Date{}, RuleMalformed, ""},
		{"2024-+1", Date{}, RuleMalformed, ""},
		{"20240229", Date{}, RuleMalformed, ""},
		{"2024-02-29T00:00", Date{}, RuleMalformed, ""},
		{"abcd", Date{}, RuleMalformed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTagDate(tt.input)
			if tt.wantRule == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantRule, RuleOf(err))
			assert.Equal(t, tt.wantPart, PartOf(err))
		})
	}
}

func TestDate_Time(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Date{Year: 2024}.Time(time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Date{Year: 2024, Month: 6}.Time(time.UTC))
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), Date{Year: 2024, Month: 6, Day: 9}.Time(time.UTC))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, 2))
	assert.Equal(t, 28, DaysIn(2023, 2))
	assert.Equal(t, 28, DaysIn(2100, 2))
	assert.Equal(t, 29, DaysIn(2000, 2))
	assert.Equal(t, 30, DaysIn(2023, 9))
	assert.Equal(t, 31, DaysIn(2023, 12))
}
