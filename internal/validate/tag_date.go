// tag_date.go implements tag date validation and parsing.
//
// A tag date is a calendar period used as a label: a year, a month of a
// year, or a single day. Granularity is encoded by zero components
// (Month 0 = whole year, Day 0 = whole month), so a Date is comparable
// and usable as a map key.

package validate

import (
	"fmt"
	"strconv"
	"time"
)

// Date is a tag date: a year, year-month or year-month-day period.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month,omitempty" yaml:"month,omitempty"`
	Day   int `json:"day,omitempty" yaml:"day,omitempty"`
}

// String renders the period as YYYY, YYYY-MM or YYYY-MM-DD.
func (d Date) String() string {
	switch {
	case d.Day != 0:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case d.Month != 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d", d.Year)
	}
}

// TagDate validates d against the default rules.
func TagDate(d Date) error {
	return defaultRules.TagDate(d)
}

// TagDate validates a tag date.
//
// Validation rules, checked in order:
//   - Year within [MinYear, MaxYear]
//   - Month within 0..12 (0 means year granularity)
//   - Day not negative
//   - Day only set together with a month
//   - Day within the length of that month, leap years included
func (r Rules) TagDate(d Date) error {
	if lo, hi := r.minYear(), r.maxYear(); d.Year < lo || d.Year > hi {
		return rangeErr(FieldTagDate, "year", fmt.Sprintf("got %d, want %d-%d", d.Year, lo, hi))
	}
	if d.Month < 0 || d.Month > 12 {
		return rangeErr(FieldTagDate, "month", fmt.Sprintf("got %d, want 1-12", d.Month))
	}
	if d.Day < 0 {
		return rangeErr(FieldTagDate, "day", fmt.Sprintf("got %d", d.Day))
	}
	if d.Day > 0 && d.Month == 0 {
		return &Error{Kind: ErrInvalidFormat, Field: FieldTagDate, Part: "month", Rule: RuleMissingComponent, Detail: "day set without month"}
	}
	if d.Day > 0 {
		if n := DaysIn(d.Year, d.Month); d.Day > n {
			return rangeErr(FieldTagDate, "day", fmt.Sprintf("got %d, want 1-%d", d.Day, n))
		}
	}
	return nil
}

// DaysIn returns the number of days in month of year using the proleptic
// Gregorian calendar. month must be 1..12.
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// IsLeapYear reports whether year has a 29 February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ParseTagDate parses YYYY, YYYY-MM or YYYY-MM-DD using the default rules.
func ParseTagDate(s string) (Date, error) {
	return defaultRules.ParseTagDate(s)
}

// ParseTagDate parses YYYY, YYYY-MM or YYYY-MM-DD and validates the result.
// The year is exactly four digits, month and day exactly two. An explicit
// "00" month or day is out of range, not a coarser granularity.
func (r Rules) ParseTagDate(s string) (Date, error) {
	var d Date
	malformed := formatErr(FieldTagDate, RuleMalformed, "want YYYY, YYYY-MM or YYYY-MM-DD")

	switch len(s) {
	case 4, 7, 10:
	default:
		return d, malformed
	}
	if (len(s) >= 7 && s[4] != '-') || (len(s) == 10 && s[7] != '-') {
		return d, malformed
	}

	var ok bool
	if d.Year, ok = digits(s[0:4]); !ok {
		return d, malformed
	}
	if len(s) >= 7 {
		if d.Month, ok = digits(s[5:7]); !ok {
			return d, malformed
		}
	}
	if len(s) == 10 {
		if d.Day, ok = digits(s[8:10]); !ok {
			return d, malformed
		}
	}

	if err := r.TagDate(Date{Year: d.Year}); err != nil {
		return d, err
	}
	if len(s) >= 7 && (d.Month < 1 || d.Month > 12) {
		return d, rangeErr(FieldTagDate, "month", fmt.Sprintf("got %d, want 1-12", d.Month))
	}
	if len(s) == 10 && d.Day < 1 {
		return d, rangeErr(FieldTagDate, "day", fmt.Sprintf("got %d, want 1-%d", d.Day, DaysIn(d.Year, d.Month)))
	}
	if err := r.TagDate(d); err != nil {
		return d, err
	}
	return d, nil
}

// Time returns the first instant of the period in loc.
func (d Date) Time(loc *time.Location) time.Time {
	month, day := d.Month, d.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// digits parses an all-ASCII-digit string. strconv.Atoi alone would accept
// a leading sign.
func digits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
