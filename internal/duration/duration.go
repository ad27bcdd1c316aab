// Package duration provides parsing for human-readable duration strings.
//
// Go's time.ParseDuration covers clock skews ("90s", "5m", "1h30m") but
// stops at hours. Day and week suffixes are accepted on top for settings
// such as log --since, where "7d" reads better than "168h".
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dayWeek = regexp.MustCompile(`^(\d+)([dw])$`)

// Parse parses a Go duration ("90s", "5m", "2h") or a whole number of days
// or weeks ("7d", "2w"). Negative durations are rejected.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if matches := dayWeek.FindStringSubmatch(s); matches != nil {
		num, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number: %w", err)
		}
		unit := 24 * time.Hour
		if matches[2] == "w" {
			unit *= 7
		}
		if num > math.MaxInt64/int64(unit) {
			return 0, fmt.Errorf("invalid duration: %s is too large", s)
		}
		return time.Duration(num) * unit, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 90s, 5m, 2h, 7d or 2w)", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration: %s is negative", s)
	}
	return d, nil
}

// Format renders d the way Parse accepts it, preferring whole days.
func Format(d time.Duration) string {
	day := 24 * time.Hour
	switch {
	case d >= 7*day && d%(7*day) == 0:
		return strconv.FormatInt(int64(d/(7*day)), 10) + "w"
	case d >= day && d%day == 0:
		return strconv.FormatInt(int64(d/day), 10) + "d"
	default:
		return d.String()
	}
}
