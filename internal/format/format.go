// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// running checks while this package handles presentation concerns like
// column alignment and stable ordering.
package format

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jpl-au/vetted/internal/log"
)

// LogEntries prints audit log entries, one per line, newest first as given.
//
// Column order is TIME, SOURCE, FIELD, LEN, RESULT. Fixed-width columns come
// first; RESULT is last because failure messages vary in length.
func LogEntries(w io.Writer, entries []log.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	maxSource := 6 // minimum "SOURCE"
	maxField := 5  // minimum "FIELD"
	for _, e := range entries {
		maxSource = max(maxSource, len(e.Source))
		maxField = max(maxField, len(dash(e.Field)))
	}

	fmt.Fprintf(w, "%-16s  %-*s  %-*s  %5s  %s\n", "TIME", maxSource, "SOURCE", maxField, "FIELD", "LEN", "RESULT")
	for _, e := range entries {
		ts := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
		result := "ok"
		if !e.Success {
			result = e.Error
			if e.Rule != "" {
				result = e.Rule + ": " + e.Error
			}
		}
		fmt.Fprintf(w, "%s  %-*s  %-*s  %5d  %s\n", ts, maxSource, e.Source, maxField, dash(e.Field), e.Length, result)
	}
	return nil
}

// Summary prints per-rule counts, most frequent first. The empty rule is
// shown as "ok".
func Summary(w io.Writer, counts map[string]int) error {
	type row struct {
		rule string
		n    int
	}
	rows := make([]row, 0, len(counts))
	width := 4 // minimum "RULE"
	for rule, n := range counts {
		if rule == "" {
			rule = "ok"
		}
		rows = append(rows, row{rule, n})
		width = max(width, len(rule))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n != rows[j].n {
			return rows[i].n > rows[j].n
		}
		return rows[i].rule < rows[j].rule
	})

	fmt.Fprintf(w, "%-*s  %s\n", width, "RULE", "COUNT")
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %d\n", width, r.rule, r.n)
	}
	return nil
}

// KeyValues prints a map as "key: value" lines sorted by key.
func KeyValues(w io.Writer, m map[string]string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, m[k])
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
