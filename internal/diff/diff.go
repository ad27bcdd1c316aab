// Package diff computes character-level differences between a rejected
// value and a suggested replacement, so the CLI can show what a
// suggestion removed or replaced.
package diff

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is a single edit in a diff.
type Op struct {
	Type string `json:"type"` // "equal", "delete" or "insert"
	Text string `json:"text"`
}

// Result holds the diff between two values.
type Result struct {
	Old string `json:"old"`
	New string `json:"new"`
	Ops []Op   `json:"ops"`
}

// Compute returns the character diff turning oldValue into newValue.
func Compute(oldValue, newValue string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldValue, newValue, false)
	d = dmp.DiffCleanupSemantic(d)

	ops := make([]Op, 0, len(d))
	for _, x := range d {
		ops = append(ops, Op{Type: opType(x.Type), Text: x.Text})
	}
	return Result{Old: oldValue, New: newValue, Ops: ops}
}

func opType(t diffmatchpatch.Operation) string {
	switch t {
	case diffmatchpatch.DiffDelete:
		return "delete"
	case diffmatchpatch.DiffInsert:
		return "insert"
	default:
		return "equal"
	}
}

// Changed reports whether the values differ.
func (r Result) Changed() bool {
	for _, op := range r.Ops {
		if op.Type != "equal" {
			return true
		}
	}
	return false
}

// Inline renders the diff on one line, deletions as [-x-] and insertions as
// {+x+}. Control characters are shown escaped.
func (r Result) Inline() string {
	var b strings.Builder
	for _, op := range r.Ops {
		text := visible(op.Text)
		switch op.Type {
		case "delete":
			b.WriteString("[-" + text + "-]")
		case "insert":
			b.WriteString("{+" + text + "+}")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

// Colourise renders the diff with ANSI colours instead of markers.
func (r Result) Colourise() string {
	const (
		red   = "\033[31;9m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, op := range r.Ops {
		text := visible(op.Text)
		switch op.Type {
		case "delete":
			b.WriteString(red + text + reset)
		case "insert":
			b.WriteString(green + text + reset)
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

// Format returns the diff with a header naming both values.
func (r Result) Format(colour bool) string {
	body := r.Inline()
	if colour {
		body = r.Colourise()
	}
	return fmt.Sprintf("- %q\n+ %q\n  %s\n", r.Old, r.New, body)
}

// visible replaces control characters with their escaped form.
func visible(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if unicode.IsControl(ch) {
			q := fmt.Sprintf("%q", ch)
			b.WriteString(q[1 : len(q)-1])
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
