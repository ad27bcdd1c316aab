package validate

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// kindOK reports whether err is nil or a *Error carrying one of the four kinds.
func kindOK(err error) bool {
	if err == nil {
		return true
	}
	var ve *Error
	if !errors.As(err, &ve) {
		return false
	}
	switch ve.Kind {
	case ErrInvalidFormat, ErrInvalidRange, ErrOutOfRange, ErrDecode:
		return ve.Rule != ""
	}
	return false
}

// FuzzHandle checks that Handle never panics, always reports a known kind,
// and that accepted handles sit within the charset and length bounds.
func FuzzHandle(f *testing.F) {
	f.Add("")
	f.Add("alice")
	f.Add("ADMIN")
	f.Add("bad!name")
	f.Add(string([]byte{0xff, 0xfe, 'a', 'b'}))
	f.Add(strings.Repeat("x", 31))

	f.Fuzz(func(t *testing.T, input string) {
		err := Handle(input)
		if !kindOK(err) {
			t.Fatalf("unexpected error shape: %#v", err)
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("handle error is not ErrInvalidFormat: %v", err)
			}
			return
		}
		n := utf8.RuneCountInString(input)
		if n < DefaultHandleMinLen || n > DefaultHandleMaxLen {
			t.Errorf("accepted handle with %d runes", n)
		}
		for _, ch := range input {
			if !IsHandleChar(ch) {
				t.Errorf("accepted handle containing %q", ch)
			}
		}
	})
}

// FuzzDisplayName checks that accepted names are valid UTF-8 and not blank.
func FuzzDisplayName(f *testing.F) {
	f.Add("Alice")
	f.Add(" ")
	f.Add("a\u202eb")
	f.Add(string([]byte{0xc3, 0x28}))

	f.Fuzz(func(t *testing.T, input string) {
		err := DisplayName(input)
		if !kindOK(err) {
			t.Fatalf("unexpected error shape: %#v", err)
		}
		if err == nil {
			if !utf8.ValidString(input) {
				t.Error("accepted invalid UTF-8")
			}
			if strings.TrimSpace(input) == "" {
				t.Error("accepted blank name")
			}
		}
	})
}

// FuzzDescription checks that accepted descriptions respect the length bound.
func FuzzDescription(f *testing.F) {
	f.Add("")
	f.Add("line one\nline two")
	f.Add("bell\a")

	f.Fuzz(func(t *testing.T, input string) {
		err := Description(input)
		if !kindOK(err) {
			t.Fatalf("unexpected error shape: %#v", err)
		}
		if err == nil && utf8.RuneCountInString(input) > DefaultDescriptionMaxLen {
			t.Error("accepted over-long description")
		}
	})
}

// FuzzParseTagDate checks that parsed dates round-trip through String.
func FuzzParseTagDate(f *testing.F) {
	f.Add("2024")
	f.Add("2024-02-29")
	f.Add("2023-02-29")
	f.Add("0000-00-00")
	f.Add("+024-01")

	f.Fuzz(func(t *testing.T, input string) {
		d, err := ParseTagDate(input)
		if !kindOK(err) {
			t.Fatalf("unexpected error shape: %#v", err)
		}
		if err != nil {
			return
		}
		if got := d.String(); got != input {
			t.Errorf("round-trip: parsed %q, rendered %q", input, got)
		}
		if err := TagDate(d); err != nil {
			t.Errorf("parsed date fails validation: %v", err)
		}
	})
}

// FuzzTimestampComponent checks that the decoder never panics and that
// accepted timestamps fall inside the window.
func FuzzTimestampComponent(f *testing.F) {
	f.Add("01HQ000000")
	f.Add("7ZZZZZZZZZ")
	f.Add("8000000000")
	f.Add("")
	f.Add("01hq000000")

	f.Fuzz(func(t *testing.T, input string) {
		ts, err := TimestampComponent(input, testNow)
		if !kindOK(err) {
			t.Fatalf("unexpected error shape: %#v", err)
		}
		if err != nil {
			return
		}
		if ts.Before(DefaultEpoch()) || ts.After(testNow.Add(DefaultMaxSkew)) {
			t.Errorf("accepted %s outside window", ts)
		}
	})
}

// FuzzIDTimestamp checks that arbitrary identifiers never panic.
func FuzzIDTimestamp(f *testing.F) {
	f.Add("01HQ0000000000000000000000")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("{018e3c4a-0000-7000-8000-000000000000}")

	f.Fuzz(func(t *testing.T, input string) {
		if _, err := IDTimestamp(input, testNow); !kindOK(err) {
			t.Fatalf("unexpected error shape: %#v", err)
		}
	})
}
