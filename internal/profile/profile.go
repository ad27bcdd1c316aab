// Package profile validates a user profile record in one pass.
//
// A profile is a YAML (or JSON) document holding any of the validated
// fields. Only fields present in the file are checked: an absent
// description is not an error, but an empty display name is.

package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/vetted/internal/check"
	"github.com/jpl-au/vetted/internal/validate"
)

var (
	// ErrEmpty is returned when a profile sets none of the known fields.
	ErrEmpty = errors.New("profile has no fields to check")
	// ErrMalformed is returned when a profile cannot be decoded.
	ErrMalformed = errors.New("malformed profile")
)

// MaxSize bounds the profile file size accepted by Load.
const MaxSize = 1 << 20

// Profile holds the fields of a user record. Nil means absent.
type Profile struct {
	Handle      *string `yaml:"handle" json:"handle,omitempty"`
	DisplayName *string `yaml:"display_name" json:"display_name,omitempty"`
	Description *string `yaml:"description" json:"description,omitempty"`
	TagDate     *string `yaml:"tag_date" json:"tag_date,omitempty"`
	ID          *string `yaml:"id" json:"id,omitempty"`
}

// Report is the outcome of checking every present field.
type Report struct {
	Valid   bool           `json:"valid"`
	Results []check.Result `json:"results"`
}

// Load reads a profile from path.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a profile from r. YAML and JSON are both accepted; unknown
// keys are rejected so a misspelt field is not silently skipped.
func Decode(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrMalformed, MaxSize)
	}

	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.isEmpty() {
		return nil, ErrEmpty
	}
	return &p, nil
}

func (p *Profile) isEmpty() bool {
	return p.Handle == nil && p.DisplayName == nil && p.Description == nil &&
		p.TagDate == nil && p.ID == nil
}

// Check validates every present field against rules, writing one line per
// field to w. The returned error joins every failure.
func Check(w io.Writer, rules validate.Rules, p *Profile, now time.Time) (Report, error) {
	var (
		report = Report{Results: []check.Result{}}
		errs   []error
	)
	add := func(r check.Result, err error) {
		report.Results = append(report.Results, r)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if p.Handle != nil {
		add(check.Handle(w, rules, *p.Handle, false))
	}
	if p.DisplayName != nil {
		add(check.DisplayName(w, rules, *p.DisplayName))
	}
	if p.Description != nil {
		add(check.Description(w, rules, *p.Description))
	}
	if p.TagDate != nil {
		add(check.TagDate(w, rules, *p.TagDate))
	}
	if p.ID != nil {
		add(check.ID(w, rules, *p.ID, now))
	}

	report.Valid = len(errs) == 0
	return report, errors.Join(errs...)
}
