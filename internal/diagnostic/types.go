package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/carlosskii/typeglue/internal/decl"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// SeverityRecoverable diagnostics are collected; generation continues but
	// the build is reported as failed.
	SeverityRecoverable Severity = iota
	// SeverityFatal diagnostics abort generation of the current declaration.
	SeverityFatal
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityRecoverable:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityRecoverable
	case "fatal":
		*s = SeverityFatal
	default:
		return fmt.Errorf("unknown severity %q", text)
	}

	return nil
}

// Code identifies the kind of a diagnostic.
type Code string

const (
	CodeUnsupportedShape     Code = "unsupported-shape"
	CodeConstGeneric         Code = "const-generic"
	CodeGenericUnion         Code = "generic-union"
	CodeAllFieldsExcluded    Code = "all-fields-excluded"
	CodeExcludeOnPositional  Code = "exclude-on-positional"
	CodeMalformedAnnotation  Code = "malformed-annotation"
	CodeNamedFieldsInVariant Code = "named-variant-fields"
	CodeUnitVariant          Code = "unit-variant"
)

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this kind of diagnostic.
	Code Code `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Decl names the declaration this relates to.
	Decl string `json:"decl,omitempty"`
	// Element names the field or variant this relates to (if any).
	Element string `json:"element,omitempty"`
	// Pos is the source location.
	Pos decl.Position `json:"pos"`
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos.IsValid() || d.Pos.File != "" {
		prefix = append(prefix, d.Pos.String()+":")
	}

	prefix = append(prefix, d.Severity.String()+":")

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	subject := d.Decl
	if d.Element != "" {
		subject += "." + d.Element
	}

	if subject != "" {
		msg += " (" + subject + ")"
	}

	return strings.Join(prefix, " ") + " " + msg
}

// Error is a fatal diagnostic returned from generation.
type Error struct {
	Diagnostic Diagnostic
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Diagnostic.String()
}

// IsFatal reports whether err carries a fatal diagnostic.
func IsFatal(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

// Diagnostics holds all diagnostics recorded during generation.
type Diagnostics struct {
	Fatal       []Diagnostic
	Recoverable []Diagnostic
}

// AddFatal records a fatal diagnostic and returns it as an error, so callers
// can abort with a single return statement.
func (d *Diagnostics) AddFatal(diag Diagnostic) error {
	diag.Severity = SeverityFatal
	d.Fatal = append(d.Fatal, diag)

	return &Error{Diagnostic: diag}
}

// AddRecoverable records a recoverable diagnostic.
func (d *Diagnostics) AddRecoverable(diag Diagnostic) {
	diag.Severity = SeverityRecoverable
	d.Recoverable = append(d.Recoverable, diag)
}

// HasErrors returns true if any diagnostic was recorded. A build with
// recoverable diagnostics still fails.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Fatal) > 0 || len(d.Recoverable) > 0
}

// HasFatal returns true if any fatal diagnostic was recorded.
func (d *Diagnostics) HasFatal() bool {
	return len(d.Fatal) > 0
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Fatal) + len(d.Recoverable)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Fatal = append(d.Fatal, other.Fatal...)
	d.Recoverable = append(d.Recoverable, other.Recoverable...)
}

// IsValid returns true if there are no diagnostics.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// All returns every diagnostic ordered by position; ties keep fatal
// diagnostics first, then recording order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Fatal...)
	all = append(all, d.Recoverable...)

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i].Pos, all[j].Pos
		if a.File != b.File {
			return a.File < b.File
		}

		if a.Line != b.Line {
			return a.Line < b.Line
		}

		return a.Column < b.Column
	})

	return all
}

// Error returns a combined error from all diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.All() {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
