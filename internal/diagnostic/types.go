package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"accessor-generator/internal/common"
)

// Diagnostics holds the non-fatal findings of resolution and rendering.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Record names the record this relates to (if any).
	Record string `json:"record,omitempty"`
	// FieldPath identifies which field this relates to (if any).
	FieldPath string `json:"field,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (d *Diagnostics) add(severity Severity, code, message, record, fieldPath string) {
	diag := Diagnostic{
		Severity:  severity,
		Code:      code,
		Message:   message,
		Record:    record,
		FieldPath: fieldPath,
	}

	switch severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, record, fieldPath string) {
	d.add(SeverityError, code, message, record, fieldPath)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, record, fieldPath string) {
	d.add(SeverityWarning, code, message, record, fieldPath)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, record, fieldPath string) {
	d.add(SeverityInfo, code, message, record, fieldPath)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge appends another Diagnostics instance to this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Codes returns the codes of all diagnostics, most severe first.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, d.Len())
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			codes = append(codes, diag.Code)
		}
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Fprint writes one line per diagnostic, most severe first. Infos are only
// written when verbose is set.
func (d *Diagnostics) Fprint(w io.Writer, verbose bool) error {
	groups := [][]Diagnostic{d.Errors, d.Warnings}
	if verbose {
		groups = append(groups, d.Infos)
	}

	for _, group := range groups {
		for _, diag := range group {
			if _, err := fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag); err != nil {
				return err
			}
		}
	}

	return nil
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix string

	switch {
	case d.FieldPath != "":
		prefix = d.FieldPath
	case d.Record != "":
		prefix = d.Record
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
